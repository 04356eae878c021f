package cache

import (
	"context"
	"time"

	"github.com/fintrackhq/fintrack_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_app/internal/core/ports/repositories"
)

// AccountRepository caches id lookups in front of an account repository.
// The account-specific queries go straight to the inner repository: they
// scan the whole store and caching them would risk serving a partial view.
type AccountRepository struct {
	*Repository[domain.Account]
	inner portsrepo.AccountRepository
}

var _ portsrepo.AccountRepository = (*AccountRepository)(nil)

// NewAccountRepository wraps inner with a ttl-bounded cache.
func NewAccountRepository(inner portsrepo.AccountRepository, ttl time.Duration, options ...Option[domain.Account]) *AccountRepository {
	return &AccountRepository{
		Repository: NewRepository(portsrepo.Repository[domain.Account](inner), ttl, options...),
		inner:      inner,
	}
}

// FindActive delegates to the inner repository.
func (r *AccountRepository) FindActive(ctx context.Context) ([]domain.Account, error) {
	return r.inner.FindActive(ctx)
}

// FindByAccountNumber delegates to the inner repository.
func (r *AccountRepository) FindByAccountNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	return r.inner.FindByAccountNumber(ctx, accountNumber)
}
