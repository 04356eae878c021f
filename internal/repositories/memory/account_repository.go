package memory

import (
	"context"
	"fmt"

	"github.com/fintrackhq/fintrack_app/internal/apperrors"
	"github.com/fintrackhq/fintrack_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_app/internal/core/ports/repositories"
)

// AccountRepository stores accounts and adds the account-specific queries.
type AccountRepository struct {
	*Repository[domain.Account]
}

var _ portsrepo.AccountRepository = (*AccountRepository)(nil)

// NewAccountRepository creates an empty account store.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{Repository: NewRepository[domain.Account]()}
}

// FindActive returns every account with the active flag set.
func (r *AccountRepository) FindActive(ctx context.Context) ([]domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]domain.Account, 0)
	for _, account := range r.items {
		if account.IsActive() {
			result = append(result, account)
		}
	}
	return result, nil
}

// FindByAccountNumber returns the account carrying the given external number.
func (r *AccountRepository) FindByAccountNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, account := range r.items {
		if account.AccountNumber() == accountNumber {
			found := account
			return &found, nil
		}
	}
	return nil, fmt.Errorf("account number %q: %w", accountNumber, apperrors.ErrNotFound)
}
