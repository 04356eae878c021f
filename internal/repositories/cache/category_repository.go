package cache

import (
	"context"
	"time"

	"github.com/fintrackhq/fintrack_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_app/internal/core/ports/repositories"
)

// CategoryRepository caches id lookups in front of a category repository,
// delegating the scan queries to the inner store.
type CategoryRepository struct {
	*Repository[domain.Category]
	inner portsrepo.CategoryRepository
}

var _ portsrepo.CategoryRepository = (*CategoryRepository)(nil)

// NewCategoryRepository wraps inner with a ttl-bounded cache.
func NewCategoryRepository(inner portsrepo.CategoryRepository, ttl time.Duration, options ...Option[domain.Category]) *CategoryRepository {
	return &CategoryRepository{
		Repository: NewRepository(portsrepo.Repository[domain.Category](inner), ttl, options...),
		inner:      inner,
	}
}

// FindByType delegates to the inner repository.
func (r *CategoryRepository) FindByType(ctx context.Context, categoryType domain.CategoryType) ([]domain.Category, error) {
	return r.inner.FindByType(ctx, categoryType)
}

// FindByName delegates to the inner repository.
func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	return r.inner.FindByName(ctx, name)
}
