package memory

import (
	"context"
	"fmt"

	"github.com/fintrackhq/fintrack_app/internal/apperrors"
	"github.com/fintrackhq/fintrack_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_app/internal/core/ports/repositories"
)

// CategoryRepository stores categories and adds the category-specific queries.
type CategoryRepository struct {
	*Repository[domain.Category]
}

var _ portsrepo.CategoryRepository = (*CategoryRepository)(nil)

// NewCategoryRepository creates an empty category store.
func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{Repository: NewRepository[domain.Category]()}
}

// FindByType returns every category of the given type.
func (r *CategoryRepository) FindByType(ctx context.Context, categoryType domain.CategoryType) ([]domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]domain.Category, 0)
	for _, category := range r.items {
		if category.Type() == categoryType {
			result = append(result, category)
		}
	}
	return result, nil
}

// FindByName returns the first category with an exactly matching name.
func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, category := range r.items {
		if category.Name() == name {
			found := category
			return &found, nil
		}
	}
	return nil, fmt.Errorf("category %q: %w", name, apperrors.ErrNotFound)
}
