package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fintrackhq/fintrack_app/internal/apperrors"
	"github.com/fintrackhq/fintrack_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_app/internal/core/ports/repositories"
)

// CategoryService covers category lookups and removal, and the
// lookup-or-create helper transfers use to resolve their shared category.
type CategoryService struct {
	BaseService
	categories portsrepo.CategoryRepository
	operations portsrepo.OperationRepository
	factory    *domain.Factory
}

// NewCategoryService creates the category management service.
func NewCategoryService(categories portsrepo.CategoryRepository, operations portsrepo.OperationRepository, factory *domain.Factory) *CategoryService {
	return &CategoryService{
		categories: categories,
		operations: operations,
		factory:    factory,
	}
}

// GetCategory returns one category by id.
func (s *CategoryService) GetCategory(ctx context.Context, categoryID string) (*domain.Category, error) {
	return s.categories.FindByID(ctx, categoryID)
}

// ListCategories returns every category.
func (s *CategoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.FindAll(ctx)
}

// ListCategoriesByType returns every category of the given type.
func (s *CategoryService) ListCategoriesByType(ctx context.Context, categoryType domain.CategoryType) ([]domain.Category, error) {
	return s.categories.FindByType(ctx, categoryType)
}

// LookupOrCreate finds a category by name, creating it on first use.
func (s *CategoryService) LookupOrCreate(ctx context.Context, categoryType domain.CategoryType, name, description string) (*domain.Category, error) {
	category, err := s.categories.FindByName(ctx, name)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	created, err := s.factory.NewCategory(categoryType, name, description)
	if err != nil {
		return nil, err
	}
	if err := s.categories.Save(ctx, created); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Created category on first use", slog.String("category_name", name))
	return &created, nil
}

// UpdateCategory applies the given field changes and persists them. Nil
// fields stay untouched.
func (s *CategoryService) UpdateCategory(ctx context.Context, categoryID string, name, description, color, icon *string) (*domain.Category, error) {
	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if name != nil {
		if err := category.Rename(*name); err != nil {
			return nil, err
		}
	}
	if description != nil {
		if err := category.SetDescription(*description); err != nil {
			return nil, err
		}
	}
	if color != nil {
		if err := category.SetColor(*color); err != nil {
			return nil, err
		}
	}
	if icon != nil {
		category.SetIcon(*icon)
	}
	if err := s.categories.Update(ctx, *category); err != nil {
		return nil, err
	}
	return category, nil
}

// RemoveCategory deletes the category. A category referenced by existing
// operations cannot be removed.
func (s *CategoryService) RemoveCategory(ctx context.Context, categoryID string) error {
	if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
		return err
	}
	operations, err := s.operations.FindByCategory(ctx, categoryID)
	if err != nil {
		return err
	}
	if len(operations) > 0 {
		return fmt.Errorf("cannot delete category %s with %d existing operations: %w", categoryID, len(operations), apperrors.ErrDomainRule)
	}
	return s.categories.Remove(ctx, categoryID)
}
