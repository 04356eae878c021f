package dto

import (
	"github.com/fintrackhq/fintrack_app/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a new category.
type CreateCategoryRequest struct {
	Type        domain.CategoryType `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Name        string              `json:"name" binding:"required,max=50"`
	Description string              `json:"description" binding:"omitempty,max=200"`
}

// UpdateCategoryRequest defines the data allowed for updating a category.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color" binding:"omitempty"`
	Icon        *string `json:"icon"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	ID          string              `json:"id"`
	Type        domain.CategoryType `json:"type"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Color       string              `json:"color"`
	Icon        string              `json:"icon"`
}

// ToCategoryResponse converts a domain.Category to its wire form.
func ToCategoryResponse(cat *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:          cat.ID(),
		Type:        cat.Type(),
		Name:        cat.Name(),
		Description: cat.Description(),
		Color:       cat.Color(),
		Icon:        cat.Icon(),
	}
}

// ToListCategoryResponse converts a slice of categories.
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i := range categories {
		res[i] = ToCategoryResponse(&categories[i])
	}
	return res
}

// ListCategoriesResponse wraps the list of categories.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}
