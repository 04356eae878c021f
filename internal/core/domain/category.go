package domain

import (
	"fmt"

	"github.com/fintrackhq/fintrack_app/internal/apperrors"
)

// CategoryType tells whether a category groups income or expense operations.
type CategoryType string

const (
	CategoryIncome  CategoryType = "INCOME"
	CategoryExpense CategoryType = "EXPENSE"
)

const (
	maxCategoryNameLength        = 50
	maxCategoryDescriptionLength = 200
)

// Category labels operations. The type is fixed at construction; name,
// description, color and icon can change afterwards.
type Category struct {
	id           string
	categoryType CategoryType
	name         string
	description  string
	color        string
	icon         string
}

// NewCategory validates and builds a category.
func NewCategory(id string, categoryType CategoryType, name, description, color, icon string) (Category, error) {
	c := Category{
		id:           id,
		categoryType: categoryType,
		name:         name,
		description:  description,
		color:        color,
		icon:         icon,
	}
	if err := c.validateFields(); err != nil {
		return Category{}, err
	}
	return c, nil
}

func (c Category) validateFields() error {
	if err := validateID(c.id); err != nil {
		return err
	}
	if c.categoryType != CategoryIncome && c.categoryType != CategoryExpense {
		return fmt.Errorf("category type must be %s or %s: %w", CategoryIncome, CategoryExpense, apperrors.ErrValidation)
	}
	if err := validateNotEmpty(c.name, "category name"); err != nil {
		return err
	}
	if err := validateMaxLength(c.name, maxCategoryNameLength, "category name"); err != nil {
		return err
	}
	if err := validateMaxLength(c.description, maxCategoryDescriptionLength, "category description"); err != nil {
		return err
	}
	return validateColor(c.color)
}

func (c Category) ID() string { return c.id }

func (c Category) Type() CategoryType { return c.categoryType }

func (c Category) Name() string { return c.name }

func (c Category) Description() string { return c.description }

func (c Category) Color() string { return c.color }

func (c Category) Icon() string { return c.icon }

func (c Category) IsIncome() bool { return c.categoryType == CategoryIncome }

func (c Category) IsExpense() bool { return c.categoryType == CategoryExpense }

// Rename changes the category name.
func (c *Category) Rename(name string) error {
	if err := validateNotEmpty(name, "category name"); err != nil {
		return err
	}
	if err := validateMaxLength(name, maxCategoryNameLength, "category name"); err != nil {
		return err
	}
	c.name = name
	return nil
}

// SetDescription changes the category description.
func (c *Category) SetDescription(description string) error {
	if err := validateMaxLength(description, maxCategoryDescriptionLength, "category description"); err != nil {
		return err
	}
	c.description = description
	return nil
}

// SetColor changes the UI color, validated against the hex grammar.
func (c *Category) SetColor(color string) error {
	if err := validateColor(color); err != nil {
		return err
	}
	c.color = color
	return nil
}

func (c *Category) SetIcon(icon string) {
	c.icon = icon
}
