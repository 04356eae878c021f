package commands

import (
	"context"

	"github.com/fintrackhq/fintrack_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_app/internal/core/ports/repositories"
)

// CreateCategoryCommand validates, constructs and saves a new category.
// Undo removes the created category.
type CreateCategoryCommand struct {
	base
	factory      *domain.Factory
	categories   portsrepo.CategoryRepository
	categoryType domain.CategoryType
	categoryName string
	description  string
	created      *domain.Category
}

var _ Command = (*CreateCategoryCommand)(nil)

// NewCreateCategoryCommand prepares a category creation.
func NewCreateCategoryCommand(factory *domain.Factory, categories portsrepo.CategoryRepository, categoryType domain.CategoryType, categoryName, description string) *CreateCategoryCommand {
	return &CreateCategoryCommand{
		base:         base{name: "create category"},
		factory:      factory,
		categories:   categories,
		categoryType: categoryType,
		categoryName: categoryName,
		description:  description,
	}
}

func (c *CreateCategoryCommand) CanUndo() bool { return true }

// CreatedCategory returns the category created by Execute, nil before
// execution or after undo.
func (c *CreateCategoryCommand) CreatedCategory() *domain.Category { return c.created }

func (c *CreateCategoryCommand) Execute(ctx context.Context) error {
	if err := c.beginExecute(); err != nil {
		return err
	}
	category, err := c.factory.NewCategory(c.categoryType, c.categoryName, c.description)
	if err != nil {
		return err
	}
	if err := c.categories.Save(ctx, category); err != nil {
		return err
	}
	c.created = &category
	c.executed = true
	return nil
}

func (c *CreateCategoryCommand) Undo(ctx context.Context) error {
	if err := c.beginUndo(c.CanUndo()); err != nil {
		return err
	}
	if err := c.categories.Remove(ctx, c.created.ID()); err != nil {
		return err
	}
	c.created = nil
	c.executed = false
	return nil
}
