package commands

import (
	"context"
	"time"

	"github.com/fintrackhq/fintrack_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_app/internal/core/ports/repositories"
	"github.com/fintrackhq/fintrack_app/internal/core/services"
)

// AddOperationCommand posts an income or expense operation against an
// account. Undo removes the operation and restores the account balance to
// the value it had immediately before execution.
type AddOperationCommand struct {
	base
	factory       *domain.Factory
	accounts      portsrepo.AccountRepository
	operations    *services.OperationService
	operationType domain.OperationType
	accountID     string
	amount        domain.Money
	categoryID    string
	description   string
	date          time.Time

	recurring        bool
	recurringPattern string

	recorded        *domain.Operation
	previousBalance domain.Money
}

var _ Command = (*AddOperationCommand)(nil)

// AddOperationOption adjusts optional posting behavior.
type AddOperationOption func(*AddOperationCommand)

// WithRecurrence flags the posted operation as recurring so that later
// recurring processing clones it onto new dates.
func WithRecurrence(pattern string) AddOperationOption {
	return func(c *AddOperationCommand) {
		c.recurring = true
		c.recurringPattern = pattern
	}
}

// NewAddOperationCommand prepares an operation posting. A zero date defaults
// to the factory clock at execution time.
func NewAddOperationCommand(factory *domain.Factory, accounts portsrepo.AccountRepository, operations *services.OperationService, operationType domain.OperationType, accountID string, amount domain.Money, categoryID, description string, date time.Time, opts ...AddOperationOption) *AddOperationCommand {
	cmd := &AddOperationCommand{
		base:          base{name: "add operation"},
		factory:       factory,
		accounts:      accounts,
		operations:    operations,
		operationType: operationType,
		accountID:     accountID,
		amount:        amount,
		categoryID:    categoryID,
		description:   description,
		date:          date,
	}
	for _, opt := range opts {
		opt(cmd)
	}
	return cmd
}

func (c *AddOperationCommand) CanUndo() bool { return true }

// RecordedOperation returns the operation recorded by Execute, nil before
// execution or after undo.
func (c *AddOperationCommand) RecordedOperation() *domain.Operation { return c.recorded }

func (c *AddOperationCommand) Execute(ctx context.Context) error {
	if err := c.beginExecute(); err != nil {
		return err
	}
	account, err := c.accounts.FindByID(ctx, c.accountID)
	if err != nil {
		return err
	}
	previousBalance := account.Balance()

	var op domain.Operation
	if c.recurring {
		op, err = c.factory.NewRecurringOperation(c.operationType, c.accountID, c.amount, c.categoryID, c.description, c.date, c.recurringPattern)
	} else {
		op, err = c.factory.NewOperation(c.operationType, c.accountID, c.amount, c.categoryID, c.description, c.date)
	}
	if err != nil {
		return err
	}
	if err := c.operations.ProcessOperation(ctx, op); err != nil {
		return err
	}

	c.recorded = &op
	c.previousBalance = previousBalance
	c.executed = true
	return nil
}

func (c *AddOperationCommand) Undo(ctx context.Context) error {
	if err := c.beginUndo(c.CanUndo()); err != nil {
		return err
	}
	if err := c.operations.RemoveOperation(ctx, c.recorded.ID()); err != nil {
		return err
	}
	account, err := c.accounts.FindByID(ctx, c.accountID)
	if err != nil {
		return err
	}
	if err := account.RecalculateBalance(c.previousBalance); err != nil {
		return err
	}
	if err := c.accounts.Update(ctx, *account); err != nil {
		return err
	}

	c.recorded = nil
	c.executed = false
	return nil
}
