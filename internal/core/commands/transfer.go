package commands

import (
	"context"
	"fmt"

	"github.com/fintrackhq/fintrack_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_app/internal/core/ports/repositories"
	"github.com/fintrackhq/fintrack_app/internal/core/services"
)

const defaultTransferCategory = "Transfer"

// TransferCommand moves funds between two accounts and records the movement
// as a matched expense/income operation pair under the transfer category.
// Undo restores both balances to their pre-transfer values and removes both
// recorded operations.
type TransferCommand struct {
	base
	accounts      portsrepo.AccountRepository
	operations    *services.OperationService
	categories    *services.CategoryService
	factory       *domain.Factory
	fromAccountID string
	toAccountID   string
	amount        domain.Money
	categoryName  string

	fromBalance domain.Money
	toBalance   domain.Money
	withdrawal  *domain.Operation
	deposit     *domain.Operation
}

var _ Command = (*TransferCommand)(nil)

// TransferOption adjusts optional transfer behavior.
type TransferOption func(*TransferCommand)

// WithTransferCategoryName overrides the name of the category the transfer
// pair is recorded under.
func WithTransferCategoryName(name string) TransferOption {
	return func(c *TransferCommand) {
		if name != "" {
			c.categoryName = name
		}
	}
}

// NewTransferCommand prepares a funds transfer.
func NewTransferCommand(accounts portsrepo.AccountRepository, operations *services.OperationService, categories *services.CategoryService, factory *domain.Factory, fromAccountID, toAccountID string, amount domain.Money, opts ...TransferOption) *TransferCommand {
	c := &TransferCommand{
		base:          base{name: "transfer"},
		accounts:      accounts,
		operations:    operations,
		categories:    categories,
		factory:       factory,
		fromAccountID: fromAccountID,
		toAccountID:   toAccountID,
		amount:        amount,
		categoryName:  defaultTransferCategory,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *TransferCommand) CanUndo() bool { return true }

// Operations returns the recorded withdrawal and deposit operations, nil
// before execution or after undo.
func (c *TransferCommand) Operations() (withdrawal, deposit *domain.Operation) {
	return c.withdrawal, c.deposit
}

func (c *TransferCommand) Execute(ctx context.Context) error {
	if err := c.beginExecute(); err != nil {
		return err
	}
	from, err := c.accounts.FindByID(ctx, c.fromAccountID)
	if err != nil {
		return fmt.Errorf("source account: %w", err)
	}
	to, err := c.accounts.FindByID(ctx, c.toAccountID)
	if err != nil {
		return fmt.Errorf("target account: %w", err)
	}
	fromBalance := from.Balance()
	toBalance := to.Balance()

	if err := from.TransferTo(to, c.amount); err != nil {
		return err
	}
	if err := c.accounts.Update(ctx, *from); err != nil {
		return err
	}
	if err := c.accounts.Update(ctx, *to); err != nil {
		return err
	}

	category, err := c.categories.LookupOrCreate(ctx, domain.CategoryExpense, c.categoryName, "Transfers between accounts")
	if err != nil {
		return err
	}
	now := c.factory.Clock().Now()
	withdrawal, err := c.factory.NewOperation(domain.OperationExpense, c.fromAccountID, c.amount, category.ID(), fmt.Sprintf("Transfer to %s", to.Name()), now)
	if err != nil {
		return err
	}
	deposit, err := c.factory.NewOperation(domain.OperationIncome, c.toAccountID, c.amount, category.ID(), fmt.Sprintf("Transfer from %s", from.Name()), now)
	if err != nil {
		return err
	}
	if err := c.operations.RecordOperation(ctx, withdrawal); err != nil {
		return err
	}
	if err := c.operations.RecordOperation(ctx, deposit); err != nil {
		return err
	}

	c.fromBalance = fromBalance
	c.toBalance = toBalance
	c.withdrawal = &withdrawal
	c.deposit = &deposit
	c.executed = true
	return nil
}

func (c *TransferCommand) Undo(ctx context.Context) error {
	if err := c.beginUndo(c.CanUndo()); err != nil {
		return err
	}
	if err := c.operations.RemoveOperation(ctx, c.withdrawal.ID()); err != nil {
		return err
	}
	if err := c.operations.RemoveOperation(ctx, c.deposit.ID()); err != nil {
		return err
	}
	if err := c.restoreBalance(ctx, c.fromAccountID, c.fromBalance); err != nil {
		return err
	}
	if err := c.restoreBalance(ctx, c.toAccountID, c.toBalance); err != nil {
		return err
	}

	c.withdrawal = nil
	c.deposit = nil
	c.executed = false
	return nil
}

func (c *TransferCommand) restoreBalance(ctx context.Context, accountID string, balance domain.Money) error {
	account, err := c.accounts.FindByID(ctx, accountID)
	if err != nil {
		return err
	}
	if err := account.RecalculateBalance(balance); err != nil {
		return err
	}
	return c.accounts.Update(ctx, *account)
}
