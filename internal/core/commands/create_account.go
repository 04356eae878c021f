package commands

import (
	"context"

	"github.com/fintrackhq/fintrack_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_app/internal/core/ports/repositories"
)

// CreateAccountCommand validates, constructs and saves a new account.
// Undo removes the created account.
type CreateAccountCommand struct {
	base
	factory        *domain.Factory
	accounts       portsrepo.AccountRepository
	accountName    string
	initialBalance domain.Money
	accountNumber  string
	created        *domain.Account
}

var _ Command = (*CreateAccountCommand)(nil)

// NewCreateAccountCommand prepares an account creation. A zero-value
// initialBalance means a zero balance in the factory's default currency.
func NewCreateAccountCommand(factory *domain.Factory, accounts portsrepo.AccountRepository, accountName string, initialBalance domain.Money, accountNumber string) *CreateAccountCommand {
	return &CreateAccountCommand{
		base:           base{name: "create account"},
		factory:        factory,
		accounts:       accounts,
		accountName:    accountName,
		initialBalance: initialBalance,
		accountNumber:  accountNumber,
	}
}

func (c *CreateAccountCommand) CanUndo() bool { return true }

// CreatedAccount returns the account created by Execute, nil before
// execution or after undo.
func (c *CreateAccountCommand) CreatedAccount() *domain.Account { return c.created }

func (c *CreateAccountCommand) Execute(ctx context.Context) error {
	if err := c.beginExecute(); err != nil {
		return err
	}
	account, err := c.factory.NewAccount(c.accountName, c.initialBalance, c.accountNumber)
	if err != nil {
		return err
	}
	if err := c.accounts.Save(ctx, account); err != nil {
		return err
	}
	c.created = &account
	c.executed = true
	return nil
}

func (c *CreateAccountCommand) Undo(ctx context.Context) error {
	if err := c.beginUndo(c.CanUndo()); err != nil {
		return err
	}
	if err := c.accounts.Remove(ctx, c.created.ID()); err != nil {
		return err
	}
	c.created = nil
	c.executed = false
	return nil
}
