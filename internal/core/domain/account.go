package domain

import (
	"fmt"
	"time"

	"github.com/fintrackhq/fintrack_app/internal/apperrors"
)

const (
	maxAccountNameLength   = 100
	maxAccountNumberLength = 20
)

// Account is a financial account with a currency-locked balance. The balance
// currency always matches the account currency, and a withdrawal never drives
// the balance negative. State changes go through the mutator methods; a
// changed copy only becomes visible to other callers once it is written back
// through the owning repository.
type Account struct {
	id             string
	name           string
	balance        Money
	initialBalance Money
	accountNumber  string
	isActive       bool
	createdAt      time.Time
	updatedAt      time.Time
	currency       string
}

// NewAccount validates and builds an account. The account currency is taken
// from the initial balance.
func NewAccount(id, name string, initialBalance Money, accountNumber string, now time.Time) (Account, error) {
	a := Account{
		id:             id,
		name:           name,
		balance:        initialBalance,
		initialBalance: initialBalance,
		accountNumber:  accountNumber,
		isActive:       true,
		createdAt:      now,
		updatedAt:      now,
		currency:       initialBalance.Currency(),
	}
	if err := a.validateFields(); err != nil {
		return Account{}, err
	}
	return a, nil
}

func (a Account) validateFields() error {
	if err := validateID(a.id); err != nil {
		return err
	}
	if err := validateNotEmpty(a.name, "account name"); err != nil {
		return err
	}
	if err := validateMaxLength(a.name, maxAccountNameLength, "account name"); err != nil {
		return err
	}
	return validateMaxLength(a.accountNumber, maxAccountNumberLength, "account number")
}

func (a Account) ID() string { return a.id }

func (a Account) Name() string { return a.name }

func (a Account) Balance() Money { return a.balance }

// InitialBalance is the opening balance the account was created with. It is
// the base reconciliation folds operations onto.
func (a Account) InitialBalance() Money { return a.initialBalance }

func (a Account) AccountNumber() string { return a.accountNumber }

func (a Account) IsActive() bool { return a.isActive }

func (a Account) CreatedAt() time.Time { return a.createdAt }

func (a Account) UpdatedAt() time.Time { return a.updatedAt }

func (a Account) Currency() string { return a.currency }

// Rename changes the account name.
func (a *Account) Rename(name string) error {
	if err := validateNotEmpty(name, "account name"); err != nil {
		return err
	}
	if err := validateMaxLength(name, maxAccountNameLength, "account name"); err != nil {
		return err
	}
	a.name = name
	a.touch()
	return nil
}

// SetAccountNumber changes the external account number.
func (a *Account) SetAccountNumber(accountNumber string) error {
	if err := validateMaxLength(accountNumber, maxAccountNumberLength, "account number"); err != nil {
		return err
	}
	a.accountNumber = accountNumber
	a.touch()
	return nil
}

func (a *Account) Activate() {
	a.isActive = true
	a.touch()
}

func (a *Account) Deactivate() {
	a.isActive = false
	a.touch()
}

// Deposit credits a positive same-currency amount to an active account.
func (a *Account) Deposit(amount Money) error {
	if !a.isActive {
		return fmt.Errorf("cannot deposit to inactive account %s: %w", a.id, apperrors.ErrDomainRule)
	}
	if amount.Currency() != a.currency {
		return fmt.Errorf("deposit currency %s does not match account currency %s: %w", amount.Currency(), a.currency, apperrors.ErrValidation)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("deposit amount must be positive: %w", apperrors.ErrValidation)
	}
	balance, err := a.balance.Add(amount)
	if err != nil {
		return err
	}
	a.balance = balance
	a.touch()
	return nil
}

// Withdraw debits a positive same-currency amount from an active account.
// The balance is left untouched when the funds are insufficient.
func (a *Account) Withdraw(amount Money) error {
	if !a.isActive {
		return fmt.Errorf("cannot withdraw from inactive account %s: %w", a.id, apperrors.ErrDomainRule)
	}
	if amount.Currency() != a.currency {
		return fmt.Errorf("withdrawal currency %s does not match account currency %s: %w", amount.Currency(), a.currency, apperrors.ErrValidation)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("withdrawal amount must be positive: %w", apperrors.ErrValidation)
	}
	insufficient, err := a.balance.LessThan(amount)
	if err != nil {
		return err
	}
	if insufficient {
		return fmt.Errorf("requested %s but only %s available: %w", amount, a.balance, apperrors.ErrInsufficientFunds)
	}
	balance, err := a.balance.Subtract(amount)
	if err != nil {
		return err
	}
	a.balance = balance
	a.touch()
	return nil
}

// CanWithdraw reports whether Withdraw would succeed for the given amount.
func (a Account) CanWithdraw(amount Money) bool {
	if !a.isActive || amount.Currency() != a.currency {
		return false
	}
	insufficient, err := a.balance.LessThan(amount)
	return err == nil && !insufficient
}

// TransferTo moves amount from a to target. The withdrawal is compensated by
// crediting the amount back when the target deposit fails; this is
// best-effort, not an atomic commit.
func (a *Account) TransferTo(target *Account, amount Money) error {
	if !a.isActive || !target.isActive {
		return fmt.Errorf("both accounts must be active for transfer: %w", apperrors.ErrDomainRule)
	}
	if a.id == target.id {
		return fmt.Errorf("cannot transfer to the same account: %w", apperrors.ErrDomainRule)
	}
	if err := a.Withdraw(amount); err != nil {
		return err
	}
	if err := target.Deposit(amount); err != nil {
		if compErr := a.Deposit(amount); compErr != nil {
			return fmt.Errorf("deposit failed (%v) and compensation failed: %w", err, compErr)
		}
		return err
	}
	return nil
}

// RecalculateBalance overwrites the stored balance. This is the repair path
// used by reconciliation and by command undo; it deliberately skips the funds
// checks of Deposit/Withdraw.
func (a *Account) RecalculateBalance(newBalance Money) error {
	if newBalance.Currency() != a.currency {
		return fmt.Errorf("recalculated balance currency %s does not match account currency %s: %w", newBalance.Currency(), a.currency, apperrors.ErrValidation)
	}
	a.balance = newBalance
	a.touch()
	return nil
}

func (a *Account) touch() {
	a.updatedAt = time.Now()
}
