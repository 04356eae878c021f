package domain

import (
	"fmt"
	"time"

	"github.com/fintrackhq/fintrack_app/internal/apperrors"
	"github.com/google/uuid"
)

// Clock supplies the current time for entity timestamps and default
// operation dates. It exists so tests can pin time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// NewSystemClock returns a Clock backed by time.Now.
func NewSystemClock() Clock { return systemClock{} }

// Factory builds validated entities with generated ids. It is the only
// producer of entity ids in the system.
type Factory struct {
	clock           Clock
	defaultCurrency string
}

// NewFactory creates an entity factory. An empty defaultCurrency falls back
// to DefaultCurrency.
func NewFactory(clock Clock, defaultCurrency string) *Factory {
	if defaultCurrency == "" {
		defaultCurrency = DefaultCurrency
	}
	return &Factory{clock: clock, defaultCurrency: defaultCurrency}
}

// DefaultCurrency is the currency used for zero-value balances.
func (f *Factory) DefaultCurrency() string { return f.defaultCurrency }

// Clock exposes the factory clock for callers that need "now" (default
// operation dates, period helpers).
func (f *Factory) Clock() Clock { return f.clock }

// NewAccount builds an account. A Money zero value (no currency) is treated
// as a zero balance in the default currency; a negative initial balance is
// rejected before anything is constructed.
func (f *Factory) NewAccount(name string, initialBalance Money, accountNumber string) (Account, error) {
	if initialBalance.Currency() == "" {
		initialBalance = Zero(f.defaultCurrency)
	}
	if initialBalance.IsNegative() {
		return Account{}, fmt.Errorf("initial balance cannot be negative: %w", apperrors.ErrValidation)
	}
	return NewAccount(uuid.NewString(), name, initialBalance, accountNumber, f.clock.Now())
}

// NewCategory builds a category with the default color and icon.
func (f *Factory) NewCategory(categoryType CategoryType, name, description string) (Category, error) {
	return NewCategory(uuid.NewString(), categoryType, name, description, "#000000", "default")
}

// NewOperation builds an operation. A zero date defaults to the current
// clock time.
func (f *Factory) NewOperation(operationType OperationType, accountID string, amount Money, categoryID, description string, date time.Time) (Operation, error) {
	if date.IsZero() {
		date = f.clock.Now()
	}
	return NewOperation(uuid.NewString(), operationType, accountID, amount, date, categoryID, description, false, "", f.clock.Now())
}

// NewRecurringOperation builds an operation flagged for recurrence.
func (f *Factory) NewRecurringOperation(operationType OperationType, accountID string, amount Money, categoryID, description string, date time.Time, pattern string) (Operation, error) {
	if date.IsZero() {
		date = f.clock.Now()
	}
	return NewOperation(uuid.NewString(), operationType, accountID, amount, date, categoryID, description, true, pattern, f.clock.Now())
}

// CloneForDate copies a recurring operation onto a new date with a fresh id.
// The clone is a plain one-shot operation.
func (f *Factory) CloneForDate(op Operation, date time.Time) (Operation, error) {
	return NewOperation(uuid.NewString(), op.Type(), op.AccountID(), op.Amount(), date, op.CategoryID(), op.Description()+" (Recurring)", false, "", f.clock.Now())
}
