package domain

import (
	"fmt"
	"time"

	"github.com/fintrackhq/fintrack_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// OperationType carries the direction of an operation. The stored amount is
// always positive; the sign is derived from the type.
type OperationType string

const (
	OperationIncome  OperationType = "INCOME"
	OperationExpense OperationType = "EXPENSE"
)

const maxOperationDescriptionLength = 500

var minusOne = decimal.NewFromInt(-1)

// Operation is a single income or expense posted against an account.
type Operation struct {
	id               string
	operationType    OperationType
	accountID        string
	amount           Money
	date             time.Time
	description      string
	categoryID       string
	createdAt        time.Time
	updatedAt        time.Time
	isRecurring      bool
	recurringPattern string
}

// NewOperation validates and builds an operation.
func NewOperation(id string, operationType OperationType, accountID string, amount Money, date time.Time, categoryID, description string, isRecurring bool, recurringPattern string, now time.Time) (Operation, error) {
	op := Operation{
		id:               id,
		operationType:    operationType,
		accountID:        accountID,
		amount:           amount,
		date:             date,
		description:      description,
		categoryID:       categoryID,
		createdAt:        now,
		updatedAt:        now,
		isRecurring:      isRecurring,
		recurringPattern: recurringPattern,
	}
	if err := op.validateFields(); err != nil {
		return Operation{}, err
	}
	return op, nil
}

func (o Operation) validateFields() error {
	if err := validateID(o.id); err != nil {
		return err
	}
	if o.operationType != OperationIncome && o.operationType != OperationExpense {
		return fmt.Errorf("operation type must be %s or %s: %w", OperationIncome, OperationExpense, apperrors.ErrValidation)
	}
	if err := validateID(o.accountID); err != nil {
		return err
	}
	if err := validateID(o.categoryID); err != nil {
		return err
	}
	if !o.amount.IsPositive() {
		return fmt.Errorf("operation amount must be positive: %w", apperrors.ErrValidation)
	}
	return validateMaxLength(o.description, maxOperationDescriptionLength, "operation description")
}

func (o Operation) ID() string { return o.id }

func (o Operation) Type() OperationType { return o.operationType }

func (o Operation) AccountID() string { return o.accountID }

func (o Operation) Amount() Money { return o.amount }

func (o Operation) Date() time.Time { return o.date }

func (o Operation) Description() string { return o.description }

func (o Operation) CategoryID() string { return o.categoryID }

func (o Operation) CreatedAt() time.Time { return o.createdAt }

func (o Operation) UpdatedAt() time.Time { return o.updatedAt }

func (o Operation) IsRecurring() bool { return o.isRecurring }

func (o Operation) RecurringPattern() string { return o.recurringPattern }

func (o Operation) IsIncome() bool { return o.operationType == OperationIncome }

func (o Operation) IsExpense() bool { return o.operationType == OperationExpense }

// SignedAmount returns the amount negated for expenses, unchanged for income.
func (o Operation) SignedAmount() Money {
	if o.IsExpense() {
		return o.amount.Multiply(minusOne)
	}
	return o.amount
}

// InDateRange reports whether the operation date falls within r, inclusive.
func (o Operation) InDateRange(r DateRange) bool {
	return r.Contains(o.date)
}

// SetAmount replaces the amount; it must stay strictly positive.
func (o *Operation) SetAmount(amount Money) error {
	if !amount.IsPositive() {
		return fmt.Errorf("operation amount must be positive: %w", apperrors.ErrValidation)
	}
	o.amount = amount
	o.touch()
	return nil
}

func (o *Operation) SetDate(date time.Time) {
	o.date = date
	o.touch()
}

// SetDescription replaces the description.
func (o *Operation) SetDescription(description string) error {
	if err := validateMaxLength(description, maxOperationDescriptionLength, "operation description"); err != nil {
		return err
	}
	o.description = description
	o.touch()
	return nil
}

// SetCategoryID reassigns the operation to another category.
func (o *Operation) SetCategoryID(categoryID string) error {
	if err := validateID(categoryID); err != nil {
		return err
	}
	o.categoryID = categoryID
	o.touch()
	return nil
}

// SetRecurring toggles recurrence; pattern is e.g. "MONTHLY" or "WEEKLY".
func (o *Operation) SetRecurring(isRecurring bool, pattern string) {
	o.isRecurring = isRecurring
	o.recurringPattern = pattern
	o.touch()
}

func (o *Operation) touch() {
	o.updatedAt = time.Now()
}
