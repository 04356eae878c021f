package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrackhq/fintrack_app/internal/apperrors"
	"github.com/fintrackhq/fintrack_app/internal/core/domain"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func TestFactory_NewAccount(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	factory := domain.NewFactory(fixedClock{now: now}, "RUB")

	account, err := factory.NewAccount("Main", domain.Money{}, "")
	require.NoError(t, err)
	assert.NotEmpty(t, account.ID())
	assert.Equal(t, "RUB", account.Currency())
	assert.True(t, account.Balance().IsZero())
	assert.Equal(t, now, account.CreatedAt())

	_, err = factory.NewAccount("Main", mustMoney(t, -100, "RUB"), "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestFactory_DefaultCurrencyFallback(t *testing.T) {
	factory := domain.NewFactory(fixedClock{now: time.Now()}, "")
	assert.Equal(t, domain.DefaultCurrency, factory.DefaultCurrency())
}

func TestFactory_GeneratedIDsAreUnique(t *testing.T) {
	factory := domain.NewFactory(fixedClock{now: time.Now()}, "RUB")

	a, err := factory.NewAccount("One", domain.Money{}, "")
	require.NoError(t, err)
	b, err := factory.NewAccount("Two", domain.Money{}, "")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestFactory_NewOperationDefaultsDate(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	factory := domain.NewFactory(fixedClock{now: now}, "RUB")

	op, err := factory.NewOperation(domain.OperationExpense, "acc-1", mustMoney(t, 100, "RUB"), "cat-1", "lunch", time.Time{})
	require.NoError(t, err)
	assert.Equal(t, now, op.Date())

	explicit := now.AddDate(0, 0, -3)
	op, err = factory.NewOperation(domain.OperationExpense, "acc-1", mustMoney(t, 100, "RUB"), "cat-1", "lunch", explicit)
	require.NoError(t, err)
	assert.Equal(t, explicit, op.Date())
}

func TestFactory_CloneForDate(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	factory := domain.NewFactory(fixedClock{now: now}, "RUB")

	original, err := factory.NewRecurringOperation(domain.OperationExpense, "acc-1", mustMoney(t, 500, "RUB"), "cat-1", "Rent", now, "monthly")
	require.NoError(t, err)
	assert.True(t, original.IsRecurring())

	cloneDate := now.AddDate(0, 1, 0)
	clone, err := factory.CloneForDate(original, cloneDate)
	require.NoError(t, err)
	assert.NotEqual(t, original.ID(), clone.ID())
	assert.Equal(t, cloneDate, clone.Date())
	assert.Equal(t, "Rent (Recurring)", clone.Description())
	assert.False(t, clone.IsRecurring())
	assert.True(t, clone.Amount().Equal(original.Amount()))
}
