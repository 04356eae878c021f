package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrackhq/fintrack_app/internal/apperrors"
	"github.com/fintrackhq/fintrack_app/internal/core/domain"
)

func newTestAccount(t *testing.T, id string, balance float64) domain.Account {
	t.Helper()
	account, err := domain.NewAccount(id, "Test Account", mustMoney(t, balance, "RUB"), "", time.Now())
	require.NoError(t, err)
	return account
}

func TestNewAccount_Validation(t *testing.T) {
	now := time.Now()
	balance := mustMoney(t, 100, "RUB")

	tests := []struct {
		name        string
		id          string
		accountName string
		number      string
		wantErr     bool
	}{
		{name: "valid", id: "acc-1", accountName: "Main", number: "40817810000000000001", wantErr: false},
		{name: "empty id", id: "", accountName: "Main", wantErr: true},
		{name: "id with invalid characters", id: "acc_1!", accountName: "Main", wantErr: true},
		{name: "empty name", id: "acc-1", accountName: "", wantErr: true},
		{name: "name too long", id: "acc-1", accountName: strings.Repeat("a", 101), wantErr: true},
		{name: "account number too long", id: "acc-1", accountName: "Main", number: strings.Repeat("1", 21), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account, err := domain.NewAccount(tt.id, tt.accountName, balance, tt.number, now)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, account.ID())
			assert.Equal(t, "RUB", account.Currency())
			assert.True(t, account.IsActive())
		})
	}
}

func TestAccount_DepositWithdraw(t *testing.T) {
	account := newTestAccount(t, "acc-1", 1000)

	require.NoError(t, account.Deposit(mustMoney(t, 500, "RUB")))
	assert.True(t, account.Balance().Equal(mustMoney(t, 1500, "RUB")))

	require.NoError(t, account.Withdraw(mustMoney(t, 300, "RUB")))
	assert.True(t, account.Balance().Equal(mustMoney(t, 1200, "RUB")))
}

func TestAccount_WithdrawInsufficientFundsLeavesBalance(t *testing.T) {
	account := newTestAccount(t, "acc-1", 100)

	err := account.Withdraw(mustMoney(t, 150, "RUB"))
	assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)
	assert.True(t, account.Balance().Equal(mustMoney(t, 100, "RUB")))
}

func TestAccount_DepositValidation(t *testing.T) {
	account := newTestAccount(t, "acc-1", 100)

	assert.ErrorIs(t, account.Deposit(mustMoney(t, 10, "USD")), apperrors.ErrValidation)
	assert.ErrorIs(t, account.Deposit(mustMoney(t, -10, "RUB")), apperrors.ErrValidation)
	assert.ErrorIs(t, account.Deposit(domain.Zero("RUB")), apperrors.ErrValidation)
}

func TestAccount_InactiveRejectsMovements(t *testing.T) {
	account := newTestAccount(t, "acc-1", 100)
	account.Deactivate()

	assert.ErrorIs(t, account.Deposit(mustMoney(t, 10, "RUB")), apperrors.ErrDomainRule)
	assert.ErrorIs(t, account.Withdraw(mustMoney(t, 10, "RUB")), apperrors.ErrDomainRule)
	assert.False(t, account.CanWithdraw(mustMoney(t, 10, "RUB")))

	account.Activate()
	assert.NoError(t, account.Deposit(mustMoney(t, 10, "RUB")))
}

func TestAccount_TransferTo(t *testing.T) {
	from := newTestAccount(t, "acc-1", 1000)
	to := newTestAccount(t, "acc-2", 200)

	require.NoError(t, from.TransferTo(&to, mustMoney(t, 300, "RUB")))
	assert.True(t, from.Balance().Equal(mustMoney(t, 700, "RUB")))
	assert.True(t, to.Balance().Equal(mustMoney(t, 500, "RUB")))
}

func TestAccount_TransferToSameAccount(t *testing.T) {
	from := newTestAccount(t, "acc-1", 1000)
	other := newTestAccount(t, "acc-1", 1000)

	err := from.TransferTo(&other, mustMoney(t, 100, "RUB"))
	assert.ErrorIs(t, err, apperrors.ErrDomainRule)
}

func TestAccount_TransferToInactiveTarget(t *testing.T) {
	from := newTestAccount(t, "acc-1", 1000)
	to := newTestAccount(t, "acc-2", 200)
	to.Deactivate()

	err := from.TransferTo(&to, mustMoney(t, 300, "RUB"))
	assert.ErrorIs(t, err, apperrors.ErrDomainRule)
	assert.True(t, from.Balance().Equal(mustMoney(t, 1000, "RUB")))
	assert.True(t, to.Balance().Equal(mustMoney(t, 200, "RUB")))
}

func TestAccount_TransferToFailedDepositCompensates(t *testing.T) {
	from := newTestAccount(t, "acc-1", 1000)
	to, err := domain.NewAccount("acc-2", "Dollar Account", mustMoney(t, 200, "USD"), "", time.Now())
	require.NoError(t, err)

	// Deposit into the USD account fails after the withdrawal succeeded,
	// so the withdrawn amount is credited back.
	err = from.TransferTo(&to, mustMoney(t, 300, "RUB"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.True(t, from.Balance().Equal(mustMoney(t, 1000, "RUB")))
	assert.True(t, to.Balance().Equal(mustMoney(t, 200, "USD")))
}

func TestAccount_RecalculateBalance(t *testing.T) {
	account := newTestAccount(t, "acc-1", 100)

	require.NoError(t, account.RecalculateBalance(mustMoney(t, -50, "RUB")))
	assert.True(t, account.Balance().Equal(mustMoney(t, -50, "RUB")))

	assert.ErrorIs(t, account.RecalculateBalance(mustMoney(t, 10, "USD")), apperrors.ErrValidation)
}

func TestAccount_Rename(t *testing.T) {
	account := newTestAccount(t, "acc-1", 100)

	require.NoError(t, account.Rename("Savings"))
	assert.Equal(t, "Savings", account.Name())

	assert.ErrorIs(t, account.Rename(""), apperrors.ErrValidation)
	assert.Equal(t, "Savings", account.Name())
}
