package dto

import (
	"time"

	"github.com/fintrackhq/fintrack_app/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name           string    `json:"name" binding:"required,max=100"`
	InitialBalance *MoneyDTO `json:"initialBalance"` // Optional, defaults to zero in the configured currency
	AccountNumber  string    `json:"accountNumber" binding:"omitempty,max=20"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Pointers distinguish fields not provided from zero-value updates.
type UpdateAccountRequest struct {
	Name     *string `json:"name"`
	IsActive *bool   `json:"isActive"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Balance       MoneyDTO  `json:"balance"`
	AccountNumber string    `json:"accountNumber"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ToAccountResponse converts a domain.Account to its wire form.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		ID:            acc.ID(),
		Name:          acc.Name(),
		Balance:       ToMoneyDTO(acc.Balance()),
		AccountNumber: acc.AccountNumber(),
		IsActive:      acc.IsActive(),
		CreatedAt:     acc.CreatedAt(),
		UpdatedAt:     acc.UpdatedAt(),
	}
}

// ToListAccountResponse converts a slice of accounts.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
