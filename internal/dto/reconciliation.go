package dto

import (
	"github.com/fintrackhq/fintrack_app/internal/core/domain"
)

// AccountBalanceCheckResponse reports a stored balance against the balance
// recomputed from the account's operations.
type AccountBalanceCheckResponse struct {
	AccountID         string   `json:"accountID"`
	AccountName       string   `json:"accountName"`
	Balance           MoneyDTO `json:"balance"`
	CalculatedBalance MoneyDTO `json:"calculatedBalance"`
	HasDiscrepancy    bool     `json:"hasDiscrepancy"`
}

// ToAccountBalanceCheckResponse converts a reconciliation record to its
// wire form.
func ToAccountBalanceCheckResponse(ab domain.AccountBalance) AccountBalanceCheckResponse {
	return AccountBalanceCheckResponse{
		AccountID:         ab.AccountID,
		AccountName:       ab.AccountName,
		Balance:           ToMoneyDTO(ab.Balance),
		CalculatedBalance: ToMoneyDTO(ab.CalculatedBalance),
		HasDiscrepancy:    ab.HasDiscrepancy,
	}
}

// ReconciliationResponse wraps the balance check across all accounts.
type ReconciliationResponse struct {
	Accounts         []AccountBalanceCheckResponse `json:"accounts"`
	DiscrepancyCount int                           `json:"discrepancyCount"`
}

// ToReconciliationResponse converts a slice of reconciliation records,
// counting the discrepancies found.
func ToReconciliationResponse(balances []domain.AccountBalance) ReconciliationResponse {
	res := ReconciliationResponse{
		Accounts: make([]AccountBalanceCheckResponse, len(balances)),
	}
	for i, ab := range balances {
		res.Accounts[i] = ToAccountBalanceCheckResponse(ab)
		if ab.HasDiscrepancy {
			res.DiscrepancyCount++
		}
	}
	return res
}
