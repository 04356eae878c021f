package dto

import (
	"time"

	"github.com/fintrackhq/fintrack_app/internal/core/domain"
)

// AddOperationRequest defines the data needed to post an operation.
type AddOperationRequest struct {
	Type        domain.OperationType `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	AccountID   string               `json:"accountID" binding:"required"`
	Amount      MoneyDTO             `json:"amount" binding:"required"`
	CategoryID  string               `json:"categoryID" binding:"required"`
	Description string               `json:"description" binding:"omitempty,max=500"`
	Date        time.Time            `json:"date"` // Optional, defaults to now

	IsRecurring      bool   `json:"isRecurring"`
	RecurringPattern string `json:"recurringPattern" binding:"required_if=IsRecurring true,omitempty,oneof=DAILY WEEKLY MONTHLY YEARLY"`
}

// OperationResponse defines the data returned for an operation.
type OperationResponse struct {
	ID               string               `json:"id"`
	Type             domain.OperationType `json:"type"`
	AccountID        string               `json:"accountID"`
	Amount           MoneyDTO             `json:"amount"`
	Date             time.Time            `json:"date"`
	CategoryID       string               `json:"categoryID"`
	Description      string               `json:"description"`
	IsRecurring      bool                 `json:"isRecurring"`
	RecurringPattern string               `json:"recurringPattern,omitempty"`
	CreatedAt        time.Time            `json:"createdAt"`
}

// ToOperationResponse converts a domain.Operation to its wire form.
func ToOperationResponse(op *domain.Operation) OperationResponse {
	return OperationResponse{
		ID:               op.ID(),
		Type:             op.Type(),
		AccountID:        op.AccountID(),
		Amount:           ToMoneyDTO(op.Amount()),
		Date:             op.Date(),
		CategoryID:       op.CategoryID(),
		Description:      op.Description(),
		IsRecurring:      op.IsRecurring(),
		RecurringPattern: op.RecurringPattern(),
		CreatedAt:        op.CreatedAt(),
	}
}

// ToListOperationResponse converts a slice of operations.
func ToListOperationResponse(operations []domain.Operation) []OperationResponse {
	res := make([]OperationResponse, len(operations))
	for i := range operations {
		res[i] = ToOperationResponse(&operations[i])
	}
	return res
}

// ListOperationsResponse wraps the list of operations.
type ListOperationsResponse struct {
	Operations []OperationResponse `json:"operations"`
}

// ListOperationsParams defines query parameters for listing operations.
type ListOperationsParams struct {
	AccountID string `form:"accountID"`
	From      string `form:"from"` // RFC 3339 date, optional
	To        string `form:"to"`   // RFC 3339 date, optional
}
