package dto

import (
	"time"

	"github.com/fintrackhq/fintrack_app/internal/core/domain"
)

// AnalyticsParams defines query parameters for the analytics endpoints.
// Period picks a preset range; From/To override it with an explicit range.
type AnalyticsParams struct {
	Period string `form:"period,default=month" binding:"omitempty,oneof=today month year custom"`
	From   string `form:"from"` // RFC 3339 date, required when period=custom
	To     string `form:"to"`   // RFC 3339 date, required when period=custom
	Limit  int    `form:"limit,default=5"`
	Type   string `form:"type,default=EXPENSE" binding:"omitempty,oneof=INCOME EXPENSE"`
}

// CategoryAnalyticsResponse defines the aggregate returned per category.
type CategoryAnalyticsResponse struct {
	CategoryID     string   `json:"categoryID"`
	CategoryName   string   `json:"categoryName"`
	TotalAmount    MoneyDTO `json:"totalAmount"`
	OperationCount int      `json:"operationCount"`
	Percentage     float64  `json:"percentage"`
}

// PeriodAnalyticsResponse defines the full period summary.
type PeriodAnalyticsResponse struct {
	PeriodStart       time.Time                   `json:"periodStart"`
	PeriodEnd         time.Time                   `json:"periodEnd"`
	TotalIncome       MoneyDTO                    `json:"totalIncome"`
	TotalExpense      MoneyDTO                    `json:"totalExpense"`
	NetIncome         MoneyDTO                    `json:"netIncome"`
	IncomeByCategory  []CategoryAnalyticsResponse `json:"incomeByCategory"`
	ExpenseByCategory []CategoryAnalyticsResponse `json:"expenseByCategory"`
}

// ToCategoryAnalyticsResponse converts one category aggregate.
func ToCategoryAnalyticsResponse(ca domain.CategoryAnalytics) CategoryAnalyticsResponse {
	return CategoryAnalyticsResponse{
		CategoryID:     ca.CategoryID,
		CategoryName:   ca.CategoryName,
		TotalAmount:    ToMoneyDTO(ca.TotalAmount),
		OperationCount: ca.OperationCount,
		Percentage:     ca.Percentage,
	}
}

// ToListCategoryAnalyticsResponse converts a slice of category aggregates.
func ToListCategoryAnalyticsResponse(items []domain.CategoryAnalytics) []CategoryAnalyticsResponse {
	res := make([]CategoryAnalyticsResponse, len(items))
	for i, ca := range items {
		res[i] = ToCategoryAnalyticsResponse(ca)
	}
	return res
}

// ToPeriodAnalyticsResponse converts a period summary to its wire form.
func ToPeriodAnalyticsResponse(pa domain.PeriodAnalytics) PeriodAnalyticsResponse {
	return PeriodAnalyticsResponse{
		PeriodStart:       pa.Period.Start(),
		PeriodEnd:         pa.Period.End(),
		TotalIncome:       ToMoneyDTO(pa.TotalIncome),
		TotalExpense:      ToMoneyDTO(pa.TotalExpense),
		NetIncome:         ToMoneyDTO(pa.NetIncome),
		IncomeByCategory:  ToListCategoryAnalyticsResponse(pa.IncomeByCategory),
		ExpenseByCategory: ToListCategoryAnalyticsResponse(pa.ExpenseByCategory),
	}
}
