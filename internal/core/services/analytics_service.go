package services

import (
	"context"
	"errors"
	"sort"

	"github.com/fintrackhq/fintrack_app/internal/apperrors"
	"github.com/fintrackhq/fintrack_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_app/internal/core/ports/repositories"
)

// AnalyticsService aggregates operations per period and category. All
// operations within a period are expected to share one currency; a mixed
// period surfaces as a validation error rather than a converted total.
type AnalyticsService struct {
	BaseService
	operations portsrepo.OperationRepository
	categories portsrepo.CategoryRepository
}

// NewAnalyticsService creates the analytics service.
func NewAnalyticsService(operations portsrepo.OperationRepository, categories portsrepo.CategoryRepository) *AnalyticsService {
	return &AnalyticsService{
		operations: operations,
		categories: categories,
	}
}

// CalculatePeriodAnalytics sums income and expense over the period, grouped
// by category with percentage shares of the respective total. Category lists
// are sorted by amount, largest first. The currency seeds the zero totals
// for an empty period.
func (s *AnalyticsService) CalculatePeriodAnalytics(ctx context.Context, period domain.DateRange, currency string) (domain.PeriodAnalytics, error) {
	operations, err := s.operations.FindByDateRange(ctx, period.Start(), period.End())
	if err != nil {
		return domain.PeriodAnalytics{}, err
	}

	result := domain.PeriodAnalytics{
		Period:       period,
		TotalIncome:  domain.Zero(currency),
		TotalExpense: domain.Zero(currency),
	}
	incomeByCategory := make(map[string]*domain.CategoryAnalytics)
	expenseByCategory := make(map[string]*domain.CategoryAnalytics)

	for _, op := range operations {
		target := expenseByCategory
		if op.IsIncome() {
			target = incomeByCategory
		}

		analytics, ok := target[op.CategoryID()]
		if !ok {
			analytics = &domain.CategoryAnalytics{
				CategoryID:   op.CategoryID(),
				CategoryName: s.categoryName(ctx, op.CategoryID()),
				TotalAmount:  domain.Zero(op.Amount().Currency()),
			}
			target[op.CategoryID()] = analytics
		}

		analytics.TotalAmount, err = analytics.TotalAmount.Add(op.Amount())
		if err != nil {
			return domain.PeriodAnalytics{}, err
		}
		analytics.OperationCount++

		if op.IsIncome() {
			result.TotalIncome, err = result.TotalIncome.Add(op.Amount())
		} else {
			result.TotalExpense, err = result.TotalExpense.Add(op.Amount())
		}
		if err != nil {
			return domain.PeriodAnalytics{}, err
		}
	}

	result.IncomeByCategory = collectAnalytics(incomeByCategory, result.TotalIncome)
	result.ExpenseByCategory = collectAnalytics(expenseByCategory, result.TotalExpense)

	result.NetIncome, err = result.TotalIncome.Subtract(result.TotalExpense)
	if err != nil {
		return domain.PeriodAnalytics{}, err
	}
	return result, nil
}

// TopCategories returns the limit largest categories of the given operation
// type within the period.
func (s *AnalyticsService) TopCategories(ctx context.Context, period domain.DateRange, operationType domain.OperationType, limit int, currency string) ([]domain.CategoryAnalytics, error) {
	analytics, err := s.CalculatePeriodAnalytics(ctx, period, currency)
	if err != nil {
		return nil, err
	}

	categories := analytics.ExpenseByCategory
	if operationType == domain.OperationIncome {
		categories = analytics.IncomeByCategory
	}
	if limit > 0 && len(categories) > limit {
		categories = categories[:limit]
	}
	return categories, nil
}

func (s *AnalyticsService) categoryName(ctx context.Context, categoryID string) string {
	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to resolve category name")
		}
		return "Unknown"
	}
	return category.Name()
}

func collectAnalytics(byCategory map[string]*domain.CategoryAnalytics, total domain.Money) []domain.CategoryAnalytics {
	result := make([]domain.CategoryAnalytics, 0, len(byCategory))
	for _, analytics := range byCategory {
		if !total.IsZero() {
			analytics.Percentage = analytics.TotalAmount.Amount().InexactFloat64() / total.Amount().InexactFloat64() * 100
		}
		result = append(result, *analytics)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].TotalAmount.Amount().GreaterThan(result[j].TotalAmount.Amount())
	})
	return result
}
