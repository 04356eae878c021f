package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/fintrackhq/fintrack_app/internal/apperrors"
	"github.com/fintrackhq/fintrack_app/internal/core/domain"
	"github.com/fintrackhq/fintrack_app/internal/core/services"
	"github.com/fintrackhq/fintrack_app/internal/repositories/memory"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type ServicesTestSuite struct {
	suite.Suite
	ctx        context.Context
	now        time.Time
	accounts   *memory.AccountRepository
	categories *memory.CategoryRepository
	operations *memory.OperationRepository
	factory    *domain.Factory

	accountService        *services.AccountService
	categoryService       *services.CategoryService
	operationService      *services.OperationService
	reconciliationService *services.ReconciliationService
	analyticsService      *services.AnalyticsService
}

func TestServicesTestSuite(t *testing.T) {
	suite.Run(t, new(ServicesTestSuite))
}

func (s *ServicesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	s.accounts = memory.NewAccountRepository()
	s.categories = memory.NewCategoryRepository()
	s.operations = memory.NewOperationRepository()
	s.factory = domain.NewFactory(fixedClock{now: s.now}, "RUB")

	s.accountService = services.NewAccountService(s.accounts)
	s.categoryService = services.NewCategoryService(s.categories, s.operations, s.factory)
	s.operationService = services.NewOperationService(s.accounts, s.operations, s.factory)
	s.reconciliationService = services.NewReconciliationService(s.accounts, s.operations)
	s.analyticsService = services.NewAnalyticsService(s.operations, s.categories)
}

func (s *ServicesTestSuite) rub(amount float64) domain.Money {
	m, err := domain.NewMoney(decimal.NewFromFloat(amount), "RUB")
	s.Require().NoError(err)
	return m
}

func (s *ServicesTestSuite) createAccount(name string, balance float64) domain.Account {
	account, err := s.factory.NewAccount(name, s.rub(balance), "")
	s.Require().NoError(err)
	s.Require().NoError(s.accounts.Save(s.ctx, account))
	return account
}

func (s *ServicesTestSuite) createCategory(categoryType domain.CategoryType, name string) domain.Category {
	category, err := s.factory.NewCategory(categoryType, name, "")
	s.Require().NoError(err)
	s.Require().NoError(s.categories.Save(s.ctx, category))
	return category
}

func (s *ServicesTestSuite) postOperation(operationType domain.OperationType, accountID string, amount float64, categoryID string, date time.Time) domain.Operation {
	op, err := s.factory.NewOperation(operationType, accountID, s.rub(amount), categoryID, "", date)
	s.Require().NoError(err)
	s.Require().NoError(s.operationService.ProcessOperation(s.ctx, op))
	return op
}

func (s *ServicesTestSuite) balanceOf(accountID string) domain.Money {
	account, err := s.accounts.FindByID(s.ctx, accountID)
	s.Require().NoError(err)
	return account.Balance()
}

// The canonical flow: open an account, post a salary income and a food
// expense, and verify the balance and reconciliation at every step.
func (s *ServicesTestSuite) TestMonthlyBudgetFlow() {
	main := s.createAccount("Main", 100000)
	salary := s.createCategory(domain.CategoryIncome, "Salary")
	food := s.createCategory(domain.CategoryExpense, "Food")

	s.postOperation(domain.OperationIncome, main.ID(), 50000, salary.ID(), s.now)
	s.True(s.balanceOf(main.ID()).Equal(s.rub(150000)))

	s.postOperation(domain.OperationExpense, main.ID(), 5000, food.ID(), s.now)
	s.True(s.balanceOf(main.ID()).Equal(s.rub(145000)))

	// The fold starts from the opening balance, so the history fully
	// explains the stored balance.
	result, err := s.reconciliationService.CheckAccountBalance(s.ctx, main.ID())
	s.Require().NoError(err)
	s.True(result.CalculatedBalance.Equal(s.rub(145000)))
	s.False(result.HasDiscrepancy)
}

func (s *ServicesTestSuite) TestProcessOperation_UnknownAccount() {
	food := s.createCategory(domain.CategoryExpense, "Food")
	op, err := s.factory.NewOperation(domain.OperationExpense, "missing-id", s.rub(100), food.ID(), "", s.now)
	s.Require().NoError(err)

	err = s.operationService.ProcessOperation(s.ctx, op)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *ServicesTestSuite) TestProcessOperation_InsufficientFundsRecordsNothing() {
	main := s.createAccount("Main", 100)
	food := s.createCategory(domain.CategoryExpense, "Food")

	op, err := s.factory.NewOperation(domain.OperationExpense, main.ID(), s.rub(500), food.ID(), "", s.now)
	s.Require().NoError(err)
	s.ErrorIs(s.operationService.ProcessOperation(s.ctx, op), apperrors.ErrInsufficientFunds)

	s.True(s.balanceOf(main.ID()).Equal(s.rub(100)))
	count, err := s.operations.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, count)
}

func (s *ServicesTestSuite) TestReconciliation_DetectsAndRepairsDrift() {
	main := s.createAccount("Main", 0)
	salary := s.createCategory(domain.CategoryIncome, "Salary")
	s.postOperation(domain.OperationIncome, main.ID(), 1000, salary.ID(), s.now)

	// Simulate drift by overwriting the stored balance behind the
	// service's back.
	account, err := s.accounts.FindByID(s.ctx, main.ID())
	s.Require().NoError(err)
	s.Require().NoError(account.RecalculateBalance(s.rub(999)))
	s.Require().NoError(s.accounts.Update(s.ctx, *account))

	result, err := s.reconciliationService.CheckAccountBalance(s.ctx, main.ID())
	s.Require().NoError(err)
	s.True(result.HasDiscrepancy)
	s.True(result.CalculatedBalance.Equal(s.rub(1000)))

	// Dry run leaves the stored balance alone.
	result, err = s.reconciliationService.RecalculateBalance(s.ctx, main.ID(), false)
	s.Require().NoError(err)
	s.True(result.HasDiscrepancy)
	s.True(s.balanceOf(main.ID()).Equal(s.rub(999)))

	// Auto-fix overwrites it.
	result, err = s.reconciliationService.RecalculateBalance(s.ctx, main.ID(), true)
	s.Require().NoError(err)
	s.False(result.HasDiscrepancy)
	s.True(s.balanceOf(main.ID()).Equal(s.rub(1000)))
}

func (s *ServicesTestSuite) TestReconciliation_CheckAllBalances() {
	a := s.createAccount("A", 0)
	b := s.createAccount("B", 0)
	salary := s.createCategory(domain.CategoryIncome, "Salary")
	s.postOperation(domain.OperationIncome, a.ID(), 100, salary.ID(), s.now)
	s.postOperation(domain.OperationIncome, b.ID(), 200, salary.ID(), s.now)

	results, err := s.reconciliationService.CheckAllBalances(s.ctx)
	s.Require().NoError(err)
	s.Len(results, 2)
	for _, result := range results {
		s.False(result.HasDiscrepancy)
	}
}

func (s *ServicesTestSuite) TestAnalytics_PeriodSummary() {
	main := s.createAccount("Main", 100000)
	salary := s.createCategory(domain.CategoryIncome, "Salary")
	food := s.createCategory(domain.CategoryExpense, "Food")
	transport := s.createCategory(domain.CategoryExpense, "Transport")

	s.postOperation(domain.OperationIncome, main.ID(), 50000, salary.ID(), s.now)
	s.postOperation(domain.OperationExpense, main.ID(), 6000, food.ID(), s.now)
	s.postOperation(domain.OperationExpense, main.ID(), 4000, transport.ID(), s.now)

	summary, err := s.analyticsService.CalculatePeriodAnalytics(s.ctx, domain.ThisMonth(s.now), "RUB")
	s.Require().NoError(err)

	s.True(summary.TotalIncome.Equal(s.rub(50000)))
	s.True(summary.TotalExpense.Equal(s.rub(10000)))
	s.True(summary.NetIncome.Equal(s.rub(40000)))

	s.Require().Len(summary.ExpenseByCategory, 2)
	s.Equal("Food", summary.ExpenseByCategory[0].CategoryName, "largest expense first")
	s.InDelta(60.0, summary.ExpenseByCategory[0].Percentage, 0.01)
	s.InDelta(40.0, summary.ExpenseByCategory[1].Percentage, 0.01)

	s.Require().Len(summary.IncomeByCategory, 1)
	s.InDelta(100.0, summary.IncomeByCategory[0].Percentage, 0.01)
}

func (s *ServicesTestSuite) TestAnalytics_EmptyPeriod() {
	summary, err := s.analyticsService.CalculatePeriodAnalytics(s.ctx, domain.ThisMonth(s.now), "RUB")
	s.Require().NoError(err)
	s.True(summary.TotalIncome.IsZero())
	s.True(summary.TotalExpense.IsZero())
	s.Empty(summary.IncomeByCategory)
	s.Empty(summary.ExpenseByCategory)
}

func (s *ServicesTestSuite) TestAnalytics_TopCategories() {
	main := s.createAccount("Main", 100000)
	food := s.createCategory(domain.CategoryExpense, "Food")
	transport := s.createCategory(domain.CategoryExpense, "Transport")
	fun := s.createCategory(domain.CategoryExpense, "Entertainment")

	s.postOperation(domain.OperationExpense, main.ID(), 6000, food.ID(), s.now)
	s.postOperation(domain.OperationExpense, main.ID(), 4000, transport.ID(), s.now)
	s.postOperation(domain.OperationExpense, main.ID(), 2000, fun.ID(), s.now)

	top, err := s.analyticsService.TopCategories(s.ctx, domain.ThisMonth(s.now), domain.OperationExpense, 2, "RUB")
	s.Require().NoError(err)
	s.Require().Len(top, 2)
	s.Equal("Food", top[0].CategoryName)
	s.Equal("Transport", top[1].CategoryName)
}

func (s *ServicesTestSuite) TestRecurringOperations_ProcessedOnce() {
	main := s.createAccount("Main", 10000)
	rent := s.createCategory(domain.CategoryExpense, "Rent")

	recurring, err := s.factory.NewRecurringOperation(domain.OperationExpense, main.ID(), s.rub(500), rent.ID(), "Rent", s.now.AddDate(0, -1, 0), "monthly")
	s.Require().NoError(err)
	s.Require().NoError(s.operationService.ProcessOperation(s.ctx, recurring))
	s.True(s.balanceOf(main.ID()).Equal(s.rub(9500)))

	processed, err := s.operationService.ProcessRecurringOperations(s.ctx, s.now)
	s.Require().NoError(err)
	s.Equal(1, processed)
	s.True(s.balanceOf(main.ID()).Equal(s.rub(9000)))

	// The clone is not itself recurring, so the template still counts one.
	clones, err := s.operations.FindWhere(s.ctx, func(op domain.Operation) bool { return op.IsRecurring() })
	s.Require().NoError(err)
	s.Len(clones, 1)
}

func (s *ServicesTestSuite) TestLookupOrCreate() {
	first, err := s.categoryService.LookupOrCreate(s.ctx, domain.CategoryExpense, "Transfer", "Transfers between accounts")
	s.Require().NoError(err)

	second, err := s.categoryService.LookupOrCreate(s.ctx, domain.CategoryExpense, "Transfer", "Transfers between accounts")
	s.Require().NoError(err)
	s.Equal(first.ID(), second.ID())

	count, err := s.categories.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *ServicesTestSuite) TestUpdateCategory() {
	food := s.createCategory(domain.CategoryExpense, "Food")

	name := "Groceries"
	icon := "cart"
	updated, err := s.categoryService.UpdateCategory(s.ctx, food.ID(), &name, nil, nil, &icon)
	s.Require().NoError(err)
	s.Equal("Groceries", updated.Name())
	s.Equal("cart", updated.Icon())

	fetched, err := s.categoryService.GetCategory(s.ctx, food.ID())
	s.Require().NoError(err)
	s.Equal("Groceries", fetched.Name())

	bad := "red"
	_, err = s.categoryService.UpdateCategory(s.ctx, food.ID(), nil, nil, &bad, nil)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *ServicesTestSuite) TestRemoveCategory_BlockedByOperations() {
	main := s.createAccount("Main", 1000)
	food := s.createCategory(domain.CategoryExpense, "Food")
	s.postOperation(domain.OperationExpense, main.ID(), 100, food.ID(), s.now)

	s.ErrorIs(s.categoryService.RemoveCategory(s.ctx, food.ID()), apperrors.ErrDomainRule)

	empty := s.createCategory(domain.CategoryExpense, "Unused")
	s.NoError(s.categoryService.RemoveCategory(s.ctx, empty.ID()))
}

func (s *ServicesTestSuite) TestRemoveAccount_BlockedByBalance() {
	funded := s.createAccount("Funded", 100)
	s.ErrorIs(s.accountService.RemoveAccount(s.ctx, funded.ID()), apperrors.ErrDomainRule)

	empty := s.createAccount("Empty", 0)
	s.NoError(s.accountService.RemoveAccount(s.ctx, empty.ID()))
}

func (s *ServicesTestSuite) TestAccountService_RenameAndActivation() {
	account := s.createAccount("Main", 0)

	renamed, err := s.accountService.RenameAccount(s.ctx, account.ID(), "Primary")
	s.Require().NoError(err)
	s.Equal("Primary", renamed.Name())

	deactivated, err := s.accountService.SetAccountActive(s.ctx, account.ID(), false)
	s.Require().NoError(err)
	s.False(deactivated.IsActive())

	active, err := s.accountService.ListActiveAccounts(s.ctx)
	s.Require().NoError(err)
	s.Empty(active)
}

func TestBaseService_LoggerFallback(t *testing.T) {
	var base services.BaseService
	logger := base.GetLogger(context.Background())
	require.NotNil(t, logger)
	assert.NotPanics(t, func() { logger.Info("no request logger attached") })
}
