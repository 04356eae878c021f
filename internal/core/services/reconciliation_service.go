package services

import (
	"context"
	"log/slog"

	"github.com/fintrackhq/fintrack_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_app/internal/core/ports/repositories"
)

// ReconciliationService audits stored account balances against the balance
// implied by each account's operation history, and repairs drift on request.
// RecalculateBalance with autoFix is the only legitimate correction path for
// balance drift outside the normal deposit/withdraw/transfer flows.
type ReconciliationService struct {
	BaseService
	accounts   portsrepo.AccountRepository
	operations portsrepo.OperationRepository
}

// NewReconciliationService creates the balance reconciliation service.
func NewReconciliationService(accounts portsrepo.AccountRepository, operations portsrepo.OperationRepository) *ReconciliationService {
	return &ReconciliationService{
		accounts:   accounts,
		operations: operations,
	}
}

// CheckAccountBalance folds the account's operations (income adds, expense
// subtracts) onto the opening balance and compares the result against the
// stored balance with epsilon-tolerant Money equality.
func (s *ReconciliationService) CheckAccountBalance(ctx context.Context, accountID string) (domain.AccountBalance, error) {
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return domain.AccountBalance{}, err
	}

	operations, err := s.operations.FindByAccount(ctx, accountID)
	if err != nil {
		return domain.AccountBalance{}, err
	}

	calculated := account.InitialBalance()
	for _, op := range operations {
		if op.IsIncome() {
			calculated, err = calculated.Add(op.Amount())
		} else {
			calculated, err = calculated.Subtract(op.Amount())
		}
		if err != nil {
			return domain.AccountBalance{}, err
		}
	}

	result := domain.AccountBalance{
		AccountID:         accountID,
		AccountName:       account.Name(),
		Balance:           account.Balance(),
		CalculatedBalance: calculated,
		HasDiscrepancy:    !account.Balance().Equal(calculated),
	}
	if result.HasDiscrepancy {
		s.LogWarn(ctx, "Balance discrepancy detected",
			slog.String("account_id", accountID),
			slog.String("stored", result.Balance.String()),
			slog.String("calculated", result.CalculatedBalance.String()))
	}
	return result, nil
}

// RecalculateBalance checks the account and, when autoFix is set and a
// discrepancy exists, overwrites the stored balance with the calculated one.
// The returned record reflects the state after any repair.
func (s *ReconciliationService) RecalculateBalance(ctx context.Context, accountID string, autoFix bool) (domain.AccountBalance, error) {
	result, err := s.CheckAccountBalance(ctx, accountID)
	if err != nil {
		return domain.AccountBalance{}, err
	}
	if !result.HasDiscrepancy || !autoFix {
		return result, nil
	}

	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return domain.AccountBalance{}, err
	}
	if err := account.RecalculateBalance(result.CalculatedBalance); err != nil {
		return domain.AccountBalance{}, err
	}
	if err := s.accounts.Update(ctx, *account); err != nil {
		return domain.AccountBalance{}, err
	}

	s.LogInfo(ctx, "Balance repaired",
		slog.String("account_id", accountID),
		slog.String("old", result.Balance.String()),
		slog.String("new", result.CalculatedBalance.String()))

	result.Balance = result.CalculatedBalance
	result.HasDiscrepancy = false
	return result, nil
}

// CheckAllBalances runs the single-account check over every account, as a
// system-wide consistency audit.
func (s *ReconciliationService) CheckAllBalances(ctx context.Context) ([]domain.AccountBalance, error) {
	accounts, err := s.accounts.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]domain.AccountBalance, 0, len(accounts))
	for _, account := range accounts {
		result, err := s.CheckAccountBalance(ctx, account.ID())
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}
