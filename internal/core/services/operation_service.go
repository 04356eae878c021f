package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/fintrackhq/fintrack_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_app/internal/core/ports/repositories"
)

// OperationService applies operations to their accounts. Posting touches two
// repositories (the operation store and the account store) without a
// cross-repository transaction; reconciliation detects and repairs the drift
// a failure between the two writes would leave behind.
type OperationService struct {
	BaseService
	accounts   portsrepo.AccountRepository
	operations portsrepo.OperationRepository
	factory    *domain.Factory
}

// NewOperationService creates the operation processing service.
func NewOperationService(accounts portsrepo.AccountRepository, operations portsrepo.OperationRepository, factory *domain.Factory) *OperationService {
	return &OperationService{
		accounts:   accounts,
		operations: operations,
		factory:    factory,
	}
}

// ProcessOperation applies op to its account (deposit for income, withdraw
// for expense) and persists both the operation and the account.
func (s *OperationService) ProcessOperation(ctx context.Context, op domain.Operation) error {
	account, err := s.accounts.FindByID(ctx, op.AccountID())
	if err != nil {
		return err
	}

	if op.IsIncome() {
		err = account.Deposit(op.Amount())
	} else {
		err = account.Withdraw(op.Amount())
	}
	if err != nil {
		return err
	}

	if err := s.operations.Save(ctx, op); err != nil {
		return err
	}
	return s.accounts.Update(ctx, *account)
}

// RecordOperation persists an operation without applying it to the account
// balance. Used when the balance movement already happened elsewhere, for
// example as part of a transfer.
func (s *OperationService) RecordOperation(ctx context.Context, op domain.Operation) error {
	return s.operations.Save(ctx, op)
}

// RemoveOperation deletes a recorded operation without touching the account
// balance. Callers that need the balance adjusted recalculate it themselves
// or run reconciliation afterwards.
func (s *OperationService) RemoveOperation(ctx context.Context, operationID string) error {
	return s.operations.Remove(ctx, operationID)
}

// FindByAccount returns the account's operations, most recent first.
func (s *OperationService) FindByAccount(ctx context.Context, accountID string) ([]domain.Operation, error) {
	return s.operations.FindByAccount(ctx, accountID)
}

// FindByDateRange returns the operations dated inside the range, most recent
// first.
func (s *OperationService) FindByDateRange(ctx context.Context, period domain.DateRange) ([]domain.Operation, error) {
	return s.operations.FindByDateRange(ctx, period.Start(), period.End())
}

// ProcessRecurringOperations clones every recurring operation onto
// currentDate and posts the clone through the normal processing path.
// Returns the number of operations posted.
func (s *OperationService) ProcessRecurringOperations(ctx context.Context, currentDate time.Time) (int, error) {
	recurring, err := s.operations.FindWhere(ctx, func(op domain.Operation) bool {
		return op.IsRecurring()
	})
	if err != nil {
		return 0, err
	}

	processed := 0
	for _, op := range recurring {
		clone, err := s.factory.CloneForDate(op, currentDate)
		if err != nil {
			return processed, err
		}
		if err := s.ProcessOperation(ctx, clone); err != nil {
			return processed, err
		}
		processed++
	}
	if processed > 0 {
		s.LogInfo(ctx, "Processed recurring operations", slog.Int("count", processed))
	}
	return processed, nil
}
