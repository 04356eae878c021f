package memory

import (
	"context"
	"sort"
	"time"

	"github.com/fintrackhq/fintrack_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_app/internal/core/ports/repositories"
)

// OperationRepository stores operations and adds the operation-specific
// queries.
type OperationRepository struct {
	*Repository[domain.Operation]
}

var _ portsrepo.OperationRepository = (*OperationRepository)(nil)

// NewOperationRepository creates an empty operation store.
func NewOperationRepository() *OperationRepository {
	return &OperationRepository{Repository: NewRepository[domain.Operation]()}
}

// FindByAccount returns the account's operations sorted by date, newest first.
func (r *OperationRepository) FindByAccount(ctx context.Context, accountID string) ([]domain.Operation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]domain.Operation, 0)
	for _, op := range r.items {
		if op.AccountID() == accountID {
			result = append(result, op)
		}
	}
	sortByDateDesc(result)
	return result, nil
}

// FindByCategory returns every operation referencing the category.
func (r *OperationRepository) FindByCategory(ctx context.Context, categoryID string) ([]domain.Operation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]domain.Operation, 0)
	for _, op := range r.items {
		if op.CategoryID() == categoryID {
			result = append(result, op)
		}
	}
	return result, nil
}

// FindByDateRange returns operations dated within [start, end], newest first.
func (r *OperationRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]domain.Operation, error) {
	period, err := domain.NewDateRange(start, end)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]domain.Operation, 0)
	for _, op := range r.items {
		if op.InDateRange(period) {
			result = append(result, op)
		}
	}
	sortByDateDesc(result)
	return result, nil
}

// FindByType returns every operation of the given direction.
func (r *OperationRepository) FindByType(ctx context.Context, operationType domain.OperationType) ([]domain.Operation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]domain.Operation, 0)
	for _, op := range r.items {
		if op.Type() == operationType {
			result = append(result, op)
		}
	}
	return result, nil
}

// FindWhere returns every operation matching the predicate. The predicate
// runs under the repository lock and must not call back into the repository.
func (r *OperationRepository) FindWhere(ctx context.Context, predicate func(domain.Operation) bool) ([]domain.Operation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]domain.Operation, 0)
	for _, op := range r.items {
		if predicate(op) {
			result = append(result, op)
		}
	}
	return result, nil
}

func sortByDateDesc(ops []domain.Operation) {
	sort.Slice(ops, func(i, j int) bool {
		return ops[i].Date().After(ops[j].Date())
	})
}
