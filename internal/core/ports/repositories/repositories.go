// Package repositories defines the persistence ports of the core. Any
// backend can substitute behind them without changing commands, services or
// reconciliation.
package repositories

import (
	"context"
	"time"

	"github.com/fintrackhq/fintrack_app/internal/core/domain"
)

// Entity is anything storable by id.
type Entity interface {
	ID() string
}

// Repository is the generic keyed store contract shared by every entity kind.
// Save inserts or overwrites (last write wins), Update fails with
// apperrors.ErrNotFound for an unknown id, and Remove is idempotent.
// Implementations return copies; a mutation only persists through Update.
type Repository[T Entity] interface {
	Save(ctx context.Context, entity T) error
	Update(ctx context.Context, entity T) error
	Remove(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*T, error)
	FindAll(ctx context.Context) ([]T, error)
	Count(ctx context.Context) (int, error)
	Clear(ctx context.Context) error
}

// AccountRepository adds the account-specific queries.
type AccountRepository interface {
	Repository[domain.Account]
	FindActive(ctx context.Context) ([]domain.Account, error)
	FindByAccountNumber(ctx context.Context, accountNumber string) (*domain.Account, error)
}

// CategoryRepository adds the category-specific queries.
type CategoryRepository interface {
	Repository[domain.Category]
	FindByType(ctx context.Context, categoryType domain.CategoryType) ([]domain.Category, error)
	FindByName(ctx context.Context, name string) (*domain.Category, error)
}

// OperationRepository adds the operation-specific queries. FindByAccount and
// FindByDateRange return operations sorted by date, newest first.
type OperationRepository interface {
	Repository[domain.Operation]
	FindByAccount(ctx context.Context, accountID string) ([]domain.Operation, error)
	FindByCategory(ctx context.Context, categoryID string) ([]domain.Operation, error)
	FindByDateRange(ctx context.Context, start, end time.Time) ([]domain.Operation, error)
	FindByType(ctx context.Context, operationType domain.OperationType) ([]domain.Operation, error)
	FindWhere(ctx context.Context, predicate func(domain.Operation) bool) ([]domain.Operation, error)
}
