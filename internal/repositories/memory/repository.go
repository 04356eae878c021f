// Package memory provides the volatile, process-lifetime storage backend.
// Every repository instance serializes all access behind one exclusive lock;
// the lock spans the whole operation and no iterator escapes it.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/fintrackhq/fintrack_app/internal/apperrors"
	portsrepo "github.com/fintrackhq/fintrack_app/internal/core/ports/repositories"
)

// Repository is a mutex-guarded keyed store of entity values. Values are
// stored and returned by copy, so callers cannot mutate stored state without
// going through Update.
type Repository[T portsrepo.Entity] struct {
	mu    sync.Mutex
	items map[string]T
}

// NewRepository creates an empty store.
func NewRepository[T portsrepo.Entity]() *Repository[T] {
	return &Repository[T]{items: make(map[string]T)}
}

// Save inserts or overwrites; the last write wins.
func (r *Repository[T]) Save(ctx context.Context, entity T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[entity.ID()] = entity
	return nil
}

// Update overwrites an existing entity and fails when the id is unknown.
func (r *Repository[T]) Update(ctx context.Context, entity T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[entity.ID()]; !ok {
		return fmt.Errorf("entity %q: %w", entity.ID(), apperrors.ErrNotFound)
	}
	r.items[entity.ID()] = entity
	return nil
}

// Remove deletes by id; removing an absent id is a no-op.
func (r *Repository[T]) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

// FindByID returns a copy of the stored entity.
func (r *Repository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entity, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("entity %q: %w", id, apperrors.ErrNotFound)
	}
	return &entity, nil
}

// FindAll returns copies of every stored entity in unspecified order.
func (r *Repository[T]) FindAll(ctx context.Context) ([]T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]T, 0, len(r.items))
	for _, entity := range r.items {
		result = append(result, entity)
	}
	return result, nil
}

// Count reports the number of stored entities.
func (r *Repository[T]) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items), nil
}

// Clear removes every stored entity.
func (r *Repository[T]) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = make(map[string]T)
	return nil
}
