// Package cache wraps a repository with a time-bounded read-through cache.
// Writes go through to the inner repository and then refresh the cache entry,
// so a lookup immediately after an update observes the new value. The cache
// lock and the inner repository lock are never held at the same time.
package cache

import (
	"context"
	"sync"
	"time"

	portsrepo "github.com/fintrackhq/fintrack_app/internal/core/ports/repositories"
)

type entry[T any] struct {
	value  T
	expiry time.Time
}

func (e entry[T]) expired(now time.Time) bool {
	return now.After(e.expiry)
}

// Repository is a caching proxy over any Repository[T]. FindByID serves
// unexpired entries without touching the inner repository; FindAll always
// delegates so the full universe reflects ground truth, refreshing the cache
// on the way out.
type Repository[T portsrepo.Entity] struct {
	inner   portsrepo.Repository[T]
	mu      sync.Mutex
	entries map[string]entry[T]
	ttl     time.Duration
	now     func() time.Time
}

// Option configures a caching repository.
type Option[T portsrepo.Entity] func(*Repository[T])

// WithNowFunc overrides the time source used for entry expiry.
func WithNowFunc[T portsrepo.Entity](now func() time.Time) Option[T] {
	return func(r *Repository[T]) {
		r.now = now
	}
}

// NewRepository wraps inner with a cache whose entries live for ttl.
func NewRepository[T portsrepo.Entity](inner portsrepo.Repository[T], ttl time.Duration, options ...Option[T]) *Repository[T] {
	r := &Repository[T]{
		inner:   inner,
		entries: make(map[string]entry[T]),
		ttl:     ttl,
		now:     time.Now,
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// Save writes through and refreshes the cache entry.
func (r *Repository[T]) Save(ctx context.Context, entity T) error {
	if err := r.inner.Save(ctx, entity); err != nil {
		return err
	}
	r.cache(entity)
	return nil
}

// Update writes through and refreshes the cache entry with the new value
// rather than merely invalidating it.
func (r *Repository[T]) Update(ctx context.Context, entity T) error {
	if err := r.inner.Update(ctx, entity); err != nil {
		return err
	}
	r.cache(entity)
	return nil
}

// Remove writes through and evicts the entry.
func (r *Repository[T]) Remove(ctx context.Context, id string) error {
	if err := r.inner.Remove(ctx, id); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
	return nil
}

// FindByID returns the cached value on an unexpired hit; otherwise it
// delegates and caches the result with a fresh expiry.
func (r *Repository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	r.mu.Lock()
	if e, ok := r.entries[id]; ok && !e.expired(r.now()) {
		value := e.value
		r.mu.Unlock()
		return &value, nil
	}
	r.mu.Unlock()

	found, err := r.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.cache(*found)
	return found, nil
}

// FindAll always bypasses the cache for the read but opportunistically
// refreshes it with every returned entity.
func (r *Repository[T]) FindAll(ctx context.Context) ([]T, error) {
	result, err := r.inner.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	expiry := r.now().Add(r.ttl)
	for _, entity := range result {
		r.entries[entity.ID()] = entry[T]{value: entity, expiry: expiry}
	}
	return result, nil
}

// Count delegates to the inner repository.
func (r *Repository[T]) Count(ctx context.Context) (int, error) {
	return r.inner.Count(ctx)
}

// Clear writes through and drops every cache entry.
func (r *Repository[T]) Clear(ctx context.Context) error {
	if err := r.inner.Clear(ctx); err != nil {
		return err
	}
	r.ClearCache()
	return nil
}

// ClearCache drops every entry without touching the inner repository.
func (r *Repository[T]) ClearCache() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make(map[string]entry[T])
}

// CacheSize reports the number of entries currently held, expired or not.
func (r *Repository[T]) CacheSize() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// SetTTL changes the entry lifetime and invalidates the whole cache.
func (r *Repository[T]) SetTTL(ttl time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ttl = ttl
	r.entries = make(map[string]entry[T])
}

func (r *Repository[T]) cache(entity T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[entity.ID()] = entry[T]{value: entity, expiry: r.now().Add(r.ttl)}
}
