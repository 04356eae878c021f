package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrackhq/fintrack_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_app/internal/core/ports/repositories"
	"github.com/fintrackhq/fintrack_app/internal/repositories/cache"
	"github.com/fintrackhq/fintrack_app/internal/repositories/memory"
)

// countingRepository counts inner reads so tests can tell a cache hit from
// a delegated lookup.
type countingRepository struct {
	portsrepo.Repository[domain.Account]
	findByIDCalls int
}

func (c *countingRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	c.findByIDCalls++
	return c.Repository.FindByID(ctx, id)
}

func rub(t *testing.T, amount float64) domain.Money {
	t.Helper()
	m, err := domain.NewMoney(decimal.NewFromFloat(amount), "RUB")
	require.NoError(t, err)
	return m
}

func testAccount(t *testing.T, id string, balance float64) domain.Account {
	t.Helper()
	account, err := domain.NewAccount(id, "Account "+id, rub(t, balance), "", time.Now())
	require.NoError(t, err)
	return account
}

func newCachedRepo(t *testing.T, ttl time.Duration, now *time.Time) (*cache.Repository[domain.Account], *countingRepository) {
	t.Helper()
	inner := &countingRepository{Repository: memory.NewRepository[domain.Account]()}
	cached := cache.NewRepository[domain.Account](inner, ttl, cache.WithNowFunc[domain.Account](func() time.Time { return *now }))
	return cached, inner
}

func TestCache_HitAvoidsInnerLookup(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	cached, inner := newCachedRepo(t, time.Minute, &now)

	require.NoError(t, cached.Save(ctx, testAccount(t, "acc-1", 100)))

	// Save already refreshed the cache, so this never reaches the inner store.
	found, err := cached.FindByID(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "acc-1", found.ID())
	assert.Equal(t, 0, inner.findByIDCalls)
}

func TestCache_ExpiredEntryDelegates(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	cached, inner := newCachedRepo(t, time.Minute, &now)

	require.NoError(t, cached.Save(ctx, testAccount(t, "acc-1", 100)))

	now = now.Add(2 * time.Minute)
	_, err := cached.FindByID(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, 1, inner.findByIDCalls)

	// The delegated read recached the entry with a fresh expiry.
	_, err = cached.FindByID(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, 1, inner.findByIDCalls)
}

func TestCache_UpdateRefreshesEntry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	cached, inner := newCachedRepo(t, time.Minute, &now)

	account := testAccount(t, "acc-1", 100)
	require.NoError(t, cached.Save(ctx, account))

	require.NoError(t, account.Rename("Renamed"))
	require.NoError(t, cached.Update(ctx, account))

	found, err := cached.FindByID(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", found.Name())
	assert.Equal(t, 0, inner.findByIDCalls, "updated value served from cache")
}

func TestCache_RemoveEvicts(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	cached, _ := newCachedRepo(t, time.Minute, &now)

	require.NoError(t, cached.Save(ctx, testAccount(t, "acc-1", 100)))
	require.NoError(t, cached.Remove(ctx, "acc-1"))

	assert.Equal(t, 0, cached.CacheSize())
	_, err := cached.FindByID(ctx, "acc-1")
	assert.Error(t, err)
}

func TestCache_FindAllBypassesButRefreshes(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	cached, inner := newCachedRepo(t, time.Minute, &now)

	require.NoError(t, cached.Save(ctx, testAccount(t, "acc-1", 100)))
	require.NoError(t, cached.Save(ctx, testAccount(t, "acc-2", 200)))
	cached.ClearCache()

	all, err := cached.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, 2, cached.CacheSize())

	// Both entries were refreshed by FindAll.
	_, err = cached.FindByID(ctx, "acc-1")
	require.NoError(t, err)
	_, err = cached.FindByID(ctx, "acc-2")
	require.NoError(t, err)
	assert.Equal(t, 0, inner.findByIDCalls)
}

func TestCache_SetTTLInvalidatesAll(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	cached, inner := newCachedRepo(t, time.Minute, &now)

	require.NoError(t, cached.Save(ctx, testAccount(t, "acc-1", 100)))
	require.NoError(t, cached.Save(ctx, testAccount(t, "acc-2", 200)))
	assert.Equal(t, 2, cached.CacheSize())

	cached.SetTTL(time.Hour)
	assert.Equal(t, 0, cached.CacheSize())

	_, err := cached.FindByID(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, 1, inner.findByIDCalls)
}

func TestCache_ClearDropsStoreAndCache(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	cached, _ := newCachedRepo(t, time.Minute, &now)

	require.NoError(t, cached.Save(ctx, testAccount(t, "acc-1", 100)))
	require.NoError(t, cached.Clear(ctx))

	assert.Equal(t, 0, cached.CacheSize())
	count, err := cached.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestCachedAccountRepository_SpecializedQueriesDelegate(t *testing.T) {
	ctx := context.Background()
	inner := memory.NewAccountRepository()
	cached := cache.NewAccountRepository(inner, time.Minute)

	active := testAccount(t, "acc-1", 100)
	inactive := testAccount(t, "acc-2", 100)
	inactive.Deactivate()
	require.NoError(t, cached.Save(ctx, active))
	require.NoError(t, cached.Save(ctx, inactive))

	found, err := cached.FindActive(ctx)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "acc-1", found[0].ID())
}
