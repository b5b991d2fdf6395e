package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/inventory-information/internal/inventory/domain"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type fakeLevelRepo struct {
	mu      sync.Mutex
	rows    map[domain.LevelKey]domain.InventoryLevel
	finds   int
	saveErr error
	findErr error
}

func newFakeLevelRepo() *fakeLevelRepo {
	return &fakeLevelRepo{rows: make(map[domain.LevelKey]domain.InventoryLevel)}
}

func (r *fakeLevelRepo) FindByKey(_ context.Context, key domain.LevelKey) (domain.InventoryLevel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finds++
	if r.findErr != nil {
		return domain.InventoryLevel{}, r.findErr
	}
	level, ok := r.rows[key]
	if !ok {
		return domain.InventoryLevel{}, fmt.Errorf("level %s: %w", key.CacheKey(), domain.ErrNotFound)
	}
	return level, nil
}

func (r *fakeLevelRepo) Save(_ context.Context, level domain.InventoryLevel) (domain.InventoryLevel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return domain.InventoryLevel{}, r.saveErr
	}
	r.rows[level.Key()] = level
	return level, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event domain.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

type failingFastStore struct {
	*MemoryStore
	err error
}

func (f failingFastStore) Get(context.Context, string) (string, bool, error) {
	return "", false, f.err
}

type fixture struct {
	fast      *MemoryStore
	repo      *fakeLevelRepo
	publisher *recordingPublisher
	metrics   *Metrics
	store     *CacheAsideStore
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	f := fixture{
		fast:      NewMemoryStore(3),
		repo:      newFakeLevelRepo(),
		publisher: &recordingPublisher{},
		metrics:   NewMetrics(prometheus.NewRegistry()),
	}
	f.store = NewCacheAsideStore(f.fast, f.repo, f.publisher,
		WithClock(func() time.Time { return fixedNow }),
		WithMetrics(f.metrics),
	)
	return f
}

func level(itemID uint, location string, available int) domain.InventoryLevel {
	return domain.InventoryLevel{
		ItemID:            itemID,
		LocationCode:      location,
		AvailableQuantity: available,
		ReservedQuantity:  1,
		LastUpdated:       fixedNow.Add(-time.Hour),
	}
}

func TestSaveThenGet_ServedFromCache(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	saved, err := f.store.Save(ctx, level(1, "WH1", 10))
	require.NoError(t, err)

	got, err := f.store.Get(ctx, saved.Key())
	require.NoError(t, err)

	assert.Equal(t, saved.AvailableQuantity, got.AvailableQuantity)
	assert.True(t, saved.LastUpdated.Equal(got.LastUpdated))
	assert.Zero(t, f.repo.finds, "backing store must not be read on a hit")
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.hits))
}

func TestGet_MissPopulatesCache(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	key := domain.LevelKey{ItemID: 2, LocationCode: "WH1"}
	f.repo.rows[key] = level(2, "WH1", 7)

	first, err := f.store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, 7, first.AvailableQuantity)

	f.repo.findErr = errors.New("database down")

	second, err := f.store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, 7, second.AvailableQuantity)
	assert.Equal(t, 1, f.repo.finds)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.misses))
}

func TestGet_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.store.Get(context.Background(), domain.LevelKey{ItemID: 9, LocationCode: "NOPE"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGet_FastStoreErrorIsReturned(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("connection refused")
	store := NewCacheAsideStore(failingFastStore{MemoryStore: f.fast, err: boom}, f.repo, nil)

	_, err := store.Get(context.Background(), domain.LevelKey{ItemID: 1, LocationCode: "WH1"})

	assert.ErrorIs(t, err, boom)
	assert.Zero(t, f.repo.finds)
}

func TestGet_UnreadableEntryFallsBack(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	key := domain.LevelKey{ItemID: 3, LocationCode: "WH1"}
	f.repo.rows[key] = level(3, "WH1", 4)
	require.NoError(t, f.fast.Set(ctx, key.CacheKey(), "{not json"))

	got, err := f.store.Get(ctx, key)

	require.NoError(t, err)
	assert.Equal(t, 4, got.AvailableQuantity)
}

func TestSave_BackingFailureLeavesCacheAhead(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.repo.saveErr = errors.New("deadlock detected")

	_, err := f.store.Save(ctx, level(4, "WH2", 11))
	require.Error(t, err)

	f.repo.saveErr = nil
	got, err := f.store.Get(ctx, domain.LevelKey{ItemID: 4, LocationCode: "WH2"})
	require.NoError(t, err)
	assert.Equal(t, 11, got.AvailableQuantity)
	assert.Empty(t, f.repo.rows)
}

func TestSave_RejectsInvalidLevel(t *testing.T) {
	f := newFixture(t)

	_, err := f.store.Save(context.Background(), level(5, "", 1))

	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestUpdateAvailableQuantity_PublishesChange(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		want     domain.ChangeType
	}{
		{"addition", 15, domain.ChangeAddition},
		{"removal", 3, domain.ChangeRemoval},
		{"adjustment", 10, domain.ChangeAdjustment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			_, err := f.store.Save(ctx, level(1, "WH1", 10))
			require.NoError(t, err)

			got, err := f.store.UpdateAvailableQuantity(ctx, domain.LevelKey{ItemID: 1, LocationCode: "WH1"}, tt.quantity)
			require.NoError(t, err)

			assert.Equal(t, tt.quantity, got.AvailableQuantity)
			assert.Equal(t, 1, got.ReservedQuantity)
			assert.True(t, fixedNow.Equal(got.LastUpdated))

			require.Len(t, f.publisher.events, 1)
			event, ok := f.publisher.events[0].(domain.QuantityChangedEvent)
			require.True(t, ok)
			assert.Equal(t, 10, event.PreviousQuantity)
			assert.Equal(t, tt.quantity, event.NewQuantity)
			assert.Equal(t, tt.want, event.ChangeType)
			assert.Equal(t, "inventory:1:WH1", event.PartitionKey())
		})
	}
}

func TestUpdateAvailableQuantity_NotFoundIsNoop(t *testing.T) {
	f := newFixture(t)

	_, err := f.store.UpdateAvailableQuantity(context.Background(), domain.LevelKey{ItemID: 1, LocationCode: "WH1"}, 5)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.publisher.events)
	assert.Empty(t, f.repo.rows)
}

func TestUpdateAvailableQuantity_PublishFailureIsNotReturned(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.publisher.err = errors.New("broker unavailable")
	_, err := f.store.Save(ctx, level(1, "WH1", 10))
	require.NoError(t, err)

	got, err := f.store.UpdateAvailableQuantity(ctx, domain.LevelKey{ItemID: 1, LocationCode: "WH1"}, 12)

	require.NoError(t, err)
	assert.Equal(t, 12, got.AvailableQuantity)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.publishErrors))
}

func TestUpdateReservedQuantity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.store.Save(ctx, level(1, "WH1", 10))
	require.NoError(t, err)

	got, err := f.store.UpdateReservedQuantity(ctx, domain.LevelKey{ItemID: 1, LocationCode: "WH1"}, 4)

	require.NoError(t, err)
	assert.Equal(t, 4, got.ReservedQuantity)
	assert.Equal(t, 10, got.AvailableQuantity)
	assert.Empty(t, f.publisher.events)
}

func TestUpdateReservedQuantity_Negative(t *testing.T) {
	f := newFixture(t)

	_, err := f.store.UpdateReservedQuantity(context.Background(), domain.LevelKey{ItemID: 1, LocationCode: "WH1"}, -1)

	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestUpdateMultipleQuantities_SkipsUnknown(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.store.Save(ctx, level(1, "WH1", 10))
	require.NoError(t, err)
	_, err = f.store.Save(ctx, level(2, "WH1", 20))
	require.NoError(t, err)

	got, err := f.store.UpdateMultipleQuantities(ctx, []domain.QuantityUpdate{
		{ItemID: 1, LocationCode: "WH1", NewQuantity: 11},
		{ItemID: 99, LocationCode: "WH1", NewQuantity: 1},
		{ItemID: 2, LocationCode: "WH1", NewQuantity: 19},
	})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint(1), got[0].ItemID)
	assert.Equal(t, uint(2), got[1].ItemID)
	assert.Len(t, f.publisher.events, 2)
}

func TestDelete_EvictsCacheOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	saved, err := f.store.Save(ctx, level(1, "WH1", 10))
	require.NoError(t, err)

	require.NoError(t, f.store.Delete(ctx, saved.Key()))

	_, found, err := f.fast.Get(ctx, saved.Key().CacheKey())
	require.NoError(t, err)
	assert.False(t, found)
	assert.Contains(t, f.repo.rows, saved.Key())
}

func TestListForLocation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for _, l := range []domain.InventoryLevel{level(3, "WH1", 3), level(1, "WH1", 1), level(2, "WH2", 2)} {
		_, err := f.store.Save(ctx, l)
		require.NoError(t, err)
	}
	// present only in the backing store, so not discovered
	f.repo.rows[domain.LevelKey{ItemID: 7, LocationCode: "WH1"}] = level(7, "WH1", 7)

	got, err := f.store.ListForLocation(ctx, "WH1")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint(1), got[0].ItemID)
	assert.Equal(t, uint(3), got[1].ItemID)
}

func TestListForLocation_GlobCharactersInLocationCode(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	locations := []string{"A[1", "A1", "A*", "AB", `A\B`, "A?"}
	for i, loc := range locations {
		_, err := f.store.Save(ctx, level(uint(i+1), loc, i+1))
		require.NoError(t, err)
	}

	for i, loc := range locations {
		t.Run(loc, func(t *testing.T) {
			got, err := f.store.ListForLocation(ctx, loc)

			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, uint(i+1), got[0].ItemID)
			assert.Equal(t, loc, got[0].LocationCode)
		})
	}
}

func TestGetMultiple(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.store.Save(ctx, level(1, "WH1", 1))
	require.NoError(t, err)
	f.repo.rows[domain.LevelKey{ItemID: 2, LocationCode: "WH1"}] = level(2, "WH1", 2)

	got, err := f.store.GetMultiple(ctx, []uint{2, 5, 1}, "WH1")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint(2), got[0].ItemID)
	assert.Equal(t, uint(1), got[1].ItemID)
}

func TestChangeHistory_AppendsAndTrims(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	key := domain.LevelKey{ItemID: 1, LocationCode: "WH1"}

	for i := 0; i < 5; i++ {
		err := f.store.RecordChange(ctx, domain.InventoryChange{
			ItemID:       key.ItemID,
			LocationCode: key.LocationCode,
			OldQuantity:  i,
			NewQuantity:  i + 1,
			Reason:       "restock",
		})
		require.NoError(t, err)
	}

	got, err := f.store.Changes(ctx, key)

	require.NoError(t, err)
	require.Len(t, got, 3, "history keeps the newest entries only")
	assert.Equal(t, 2, got[0].OldQuantity)
	assert.Equal(t, 5, got[2].NewQuantity)
	assert.True(t, fixedNow.Equal(got[0].Timestamp))
}

func TestChanges_Empty(t *testing.T) {
	f := newFixture(t)

	got, err := f.store.Changes(context.Background(), domain.LevelKey{ItemID: 1, LocationCode: "WH1"})

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
