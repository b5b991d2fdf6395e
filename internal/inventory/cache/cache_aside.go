// Package cache coordinates the fast key-value store and the relational
// backing store for inventory levels.
//
// Reads go to the fast store first and fall back to the backing store on a
// miss, populating the fast store on the way out. Writes go to the fast store
// first and then to the backing store. A failed backing write is not rolled
// back, so the fast store can be ahead of the backing store until the next
// successful save of the same key.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/inventory-information/internal/inventory/domain"
	"github.com/tair/inventory-information/pkg/logger"
)

var tracer = otel.Tracer("inventory-cache")

// Option configures a CacheAsideStore.
type Option func(*CacheAsideStore)

// WithClock replaces the time source used to stamp lastUpdated.
func WithClock(now func() time.Time) Option {
	return func(s *CacheAsideStore) {
		s.now = now
	}
}

// WithMetrics records hit, miss and publish failure counts.
func WithMetrics(m *Metrics) Option {
	return func(s *CacheAsideStore) {
		s.metrics = m
	}
}

// CacheAsideStore implements domain.LevelCache.
type CacheAsideStore struct {
	fast      domain.FastStore
	backing   domain.LevelRepository
	publisher domain.EventPublisher
	metrics   *Metrics
	now       func() time.Time
}

var _ domain.LevelCache = (*CacheAsideStore)(nil)

// NewCacheAsideStore creates a store. A nil publisher drops every event.
func NewCacheAsideStore(fast domain.FastStore, backing domain.LevelRepository, publisher domain.EventPublisher, opts ...Option) *CacheAsideStore {
	if publisher == nil {
		publisher = domain.NopPublisher{}
	}
	s := &CacheAsideStore{
		fast:      fast,
		backing:   backing,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func startSpan(ctx context.Context, name string, key domain.LevelKey) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(
		attribute.Int("level.item_id", int(key.ItemID)),
		attribute.String("level.location_code", key.LocationCode),
	))
}

func fail(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// Get returns the level for key, reading through to the backing store on a
// cache miss.
func (s *CacheAsideStore) Get(ctx context.Context, key domain.LevelKey) (domain.InventoryLevel, error) {
	ctx, span := startSpan(ctx, "cache.Get", key)
	defer span.End()

	raw, found, err := s.fast.Get(ctx, key.CacheKey())
	if err != nil {
		fail(span, err)
		return domain.InventoryLevel{}, fmt.Errorf("read cached level %s: %w", key.CacheKey(), err)
	}
	if found {
		var level domain.InventoryLevel
		if err := json.Unmarshal([]byte(raw), &level); err == nil {
			s.metrics.hit()
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return level, nil
		}
		logger.Warn(ctx).Str("key", key.CacheKey()).Msg("Discarding unreadable cached level")
	}

	s.metrics.miss()
	span.SetAttributes(attribute.Bool("cache.hit", false))

	level, err := s.backing.FindByKey(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			fail(span, err)
		}
		return domain.InventoryLevel{}, err
	}

	if err := s.put(ctx, level); err != nil {
		logger.Warn(ctx).Err(err).Str("key", key.CacheKey()).Msg("Failed to populate cache after miss")
	}
	return level, nil
}

// Save writes the level to the fast store and then to the backing store.
func (s *CacheAsideStore) Save(ctx context.Context, level domain.InventoryLevel) (domain.InventoryLevel, error) {
	ctx, span := startSpan(ctx, "cache.Save", level.Key())
	defer span.End()

	if err := level.Validate(); err != nil {
		return domain.InventoryLevel{}, err
	}

	if err := s.put(ctx, level); err != nil {
		fail(span, err)
		return domain.InventoryLevel{}, fmt.Errorf("write cached level %s: %w", level.Key().CacheKey(), err)
	}

	saved, err := s.backing.Save(ctx, level)
	if err != nil {
		fail(span, err)
		logger.Warn(ctx).
			Err(err).
			Str("key", level.Key().CacheKey()).
			Msg("Backing store write failed, cached level is ahead of the backing store")
		return domain.InventoryLevel{}, fmt.Errorf("persist level %s: %w", level.Key().CacheKey(), err)
	}
	return saved, nil
}

// UpdateAvailableQuantity sets the available quantity of an existing level
// and publishes a quantity changed event.
func (s *CacheAsideStore) UpdateAvailableQuantity(ctx context.Context, key domain.LevelKey, quantity int) (domain.InventoryLevel, error) {
	if quantity < 0 {
		return domain.InventoryLevel{}, fmt.Errorf("%w: available quantity cannot be negative", domain.ErrInvalidArgument)
	}

	current, err := s.Get(ctx, key)
	if err != nil {
		return domain.InventoryLevel{}, err
	}

	updated := current.WithAvailable(quantity, s.now())
	saved, err := s.Save(ctx, updated)
	if err != nil {
		return domain.InventoryLevel{}, err
	}

	s.publish(ctx, domain.NewQuantityChangedEvent(key, current.AvailableQuantity, quantity, updated.LastUpdated))
	return saved, nil
}

// UpdateReservedQuantity sets the reserved quantity of an existing level.
func (s *CacheAsideStore) UpdateReservedQuantity(ctx context.Context, key domain.LevelKey, quantity int) (domain.InventoryLevel, error) {
	if quantity < 0 {
		return domain.InventoryLevel{}, fmt.Errorf("%w: reserved quantity cannot be negative", domain.ErrInvalidArgument)
	}

	current, err := s.Get(ctx, key)
	if err != nil {
		return domain.InventoryLevel{}, err
	}
	return s.Save(ctx, current.WithReserved(quantity, s.now()))
}

// UpdateMultipleQuantities applies each update in order. Levels that do not
// exist are skipped; any other failure stops the batch.
func (s *CacheAsideStore) UpdateMultipleQuantities(ctx context.Context, updates []domain.QuantityUpdate) ([]domain.InventoryLevel, error) {
	levels := make([]domain.InventoryLevel, 0, len(updates))
	for _, u := range updates {
		level, err := s.UpdateAvailableQuantity(ctx, u.Key(), u.NewQuantity)
		if errors.Is(err, domain.ErrNotFound) {
			logger.Debug(ctx).Str("key", u.Key().CacheKey()).Msg("Skipping update of unknown level")
			continue
		}
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}
	return levels, nil
}

// Delete evicts the level from the fast store. The backing row is kept.
func (s *CacheAsideStore) Delete(ctx context.Context, key domain.LevelKey) error {
	ctx, span := startSpan(ctx, "cache.Delete", key)
	defer span.End()

	if err := s.fast.Delete(ctx, key.CacheKey()); err != nil {
		fail(span, err)
		return fmt.Errorf("delete cached level %s: %w", key.CacheKey(), err)
	}
	return nil
}

// ListForLocation returns the cached levels of a location ordered by item id.
// Levels only present in the backing store are not found by this path.
func (s *CacheAsideStore) ListForLocation(ctx context.Context, locationCode string) ([]domain.InventoryLevel, error) {
	ctx, span := tracer.Start(ctx, "cache.ListForLocation",
		trace.WithAttributes(attribute.String("level.location_code", locationCode)),
	)
	defer span.End()

	keys, err := s.fast.KeysMatching(ctx, domain.LocationPattern(locationCode))
	if err != nil {
		fail(span, err)
		return nil, fmt.Errorf("scan levels of %s: %w", locationCode, err)
	}

	levels := make([]domain.InventoryLevel, 0, len(keys))
	for _, k := range keys {
		key, err := domain.ParseCacheKey(k)
		if err != nil || key.LocationCode != locationCode {
			continue
		}
		level, err := s.Get(ctx, key)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}

	sort.Slice(levels, func(i, j int) bool { return levels[i].ItemID < levels[j].ItemID })
	span.SetAttributes(attribute.Int("result.count", len(levels)))
	return levels, nil
}

// GetMultiple returns the levels of the given items at one location, in the
// order requested. Unknown levels are left out.
func (s *CacheAsideStore) GetMultiple(ctx context.Context, itemIDs []uint, locationCode string) ([]domain.InventoryLevel, error) {
	levels := make([]domain.InventoryLevel, 0, len(itemIDs))
	for _, id := range itemIDs {
		level, err := s.Get(ctx, domain.LevelKey{ItemID: id, LocationCode: locationCode})
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}
	return levels, nil
}

// RecordChange appends a change to the history list of its level.
func (s *CacheAsideStore) RecordChange(ctx context.Context, change domain.InventoryChange) error {
	key := change.Key()
	ctx, span := startSpan(ctx, "cache.RecordChange", key)
	defer span.End()

	if change.Timestamp.IsZero() {
		change.Timestamp = s.now()
	}
	raw, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("encode change: %w", err)
	}
	if err := s.fast.ListAppend(ctx, key.HistoryKey(), string(raw)); err != nil {
		fail(span, err)
		return fmt.Errorf("append change to %s: %w", key.HistoryKey(), err)
	}
	return nil
}

// Changes returns the recorded history of a level, oldest first.
func (s *CacheAsideStore) Changes(ctx context.Context, key domain.LevelKey) ([]domain.InventoryChange, error) {
	ctx, span := startSpan(ctx, "cache.Changes", key)
	defer span.End()

	entries, err := s.fast.ListRange(ctx, key.HistoryKey())
	if err != nil {
		fail(span, err)
		return nil, fmt.Errorf("read history %s: %w", key.HistoryKey(), err)
	}

	changes := make([]domain.InventoryChange, 0, len(entries))
	for _, entry := range entries {
		var change domain.InventoryChange
		if err := json.Unmarshal([]byte(entry), &change); err != nil {
			logger.Warn(ctx).Err(err).Str("key", key.HistoryKey()).Msg("Skipping unreadable history entry")
			continue
		}
		changes = append(changes, change)
	}
	return changes, nil
}

func (s *CacheAsideStore) put(ctx context.Context, level domain.InventoryLevel) error {
	raw, err := json.Marshal(level)
	if err != nil {
		return fmt.Errorf("encode level: %w", err)
	}
	return s.fast.Set(ctx, level.Key().CacheKey(), string(raw))
}

func (s *CacheAsideStore) publish(ctx context.Context, event domain.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.metrics.publishFailed()
		logger.Error(ctx).
			Err(err).
			Str("event_id", event.ID()).
			Str("event_type", event.Type()).
			Msg("Failed to publish event")
	}
}
