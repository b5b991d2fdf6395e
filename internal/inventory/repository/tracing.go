package repository

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/inventory-information/internal/inventory/domain"
)

var tracer = otel.Tracer("inventory-repository")

// ItemRepositoryWithTracing wraps an item repository with spans
type ItemRepositoryWithTracing struct {
	next domain.ItemRepository
}

// NewItemRepositoryWithTracing creates a new repository with tracing
func NewItemRepositoryWithTracing(next domain.ItemRepository) *ItemRepositoryWithTracing {
	return &ItemRepositoryWithTracing{next: next}
}

// Create with tracing
func (r *ItemRepositoryWithTracing) Create(ctx context.Context, item domain.Item) (domain.Item, error) {
	ctx, span := tracer.Start(ctx, "repository.Item.Create",
		trace.WithAttributes(
			attribute.String("item.name", item.Name),
			attribute.Int("item.quantity", item.Quantity),
		),
	)
	defer span.End()

	created, err := r.next.Create(ctx, item)
	if err != nil {
		addDBErrorToSpan(span, err)
		return domain.Item{}, err
	}

	span.SetAttributes(attribute.Int("item.id", int(created.ID)))
	return created, nil
}

// FindByID with tracing
func (r *ItemRepositoryWithTracing) FindByID(ctx context.Context, id uint) (domain.Item, error) {
	ctx, span := tracer.Start(ctx, "repository.Item.FindByID",
		trace.WithAttributes(attribute.Int("item.id", int(id))),
	)
	defer span.End()

	item, err := r.next.FindByID(ctx, id)
	if err != nil {
		addDBErrorToSpan(span, err)
		return domain.Item{}, err
	}
	return item, nil
}

// Update with tracing
func (r *ItemRepositoryWithTracing) Update(ctx context.Context, id uint, item domain.Item) (domain.Item, error) {
	ctx, span := tracer.Start(ctx, "repository.Item.Update",
		trace.WithAttributes(
			attribute.Int("item.id", int(id)),
			attribute.Int("item.quantity", item.Quantity),
		),
	)
	defer span.End()

	updated, err := r.next.Update(ctx, id, item)
	if err != nil {
		addDBErrorToSpan(span, err)
		return domain.Item{}, err
	}
	return updated, nil
}

// Upsert with tracing
func (r *ItemRepositoryWithTracing) Upsert(ctx context.Context, item domain.Item) (domain.Item, error) {
	ctx, span := tracer.Start(ctx, "repository.Item.Upsert",
		trace.WithAttributes(attribute.Int("item.id", int(item.ID))),
	)
	defer span.End()

	stored, err := r.next.Upsert(ctx, item)
	if err != nil {
		addDBErrorToSpan(span, err)
		return domain.Item{}, err
	}
	return stored, nil
}

// Delete with tracing
func (r *ItemRepositoryWithTracing) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "repository.Item.Delete",
		trace.WithAttributes(attribute.Int("item.id", int(id))),
	)
	defer span.End()

	err := r.next.Delete(ctx, id)
	addDBErrorToSpan(span, err)
	return err
}

// LevelRepositoryWithTracing wraps a level repository with spans
type LevelRepositoryWithTracing struct {
	next domain.LevelRepository
}

// NewLevelRepositoryWithTracing creates a new repository with tracing
func NewLevelRepositoryWithTracing(next domain.LevelRepository) *LevelRepositoryWithTracing {
	return &LevelRepositoryWithTracing{next: next}
}

// FindByKey with tracing
func (r *LevelRepositoryWithTracing) FindByKey(ctx context.Context, key domain.LevelKey) (domain.InventoryLevel, error) {
	ctx, span := tracer.Start(ctx, "repository.Level.FindByKey",
		trace.WithAttributes(
			attribute.Int("level.item_id", int(key.ItemID)),
			attribute.String("level.location_code", key.LocationCode),
		),
	)
	defer span.End()

	level, err := r.next.FindByKey(ctx, key)
	if err != nil {
		addDBErrorToSpan(span, err)
		return domain.InventoryLevel{}, err
	}
	return level, nil
}

// Save with tracing
func (r *LevelRepositoryWithTracing) Save(ctx context.Context, level domain.InventoryLevel) (domain.InventoryLevel, error) {
	ctx, span := tracer.Start(ctx, "repository.Level.Save",
		trace.WithAttributes(
			attribute.Int("level.item_id", int(level.ItemID)),
			attribute.String("level.location_code", level.LocationCode),
			attribute.Int("level.available_quantity", level.AvailableQuantity),
			attribute.Int("level.reserved_quantity", level.ReservedQuantity),
		),
	)
	defer span.End()

	saved, err := r.next.Save(ctx, level)
	if err != nil {
		addDBErrorToSpan(span, err)
		return domain.InventoryLevel{}, err
	}
	return saved, nil
}

// Helper function to add database error details to span.
// A missing row is an expected outcome and does not mark the span as failed.
func addDBErrorToSpan(span trace.Span, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		span.SetAttributes(attribute.Bool("db.not_found", true))
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, fmt.Sprintf("database error: %v", err))
}
