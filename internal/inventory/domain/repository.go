package domain

import "context"

// ItemRepository defines the contract for item data access.
type ItemRepository interface {
	Create(ctx context.Context, item Item) (Item, error)
	FindByID(ctx context.Context, id uint) (Item, error)
	// Update replaces the stored version of an existing item.
	Update(ctx context.Context, id uint, item Item) (Item, error)
	// Upsert stores the item under its own id, creating it if needed.
	Upsert(ctx context.Context, item Item) (Item, error)
	Delete(ctx context.Context, id uint) error
}

// LevelRepository is the durable backing store for inventory levels.
type LevelRepository interface {
	FindByKey(ctx context.Context, key LevelKey) (InventoryLevel, error)
	Save(ctx context.Context, level InventoryLevel) (InventoryLevel, error)
}

// FastStore is a low-latency string key-value store with list support.
type FastStore interface {
	// Get reports found=false when the key does not exist.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	KeysMatching(ctx context.Context, pattern string) ([]string, error)
	ListAppend(ctx context.Context, key, value string) error
	ListRange(ctx context.Context, key string) ([]string, error)
}

// EventPublisher sends domain events to the inventory topic.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

// ProductValidator checks items against the external product catalogue.
type ProductValidator interface {
	Exists(ctx context.Context, itemID uint) (bool, error)
}

// LevelCache is the cache-aside coordinator for inventory levels.
type LevelCache interface {
	Get(ctx context.Context, key LevelKey) (InventoryLevel, error)
	Save(ctx context.Context, level InventoryLevel) (InventoryLevel, error)
	UpdateAvailableQuantity(ctx context.Context, key LevelKey, quantity int) (InventoryLevel, error)
	UpdateReservedQuantity(ctx context.Context, key LevelKey, quantity int) (InventoryLevel, error)
	UpdateMultipleQuantities(ctx context.Context, updates []QuantityUpdate) ([]InventoryLevel, error)
	Delete(ctx context.Context, key LevelKey) error
	ListForLocation(ctx context.Context, locationCode string) ([]InventoryLevel, error)
	GetMultiple(ctx context.Context, itemIDs []uint, locationCode string) ([]InventoryLevel, error)
	RecordChange(ctx context.Context, change InventoryChange) error
	Changes(ctx context.Context, key LevelKey) ([]InventoryChange, error)
}

// NopPublisher drops every event. It stands in when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
