package domain

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Event types carried in the event_type header.
const (
	EventTypeQuantityChanged = "inventory.level.quantity_changed"
	EventTypeItemCreated     = "inventory.item.created"
	EventTypeItemUpdated     = "inventory.item.updated"
	EventTypeItemRemoved     = "inventory.item.removed"
)

// Event is a domain event published on the inventory topic.
type Event interface {
	ID() string
	Type() string
	// PartitionKey groups events of one aggregate on the same partition.
	PartitionKey() string
}

// ChangeType classifies a change of available quantity.
type ChangeType string

const (
	ChangeAddition   ChangeType = "ADDITION"
	ChangeRemoval    ChangeType = "REMOVAL"
	ChangeAdjustment ChangeType = "ADJUSTMENT"
)

// ClassifyChange derives the change type from the old and new quantity.
func ClassifyChange(oldQuantity, newQuantity int) ChangeType {
	switch {
	case newQuantity > oldQuantity:
		return ChangeAddition
	case newQuantity < oldQuantity:
		return ChangeRemoval
	default:
		return ChangeAdjustment
	}
}

// QuantityChangedEvent is published whenever an available quantity is updated.
type QuantityChangedEvent struct {
	EventID          string     `json:"eventId"`
	EventType        string     `json:"eventType"`
	ItemID           uint       `json:"itemId"`
	LocationCode     string     `json:"locationCode"`
	PreviousQuantity int        `json:"previousQuantity"`
	NewQuantity      int        `json:"newQuantity"`
	ChangeType       ChangeType `json:"changeType"`
	Timestamp        time.Time  `json:"timestamp"`
}

// NewQuantityChangedEvent builds the event for a level transition.
func NewQuantityChangedEvent(key LevelKey, previous, current int, at time.Time) QuantityChangedEvent {
	return QuantityChangedEvent{
		EventID:          uuid.NewString(),
		EventType:        EventTypeQuantityChanged,
		ItemID:           key.ItemID,
		LocationCode:     key.LocationCode,
		PreviousQuantity: previous,
		NewQuantity:      current,
		ChangeType:       ClassifyChange(previous, current),
		Timestamp:        at,
	}
}

func (e QuantityChangedEvent) ID() string   { return e.EventID }
func (e QuantityChangedEvent) Type() string { return e.EventType }
func (e QuantityChangedEvent) PartitionKey() string {
	return LevelKey{ItemID: e.ItemID, LocationCode: e.LocationCode}.CacheKey()
}

// ItemEvent reports an item lifecycle transition.
type ItemEvent struct {
	EventID   string    `json:"eventId"`
	EventType string    `json:"eventType"`
	ItemID    uint      `json:"itemId"`
	Timestamp time.Time `json:"timestamp"`
}

// NewItemEvent builds an item lifecycle event of the given type.
func NewItemEvent(eventType string, itemID uint, at time.Time) ItemEvent {
	return ItemEvent{
		EventID:   uuid.NewString(),
		EventType: eventType,
		ItemID:    itemID,
		Timestamp: at,
	}
}

func (e ItemEvent) ID() string           { return e.EventID }
func (e ItemEvent) Type() string         { return e.EventType }
func (e ItemEvent) PartitionKey() string { return "item:" + strconv.FormatUint(uint64(e.ItemID), 10) }
