package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tair/inventory-information/internal/inventory/domain"
)

// Kafka topics
const (
	TopicInventoryEvents = "inventory-events"
	TopicItemSync        = "inventory-item-sync"
)

// Message headers
const (
	HeaderEventType = "event_type"
	HeaderEventID   = "event_id"
)

// ItemSyncMessage is an item snapshot published by the product catalogue.
type ItemSyncMessage struct {
	ID       uint            `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// ToItem converts the snapshot into an item without physical attributes.
func (m ItemSyncMessage) ToItem() domain.Item {
	return domain.Item{ID: m.ID, Name: m.Name, Quantity: m.Quantity, Price: m.Price}
}

// ItemSyncHandler decodes item snapshots and passes them to fn.
func ItemSyncHandler(fn func(ctx context.Context, item domain.Item) error) EventHandler {
	return func(ctx context.Context, payload []byte) error {
		var msg ItemSyncMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			return fmt.Errorf("decode item snapshot: %w", err)
		}
		if msg.ID == 0 {
			return fmt.Errorf("%w: item snapshot without id", domain.ErrInvalidArgument)
		}
		return fn(ctx, msg.ToItem())
	}
}
