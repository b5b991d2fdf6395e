package command

import (
	"context"
	"time"

	"github.com/tair/inventory-information/internal/inventory/domain"
	"github.com/tair/inventory-information/pkg/logger"
)

// publishItemEvent publishes an item lifecycle event. Failures are logged
// and never fail the command that triggered them.
func publishItemEvent(ctx context.Context, publisher domain.EventPublisher, eventType string, itemID uint) {
	event := domain.NewItemEvent(eventType, itemID, time.Now().UTC())
	if err := publisher.Publish(ctx, event); err != nil {
		logger.Error(ctx).
			Err(err).
			Str("event_type", eventType).
			Uint("item_id", itemID).
			Msg("Failed to publish item event")
	}
}

func orNop(publisher domain.EventPublisher) domain.EventPublisher {
	if publisher == nil {
		return domain.NopPublisher{}
	}
	return publisher
}
