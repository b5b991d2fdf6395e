package command

import (
	"context"
	"fmt"

	"github.com/tair/inventory-information/internal/inventory/domain"
	"github.com/tair/inventory-information/pkg/logger"
)

// SyncItemHandler stores item snapshots received from the product catalogue
type SyncItemHandler struct {
	repo domain.ItemRepository
}

// NewSyncItemHandler creates a new sync item handler
func NewSyncItemHandler(repo domain.ItemRepository) *SyncItemHandler {
	return &SyncItemHandler{repo: repo}
}

// Handle creates the item under its own id or refreshes its name, quantity
// and price. Stored physical attributes are kept.
func (h *SyncItemHandler) Handle(ctx context.Context, item domain.Item) error {
	if item.ID == 0 {
		return fmt.Errorf("%w: item id is required", domain.ErrInvalidArgument)
	}
	if err := item.Validate(); err != nil {
		return err
	}

	stored, err := h.repo.Upsert(ctx, item)
	if err != nil {
		return fmt.Errorf("failed to sync item %d: %w", item.ID, err)
	}

	logger.Info(ctx).
		Uint("item_id", stored.ID).
		Int("quantity", stored.Quantity).
		Msg("Item synchronized")
	return nil
}
