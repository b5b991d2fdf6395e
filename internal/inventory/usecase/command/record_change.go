package command

import (
	"context"
	"time"

	"github.com/tair/inventory-information/internal/inventory/domain"
)

// RecordChangeCommand appends an entry to the history of a level
type RecordChangeCommand struct {
	ItemID       uint
	LocationCode string
	OldQuantity  int
	NewQuantity  int
	Reason       string
}

// RecordChangeHandler handles record change command
type RecordChangeHandler struct {
	cache domain.LevelCache
}

// NewRecordChangeHandler creates a new handler
func NewRecordChangeHandler(cache domain.LevelCache) *RecordChangeHandler {
	return &RecordChangeHandler{cache: cache}
}

// Handle executes the command and returns the stored change
func (h *RecordChangeHandler) Handle(ctx context.Context, cmd RecordChangeCommand) (domain.InventoryChange, error) {
	key, err := levelKey(cmd.ItemID, cmd.LocationCode)
	if err != nil {
		return domain.InventoryChange{}, err
	}

	change := domain.InventoryChange{
		ItemID:       key.ItemID,
		LocationCode: key.LocationCode,
		OldQuantity:  cmd.OldQuantity,
		NewQuantity:  cmd.NewQuantity,
		Reason:       cmd.Reason,
		Timestamp:    time.Now().UTC(),
	}
	if err := h.cache.RecordChange(ctx, change); err != nil {
		return domain.InventoryChange{}, err
	}
	return change, nil
}
