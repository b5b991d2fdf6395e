package command

import (
	"context"
	"fmt"
	"time"

	"github.com/tair/inventory-information/internal/inventory/domain"
	"github.com/tair/inventory-information/pkg/logger"
)

// SaveLevelCommand creates or replaces an inventory level
type SaveLevelCommand struct {
	ItemID            uint
	LocationCode      string
	AvailableQuantity int
	ReservedQuantity  int
}

// SaveLevelHandler handles save level command
type SaveLevelHandler struct {
	cache     domain.LevelCache
	validator domain.ProductValidator
}

// NewSaveLevelHandler creates a new save level handler. The validator is
// optional; without it any item id is accepted.
func NewSaveLevelHandler(cache domain.LevelCache, validator domain.ProductValidator) *SaveLevelHandler {
	return &SaveLevelHandler{cache: cache, validator: validator}
}

// Handle executes the save level command
func (h *SaveLevelHandler) Handle(ctx context.Context, cmd SaveLevelCommand) (domain.InventoryLevel, error) {
	level := domain.InventoryLevel{
		ItemID:            cmd.ItemID,
		LocationCode:      cmd.LocationCode,
		AvailableQuantity: cmd.AvailableQuantity,
		ReservedQuantity:  cmd.ReservedQuantity,
		LastUpdated:       time.Now().UTC(),
	}
	if err := level.Validate(); err != nil {
		return domain.InventoryLevel{}, err
	}

	if h.validator != nil {
		exists, err := h.validator.Exists(ctx, cmd.ItemID)
		if err != nil {
			return domain.InventoryLevel{}, err
		}
		if !exists {
			return domain.InventoryLevel{}, fmt.Errorf("product %d: %w", cmd.ItemID, domain.ErrNotFound)
		}
	}

	saved, err := h.cache.Save(ctx, level)
	if err != nil {
		return domain.InventoryLevel{}, err
	}

	logger.Info(ctx).
		Uint("item_id", saved.ItemID).
		Str("location_code", saved.LocationCode).
		Int("available", saved.AvailableQuantity).
		Msg("Inventory level saved")
	return saved, nil
}
