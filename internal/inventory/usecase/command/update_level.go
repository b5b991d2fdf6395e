package command

import (
	"context"
	"fmt"

	"github.com/tair/inventory-information/internal/inventory/domain"
)

// UpdateAvailableQuantityCommand sets the available quantity of a level
type UpdateAvailableQuantityCommand struct {
	ItemID       uint
	LocationCode string
	Quantity     int
}

// UpdateAvailableQuantityHandler handles update available quantity command
type UpdateAvailableQuantityHandler struct {
	cache domain.LevelCache
}

// NewUpdateAvailableQuantityHandler creates a new handler
func NewUpdateAvailableQuantityHandler(cache domain.LevelCache) *UpdateAvailableQuantityHandler {
	return &UpdateAvailableQuantityHandler{cache: cache}
}

// Handle executes the command. An unknown level yields domain.ErrNotFound.
func (h *UpdateAvailableQuantityHandler) Handle(ctx context.Context, cmd UpdateAvailableQuantityCommand) (domain.InventoryLevel, error) {
	key, err := levelKey(cmd.ItemID, cmd.LocationCode)
	if err != nil {
		return domain.InventoryLevel{}, err
	}
	return h.cache.UpdateAvailableQuantity(ctx, key, cmd.Quantity)
}

// UpdateReservedQuantityCommand sets the reserved quantity of a level
type UpdateReservedQuantityCommand struct {
	ItemID       uint
	LocationCode string
	Quantity     int
}

// UpdateReservedQuantityHandler handles update reserved quantity command
type UpdateReservedQuantityHandler struct {
	cache domain.LevelCache
}

// NewUpdateReservedQuantityHandler creates a new handler
func NewUpdateReservedQuantityHandler(cache domain.LevelCache) *UpdateReservedQuantityHandler {
	return &UpdateReservedQuantityHandler{cache: cache}
}

// Handle executes the command
func (h *UpdateReservedQuantityHandler) Handle(ctx context.Context, cmd UpdateReservedQuantityCommand) (domain.InventoryLevel, error) {
	key, err := levelKey(cmd.ItemID, cmd.LocationCode)
	if err != nil {
		return domain.InventoryLevel{}, err
	}
	return h.cache.UpdateReservedQuantity(ctx, key, cmd.Quantity)
}

// UpdateMultipleQuantitiesHandler applies a batch of available quantity updates
type UpdateMultipleQuantitiesHandler struct {
	cache domain.LevelCache
}

// NewUpdateMultipleQuantitiesHandler creates a new handler
func NewUpdateMultipleQuantitiesHandler(cache domain.LevelCache) *UpdateMultipleQuantitiesHandler {
	return &UpdateMultipleQuantitiesHandler{cache: cache}
}

// Handle validates every update before applying any of them
func (h *UpdateMultipleQuantitiesHandler) Handle(ctx context.Context, updates []domain.QuantityUpdate) ([]domain.InventoryLevel, error) {
	if len(updates) == 0 {
		return nil, fmt.Errorf("%w: no updates given", domain.ErrInvalidArgument)
	}
	for i, u := range updates {
		if _, err := levelKey(u.ItemID, u.LocationCode); err != nil {
			return nil, fmt.Errorf("update %d: %w", i, err)
		}
		if u.NewQuantity < 0 {
			return nil, fmt.Errorf("update %d: %w: quantity cannot be negative", i, domain.ErrInvalidArgument)
		}
	}
	return h.cache.UpdateMultipleQuantities(ctx, updates)
}

// DeleteLevelCommand evicts a level from the cache
type DeleteLevelCommand struct {
	ItemID       uint
	LocationCode string
}

// DeleteLevelHandler handles delete level command
type DeleteLevelHandler struct {
	cache domain.LevelCache
}

// NewDeleteLevelHandler creates a new handler
func NewDeleteLevelHandler(cache domain.LevelCache) *DeleteLevelHandler {
	return &DeleteLevelHandler{cache: cache}
}

// Handle executes the command
func (h *DeleteLevelHandler) Handle(ctx context.Context, cmd DeleteLevelCommand) error {
	key, err := levelKey(cmd.ItemID, cmd.LocationCode)
	if err != nil {
		return err
	}
	return h.cache.Delete(ctx, key)
}

func levelKey(itemID uint, locationCode string) (domain.LevelKey, error) {
	if itemID == 0 {
		return domain.LevelKey{}, fmt.Errorf("%w: itemId is required", domain.ErrInvalidArgument)
	}
	if locationCode == "" {
		return domain.LevelKey{}, fmt.Errorf("%w: locationCode is required", domain.ErrInvalidArgument)
	}
	return domain.LevelKey{ItemID: itemID, LocationCode: locationCode}, nil
}
