package query

import (
	"context"
	"fmt"

	"github.com/tair/inventory-information/internal/inventory/domain"
)

// GetLevelQuery represents the query to get one inventory level
type GetLevelQuery struct {
	ItemID       uint
	LocationCode string
}

// GetLevelHandler handles get level query
type GetLevelHandler struct {
	cache domain.LevelCache
}

// NewGetLevelHandler creates a new get level handler
func NewGetLevelHandler(cache domain.LevelCache) *GetLevelHandler {
	return &GetLevelHandler{cache: cache}
}

// Handle executes the get level query
func (h *GetLevelHandler) Handle(ctx context.Context, query GetLevelQuery) (domain.InventoryLevel, error) {
	key, err := levelKey(query.ItemID, query.LocationCode)
	if err != nil {
		return domain.InventoryLevel{}, err
	}
	return h.cache.Get(ctx, key)
}

// ListLevelsForLocationHandler lists the cached levels of one location
type ListLevelsForLocationHandler struct {
	cache domain.LevelCache
}

// NewListLevelsForLocationHandler creates a new handler
func NewListLevelsForLocationHandler(cache domain.LevelCache) *ListLevelsForLocationHandler {
	return &ListLevelsForLocationHandler{cache: cache}
}

// Handle executes the query
func (h *ListLevelsForLocationHandler) Handle(ctx context.Context, locationCode string) ([]domain.InventoryLevel, error) {
	if locationCode == "" {
		return nil, fmt.Errorf("%w: locationCode is required", domain.ErrInvalidArgument)
	}
	return h.cache.ListForLocation(ctx, locationCode)
}

// GetMultipleLevelsQuery selects several items at one location
type GetMultipleLevelsQuery struct {
	ItemIDs      []uint
	LocationCode string
}

// GetMultipleLevelsHandler handles get multiple levels query
type GetMultipleLevelsHandler struct {
	cache domain.LevelCache
}

// NewGetMultipleLevelsHandler creates a new handler
func NewGetMultipleLevelsHandler(cache domain.LevelCache) *GetMultipleLevelsHandler {
	return &GetMultipleLevelsHandler{cache: cache}
}

// Handle executes the query. Unknown levels are left out of the result.
func (h *GetMultipleLevelsHandler) Handle(ctx context.Context, query GetMultipleLevelsQuery) ([]domain.InventoryLevel, error) {
	if query.LocationCode == "" {
		return nil, fmt.Errorf("%w: locationCode is required", domain.ErrInvalidArgument)
	}
	if len(query.ItemIDs) == 0 {
		return nil, fmt.Errorf("%w: itemIds is required", domain.ErrInvalidArgument)
	}
	return h.cache.GetMultiple(ctx, query.ItemIDs, query.LocationCode)
}

// GetChangesHandler returns the change history of a level
type GetChangesHandler struct {
	cache domain.LevelCache
}

// NewGetChangesHandler creates a new handler
func NewGetChangesHandler(cache domain.LevelCache) *GetChangesHandler {
	return &GetChangesHandler{cache: cache}
}

// Handle executes the query
func (h *GetChangesHandler) Handle(ctx context.Context, query GetLevelQuery) ([]domain.InventoryChange, error) {
	key, err := levelKey(query.ItemID, query.LocationCode)
	if err != nil {
		return nil, err
	}
	return h.cache.Changes(ctx, key)
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
