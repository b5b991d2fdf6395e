package query

import (
	"context"

	"github.com/tair/inventory-information/internal/inventory/domain"
	"github.com/tair/inventory-information/internal/inventory/storage"
)

type OptimizeStorageHandler struct {
	repo domain.ItemRepository
}

func NewOptimizeStorageHandler(repo domain.ItemRepository) *OptimizeStorageHandler {
	return &OptimizeStorageHandler{repo: repo}
}

// Handle accepts an empty or fully unknown id list and returns no zones
func (h *OptimizeStorageHandler) Handle(ctx context.Context, itemIDs []uint) (storage.Layout, error) {
	items, err := resolveItems(ctx, h.repo, itemIDs)
	if err != nil {
		return storage.Layout{}, err
	}
	return storage.OptimizeLayout(items), nil
}

// CompatibilityQuery names the two items to compare
type CompatibilityQuery struct {
	FirstItemID  uint
	SecondItemID uint
}

type CompatibilityHandler struct {
	repo domain.ItemRepository
}

func NewCompatibilityHandler(repo domain.ItemRepository) *CompatibilityHandler {
	return &CompatibilityHandler{repo: repo}
}

func (h *CompatibilityHandler) Handle(ctx context.Context, query CompatibilityQuery) (storage.Compatibility, error) {
	first, err := h.repo.FindByID(ctx, query.FirstItemID)
	if err != nil {
		return storage.Compatibility{}, err
	}
	second, err := h.repo.FindByID(ctx, query.SecondItemID)
	if err != nil {
		return storage.Compatibility{}, err
	}
	return storage.CheckCompatibility(first, second), nil
}

// StorageArrangementQuery asks how many palettes an item's stock needs
type StorageArrangementQuery struct {
	ItemID          uint
	PaletteCapacity float64
}

type StorageArrangementHandler struct {
	repo domain.ItemRepository
}

func NewStorageArrangementHandler(repo domain.ItemRepository) *StorageArrangementHandler {
	return &StorageArrangementHandler{repo: repo}
}

func (h *StorageArrangementHandler) Handle(ctx context.Context, query StorageArrangementQuery) (storage.Arrangement, error) {
	item, err := h.repo.FindByID(ctx, query.ItemID)
	if err != nil {
		return storage.Arrangement{}, err
	}
	return storage.Arrange(item, query.PaletteCapacity)
}
