package command

import (
	"context"
	"fmt"

	"github.com/tair/inventory-information/internal/inventory/domain"
)

// attributeSetter loads an item, applies a change and stores the result.
type attributeSetter struct {
	repo      domain.ItemRepository
	publisher domain.EventPublisher
}

func (s attributeSetter) apply(ctx context.Context, itemID uint, change func(domain.Item) domain.Item) (domain.Item, error) {
	if itemID == 0 {
		return domain.Item{}, fmt.Errorf("%w: item id is required", domain.ErrInvalidArgument)
	}

	item, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		return domain.Item{}, err
	}

	saved, err := s.repo.Update(ctx, itemID, change(item))
	if err != nil {
		return domain.Item{}, fmt.Errorf("failed to update item attributes: %w", err)
	}

	publishItemEvent(ctx, s.publisher, domain.EventTypeItemUpdated, itemID)
	return saved, nil
}

type SetDimensionsCommand struct {
	ItemID     uint
	Dimensions domain.Dimensions
}

type SetDimensionsHandler struct {
	attributeSetter
}

func NewSetDimensionsHandler(repo domain.ItemRepository, publisher domain.EventPublisher) *SetDimensionsHandler {
	return &SetDimensionsHandler{attributeSetter{repo: repo, publisher: orNop(publisher)}}
}

// Handle sets the dimensions of an item and returns them.
func (h *SetDimensionsHandler) Handle(ctx context.Context, cmd SetDimensionsCommand) (domain.Dimensions, error) {
	if err := cmd.Dimensions.Validate(); err != nil {
		return domain.Dimensions{}, err
	}
	saved, err := h.apply(ctx, cmd.ItemID, func(item domain.Item) domain.Item {
		return item.WithDimensions(cmd.Dimensions)
	})
	if err != nil {
		return domain.Dimensions{}, err
	}
	return *saved.Dimensions, nil
}

type SetWeightCommand struct {
	ItemID uint
	Weight domain.Weight
}

type SetWeightHandler struct {
	attributeSetter
}

func NewSetWeightHandler(repo domain.ItemRepository, publisher domain.EventPublisher) *SetWeightHandler {
	return &SetWeightHandler{attributeSetter{repo: repo, publisher: orNop(publisher)}}
}

// Handle sets the unit weight of an item and returns it. A missing unit
// defaults to kg.
func (h *SetWeightHandler) Handle(ctx context.Context, cmd SetWeightCommand) (domain.Weight, error) {
	if err := cmd.Weight.Validate(); err != nil {
		return domain.Weight{}, err
	}
	saved, err := h.apply(ctx, cmd.ItemID, func(item domain.Item) domain.Item {
		return item.WithWeight(cmd.Weight)
	})
	if err != nil {
		return domain.Weight{}, err
	}
	return *saved.Weight, nil
}

type SetPackagingCommand struct {
	ItemID    uint
	Packaging domain.Packaging
}

type SetPackagingHandler struct {
	attributeSetter
}

func NewSetPackagingHandler(repo domain.ItemRepository, publisher domain.EventPublisher) *SetPackagingHandler {
	return &SetPackagingHandler{attributeSetter{repo: repo, publisher: orNop(publisher)}}
}

// Handle sets the packaging of an item and returns it.
func (h *SetPackagingHandler) Handle(ctx context.Context, cmd SetPackagingCommand) (domain.Packaging, error) {
	saved, err := h.apply(ctx, cmd.ItemID, func(item domain.Item) domain.Item {
		return item.WithPackaging(cmd.Packaging)
	})
	if err != nil {
		return domain.Packaging{}, err
	}
	return *saved.Packaging, nil
}
