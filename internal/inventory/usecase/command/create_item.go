package command

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tair/inventory-information/internal/inventory/domain"
	"github.com/tair/inventory-information/pkg/logger"
)

// CreateItemCommand represents the command to create an inventory item
type CreateItemCommand struct {
	Name       string
	Quantity   int
	Price      decimal.Decimal
	Dimensions *domain.Dimensions
	Weight     *domain.Weight
	Packaging  *domain.Packaging
}

// CreateItemHandler handles create item command
type CreateItemHandler struct {
	repo      domain.ItemRepository
	publisher domain.EventPublisher
}

// NewCreateItemHandler creates a new create item handler
func NewCreateItemHandler(repo domain.ItemRepository, publisher domain.EventPublisher) *CreateItemHandler {
	return &CreateItemHandler{repo: repo, publisher: orNop(publisher)}
}

// Handle executes the create item command
func (h *CreateItemHandler) Handle(ctx context.Context, cmd CreateItemCommand) (domain.Item, error) {
	item := domain.Item{
		Name:       cmd.Name,
		Quantity:   cmd.Quantity,
		Price:      cmd.Price,
		Dimensions: cmd.Dimensions,
		Packaging:  cmd.Packaging,
	}
	if cmd.Weight != nil {
		item = item.WithWeight(*cmd.Weight)
	}
	if err := item.Validate(); err != nil {
		return domain.Item{}, err
	}

	created, err := h.repo.Create(ctx, item)
	if err != nil {
		return domain.Item{}, fmt.Errorf("failed to create item: %w", err)
	}

	logger.Info(ctx).Uint("item_id", created.ID).Str("name", created.Name).Msg("Item created")
	publishItemEvent(ctx, h.publisher, domain.EventTypeItemCreated, created.ID)
	return created, nil
}
