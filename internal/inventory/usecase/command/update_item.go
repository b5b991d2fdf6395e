package command

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tair/inventory-information/internal/inventory/domain"
)

// UpdateItemCommand replaces the name, quantity and price of an item.
// Physical attributes are left untouched.
type UpdateItemCommand struct {
	ID       uint
	Name     string
	Quantity int
	Price    decimal.Decimal
}

// UpdateItemHandler handles update item command
type UpdateItemHandler struct {
	repo      domain.ItemRepository
	publisher domain.EventPublisher
}

// NewUpdateItemHandler creates a new update item handler
func NewUpdateItemHandler(repo domain.ItemRepository, publisher domain.EventPublisher) *UpdateItemHandler {
	return &UpdateItemHandler{repo: repo, publisher: orNop(publisher)}
}

// Handle executes the update item command
func (h *UpdateItemHandler) Handle(ctx context.Context, cmd UpdateItemCommand) (domain.Item, error) {
	if cmd.ID == 0 {
		return domain.Item{}, fmt.Errorf("%w: id is required", domain.ErrInvalidArgument)
	}

	existing, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return domain.Item{}, err
	}

	updated := existing.WithDetails(cmd.Name, cmd.Quantity, cmd.Price)
	if err := updated.Validate(); err != nil {
		return domain.Item{}, err
	}

	saved, err := h.repo.Update(ctx, cmd.ID, updated)
	if err != nil {
		return domain.Item{}, fmt.Errorf("failed to update item: %w", err)
	}

	publishItemEvent(ctx, h.publisher, domain.EventTypeItemUpdated, saved.ID)
	return saved, nil
}
