package command

import (
	"context"
	"fmt"

	"github.com/tair/inventory-information/internal/inventory/domain"
)

// DeleteItemCommand represents the command to delete an item
type DeleteItemCommand struct {
	ID uint
}

// DeleteItemHandler handles delete item command
type DeleteItemHandler struct {
	repo      domain.ItemRepository
	publisher domain.EventPublisher
}

// NewDeleteItemHandler creates a new delete item handler
func NewDeleteItemHandler(repo domain.ItemRepository, publisher domain.EventPublisher) *DeleteItemHandler {
	return &DeleteItemHandler{repo: repo, publisher: orNop(publisher)}
}

// Handle executes the delete item command
func (h *DeleteItemHandler) Handle(ctx context.Context, cmd DeleteItemCommand) error {
	if cmd.ID == 0 {
		return fmt.Errorf("%w: id is required", domain.ErrInvalidArgument)
	}

	if err := h.repo.Delete(ctx, cmd.ID); err != nil {
		return err
	}

	publishItemEvent(ctx, h.publisher, domain.EventTypeItemRemoved, cmd.ID)
	return nil
}
