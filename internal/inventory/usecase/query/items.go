package query

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/inventory-information/internal/inventory/domain"
	"github.com/tair/inventory-information/pkg/logger"
)

// GetItemQuery represents the query to get an item
type GetItemQuery struct {
	ID uint
}

// GetItemHandler handles get item query
type GetItemHandler struct {
	repo domain.ItemRepository
}

// NewGetItemHandler creates a new get item handler
func NewGetItemHandler(repo domain.ItemRepository) *GetItemHandler {
	return &GetItemHandler{repo: repo}
}

// Handle executes the get item query
func (h *GetItemHandler) Handle(ctx context.Context, query GetItemQuery) (domain.Item, error) {
	if query.ID == 0 {
		return domain.Item{}, fmt.Errorf("%w: id is required", domain.ErrInvalidArgument)
	}
	return h.repo.FindByID(ctx, query.ID)
}

// resolveItems loads the given items in order, skipping ids that do not exist.
func resolveItems(ctx context.Context, repo domain.ItemRepository, ids []uint) ([]domain.Item, error) {
	items := make([]domain.Item, 0, len(ids))
	for _, id := range ids {
		item, err := repo.FindByID(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			logger.Debug(ctx).Uint("item_id", id).Msg("Skipping unknown item")
			continue
		}
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// resolveNonEmpty is resolveItems for operations that need at least one item.
func resolveNonEmpty(ctx context.Context, repo domain.ItemRepository, ids []uint) ([]domain.Item, error) {
	items, err := resolveItems(ctx, repo, ids)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: none of the requested items exist", domain.ErrInvalidArgument)
	}
	return items, nil
}
