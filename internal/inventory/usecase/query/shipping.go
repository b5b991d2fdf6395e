package query

import (
	"context"
	"fmt"

	"github.com/tair/inventory-information/internal/inventory/domain"
	"github.com/tair/inventory-information/internal/inventory/shipping"
)

// ShippingArrangementQuery groups items into shipments under a weight cap
type ShippingArrangementQuery struct {
	ItemIDs     []uint
	MaxCapacity domain.Weight
}

type ShippingArrangementHandler struct {
	repo domain.ItemRepository
}

func NewShippingArrangementHandler(repo domain.ItemRepository) *ShippingArrangementHandler {
	return &ShippingArrangementHandler{repo: repo}
}

func (h *ShippingArrangementHandler) Handle(ctx context.Context, query ShippingArrangementQuery) (shipping.Arrangement, error) {
	if query.MaxCapacity.Value <= 0 {
		return shipping.Arrangement{}, fmt.Errorf("%w: maxCapacityValue must be positive", domain.ErrInvalidArgument)
	}
	items, err := resolveNonEmpty(ctx, h.repo, query.ItemIDs)
	if err != nil {
		return shipping.Arrangement{}, err
	}
	return shipping.Arrange(items, query.MaxCapacity), nil
}

type LoadingSequenceHandler struct {
	repo domain.ItemRepository
}

func NewLoadingSequenceHandler(repo domain.ItemRepository) *LoadingSequenceHandler {
	return &LoadingSequenceHandler{repo: repo}
}

func (h *LoadingSequenceHandler) Handle(ctx context.Context, itemIDs []uint) (shipping.LoadingSequence, error) {
	items, err := resolveNonEmpty(ctx, h.repo, itemIDs)
	if err != nil {
		return shipping.LoadingSequence{}, err
	}
	return shipping.PlanLoading(items), nil
}

// CostEstimateQuery prices the transport of a set of items
type CostEstimateQuery struct {
	ItemIDs       []uint
	DistanceKm    float64
	BaseRatePerKm float64
}

type CostEstimateHandler struct {
	repo domain.ItemRepository
}

func NewCostEstimateHandler(repo domain.ItemRepository) *CostEstimateHandler {
	return &CostEstimateHandler{repo: repo}
}

func (h *CostEstimateHandler) Handle(ctx context.Context, query CostEstimateQuery) (shipping.CostEstimate, error) {
	if query.DistanceKm < 0 || query.BaseRatePerKm < 0 {
		return shipping.CostEstimate{}, fmt.Errorf("%w: distance and rate cannot be negative", domain.ErrInvalidArgument)
	}
	items, err := resolveNonEmpty(ctx, h.repo, query.ItemIDs)
	if err != nil {
		return shipping.CostEstimate{}, err
	}
	return shipping.EstimateCosts(items, query.DistanceKm, query.BaseRatePerKm), nil
}
