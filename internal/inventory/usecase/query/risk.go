package query

import (
	"context"

	"github.com/tair/inventory-information/internal/inventory/domain"
	"github.com/tair/inventory-information/internal/inventory/risk"
)

// AssessRiskHandler scores the handling risk of one item
type AssessRiskHandler struct {
	repo domain.ItemRepository
}

func NewAssessRiskHandler(repo domain.ItemRepository) *AssessRiskHandler {
	return &AssessRiskHandler{repo: repo}
}

func (h *AssessRiskHandler) Handle(ctx context.Context, itemID uint) (risk.Assessment, error) {
	item, err := h.repo.FindByID(ctx, itemID)
	if err != nil {
		return risk.Assessment{}, err
	}
	return risk.AssessItem(item), nil
}

// HandlingRequirementsHandler derives handling instructions for one item
type HandlingRequirementsHandler struct {
	repo domain.ItemRepository
}

func NewHandlingRequirementsHandler(repo domain.ItemRepository) *HandlingRequirementsHandler {
	return &HandlingRequirementsHandler{repo: repo}
}

func (h *HandlingRequirementsHandler) Handle(ctx context.Context, itemID uint) (risk.HandlingRequirements, error) {
	item, err := h.repo.FindByID(ctx, itemID)
	if err != nil {
		return risk.HandlingRequirements{}, err
	}
	return risk.AssessHandling(item), nil
}

// BatchAssessmentHandler assesses a group of items together
type BatchAssessmentHandler struct {
	repo domain.ItemRepository
}

func NewBatchAssessmentHandler(repo domain.ItemRepository) *BatchAssessmentHandler {
	return &BatchAssessmentHandler{repo: repo}
}

// Handle skips unknown ids and fails when none of them resolve
func (h *BatchAssessmentHandler) Handle(ctx context.Context, itemIDs []uint) (risk.BatchAssessment, error) {
	items, err := resolveNonEmpty(ctx, h.repo, itemIDs)
	if err != nil {
		return risk.BatchAssessment{}, err
	}
	return risk.AssessBatch(items), nil
}
