package http

import (
	"net/http"
	"strings"

	"github.com/tair/inventory-information/internal/inventory/domain"
	"github.com/tair/inventory-information/internal/inventory/usecase/query"
)

// AssessRisk godoc
// @Summary Assess item risk
// @Tags Risk
// @Produce json
// @Param itemId path int true "Item ID"
// @Success 200 {object} Response{data=risk.Assessment}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /risk/assess/{itemId} [get]
func (h *InventoryHandler) AssessRisk(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, "itemId")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	assessment, err := h.queries.AssessRisk.Handle(r.Context(), itemID)
	if err != nil {
		respondFailure(w, r, err, "Failed to assess risk")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: assessment})
}

// HandlingRequirements godoc
// @Summary Get handling requirements
// @Tags Risk
// @Produce json
// @Param itemId path int true "Item ID"
// @Success 200 {object} Response{data=risk.HandlingRequirements}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /risk/handling-requirements/{itemId} [get]
func (h *InventoryHandler) HandlingRequirements(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, "itemId")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	requirements, err := h.queries.HandlingRequirements.Handle(r.Context(), itemID)
	if err != nil {
		respondFailure(w, r, err, "Failed to get handling requirements")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: requirements})
}

// BatchAssessment godoc
// @Summary Assess a batch of items
// @Tags Risk
// @Accept json
// @Produce json
// @Param request body []int true "Item IDs"
// @Success 200 {object} Response{data=risk.BatchAssessment}
// @Failure 400 {object} Response
// @Router /risk/batch-assessment [post]
func (h *InventoryHandler) BatchAssessment(w http.ResponseWriter, r *http.Request) {
	var itemIDs []uint
	if err := h.decodeBody(r, &itemIDs); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	assessment, err := h.queries.BatchAssessment.Handle(r.Context(), itemIDs)
	if err != nil {
		respondFailure(w, r, err, "Failed to assess batch")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: assessment})
}

// ShippingArrangement godoc
// @Summary Group items into shipments
// @Tags Shipping
// @Accept json
// @Produce json
// @Param maxCapacityValue query number true "Truck capacity"
// @Param maxCapacityUnit query string false "Capacity unit"
// @Param request body []int true "Item IDs"
// @Success 200 {object} Response{data=shipping.Arrangement}
// @Failure 400 {object} Response
// @Router /shipping/arrangement [post]
func (h *InventoryHandler) ShippingArrangement(w http.ResponseWriter, r *http.Request) {
	capacity, err := floatParam(r, "maxCapacityValue")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	unit := strings.TrimSpace(r.URL.Query().Get("maxCapacityUnit"))

	var itemIDs []uint
	if err := h.decodeBody(r, &itemIDs); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	arrangement, err := h.queries.ShippingArrangement.Handle(r.Context(), query.ShippingArrangementQuery{
		ItemIDs:     itemIDs,
		MaxCapacity: domain.NewWeight(capacity, unit),
	})
	if err != nil {
		respondFailure(w, r, err, "Failed to calculate shipping arrangement")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: arrangement})
}

// LoadingSequence godoc
// @Summary Plan loading sequence
// @Tags Shipping
// @Accept json
// @Produce json
// @Param request body []int true "Item IDs"
// @Success 200 {object} Response{data=shipping.LoadingSequence}
// @Failure 400 {object} Response
// @Router /shipping/loading-sequence [post]
func (h *InventoryHandler) LoadingSequence(w http.ResponseWriter, r *http.Request) {
	var itemIDs []uint
	if err := h.decodeBody(r, &itemIDs); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	sequence, err := h.queries.LoadingSequence.Handle(r.Context(), itemIDs)
	if err != nil {
		respondFailure(w, r, err, "Failed to plan loading sequence")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: sequence})
}

// CostEstimate godoc
// @Summary Estimate shipping costs
// @Tags Shipping
// @Accept json
// @Produce json
// @Param distanceKm query number true "Distance in km"
// @Param baseRatePerKm query number true "Rate per km"
// @Param request body []int true "Item IDs"
// @Success 200 {object} Response{data=shipping.CostEstimate}
// @Failure 400 {object} Response
// @Router /shipping/cost-estimate [post]
func (h *InventoryHandler) CostEstimate(w http.ResponseWriter, r *http.Request) {
	distance, err := floatParam(r, "distanceKm")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	rate, err := floatParam(r, "baseRatePerKm")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var itemIDs []uint
	if err := h.decodeBody(r, &itemIDs); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	estimate, err := h.queries.CostEstimate.Handle(r.Context(), query.CostEstimateQuery{
		ItemIDs:       itemIDs,
		DistanceKm:    distance,
		BaseRatePerKm: rate,
	})
	if err != nil {
		respondFailure(w, r, err, "Failed to estimate shipping costs")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: estimate})
}

// OptimizeStorage godoc
// @Summary Assign items to storage zones
// @Tags Storage
// @Accept json
// @Produce json
// @Param request body []int true "Item IDs"
// @Success 200 {object} Response{data=storage.Layout}
// @Failure 400 {object} Response
// @Router /storage/optimize [post]
func (h *InventoryHandler) OptimizeStorage(w http.ResponseWriter, r *http.Request) {
	var itemIDs []uint
	if err := h.decodeBody(r, &itemIDs); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	layout, err := h.queries.OptimizeStorage.Handle(r.Context(), itemIDs)
	if err != nil {
		respondFailure(w, r, err, "Failed to optimize storage")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: layout})
}

// Compatibility godoc
// @Summary Check storage compatibility
// @Tags Storage
// @Produce json
// @Param firstItemId query int true "First item ID"
// @Param secondItemId query int true "Second item ID"
// @Success 200 {object} Response{data=storage.Compatibility}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /storage/compatibility [get]
func (h *InventoryHandler) Compatibility(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	first, err := parseID(q.Get("firstItemId"), "firstItemId")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	second, err := parseID(q.Get("secondItemId"), "secondItemId")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	compatibility, err := h.queries.Compatibility.Handle(r.Context(), query.CompatibilityQuery{
		FirstItemID:  first,
		SecondItemID: second,
	})
	if err != nil {
		respondFailure(w, r, err, "Failed to check compatibility")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: compatibility})
}

// StorageArrangement godoc
// @Summary Calculate palette arrangement
// @Tags Storage
// @Produce json
// @Param itemId path int true "Item ID"
// @Param paletteCapacity query number true "Palette capacity"
// @Success 200 {object} Response{data=storage.Arrangement}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /storage/arrangement/{itemId} [get]
func (h *InventoryHandler) StorageArrangement(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, "itemId")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	capacity, err := floatParam(r, "paletteCapacity")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	arrangement, err := h.queries.StorageArrangement.Handle(r.Context(), query.StorageArrangementQuery{
		ItemID:          itemID,
		PaletteCapacity: capacity,
	})
	if err != nil {
		respondFailure(w, r, err, "Failed to calculate storage arrangement")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: arrangement})
}
