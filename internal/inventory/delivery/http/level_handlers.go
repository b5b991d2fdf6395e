package http

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/inventory-information/internal/inventory/domain"
	"github.com/tair/inventory-information/internal/inventory/usecase/command"
	"github.com/tair/inventory-information/internal/inventory/usecase/query"
)

type saveLevelRequest struct {
	ItemID            uint   `json:"itemId" validate:"required"`
	LocationCode      string `json:"locationCode" validate:"required"`
	AvailableQuantity int    `json:"availableQuantity" validate:"gte=0"`
	ReservedQuantity  int    `json:"reservedQuantity" validate:"gte=0"`
}

type quantityRequest struct {
	NewQuantity *int `json:"newQuantity" validate:"required,gte=0"`
}

type changeRequest struct {
	OldQuantity int    `json:"oldQuantity" validate:"gte=0"`
	NewQuantity int    `json:"newQuantity" validate:"gte=0"`
	Reason      string `json:"reason" validate:"required"`
}

// levelTarget reads the {itemId} path variable and the locationCode query parameter.
func levelTarget(r *http.Request) (uint, string, error) {
	itemID, err := pathID(r, "itemId")
	if err != nil {
		return 0, "", err
	}
	locationCode, err := requiredParam(r, "locationCode")
	if err != nil {
		return 0, "", err
	}
	return itemID, locationCode, nil
}

// GetLevel godoc
// @Summary Get inventory level
// @Tags Levels
// @Produce json
// @Param itemId path int true "Item ID"
// @Param locationCode query string true "Location code"
// @Success 200 {object} Response{data=domain.InventoryLevel}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /inventory-levels/{itemId} [get]
func (h *InventoryHandler) GetLevel(w http.ResponseWriter, r *http.Request) {
	itemID, locationCode, err := levelTarget(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	level, err := h.queries.GetLevel.Handle(r.Context(), query.GetLevelQuery{
		ItemID:       itemID,
		LocationCode: locationCode,
	})
	if err != nil {
		respondFailure(w, r, err, "Failed to get inventory level")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    level,
	})
}

// SaveLevel godoc
// @Summary Save inventory level
// @Tags Levels
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{itemId=int,locationCode=string,availableQuantity=int,reservedQuantity=int} true "Level"
// @Success 200 {object} Response{data=domain.InventoryLevel}
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Failure 403 {object} Response
// @Failure 404 {object} Response
// @Failure 502 {object} Response
// @Router /inventory-levels [post]
func (h *InventoryHandler) SaveLevel(w http.ResponseWriter, r *http.Request) {
	var req saveLevelRequest
	if err := h.decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	level, err := h.commands.SaveLevel.Handle(r.Context(), command.SaveLevelCommand{
		ItemID:            req.ItemID,
		LocationCode:      req.LocationCode,
		AvailableQuantity: req.AvailableQuantity,
		ReservedQuantity:  req.ReservedQuantity,
	})
	if err != nil {
		respondFailure(w, r, err, "Failed to save inventory level")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Inventory level saved successfully",
		Data:    level,
	})
}

// UpdateAvailableQuantity godoc
// @Summary Update available quantity
// @Tags Levels
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param itemId path int true "Item ID"
// @Param locationCode query string true "Location code"
// @Param request body object{newQuantity=int} true "Quantity"
// @Success 200 {object} Response{data=domain.InventoryLevel}
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Failure 403 {object} Response
// @Failure 404 {object} Response
// @Router /inventory-levels/{itemId}/quantity [put]
func (h *InventoryHandler) UpdateAvailableQuantity(w http.ResponseWriter, r *http.Request) {
	itemID, locationCode, quantity, ok := h.quantityChange(w, r)
	if !ok {
		return
	}

	level, err := h.commands.UpdateAvailableQuantity.Handle(r.Context(), command.UpdateAvailableQuantityCommand{
		ItemID:       itemID,
		LocationCode: locationCode,
		Quantity:     quantity,
	})
	if err != nil {
		respondFailure(w, r, err, "Failed to update quantity")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Quantity updated successfully",
		Data:    level,
	})
}

// UpdateReservedQuantity godoc
// @Summary Update reserved quantity
// @Tags Levels
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param itemId path int true "Item ID"
// @Param locationCode query string true "Location code"
// @Param request body object{newQuantity=int} true "Quantity"
// @Success 200 {object} Response{data=domain.InventoryLevel}
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Failure 403 {object} Response
// @Failure 404 {object} Response
// @Router /inventory-levels/{itemId}/reserved [put]
func (h *InventoryHandler) UpdateReservedQuantity(w http.ResponseWriter, r *http.Request) {
	itemID, locationCode, quantity, ok := h.quantityChange(w, r)
	if !ok {
		return
	}

	level, err := h.commands.UpdateReservedQuantity.Handle(r.Context(), command.UpdateReservedQuantityCommand{
		ItemID:       itemID,
		LocationCode: locationCode,
		Quantity:     quantity,
	})
	if err != nil {
		respondFailure(w, r, err, "Failed to update reserved quantity")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Reserved quantity updated successfully",
		Data:    level,
	})
}

func (h *InventoryHandler) quantityChange(w http.ResponseWriter, r *http.Request) (uint, string, int, bool) {
	itemID, locationCode, err := levelTarget(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return 0, "", 0, false
	}

	var req quantityRequest
	if err := h.decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return 0, "", 0, false
	}
	return itemID, locationCode, *req.NewQuantity, true
}

// UpdateMultipleQuantities godoc
// @Summary Update several available quantities
// @Tags Levels
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body []domain.QuantityUpdate true "Updates"
// @Success 200 {object} Response{data=[]domain.InventoryLevel}
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Failure 403 {object} Response
// @Router /inventory-levels/quantities [put]
func (h *InventoryHandler) UpdateMultipleQuantities(w http.ResponseWriter, r *http.Request) {
	var updates []domain.QuantityUpdate
	if err := h.decodeBody(r, &updates); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	for i, update := range updates {
		if err := h.validate.Struct(update); err != nil {
			respondError(w, http.StatusBadRequest, fmt.Sprintf("update %d: %s", i, err.Error()))
			return
		}
	}

	levels, err := h.commands.UpdateMultipleQuantities.Handle(r.Context(), updates)
	if err != nil {
		respondFailure(w, r, err, "Failed to update quantities")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Quantities updated successfully",
		Data:    levels,
	})
}

// DeleteLevel godoc
// @Summary Evict inventory level from the cache
// @Tags Levels
// @Security BearerAuth
// @Produce json
// @Param itemId path int true "Item ID"
// @Param locationCode query string true "Location code"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Failure 403 {object} Response
// @Router /inventory-levels/{itemId} [delete]
func (h *InventoryHandler) DeleteLevel(w http.ResponseWriter, r *http.Request) {
	itemID, locationCode, err := levelTarget(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	err = h.commands.DeleteLevel.Handle(r.Context(), command.DeleteLevelCommand{
		ItemID:       itemID,
		LocationCode: locationCode,
	})
	if err != nil {
		respondFailure(w, r, err, "Failed to delete inventory level")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Inventory level deleted successfully",
	})
}

// ListLevelsForLocation godoc
// @Summary List cached levels for a location
// @Tags Levels
// @Produce json
// @Param locationCode path string true "Location code"
// @Success 200 {object} Response{data=[]domain.InventoryLevel}
// @Router /inventory-levels/location/{locationCode} [get]
func (h *InventoryHandler) ListLevelsForLocation(w http.ResponseWriter, r *http.Request) {
	levels, err := h.queries.ListLevels.Handle(r.Context(), mux.Vars(r)["locationCode"])
	if err != nil {
		respondFailure(w, r, err, "Failed to list inventory levels")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    levels,
	})
}

// GetMultipleLevels godoc
// @Summary Get levels for several items
// @Tags Levels
// @Produce json
// @Param itemIds query string true "Comma separated item IDs"
// @Param locationCode query string true "Location code"
// @Success 200 {object} Response{data=[]domain.InventoryLevel}
// @Failure 400 {object} Response
// @Router /inventory-levels/batch [get]
func (h *InventoryHandler) GetMultipleLevels(w http.ResponseWriter, r *http.Request) {
	itemIDs, err := parseIDList(r.URL.Query()["itemIds"], "itemIds")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	locationCode, err := requiredParam(r, "locationCode")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	levels, err := h.queries.GetMultipleLevels.Handle(r.Context(), query.GetMultipleLevelsQuery{
		ItemIDs:      itemIDs,
		LocationCode: locationCode,
	})
	if err != nil {
		respondFailure(w, r, err, "Failed to get inventory levels")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    levels,
	})
}

// GetChanges godoc
// @Summary Get change history
// @Tags Levels
// @Produce json
// @Param itemId path int true "Item ID"
// @Param locationCode query string true "Location code"
// @Success 200 {object} Response{data=[]domain.InventoryChange}
// @Failure 400 {object} Response
// @Router /inventory-levels/{itemId}/history [get]
func (h *InventoryHandler) GetChanges(w http.ResponseWriter, r *http.Request) {
	itemID, locationCode, err := levelTarget(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	changes, err := h.queries.GetChanges.Handle(r.Context(), query.GetLevelQuery{
		ItemID:       itemID,
		LocationCode: locationCode,
	})
	if err != nil {
		respondFailure(w, r, err, "Failed to get change history")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    changes,
	})
}

// RecordChange godoc
// @Summary Record a change
// @Tags Levels
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param itemId path int true "Item ID"
// @Param locationCode query string true "Location code"
// @Param request body object{oldQuantity=int,newQuantity=int,reason=string} true "Change"
// @Success 201 {object} Response{data=domain.InventoryChange}
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Failure 403 {object} Response
// @Router /inventory-levels/{itemId}/history [post]
func (h *InventoryHandler) RecordChange(w http.ResponseWriter, r *http.Request) {
	itemID, locationCode, err := levelTarget(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req changeRequest
	if err := h.decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	change, err := h.commands.RecordChange.Handle(r.Context(), command.RecordChangeCommand{
		ItemID:       itemID,
		LocationCode: locationCode,
		OldQuantity:  req.OldQuantity,
		NewQuantity:  req.NewQuantity,
		Reason:       req.Reason,
	})
	if err != nil {
		respondFailure(w, r, err, "Failed to record change")
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Change recorded successfully",
		Data:    change,
	})
}
