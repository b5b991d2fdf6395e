package http

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/tair/inventory-information/internal/inventory/domain"
	"github.com/tair/inventory-information/internal/inventory/usecase/command"
	"github.com/tair/inventory-information/internal/inventory/usecase/query"
)

type createItemRequest struct {
	Name       string             `json:"name" validate:"required"`
	Quantity   int                `json:"quantity" validate:"gte=0"`
	Price      decimal.Decimal    `json:"price"`
	Dimensions *domain.Dimensions `json:"dimensions"`
	Weight     *domain.Weight     `json:"weight"`
	Packaging  *domain.Packaging  `json:"packaging"`
}

type updateItemRequest struct {
	Name     string          `json:"name" validate:"required"`
	Quantity int             `json:"quantity" validate:"gte=0"`
	Price    decimal.Decimal `json:"price"`
}

type dimensionsRequest struct {
	InventoryItemID uint `json:"inventoryItemId"`
	domain.Dimensions
}

type weightRequest struct {
	InventoryItemID uint `json:"inventoryItemId"`
	domain.Weight
}

type packagingRequest struct {
	InventoryItemID uint `json:"inventoryItemId"`
	domain.Packaging
}

// CreateItem godoc
// @Summary Create inventory item
// @Tags Inventory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{name=string,quantity=int,price=number,dimensions=domain.Dimensions,weight=domain.Weight,packaging=domain.Packaging} true "Item data"
// @Success 201 {object} Response{data=domain.Item}
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Failure 403 {object} Response
// @Router /inventory [post]
func (h *InventoryHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := h.decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.commands.CreateItem.Handle(r.Context(), command.CreateItemCommand{
		Name:       req.Name,
		Quantity:   req.Quantity,
		Price:      req.Price,
		Dimensions: req.Dimensions,
		Weight:     req.Weight,
		Packaging:  req.Packaging,
	})
	if err != nil {
		respondFailure(w, r, err, "Failed to create item")
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Item created successfully",
		Data:    item,
	})
}

// GetItem godoc
// @Summary Get inventory item by ID
// @Tags Inventory
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} Response{data=domain.Item}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /inventory/{id} [get]
func (h *InventoryHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.queries.GetItem.Handle(r.Context(), query.GetItemQuery{ID: id})
	if err != nil {
		respondFailure(w, r, err, "Failed to get item")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    item,
	})
}

// UpdateItem godoc
// @Summary Update inventory item
// @Tags Inventory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param request body object{name=string,quantity=int,price=number} true "Item data"
// @Success 200 {object} Response{data=domain.Item}
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Failure 403 {object} Response
// @Failure 404 {object} Response
// @Router /inventory/{id} [put]
func (h *InventoryHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req updateItemRequest
	if err := h.decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.commands.UpdateItem.Handle(r.Context(), command.UpdateItemCommand{
		ID:       id,
		Name:     req.Name,
		Quantity: req.Quantity,
		Price:    req.Price,
	})
	if err != nil {
		respondFailure(w, r, err, "Failed to update item")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Item updated successfully",
		Data:    item,
	})
}

// DeleteItem godoc
// @Summary Delete inventory item
// @Tags Inventory
// @Security BearerAuth
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Failure 403 {object} Response
// @Failure 404 {object} Response
// @Router /inventory/{id} [delete]
func (h *InventoryHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.commands.DeleteItem.Handle(r.Context(), command.DeleteItemCommand{ID: id}); err != nil {
		respondFailure(w, r, err, "Failed to delete item")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Item deleted successfully",
	})
}

// SetDimensions godoc
// @Summary Set item dimensions
// @Tags Attributes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int false "Item ID (PUT only)"
// @Param request body object{inventoryItemId=int,length=number,width=number,height=number} true "Dimensions"
// @Success 200 {object} Response{data=domain.Dimensions}
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Failure 403 {object} Response
// @Failure 404 {object} Response
// @Router /inventory/attributes/dimensions [post]
// @Router /inventory/attributes/dimensions/{id} [put]
func (h *InventoryHandler) SetDimensions(w http.ResponseWriter, r *http.Request) {
	var req dimensionsRequest
	if err := h.decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	itemID, err := attributeTarget(r, req.InventoryItemID)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	dimensions, err := h.commands.SetDimensions.Handle(r.Context(), command.SetDimensionsCommand{
		ItemID:     itemID,
		Dimensions: req.Dimensions,
	})
	if err != nil {
		respondFailure(w, r, err, "Failed to set dimensions")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    dimensions,
	})
}

// SetWeight godoc
// @Summary Set item weight
// @Tags Attributes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int false "Item ID (PUT only)"
// @Param request body object{inventoryItemId=int,value=number,unit=string} true "Weight"
// @Success 200 {object} Response{data=domain.Weight}
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Failure 403 {object} Response
// @Failure 404 {object} Response
// @Router /inventory/attributes/weight [post]
// @Router /inventory/attributes/weight/{id} [put]
func (h *InventoryHandler) SetWeight(w http.ResponseWriter, r *http.Request) {
	var req weightRequest
	if err := h.decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	itemID, err := attributeTarget(r, req.InventoryItemID)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	weight, err := h.commands.SetWeight.Handle(r.Context(), command.SetWeightCommand{
		ItemID: itemID,
		Weight: domain.NewWeight(req.Value, req.Unit),
	})
	if err != nil {
		respondFailure(w, r, err, "Failed to set weight")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    weight,
	})
}

// SetPackaging godoc
// @Summary Set item packaging
// @Tags Attributes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int false "Item ID (PUT only)"
// @Param request body object{inventoryItemId=int,isSensitive=bool,packagingType=string} true "Packaging"
// @Success 200 {object} Response{data=domain.Packaging}
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Failure 403 {object} Response
// @Failure 404 {object} Response
// @Router /inventory/attributes/packaging [post]
// @Router /inventory/attributes/packaging/{id} [put]
func (h *InventoryHandler) SetPackaging(w http.ResponseWriter, r *http.Request) {
	var req packagingRequest
	if err := h.decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	itemID, err := attributeTarget(r, req.InventoryItemID)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	packaging, err := h.commands.SetPackaging.Handle(r.Context(), command.SetPackagingCommand{
		ItemID:    itemID,
		Packaging: req.Packaging,
	})
	if err != nil {
		respondFailure(w, r, err, "Failed to set packaging")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    packaging,
	})
}

// attributeTarget prefers the item id in the path over the one in the body.
func attributeTarget(r *http.Request, bodyID uint) (uint, error) {
	if _, ok := mux.Vars(r)["id"]; ok {
		return pathID(r, "id")
	}
	if bodyID == 0 {
		return 0, fmt.Errorf("%w: inventoryItemId is required", domain.ErrInvalidArgument)
	}
	return bodyID, nil
}
