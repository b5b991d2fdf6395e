package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/tair/inventory-information/internal/inventory/domain"
	"github.com/tair/inventory-information/internal/inventory/usecase/command"
	"github.com/tair/inventory-information/internal/inventory/usecase/query"
	"github.com/tair/inventory-information/pkg/logger"
)

// Commands groups the write-side use cases served over HTTP.
type Commands struct {
	CreateItem               *command.CreateItemHandler
	UpdateItem               *command.UpdateItemHandler
	DeleteItem               *command.DeleteItemHandler
	SetDimensions            *command.SetDimensionsHandler
	SetWeight                *command.SetWeightHandler
	SetPackaging             *command.SetPackagingHandler
	SaveLevel                *command.SaveLevelHandler
	UpdateAvailableQuantity  *command.UpdateAvailableQuantityHandler
	UpdateReservedQuantity   *command.UpdateReservedQuantityHandler
	UpdateMultipleQuantities *command.UpdateMultipleQuantitiesHandler
	DeleteLevel              *command.DeleteLevelHandler
	RecordChange             *command.RecordChangeHandler
}

// Queries groups the read-side use cases served over HTTP.
type Queries struct {
	GetItem              *query.GetItemHandler
	GetLevel             *query.GetLevelHandler
	ListLevels           *query.ListLevelsForLocationHandler
	GetMultipleLevels    *query.GetMultipleLevelsHandler
	GetChanges           *query.GetChangesHandler
	AssessRisk           *query.AssessRiskHandler
	HandlingRequirements *query.HandlingRequirementsHandler
	BatchAssessment      *query.BatchAssessmentHandler
	ShippingArrangement  *query.ShippingArrangementHandler
	LoadingSequence      *query.LoadingSequenceHandler
	CostEstimate         *query.CostEstimateHandler
	OptimizeStorage      *query.OptimizeStorageHandler
	Compatibility        *query.CompatibilityHandler
	StorageArrangement   *query.StorageArrangementHandler
}

// InventoryHandler handles HTTP requests for the inventory service
type InventoryHandler struct {
	commands Commands
	queries  Queries
	auth     *Authenticator
	validate *validator.Validate
	started  time.Time
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(commands Commands, queries Queries, auth *Authenticator) *InventoryHandler {
	if auth == nil {
		auth = NewAuthenticator("")
	}
	return &InventoryHandler{
		commands: commands,
		queries:  queries,
		auth:     auth,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		started:  time.Now(),
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RegisterRoutes registers all inventory routes
func (h *InventoryHandler) RegisterRoutes(router *mux.Router) {
	write := h.auth.RequireRole(RoleAdmin)

	levels := router.PathPrefix("/inventory-levels").Subrouter()
	levels.HandleFunc("", write(h.SaveLevel)).Methods("POST")
	levels.HandleFunc("/quantities", write(h.UpdateMultipleQuantities)).Methods("PUT")
	levels.HandleFunc("/batch", h.GetMultipleLevels).Methods("GET")
	levels.HandleFunc("/location/{locationCode}", h.ListLevelsForLocation).Methods("GET")
	levels.HandleFunc("/{itemId}", h.GetLevel).Methods("GET")
	levels.HandleFunc("/{itemId}", write(h.DeleteLevel)).Methods("DELETE")
	levels.HandleFunc("/{itemId}/quantity", write(h.UpdateAvailableQuantity)).Methods("PUT")
	levels.HandleFunc("/{itemId}/reserved", write(h.UpdateReservedQuantity)).Methods("PUT")
	levels.HandleFunc("/{itemId}/history", h.GetChanges).Methods("GET")
	levels.HandleFunc("/{itemId}/history", write(h.RecordChange)).Methods("POST")

	items := router.PathPrefix("/inventory").Subrouter()
	items.HandleFunc("", write(h.CreateItem)).Methods("POST")
	items.HandleFunc("/attributes/dimensions", write(h.SetDimensions)).Methods("POST")
	items.HandleFunc("/attributes/dimensions/{id}", write(h.SetDimensions)).Methods("PUT")
	items.HandleFunc("/attributes/weight", write(h.SetWeight)).Methods("POST")
	items.HandleFunc("/attributes/weight/{id}", write(h.SetWeight)).Methods("PUT")
	items.HandleFunc("/attributes/packaging", write(h.SetPackaging)).Methods("POST")
	items.HandleFunc("/attributes/packaging/{id}", write(h.SetPackaging)).Methods("PUT")
	items.HandleFunc("/{id}", h.GetItem).Methods("GET")
	items.HandleFunc("/{id}", write(h.UpdateItem)).Methods("PUT")
	items.HandleFunc("/{id}", write(h.DeleteItem)).Methods("DELETE")

	riskRoutes := router.PathPrefix("/risk").Subrouter()
	riskRoutes.HandleFunc("/assess/{itemId}", h.AssessRisk).Methods("GET")
	riskRoutes.HandleFunc("/handling-requirements/{itemId}", h.HandlingRequirements).Methods("GET")
	riskRoutes.HandleFunc("/batch-assessment", h.BatchAssessment).Methods("POST")

	shippingRoutes := router.PathPrefix("/shipping").Subrouter()
	shippingRoutes.HandleFunc("/arrangement", h.ShippingArrangement).Methods("POST")
	shippingRoutes.HandleFunc("/loading-sequence", h.LoadingSequence).Methods("POST")
	shippingRoutes.HandleFunc("/cost-estimate", h.CostEstimate).Methods("POST")

	storageRoutes := router.PathPrefix("/storage").Subrouter()
	storageRoutes.HandleFunc("/optimize", h.OptimizeStorage).Methods("POST")
	storageRoutes.HandleFunc("/compatibility", h.Compatibility).Methods("GET")
	storageRoutes.HandleFunc("/arrangement/{itemId}", h.StorageArrangement).Methods("GET")
}

// decodeBody decodes a JSON request body into dst and runs struct validation.
func (h *InventoryHandler) decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid request body", domain.ErrInvalidArgument)
	}
	if err := h.validate.Struct(dst); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			// not a struct, e.g. an id list
			return nil
		}
		return fmt.Errorf("%w: %s", domain.ErrInvalidArgument, err.Error())
	}
	return nil
}

func pathID(r *http.Request, name string) (uint, error) {
	return parseID(mux.Vars(r)[name], name)
}

func parseID(raw, name string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", domain.ErrInvalidArgument, name, raw)
	}
	return uint(id), nil
}

// parseIDList accepts both comma separated and repeated query values.
func parseIDList(values []string, name string) ([]uint, error) {
	var ids []uint
	for _, value := range values {
		for _, raw := range strings.Split(value, ",") {
			raw = strings.TrimSpace(raw)
			if raw == "" {
				continue
			}
			id, err := parseID(raw, name)
			if err != nil {
				return nil, err
			}
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: %s is required", domain.ErrInvalidArgument, name)
	}
	return ids, nil
}

func requiredParam(r *http.Request, name string) (string, error) {
	value := strings.TrimSpace(r.URL.Query().Get(name))
	if value == "" {
		return "", fmt.Errorf("%w: %s is required", domain.ErrInvalidArgument, name)
	}
	return value, nil
}

func floatParam(r *http.Request, name string) (float64, error) {
	raw, err := requiredParam(r, name)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s %q", domain.ErrInvalidArgument, name, raw)
	}
	return value, nil
}

// statusFor maps use case errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrProductService):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// respondFailure logs server side failures and writes the error envelope.
func respondFailure(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		event := logger.Error(r.Context()).Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path)
		if claims, ok := ClaimsFromContext(r.Context()); ok {
			event = event.Str("subject", claims.Subject)
		}
		event.Msg(msg)
		if status == http.StatusInternalServerError {
			respondError(w, status, msg)
			return
		}
	}
	respondError(w, status, err.Error())
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, Response{
		Success: false,
		Error:   msg,
	})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to encode response")
	}
}
