package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/tair/inventory-information/pkg/logger"
)

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

// DependencyHealth is the result of one health check
type DependencyHealth struct {
	Status    string  `json:"status"` // up, down
	LatencyMs float64 `json:"latency_ms"`
	Error     string  `json:"error,omitempty"`
}

// ServiceHealth is the payload of the health endpoint
type ServiceHealth struct {
	Status        string                      `json:"status"` // healthy, degraded, unhealthy
	Dependencies  map[string]DependencyHealth `json:"dependencies"`
	UptimeSeconds float64                     `json:"uptime_seconds"`
}

// RegisterHealthCheck registers health check endpoint
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} Response{data=ServiceHealth}
// @Failure 503 {object} Response{data=ServiceHealth}
// @Router /health [get]
func (h *InventoryHandler) RegisterHealthCheck(router *mux.Router, checks map[string]HealthCheck) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		health := h.checkAll(ctx, checks)
		if health.Status != "healthy" {
			respondJSON(w, http.StatusServiceUnavailable, Response{
				Success: false,
				Error:   "Dependency unavailable",
				Data:    health,
			})
			return
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Inventory service is healthy",
			Data:    health,
		})
	}).Methods("GET")
}

// checkAll runs every check concurrently
func (h *InventoryHandler) checkAll(ctx context.Context, checks map[string]HealthCheck) ServiceHealth {
	dependencies := make(map[string]DependencyHealth, len(checks))
	var wg sync.WaitGroup
	var mu sync.Mutex

	for name, check := range checks {
		wg.Add(1)
		go func(name string, check HealthCheck) {
			defer wg.Done()

			start := time.Now()
			err := check(ctx)
			result := DependencyHealth{
				Status:    "up",
				LatencyMs: float64(time.Since(start).Microseconds()) / 1000,
			}
			if err != nil {
				result.Status = "down"
				result.Error = err.Error()
				logger.Warn(ctx).Err(err).Str("dependency", name).Msg("Health check failed")
			}

			mu.Lock()
			dependencies[name] = result
			mu.Unlock()
		}(name, check)
	}
	wg.Wait()

	return ServiceHealth{
		Status:        overallStatus(dependencies),
		Dependencies:  dependencies,
		UptimeSeconds: time.Since(h.started).Seconds(),
	}
}

func overallStatus(dependencies map[string]DependencyHealth) string {
	up := 0
	for _, d := range dependencies {
		if d.Status == "up" {
			up++
		}
	}

	switch {
	case up == len(dependencies):
		return "healthy"
	case up > 0:
		return "degraded"
	default:
		return "unhealthy"
	}
}
