//go:build wireinject
// +build wireinject

package inventory

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/inventory-information/internal/inventory/cache"
	"github.com/tair/inventory-information/internal/inventory/delivery/http"
	"github.com/tair/inventory-information/internal/inventory/domain"
	"github.com/tair/inventory-information/internal/inventory/usecase/command"
	"github.com/tair/inventory-information/pkg/config"
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies.
// A nil validator disables product validation of new levels.
func InitializeHTTPHandler(
	db *gorm.DB,
	fast domain.FastStore,
	publisher domain.EventPublisher,
	validator domain.ProductValidator,
	metrics *cache.Metrics,
	cfg *config.Config,
) (*http.InventoryHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewInventoryHandler,
	)
	return nil, nil
}

// InitializeSyncItemHandler builds the handler fed by the item sync topic
func InitializeSyncItemHandler(db *gorm.DB) *command.SyncItemHandler {
	wire.Build(
		ProvideItemRepository,
		command.NewSyncItemHandler,
	)
	return nil
}
