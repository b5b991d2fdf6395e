package inventory

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/inventory-information/internal/inventory/cache"
	"github.com/tair/inventory-information/internal/inventory/delivery/http"
	"github.com/tair/inventory-information/internal/inventory/domain"
	"github.com/tair/inventory-information/internal/inventory/repository"
	"github.com/tair/inventory-information/internal/inventory/usecase/command"
	"github.com/tair/inventory-information/internal/inventory/usecase/query"
	"github.com/tair/inventory-information/pkg/config"
)

// ProvideItemRepository provides the traced item repository
func ProvideItemRepository(db *gorm.DB) domain.ItemRepository {
	return repository.NewItemRepositoryWithTracing(repository.NewGormItemRepository(db))
}

// ProvideLevelRepository provides the traced backing store for levels
func ProvideLevelRepository(db *gorm.DB) domain.LevelRepository {
	return repository.NewLevelRepositoryWithTracing(repository.NewGormLevelRepository(db))
}

// ProvideLevelCache provides the cache-aside level store
func ProvideLevelCache(
	fast domain.FastStore,
	backing domain.LevelRepository,
	publisher domain.EventPublisher,
	metrics *cache.Metrics,
) domain.LevelCache {
	return cache.NewCacheAsideStore(fast, backing, publisher, cache.WithMetrics(metrics))
}

// ProvideAuthenticator provides the bearer token authenticator
func ProvideAuthenticator(cfg *config.Config) *http.Authenticator {
	return http.NewAuthenticator(cfg.JWTSecret)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideItemRepository,
	ProvideLevelRepository,
	ProvideLevelCache,
)

var CommandHandlerSet = wire.NewSet(
	command.NewCreateItemHandler,
	command.NewUpdateItemHandler,
	command.NewDeleteItemHandler,
	command.NewSetDimensionsHandler,
	command.NewSetWeightHandler,
	command.NewSetPackagingHandler,
	command.NewSaveLevelHandler,
	command.NewUpdateAvailableQuantityHandler,
	command.NewUpdateReservedQuantityHandler,
	command.NewUpdateMultipleQuantitiesHandler,
	command.NewDeleteLevelHandler,
	command.NewRecordChangeHandler,
	wire.Struct(new(http.Commands), "*"),
)

var QueryHandlerSet = wire.NewSet(
	query.NewGetItemHandler,
	query.NewGetLevelHandler,
	query.NewListLevelsForLocationHandler,
	query.NewGetMultipleLevelsHandler,
	query.NewGetChangesHandler,
	query.NewAssessRiskHandler,
	query.NewHandlingRequirementsHandler,
	query.NewBatchAssessmentHandler,
	query.NewShippingArrangementHandler,
	query.NewLoadingSequenceHandler,
	query.NewCostEstimateHandler,
	query.NewOptimizeStorageHandler,
	query.NewCompatibilityHandler,
	query.NewStorageArrangementHandler,
	wire.Struct(new(http.Queries), "*"),
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
	ProvideAuthenticator,
)
