package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tair/inventory-information/internal/inventory/domain"
)

// AutoMigrate creates or updates the item and level tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&itemModel{}, &levelModel{})
}

func notFound(err error, format string, args ...any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), domain.ErrNotFound)
	}
	return err
}

type GormItemRepository struct {
	db *gorm.DB
}

func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

func (r *GormItemRepository) Create(ctx context.Context, item domain.Item) (domain.Item, error) {
	m := toItemModel(item)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.Item{}, err
	}
	return m.toDomain(), nil
}

func (r *GormItemRepository) FindByID(ctx context.Context, id uint) (domain.Item, error) {
	var m itemModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return domain.Item{}, notFound(err, "item %d", id)
	}
	return m.toDomain(), nil
}

func (r *GormItemRepository) Update(ctx context.Context, id uint, item domain.Item) (domain.Item, error) {
	var existing itemModel
	if err := r.db.WithContext(ctx).First(&existing, id).Error; err != nil {
		return domain.Item{}, notFound(err, "item %d", id)
	}

	m := toItemModel(item)
	m.ID = id
	m.CreatedAt = existing.CreatedAt
	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return domain.Item{}, err
	}
	return m.toDomain(), nil
}

// Upsert inserts the item under its own id or overwrites the existing row.
// On Postgres the id sequence is moved past the highest id afterwards, since
// inserting an explicit id does not advance it.
func (r *GormItemRepository) Upsert(ctx context.Context, item domain.Item) (domain.Item, error) {
	m := toItemModel(item)
	var stored itemModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "quantity", "price", "updated_at",
			}),
		}).Create(&m).Error
		if err != nil {
			return err
		}
		if tx.Dialector.Name() == "postgres" {
			if err := tx.Exec(resyncItemSequenceSQL).Error; err != nil {
				return fmt.Errorf("resync item id sequence: %w", err)
			}
		}
		return tx.First(&stored, m.ID).Error
	})
	if err != nil {
		return domain.Item{}, notFound(err, "item %d", m.ID)
	}
	return stored.toDomain(), nil
}

const resyncItemSequenceSQL = `SELECT setval(pg_get_serial_sequence('inventory_items', 'id'), GREATEST((SELECT MAX(id) FROM inventory_items), 1))`

func (r *GormItemRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&itemModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("item %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

type GormLevelRepository struct {
	db *gorm.DB
}

func NewGormLevelRepository(db *gorm.DB) *GormLevelRepository {
	return &GormLevelRepository{db: db}
}

func (r *GormLevelRepository) FindByKey(ctx context.Context, key domain.LevelKey) (domain.InventoryLevel, error) {
	var m levelModel
	err := r.db.WithContext(ctx).
		Where("item_id = ? AND location_code = ?", key.ItemID, key.LocationCode).
		First(&m).Error
	if err != nil {
		return domain.InventoryLevel{}, notFound(err, "level %s", key.CacheKey())
	}
	return m.toDomain(), nil
}

// Save inserts the level or overwrites the quantities of the existing row
// with the same key.
func (r *GormLevelRepository) Save(ctx context.Context, level domain.InventoryLevel) (domain.InventoryLevel, error) {
	m := toLevelModel(level)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "item_id"}, {Name: "location_code"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"available_quantity", "reserved_quantity", "last_updated",
			}),
		}).
		Create(&m).Error
	if err != nil {
		return domain.InventoryLevel{}, err
	}
	return m.toDomain(), nil
}
