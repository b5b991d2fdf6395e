package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tair/inventory-information/internal/inventory/domain"
)

// itemModel is the row layout of an inventory item. The embedded attribute
// values are nullable columns so that "not set" survives a round trip.
type itemModel struct {
	ID            uint            `gorm:"primaryKey"`
	Name          string          `gorm:"size:255;not null"`
	Quantity      int             `gorm:"not null;default:0"`
	Price         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Length        *float64
	Width         *float64
	Height        *float64
	WeightValue   *float64
	WeightUnit    *string `gorm:"size:16"`
	IsSensitive   *bool
	PackagingType *string `gorm:"size:64"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (itemModel) TableName() string { return "inventory_items" }

// priceScale matches the numeric(12,2) price column.
const priceScale = 2

func toItemModel(item domain.Item) itemModel {
	m := itemModel{
		ID:       item.ID,
		Name:     item.Name,
		Quantity: item.Quantity,
		Price:    item.Price.Round(priceScale),
	}
	if d := item.Dimensions; d != nil {
		m.Length, m.Width, m.Height = &d.Length, &d.Width, &d.Height
	}
	if w := item.Weight; w != nil {
		m.WeightValue, m.WeightUnit = &w.Value, &w.Unit
	}
	if p := item.Packaging; p != nil {
		m.IsSensitive, m.PackagingType = &p.IsSensitive, &p.PackagingType
	}
	return m
}

func (m itemModel) toDomain() domain.Item {
	item := domain.Item{
		ID:       m.ID,
		Name:     m.Name,
		Quantity: m.Quantity,
		Price:    m.Price,
	}
	if m.Length != nil && m.Width != nil && m.Height != nil {
		item = item.WithDimensions(domain.Dimensions{Length: *m.Length, Width: *m.Width, Height: *m.Height})
	}
	if m.WeightValue != nil {
		unit := ""
		if m.WeightUnit != nil {
			unit = *m.WeightUnit
		}
		item = item.WithWeight(domain.NewWeight(*m.WeightValue, unit))
	}
	if m.IsSensitive != nil {
		p := domain.Packaging{IsSensitive: *m.IsSensitive}
		if m.PackagingType != nil {
			p.PackagingType = *m.PackagingType
		}
		item = item.WithPackaging(p)
	}
	return item
}

// levelModel is one row per (item, location); the unique index enforces it.
type levelModel struct {
	ID                uint      `gorm:"primaryKey"`
	ItemID            uint      `gorm:"not null;uniqueIndex:idx_inventory_levels_item_location"`
	LocationCode      string    `gorm:"size:64;not null;uniqueIndex:idx_inventory_levels_item_location"`
	AvailableQuantity int       `gorm:"not null;default:0"`
	ReservedQuantity  int       `gorm:"not null;default:0"`
	LastUpdated       time.Time `gorm:"not null"`
}

func (levelModel) TableName() string { return "inventory_levels" }

func toLevelModel(l domain.InventoryLevel) levelModel {
	return levelModel{
		ItemID:            l.ItemID,
		LocationCode:      l.LocationCode,
		AvailableQuantity: l.AvailableQuantity,
		ReservedQuantity:  l.ReservedQuantity,
		LastUpdated:       l.LastUpdated,
	}
}

func (m levelModel) toDomain() domain.InventoryLevel {
	return domain.InventoryLevel{
		ItemID:            m.ItemID,
		LocationCode:      m.LocationCode,
		AvailableQuantity: m.AvailableQuantity,
		ReservedQuantity:  m.ReservedQuantity,
		LastUpdated:       m.LastUpdated.UTC(),
	}
}
