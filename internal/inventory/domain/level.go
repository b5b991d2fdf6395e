package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// LevelKey identifies one inventory level.
type LevelKey struct {
	ItemID       uint
	LocationCode string
}

// CacheKey is the fast-store key holding the level.
func (k LevelKey) CacheKey() string {
	return fmt.Sprintf("inventory:%d:%s", k.ItemID, k.LocationCode)
}

// HistoryKey is the fast-store key holding the change list.
func (k LevelKey) HistoryKey() string {
	return fmt.Sprintf("history:%d:%s", k.ItemID, k.LocationCode)
}

var globEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)

// LocationPattern matches every level cache key of a location. Glob
// metacharacters in the location code are escaped.
func LocationPattern(locationCode string) string {
	return "inventory:*:" + globEscaper.Replace(locationCode)
}

// ParseCacheKey is the inverse of LevelKey.CacheKey.
func ParseCacheKey(key string) (LevelKey, error) {
	parts := strings.SplitN(key, ":", 3)
	if len(parts) != 3 || parts[0] != "inventory" || parts[2] == "" {
		return LevelKey{}, fmt.Errorf("malformed level key %q", key)
	}
	id, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return LevelKey{}, fmt.Errorf("malformed level key %q: %w", key, err)
	}
	return LevelKey{ItemID: uint(id), LocationCode: parts[2]}, nil
}

// InventoryLevel is the quantity of an item held at one location.
type InventoryLevel struct {
	ItemID            uint      `json:"itemId" validate:"required"`
	LocationCode      string    `json:"locationCode" validate:"required"`
	AvailableQuantity int       `json:"availableQuantity" validate:"gte=0"`
	ReservedQuantity  int       `json:"reservedQuantity" validate:"gte=0"`
	LastUpdated       time.Time `json:"lastUpdated"`
}

// Key returns the composite key of the level.
func (l InventoryLevel) Key() LevelKey {
	return LevelKey{ItemID: l.ItemID, LocationCode: l.LocationCode}
}

// Validate checks the level invariants.
func (l InventoryLevel) Validate() error {
	if l.ItemID == 0 {
		return fmt.Errorf("%w: itemId is required", ErrInvalidArgument)
	}
	if l.LocationCode == "" {
		return fmt.Errorf("%w: locationCode is required", ErrInvalidArgument)
	}
	if l.AvailableQuantity < 0 || l.ReservedQuantity < 0 {
		return fmt.Errorf("%w: quantities cannot be negative", ErrInvalidArgument)
	}
	return nil
}

// WithAvailable returns a copy with a new available quantity stamped at now.
func (l InventoryLevel) WithAvailable(quantity int, now time.Time) InventoryLevel {
	l.AvailableQuantity = quantity
	l.LastUpdated = now
	return l
}

// WithReserved returns a copy with a new reserved quantity stamped at now.
func (l InventoryLevel) WithReserved(quantity int, now time.Time) InventoryLevel {
	l.ReservedQuantity = quantity
	l.LastUpdated = now
	return l
}

// QuantityUpdate requests a new available quantity for one level.
type QuantityUpdate struct {
	ItemID       uint   `json:"itemId" validate:"required"`
	LocationCode string `json:"locationCode" validate:"required"`
	NewQuantity  int    `json:"newQuantity" validate:"gte=0"`
}

// Key returns the level key targeted by the update.
func (u QuantityUpdate) Key() LevelKey {
	return LevelKey{ItemID: u.ItemID, LocationCode: u.LocationCode}
}

// InventoryChange is a write-once history record for a level.
type InventoryChange struct {
	ItemID       uint      `json:"itemId"`
	LocationCode string    `json:"locationCode"`
	OldQuantity  int       `json:"oldQuantity"`
	NewQuantity  int       `json:"newQuantity"`
	Reason       string    `json:"reason"`
	Timestamp    time.Time `json:"timestamp"`
}

// Key returns the level key the change belongs to.
func (c InventoryChange) Key() LevelKey {
	return LevelKey{ItemID: c.ItemID, LocationCode: c.LocationCode}
}
