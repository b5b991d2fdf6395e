// Package storage computes palette arrangements, pairwise stacking
// compatibility and zone layouts for stored items.
package storage

import (
	"fmt"
	"math"

	"github.com/tair/inventory-information/internal/inventory/domain"
)

// Zone types, in the order they are emitted by OptimizeLayout.
const (
	ZoneSensitive = "SENSITIVE"
	ZoneHeavy     = "HEAVY"
	ZoneLight     = "LIGHT"
)

const (
	heavyThreshold = 50.0
	maxWeightRatio = 2.0
	maxVolumeRatio = 3.0
)

// Incompatibility reasons reported by CheckCompatibility.
const (
	ReasonWeight      = "Weight difference too high for stacking"
	ReasonSensitivity = "Both items are sensitive and require separate storage"
	ReasonVolume      = "Volume difference too high for efficient storage"
)

type Arrangement struct {
	ItemsPerPalette  int     `json:"itemsPerPalette"`
	RequiredPalettes int     `json:"requiredPalettes"`
	TotalVolume      float64 `json:"totalVolume"`
}

type Compatibility struct {
	AreCompatible          bool     `json:"areCompatible"`
	IncompatibilityReasons []string `json:"incompatibilityReasons"`
}

type Zone struct {
	Type  string        `json:"type"`
	Items []domain.Item `json:"items"`
}

type Layout struct {
	Zones []Zone `json:"zones"`
}

// Arrange computes how many palettes of the given volume capacity the item's
// stock occupies.
func Arrange(item domain.Item, paletteCapacity float64) (Arrangement, error) {
	if item.Dimensions == nil || item.Weight == nil {
		return Arrangement{}, fmt.Errorf("%w: item %d must have dimensions and weight", domain.ErrInvalidArgument, item.ID)
	}
	if paletteCapacity <= 0 || math.IsNaN(paletteCapacity) || math.IsInf(paletteCapacity, 0) {
		return Arrangement{}, fmt.Errorf("%w: palette capacity must be a positive number", domain.ErrInvalidArgument)
	}
	volume := item.UnitVolume()
	if volume <= 0 {
		return Arrangement{}, fmt.Errorf("%w: item %d has no volume", domain.ErrInvalidArgument, item.ID)
	}

	fit := math.Floor(paletteCapacity / volume)
	if fit > math.MaxInt32 {
		return Arrangement{}, fmt.Errorf("%w: palette capacity %g holds more than %d items of volume %g",
			domain.ErrInvalidArgument, paletteCapacity, math.MaxInt32, volume)
	}
	perPalette := int(fit)
	if perPalette == 0 {
		return Arrangement{}, fmt.Errorf("%w: item %d does not fit on a palette of capacity %g",
			domain.ErrInvalidArgument, item.ID, paletteCapacity)
	}

	return Arrangement{
		ItemsPerPalette:  perPalette,
		RequiredPalettes: int(math.Ceil(float64(item.Quantity) / float64(perPalette))),
		TotalVolume:      volume * float64(item.Quantity),
	}, nil
}

// CheckCompatibility reports whether two items can share storage.
// The result does not depend on argument order.
func CheckCompatibility(a, b domain.Item) Compatibility {
	reasons := []string{}

	if exceedsRatio(a.TotalWeight(), b.TotalWeight(), maxWeightRatio) {
		reasons = append(reasons, ReasonWeight)
	}
	if a.IsSensitive() && b.IsSensitive() {
		reasons = append(reasons, ReasonSensitivity)
	}
	if exceedsRatio(a.UnitVolume(), b.UnitVolume(), maxVolumeRatio) {
		reasons = append(reasons, ReasonVolume)
	}

	return Compatibility{
		AreCompatible:          len(reasons) == 0,
		IncompatibilityReasons: reasons,
	}
}

// OptimizeLayout groups items into zones. Sensitive items go to their own
// zone regardless of weight. Empty zones are left out.
func OptimizeLayout(items []domain.Item) Layout {
	var sensitive, heavy, light []domain.Item
	for _, item := range items {
		switch {
		case item.IsSensitive():
			sensitive = append(sensitive, item)
		case item.UnitWeight() > heavyThreshold:
			heavy = append(heavy, item)
		default:
			light = append(light, item)
		}
	}

	zones := []Zone{}
	for _, z := range []Zone{
		{Type: ZoneSensitive, Items: sensitive},
		{Type: ZoneHeavy, Items: heavy},
		{Type: ZoneLight, Items: light},
	} {
		if len(z.Items) > 0 {
			zones = append(zones, z)
		}
	}
	return Layout{Zones: zones}
}

func exceedsRatio(x, y, ratio float64) bool {
	return math.Max(x, y) > math.Min(x, y)*ratio
}
