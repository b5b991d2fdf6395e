package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultWeightUnit is used when a weight arrives without a unit.
const DefaultWeightUnit = "kg"

// Dimensions holds the outer measurements of a single unit of an item.
type Dimensions struct {
	Length float64 `json:"length" validate:"gt=0"`
	Width  float64 `json:"width" validate:"gt=0"`
	Height float64 `json:"height" validate:"gt=0"`
}

// Volume returns length × width × height.
func (d Dimensions) Volume() float64 {
	return d.Length * d.Width * d.Height
}

// Validate checks that every side is positive.
func (d Dimensions) Validate() error {
	if d.Length <= 0 || d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("%w: dimensions must be positive", ErrInvalidArgument)
	}
	return nil
}

// Weight is the weight of a single unit.
type Weight struct {
	Value float64 `json:"value" validate:"gte=0"`
	Unit  string  `json:"unit"`
}

// NewWeight returns a weight, defaulting the unit to kg.
func NewWeight(value float64, unit string) Weight {
	if unit == "" {
		unit = DefaultWeightUnit
	}
	return Weight{Value: value, Unit: unit}
}

// Validate checks that the weight is not negative.
func (w Weight) Validate() error {
	if w.Value < 0 {
		return fmt.Errorf("%w: weight cannot be negative", ErrInvalidArgument)
	}
	return nil
}

// Packaging describes how an item is packed.
type Packaging struct {
	IsSensitive   bool   `json:"isSensitive"`
	PackagingType string `json:"packagingType"`
}

// Item is a stocked product. Values are treated as immutable snapshots:
// the With* helpers return a modified copy and leave the receiver untouched.
type Item struct {
	ID         uint            `json:"id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	Dimensions *Dimensions     `json:"dimensions,omitempty"`
	Weight     *Weight         `json:"weight,omitempty"`
	Packaging  *Packaging      `json:"packaging,omitempty"`
}

// Validate checks the invariants of an item's own fields.
func (i Item) Validate() error {
	if i.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidArgument)
	}
	if i.Quantity < 0 {
		return fmt.Errorf("%w: quantity cannot be negative", ErrInvalidArgument)
	}
	if i.Price.IsNegative() {
		return fmt.Errorf("%w: price cannot be negative", ErrInvalidArgument)
	}
	if i.Dimensions != nil {
		if err := i.Dimensions.Validate(); err != nil {
			return err
		}
	}
	if i.Weight != nil {
		if err := i.Weight.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// IsSensitive reports whether the item has sensitive packaging.
// Items without packaging are not sensitive.
func (i Item) IsSensitive() bool {
	return i.Packaging != nil && i.Packaging.IsSensitive
}

// UnitWeight returns the weight of one unit, or 0 when unknown.
func (i Item) UnitWeight() float64 {
	if i.Weight == nil {
		return 0
	}
	return i.Weight.Value
}

// TotalWeight returns unit weight × quantity, or 0 when the weight is unknown.
func (i Item) TotalWeight() float64 {
	return i.UnitWeight() * float64(i.Quantity)
}

// UnitVolume returns the volume of one unit, or 0 when dimensions are unknown.
func (i Item) UnitVolume() float64 {
	if i.Dimensions == nil {
		return 0
	}
	return i.Dimensions.Volume()
}

// WithDetails returns a copy carrying the given mutable fields.
func (i Item) WithDetails(name string, quantity int, price decimal.Decimal) Item {
	i.Name = name
	i.Quantity = quantity
	i.Price = price
	return i
}

// WithDimensions returns a copy with the given dimensions.
func (i Item) WithDimensions(d Dimensions) Item {
	i.Dimensions = &d
	return i
}

// WithWeight returns a copy with the given weight.
func (i Item) WithWeight(w Weight) Item {
	w = NewWeight(w.Value, w.Unit)
	i.Weight = &w
	return i
}

// WithPackaging returns a copy with the given packaging.
func (i Item) WithPackaging(p Packaging) Item {
	i.Packaging = &p
	return i
}
