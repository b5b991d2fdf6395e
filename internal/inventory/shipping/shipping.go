// Package shipping groups items into weight-capped shipments, plans the
// loading order and estimates transport cost.
package shipping

import (
	"sort"

	"github.com/tair/inventory-information/internal/inventory/domain"
)

// Loading phase names, in the order they are loaded.
const (
	PhaseHeavy     = "HEAVY"
	PhaseRegular   = "REGULAR"
	PhaseSensitive = "SENSITIVE"
)

const (
	heavyThreshold     = 50.0
	baseLoadingMinutes = 5
	sensitiveSurcharge = 0.5
	kilogramsPerTonne  = 1000.0
)

// Arrangement is the result of grouping items into shipments.
type Arrangement struct {
	NumberOfShipments int             `json:"numberOfShipments"`
	ShipmentGroups    [][]domain.Item `json:"shipmentGroups"`
	TotalWeight       float64         `json:"totalWeight"`
}

// LoadingPhase is one step of a loading sequence.
type LoadingPhase struct {
	Type  string        `json:"type"`
	Items []domain.Item `json:"items"`
}

// LoadingSequence is the ordered loading plan for a shipment.
type LoadingSequence struct {
	Sequence []LoadingPhase `json:"sequence"`
	// EstimatedLoadingTime is in minutes.
	EstimatedLoadingTime int `json:"estimatedLoadingTime"`
}

// CostEstimate breaks down the cost of a shipment.
type CostEstimate struct {
	BaseCost        float64 `json:"baseCost"`
	WeightCost      float64 `json:"weightCost"`
	SensitivityCost float64 `json:"sensitivityCost"`
	TotalCost       float64 `json:"totalCost"`
}

// Arrange packs items heaviest first into groups whose total weight stays
// within maxCapacity. An item heavier than the capacity gets its own group.
// The capacity unit is not converted.
func Arrange(items []domain.Item, maxCapacity domain.Weight) Arrangement {
	sorted := make([]domain.Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalWeight() > sorted[j].TotalWeight()
	})

	var groups [][]domain.Item
	var current []domain.Item
	currentWeight := 0.0
	for _, item := range sorted {
		w := item.TotalWeight()
		if currentWeight+w > maxCapacity.Value {
			if len(current) > 0 {
				groups = append(groups, current)
			}
			current = nil
			currentWeight = 0
		}
		current = append(current, item)
		currentWeight += w
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}

	return Arrangement{
		NumberOfShipments: len(groups),
		ShipmentGroups:    groups,
		TotalWeight:       totalWeight(items),
	}
}

// PlanLoading splits items into heavy, regular and sensitive phases.
// Sensitive packaging takes priority over weight. All three phases are
// always present, even when empty.
func PlanLoading(items []domain.Item) LoadingSequence {
	heavy := []domain.Item{}
	regular := []domain.Item{}
	sensitive := []domain.Item{}
	minutes := 0

	for _, item := range items {
		switch classify(item) {
		case PhaseSensitive:
			sensitive = append(sensitive, item)
			minutes += 3 * baseLoadingMinutes
		case PhaseHeavy:
			heavy = append(heavy, item)
			minutes += 2 * baseLoadingMinutes
		default:
			regular = append(regular, item)
			minutes += baseLoadingMinutes
		}
	}

	return LoadingSequence{
		Sequence: []LoadingPhase{
			{Type: PhaseHeavy, Items: heavy},
			{Type: PhaseRegular, Items: regular},
			{Type: PhaseSensitive, Items: sensitive},
		},
		EstimatedLoadingTime: minutes,
	}
}

// EstimateCosts prices a shipment: a distance based cost, a surcharge per
// tonne carried and 50% on top when any item is sensitive.
func EstimateCosts(items []domain.Item, distanceKm, baseRatePerKm float64) CostEstimate {
	base := distanceKm * baseRatePerKm
	weight := base * (totalWeight(items) / kilogramsPerTonne)

	sensitivity := 0.0
	for _, item := range items {
		if item.IsSensitive() {
			sensitivity = (base + weight) * sensitiveSurcharge
			break
		}
	}

	return CostEstimate{
		BaseCost:        base,
		WeightCost:      weight,
		SensitivityCost: sensitivity,
		TotalCost:       base + weight + sensitivity,
	}
}

func classify(item domain.Item) string {
	switch {
	case item.IsSensitive():
		return PhaseSensitive
	case item.UnitWeight() > heavyThreshold:
		return PhaseHeavy
	default:
		return PhaseRegular
	}
}

func totalWeight(items []domain.Item) float64 {
	total := 0.0
	for _, item := range items {
		total += item.TotalWeight()
	}
	return total
}
