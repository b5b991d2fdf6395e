// Package risk scores inventory items along four independent axes
// (weight, packaging, quantity, value) and combines them into an overall level.
package risk

import (
	"github.com/shopspring/decimal"

	"github.com/tair/inventory-information/internal/inventory/domain"
)

// Level is the outcome of one risk axis or of the combined assessment.
type Level string

const (
	Low     Level = "LOW"
	Medium  Level = "MEDIUM"
	High    Level = "HIGH"
	Unknown Level = "UNKNOWN"
)

// severity orders levels for the overall score. UNKNOWN ranks above MEDIUM.
var severity = map[Level]int{
	Low:     0,
	Medium:  1,
	Unknown: 2,
	High:    3,
}

var (
	valueHigh     = decimal.NewFromInt(1000)
	valueMedium   = decimal.NewFromInt(100)
	insuranceFrom = decimal.NewFromInt(10000)
)

// Assessment is the per-axis and combined risk of one item.
type Assessment struct {
	WeightRisk    Level `json:"weightRisk"`
	PackagingRisk Level `json:"packagingRisk"`
	QuantityRisk  Level `json:"quantityRisk"`
	ValueRisk     Level `json:"valueRisk"`
	OverallRisk   Level `json:"overallRisk"`
}

// HandlingRequirements lists what is needed to move an item safely.
type HandlingRequirements struct {
	RequiresSpecialEquipment bool     `json:"requiresSpecialEquipment"`
	RequiresTrainedPersonnel bool     `json:"requiresTrainedPersonnel"`
	HandlingInstructions     []string `json:"handlingInstructions"`
	SafetyMeasures           []string `json:"safetyMeasures"`
}

// BatchAssessment summarises the risk of a group of items.
type BatchAssessment struct {
	NumberOfItems     int             `json:"numberOfItems"`
	HighRiskItems     int             `json:"highRiskItems"`
	TotalValue        decimal.Decimal `json:"totalValue"`
	RequiresInsurance bool            `json:"requiresInsurance"`
}

// AssessItem scores every axis of the item and combines them.
func AssessItem(item domain.Item) Assessment {
	a := Assessment{
		WeightRisk:    weightRisk(item),
		PackagingRisk: packagingRisk(item),
		QuantityRisk:  quantityRisk(item),
		ValueRisk:     valueRisk(item),
	}
	a.OverallRisk = Combine(a.WeightRisk, a.PackagingRisk, a.QuantityRisk, a.ValueRisk)
	return a
}

// Combine returns the most severe of the given levels, LOW for none.
func Combine(levels ...Level) Level {
	worst := Low
	for _, l := range levels {
		if severity[l] > severity[worst] {
			worst = l
		}
	}
	return worst
}

// AssessHandling derives handling requirements from the item's assessment.
func AssessHandling(item domain.Item) HandlingRequirements {
	a := AssessItem(item)

	instructions := []string{}
	if a.WeightRisk == High {
		instructions = append(instructions, "Use mechanical lifting equipment")
	}
	if a.PackagingRisk == High {
		instructions = append(instructions, "Handle with extreme care", "Keep upright at all times")
	}
	if a.ValueRisk == High {
		instructions = append(instructions, "Requires supervisor oversight")
	}

	measures := []string{}
	if a.OverallRisk == High {
		measures = append(measures, "Wear protective equipment", "Follow two-person handling protocol")
	}
	if a.WeightRisk != Low {
		measures = append(measures, "Use back support when lifting")
	}

	return HandlingRequirements{
		RequiresSpecialEquipment: item.UnitWeight() > 50,
		RequiresTrainedPersonnel: a.OverallRisk == High,
		HandlingInstructions:     instructions,
		SafetyMeasures:           measures,
	}
}

// AssessBatch summarises a group of items. Insurance is required above a
// total value of 10000 or when any item is high risk.
func AssessBatch(items []domain.Item) BatchAssessment {
	total := decimal.Zero
	highRisk := 0
	for _, item := range items {
		total = total.Add(item.Price)
		if AssessItem(item).OverallRisk == High {
			highRisk++
		}
	}

	return BatchAssessment{
		NumberOfItems:     len(items),
		HighRiskItems:     highRisk,
		TotalValue:        total,
		RequiresInsurance: total.GreaterThan(insuranceFrom) || highRisk > 0,
	}
}

func weightRisk(item domain.Item) Level {
	switch {
	case item.Weight == nil:
		return Unknown
	case item.Weight.Value > 100:
		return High
	case item.Weight.Value > 50:
		return Medium
	default:
		return Low
	}
}

func packagingRisk(item domain.Item) Level {
	switch {
	case item.Packaging == nil:
		return Unknown
	case item.Packaging.IsSensitive:
		return High
	default:
		return Low
	}
}

func quantityRisk(item domain.Item) Level {
	switch {
	case item.Quantity > 1000:
		return High
	case item.Quantity > 100:
		return Medium
	default:
		return Low
	}
}

func valueRisk(item domain.Item) Level {
	switch {
	case item.Price.GreaterThan(valueHigh):
		return High
	case item.Price.GreaterThan(valueMedium):
		return Medium
	default:
		return Low
	}
}
