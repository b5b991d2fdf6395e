package risk

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tair/inventory-information/internal/inventory/domain"
)

func newItem(quantity int, price int64) domain.Item {
	return domain.Item{ID: 1, Name: "crate", Quantity: quantity, Price: decimal.NewFromInt(price)}
}

func TestAssessItem_HighRiskScenario(t *testing.T) {
	item := newItem(1500, 1500).
		WithWeight(domain.Weight{Value: 150}).
		WithPackaging(domain.Packaging{IsSensitive: true, PackagingType: "glass"})

	got := AssessItem(item)

	assert.Equal(t, Assessment{
		WeightRisk:    High,
		PackagingRisk: High,
		QuantityRisk:  High,
		ValueRisk:     High,
		OverallRisk:   High,
	}, got)
}

func TestAssessItem_ValueBoundaries(t *testing.T) {
	// price exactly 1000 is not above the HIGH threshold
	item := newItem(1, 1000).WithWeight(domain.Weight{Value: 1}).WithPackaging(domain.Packaging{})

	got := AssessItem(item)

	assert.Equal(t, Medium, got.ValueRisk)
	assert.Equal(t, Medium, got.OverallRisk)
}

func TestAssessItem_WeightAxis(t *testing.T) {
	tests := []struct {
		name   string
		weight *domain.Weight
		want   Level
	}{
		{"absent", nil, Unknown},
		{"light", &domain.Weight{Value: 50}, Low},
		{"just over medium threshold", &domain.Weight{Value: 50.1}, Medium},
		{"upper medium bound", &domain.Weight{Value: 100}, Medium},
		{"heavy", &domain.Weight{Value: 100.5}, High},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := newItem(1, 1)
			item.Weight = tt.weight

			assert.Equal(t, tt.want, AssessItem(item).WeightRisk)
		})
	}
}

func TestAssessItem_QuantityAndPackagingAxes(t *testing.T) {
	assert.Equal(t, Low, AssessItem(newItem(100, 1)).QuantityRisk)
	assert.Equal(t, Medium, AssessItem(newItem(101, 1)).QuantityRisk)
	assert.Equal(t, High, AssessItem(newItem(1001, 1)).QuantityRisk)

	assert.Equal(t, Unknown, AssessItem(newItem(1, 1)).PackagingRisk)
	assert.Equal(t, Low, AssessItem(newItem(1, 1).WithPackaging(domain.Packaging{PackagingType: "box"})).PackagingRisk)
}

func TestCombine_Precedence(t *testing.T) {
	assert.Equal(t, Low, Combine())
	assert.Equal(t, Low, Combine(Low, Low))
	assert.Equal(t, Medium, Combine(Low, Medium))
	assert.Equal(t, Unknown, Combine(Medium, Unknown, Low))
	assert.Equal(t, High, Combine(Unknown, High, Medium))

	// any HIGH axis wins regardless of order
	levels := []Level{Low, Medium, Unknown, High}
	for i := range levels {
		rotated := append(append([]Level{}, levels[i:]...), levels[:i]...)
		assert.Equal(t, High, Combine(rotated...))
	}
}

func TestAssessHandling(t *testing.T) {
	t.Run("high risk item", func(t *testing.T) {
		item := newItem(1500, 1500).
			WithWeight(domain.Weight{Value: 150}).
			WithPackaging(domain.Packaging{IsSensitive: true})

		got := AssessHandling(item)

		assert.True(t, got.RequiresSpecialEquipment)
		assert.True(t, got.RequiresTrainedPersonnel)
		assert.Equal(t, []string{
			"Use mechanical lifting equipment",
			"Handle with extreme care",
			"Keep upright at all times",
			"Requires supervisor oversight",
		}, got.HandlingInstructions)
		assert.Equal(t, []string{
			"Wear protective equipment",
			"Follow two-person handling protocol",
			"Use back support when lifting",
		}, got.SafetyMeasures)
	})

	t.Run("unknown weight still asks for back support", func(t *testing.T) {
		item := newItem(1, 1).WithPackaging(domain.Packaging{})

		got := AssessHandling(item)

		assert.False(t, got.RequiresSpecialEquipment)
		assert.False(t, got.RequiresTrainedPersonnel)
		assert.Empty(t, got.HandlingInstructions)
		assert.Equal(t, []string{"Use back support when lifting"}, got.SafetyMeasures)
	})

	t.Run("light low risk item", func(t *testing.T) {
		item := newItem(1, 1).WithWeight(domain.Weight{Value: 10}).WithPackaging(domain.Packaging{})

		got := AssessHandling(item)

		assert.Empty(t, got.HandlingInstructions)
		assert.Empty(t, got.SafetyMeasures)
	})
}

func TestAssessBatch(t *testing.T) {
	t.Run("insurance by total value", func(t *testing.T) {
		items := []domain.Item{
			newItem(1, 6000).WithWeight(domain.Weight{Value: 1}).WithPackaging(domain.Packaging{}),
			newItem(1, 5000).WithWeight(domain.Weight{Value: 1}).WithPackaging(domain.Packaging{}),
		}

		got := AssessBatch(items)

		assert.Equal(t, 2, got.NumberOfItems)
		assert.Equal(t, 2, got.HighRiskItems)
		assert.True(t, got.TotalValue.Equal(decimal.NewFromInt(11000)))
		assert.True(t, got.RequiresInsurance)
	})

	t.Run("insurance by high risk item", func(t *testing.T) {
		items := []domain.Item{
			newItem(1, 10).WithWeight(domain.Weight{Value: 200}).WithPackaging(domain.Packaging{}),
			newItem(1, 10).WithWeight(domain.Weight{Value: 1}).WithPackaging(domain.Packaging{}),
		}

		got := AssessBatch(items)

		assert.Equal(t, 1, got.HighRiskItems)
		assert.True(t, got.RequiresInsurance)
	})

	t.Run("no insurance for cheap low risk items", func(t *testing.T) {
		items := []domain.Item{
			newItem(1, 10).WithWeight(domain.Weight{Value: 1}).WithPackaging(domain.Packaging{}),
		}

		got := AssessBatch(items)

		assert.Zero(t, got.HighRiskItems)
		assert.False(t, got.RequiresInsurance)
	})
}
