package shipping

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/inventory-information/internal/inventory/domain"
)

func weighted(id uint, quantity int, weight float64) domain.Item {
	return domain.Item{ID: id, Name: "box", Quantity: quantity, Price: decimal.NewFromInt(1)}.
		WithWeight(domain.Weight{Value: weight})
}

func sensitive(item domain.Item) domain.Item {
	return item.WithPackaging(domain.Packaging{IsSensitive: true, PackagingType: "glass"})
}

func groupWeight(group []domain.Item) float64 {
	total := 0.0
	for _, item := range group {
		total += item.TotalWeight()
	}
	return total
}

func TestArrange_SplitsByCapacity(t *testing.T) {
	items := []domain.Item{weighted(1, 1, 40), weighted(2, 1, 60)}

	got := Arrange(items, domain.NewWeight(80, ""))

	require.Equal(t, 2, got.NumberOfShipments)
	assert.Equal(t, 100.0, got.TotalWeight)
	assert.Equal(t, uint(2), got.ShipmentGroups[0][0].ID, "heaviest item goes first")
	assert.Equal(t, uint(1), got.ShipmentGroups[1][0].ID)
}

func TestArrange_OverCapacityItemIsSingleton(t *testing.T) {
	items := []domain.Item{weighted(1, 1, 10), weighted(2, 1, 500), weighted(3, 1, 20)}

	got := Arrange(items, domain.NewWeight(100, "kg"))

	require.Equal(t, 2, got.NumberOfShipments)
	assert.Len(t, got.ShipmentGroups[0], 1)
	assert.Equal(t, uint(2), got.ShipmentGroups[0][0].ID)
	assert.Len(t, got.ShipmentGroups[1], 2)
}

func TestArrange_GroupsPreserveTotal(t *testing.T) {
	items := []domain.Item{
		weighted(1, 3, 12), weighted(2, 1, 70), weighted(3, 2, 25),
		weighted(4, 10, 4), weighted(5, 1, 90), weighted(6, 5, 1),
	}
	capacity := domain.NewWeight(100, "kg")

	got := Arrange(items, capacity)

	sum := 0.0
	count := 0
	for _, group := range got.ShipmentGroups {
		w := groupWeight(group)
		if len(group) > 1 {
			assert.LessOrEqual(t, w, capacity.Value)
		}
		sum += w
		count += len(group)
	}
	assert.Equal(t, got.TotalWeight, sum)
	assert.Equal(t, len(items), count)
	assert.Equal(t, len(got.ShipmentGroups), got.NumberOfShipments)
}

func TestArrange_ItemsWithoutWeight(t *testing.T) {
	items := []domain.Item{{ID: 1, Quantity: 4}, {ID: 2, Quantity: 2}}

	got := Arrange(items, domain.NewWeight(10, "kg"))

	assert.Equal(t, 1, got.NumberOfShipments)
	assert.Zero(t, got.TotalWeight)
}

func TestArrange_Empty(t *testing.T) {
	got := Arrange(nil, domain.NewWeight(10, "kg"))

	assert.Zero(t, got.NumberOfShipments)
	assert.Empty(t, got.ShipmentGroups)
}

func TestPlanLoading(t *testing.T) {
	items := []domain.Item{
		weighted(1, 1, 10),
		weighted(2, 1, 60),
		sensitive(weighted(3, 1, 80)),
		weighted(4, 1, 50),
	}

	got := PlanLoading(items)

	require.Len(t, got.Sequence, 3)
	assert.Equal(t, PhaseHeavy, got.Sequence[0].Type)
	assert.Equal(t, PhaseRegular, got.Sequence[1].Type)
	assert.Equal(t, PhaseSensitive, got.Sequence[2].Type)

	assert.Len(t, got.Sequence[0].Items, 1)
	assert.Len(t, got.Sequence[1].Items, 2)
	assert.Len(t, got.Sequence[2].Items, 1, "sensitive wins over heavy")

	// 5 × (2 regular + 2×1 heavy + 3×1 sensitive)
	assert.Equal(t, 35, got.EstimatedLoadingTime)
}

func TestPlanLoading_AlwaysEmitsThreePhases(t *testing.T) {
	got := PlanLoading(nil)

	require.Len(t, got.Sequence, 3)
	for _, phase := range got.Sequence {
		assert.NotNil(t, phase.Items)
		assert.Empty(t, phase.Items)
	}
	assert.Zero(t, got.EstimatedLoadingTime)
}

func TestEstimateCosts(t *testing.T) {
	tests := []struct {
		name  string
		items []domain.Item
		want  CostEstimate
	}{
		{
			name:  "regular load",
			items: []domain.Item{weighted(1, 10, 50)},
			want:  CostEstimate{BaseCost: 200, WeightCost: 100, TotalCost: 300},
		},
		{
			name:  "sensitive surcharge",
			items: []domain.Item{weighted(1, 10, 50), sensitive(weighted(2, 0, 1))},
			want:  CostEstimate{BaseCost: 200, WeightCost: 100, SensitivityCost: 150, TotalCost: 450},
		},
		{
			name:  "no items",
			items: nil,
			want:  CostEstimate{BaseCost: 200, TotalCost: 200},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateCosts(tt.items, 100, 2)
			assert.InDelta(t, tt.want.BaseCost, got.BaseCost, 1e-9)
			assert.InDelta(t, tt.want.WeightCost, got.WeightCost, 1e-9)
			assert.InDelta(t, tt.want.SensitivityCost, got.SensitivityCost, 1e-9)
			assert.InDelta(t, tt.want.TotalCost, got.TotalCost, 1e-9)
		})
	}
}
