package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelKey_Keys(t *testing.T) {
	key := LevelKey{ItemID: 42, LocationCode: "ZG-01"}

	assert.Equal(t, "inventory:42:ZG-01", key.CacheKey())
	assert.Equal(t, "history:42:ZG-01", key.HistoryKey())
	assert.Equal(t, "inventory:*:ZG-01", LocationPattern("ZG-01"))
}

func TestLocationPattern_EscapesGlobCharacters(t *testing.T) {
	tests := map[string]string{
		"A[1":  `inventory:*:A\[1`,
		"A*]?": `inventory:*:A\*\]\?`,
		`A\B`:  `inventory:*:A\\B`,
	}

	for location, want := range tests {
		assert.Equal(t, want, LocationPattern(location), location)
	}
}

func TestParseCacheKey(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		key := LevelKey{ItemID: 9, LocationCode: "A:B"}

		parsed, err := ParseCacheKey(key.CacheKey())

		require.NoError(t, err)
		assert.Equal(t, key, parsed)
	})

	t.Run("rejects malformed keys", func(t *testing.T) {
		for _, raw := range []string{"history:1:A", "inventory:x:A", "inventory:1:", "inventory"} {
			_, err := ParseCacheKey(raw)
			assert.Error(t, err, raw)
		}
	})
}

func TestClassifyChange(t *testing.T) {
	assert.Equal(t, ChangeAddition, ClassifyChange(1, 2))
	assert.Equal(t, ChangeRemoval, ClassifyChange(2, 1))
	assert.Equal(t, ChangeAdjustment, ClassifyChange(2, 2))
}

func TestInventoryLevel_WithAvailable(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	level := InventoryLevel{ItemID: 1, LocationCode: "A", AvailableQuantity: 3, ReservedQuantity: 1}

	updated := level.WithAvailable(8, now)

	assert.Equal(t, 3, level.AvailableQuantity)
	assert.Equal(t, 8, updated.AvailableQuantity)
	assert.Equal(t, 1, updated.ReservedQuantity)
	assert.Equal(t, now, updated.LastUpdated)
}

func TestInventoryLevel_Validate(t *testing.T) {
	assert.NoError(t, InventoryLevel{ItemID: 1, LocationCode: "A"}.Validate())
	assert.ErrorIs(t, InventoryLevel{LocationCode: "A"}.Validate(), ErrInvalidArgument)
	assert.ErrorIs(t, InventoryLevel{ItemID: 1}.Validate(), ErrInvalidArgument)
	assert.ErrorIs(t, InventoryLevel{ItemID: 1, LocationCode: "A", ReservedQuantity: -1}.Validate(), ErrInvalidArgument)
}

func TestNewQuantityChangedEvent(t *testing.T) {
	at := time.Now()
	event := NewQuantityChangedEvent(LevelKey{ItemID: 3, LocationCode: "B"}, 10, 4, at)

	assert.NotEmpty(t, event.ID())
	assert.Equal(t, EventTypeQuantityChanged, event.Type())
	assert.Equal(t, ChangeRemoval, event.ChangeType)
	assert.Equal(t, "inventory:3:B", event.PartitionKey())
}
