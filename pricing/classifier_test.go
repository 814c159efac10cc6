package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func cells(roomIDs ...uint) []TargetCell {
	date := day(2024, 6, 1)
	out := make([]TargetCell, len(roomIDs))
	for i, id := range roomIDs {
		out[i] = TargetCell{RoomID: id, Date: date}
	}
	return out
}

func priorByRoom(prices map[uint]float64) PriorPriceFunc {
	return func(roomID uint, _ time.Time) (float64, bool) {
		p, ok := prices[roomID]
		return p, ok
	}
}

func TestClassifyBulkAction_AllIncreases(t *testing.T) {
	prior := priorByRoom(map[uint]float64{1: 90, 2: 90, 3: 90, 4: 90, 5: 90})
	got := ClassifyBulkAction(cells(1, 2, 3, 4, 5), 100, prior)
	assert.Equal(t, BulkIncrease, got)
}

func TestClassifyBulkAction_AllDecreases(t *testing.T) {
	prior := priorByRoom(map[uint]float64{1: 120, 2: 130, 3: 110})
	got := ClassifyBulkAction(cells(1, 2, 3), 100, prior)
	assert.Equal(t, BulkDecrease, got)
}

func TestClassifyBulkAction_MixedWithoutPluralityIsOverride(t *testing.T) {
	// one increase, one same, one decrease
	prior := priorByRoom(map[uint]float64{1: 90, 2: 100, 3: 110})
	got := ClassifyBulkAction(cells(1, 2, 3), 100, prior)
	assert.Equal(t, BulkOverride, got)
}

func TestClassifyBulkAction_SameDominantIsOverride(t *testing.T) {
	prior := priorByRoom(map[uint]float64{1: 100, 2: 100, 3: 90})
	got := ClassifyBulkAction(cells(1, 2, 3), 100, prior)
	assert.Equal(t, BulkOverride, got)
}

func TestClassifyBulkAction_TieIsOverride(t *testing.T) {
	prior := priorByRoom(map[uint]float64{1: 90, 2: 110})
	got := ClassifyBulkAction(cells(1, 2), 100, prior)
	assert.Equal(t, BulkOverride, got)
}

func TestClassifyBulkAction_UnknownPriorsExcluded(t *testing.T) {
	// Rooms 2 and 3 have no prior price; the lone increase decides.
	prior := priorByRoom(map[uint]float64{1: 90})
	got := ClassifyBulkAction(cells(1, 2, 3), 100, prior)
	assert.Equal(t, BulkIncrease, got)
}

func TestClassifyBulkAction_CentToleranceCountsAsSame(t *testing.T) {
	prior := priorByRoom(map[uint]float64{1: 100.001, 2: 100.004})
	got := ClassifyBulkAction(cells(1, 2), 100, prior)
	assert.Equal(t, BulkOverride, got)
}

func TestClassifyBulkAction_NoKnownPriors(t *testing.T) {
	prior := priorByRoom(nil)
	got := ClassifyBulkAction(cells(1, 2), 100, prior)
	assert.Equal(t, BulkOverride, got)
}
