package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveEffectivePrice_NoOverrideFallsBack(t *testing.T) {
	got := ResolveEffectivePrice(1, day(2024, 6, 1), nil, 120)
	assert.Equal(t, Resolved{Price: 120, Source: SourceCalculated}, got)
}

func TestResolveEffectivePrice_OverrideWinsEvenWhenLower(t *testing.T) {
	overrides := []Override{
		{ID: 1, RoomID: 1, Date: day(2024, 6, 1), Price: 80, PriceType: SourceRoomIncrease, IsActive: true},
	}
	// The calculated price is higher, the override still wins.
	got := ResolveEffectivePrice(1, day(2024, 6, 1), overrides, 150)
	assert.Equal(t, Resolved{Price: 80, Source: SourceRoomIncrease}, got)
}

func TestResolveEffectivePrice_IgnoresOtherCells(t *testing.T) {
	overrides := []Override{
		{ID: 1, RoomID: 2, Date: day(2024, 6, 1), Price: 80, PriceType: SourceBaseOverride, IsActive: true},
		{ID: 2, RoomID: 1, Date: day(2024, 6, 2), Price: 70, PriceType: SourceBaseOverride, IsActive: true},
		{ID: 3, RoomID: 1, Date: day(2024, 6, 1), Price: 60, PriceType: SourceBaseOverride, IsActive: false},
	}
	got := ResolveEffectivePrice(1, day(2024, 6, 1), overrides, 100)
	assert.Equal(t, Resolved{Price: 100, Source: SourceCalculated}, got)
}

func TestResolveEffectivePrice_DayGranularity(t *testing.T) {
	overrides := []Override{
		{ID: 1, RoomID: 1, Date: time.Date(2024, 6, 1, 14, 30, 0, 0, time.UTC), Price: 95, PriceType: SourceRoomOverride, IsActive: true},
	}
	got := ResolveEffectivePrice(1, time.Date(2024, 6, 1, 2, 0, 0, 0, time.UTC), overrides, 100)
	assert.Equal(t, Resolved{Price: 95, Source: SourceRoomOverride}, got)
}

func TestResolveEffectivePrice_DuplicateActiveRowsNewestWins(t *testing.T) {
	older := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	overrides := []Override{
		{ID: 1, RoomID: 1, Date: day(2024, 6, 1), Price: 80, PriceType: SourceBaseOverride, IsActive: true, CreatedAt: older},
		{ID: 2, RoomID: 1, Date: day(2024, 6, 1), Price: 90, PriceType: SourceBaseOverride, IsActive: true, CreatedAt: newer},
	}
	got := ResolveEffectivePrice(1, day(2024, 6, 1), overrides, 100)
	assert.Equal(t, 90.0, got.Price)

	// Identical timestamps fall back to the highest row ID.
	overrides[1].CreatedAt = older
	got = ResolveEffectivePrice(1, day(2024, 6, 1), overrides, 100)
	assert.Equal(t, 90.0, got.Price)
}
