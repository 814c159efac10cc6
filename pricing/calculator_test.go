package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePrice_PercentageAdjustment(t *testing.T) {
	assert.Equal(t, 110.00, CalculatePrice(100, "10"))
	assert.Equal(t, 90.00, CalculatePrice(100, "-10"))
	assert.Equal(t, 100.00, CalculatePrice(100, "0"))
}

func TestCalculatePrice_BaseAtOrBelowZero(t *testing.T) {
	// Non-positive bases pass through untouched, percentage ignored.
	assert.Equal(t, 0.0, CalculatePrice(0, "50"))
	assert.Equal(t, -25.0, CalculatePrice(-25, "50"))
}

func TestCalculatePrice_BlankOrMalformedPercentage(t *testing.T) {
	assert.Equal(t, 100.00, CalculatePrice(100, ""))
	assert.Equal(t, 100.00, CalculatePrice(100, "   "))
	assert.Equal(t, 100.00, CalculatePrice(100, "abc"))
	assert.Equal(t, 100.00, CalculatePrice(100, "12%"))
}

func TestCalculatePrice_RoundsHalfUpAtCent(t *testing.T) {
	// 100.01 * 1.105 = 110.51105 -> 110.51
	assert.Equal(t, 110.51, CalculatePrice(100.01, "10.5"))
	// 33.33 + 33.33*0.015 = 33.82995 -> 33.83
	assert.Equal(t, 33.83, CalculatePrice(33.33, "1.5"))
}

func TestRoundToCent(t *testing.T) {
	assert.Equal(t, 12.34, RoundToCent(12.344))
	assert.Equal(t, 12.35, RoundToCent(12.346))
	// 1.125 is exactly representable, so this exercises the half-up rule.
	assert.Equal(t, 1.13, RoundToCent(1.125))
}

func TestParsePercentage(t *testing.T) {
	assert.Equal(t, 12.5, ParsePercentage(" 12.5 "))
	assert.Equal(t, -8.0, ParsePercentage("-8"))
	assert.Equal(t, 0.0, ParsePercentage(""))
	assert.Equal(t, 0.0, ParsePercentage("ten"))
}
