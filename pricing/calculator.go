// Package pricing implements the rate pricing resolution and bulk override
// engine: effective nightly price calculation, date-scoped override
// resolution, date-range expansion and bulk action classification. All
// functions are pure; persistence lives with the callers.
package pricing

import (
	"math"
	"strconv"
	"strings"
)

// CalculatePrice applies a percentage adjustment to a base price and rounds
// to the cent (half-up). A base of zero or less is returned unmodified.
// Blank or malformed percentages count as 0.
func CalculatePrice(base float64, percentage string) float64 {
	return AdjustedPrice(base, ParsePercentage(percentage))
}

// AdjustedPrice is the numeric core of CalculatePrice for callers that
// already hold a parsed percentage.
func AdjustedPrice(base, pct float64) float64 {
	if base <= 0 {
		return base
	}
	return RoundToCent(base + base*pct/100)
}

// ParsePercentage converts a percentage string to a float, treating blank
// or unparseable input as 0.
func ParsePercentage(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	pct, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return pct
}

// RoundToCent rounds half-up at two decimal places.
func RoundToCent(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
