package pricing

import (
	"math"
	"time"
)

// Bulk action classifications. These mirror the values stored on the audit
// log and are advisory metadata only; they never change which rows get
// written.
const (
	BulkIncrease = "BULK_INCREASE"
	BulkDecrease = "BULK_DECREASE"
	BulkOverride = "BULK_OVERRIDE"
)

// centTolerance treats prices within half a cent as equal.
const centTolerance = 0.005

// TargetCell identifies one (room, date) cell of a bulk operation.
type TargetCell struct {
	RoomID uint
	Date   time.Time
}

// PriorPriceFunc returns the prior effective price for a cell, or false
// when no prior price is known.
type PriorPriceFunc func(roomID uint, date time.Time) (float64, bool)

// ClassifyBulkAction compares the new price against each cell's prior
// effective price and classifies the aggregate effect. Cells with no known
// prior price are excluded from the tally. A strict plurality of increases
// or decreases names the action; everything else (ties, same-dominant,
// mixed) is a plain override.
func ClassifyBulkAction(cells []TargetCell, newPrice float64, prior PriorPriceFunc) string {
	var increase, decrease, same int
	for _, cell := range cells {
		prev, ok := prior(cell.RoomID, cell.Date)
		if !ok {
			continue
		}
		switch {
		case math.Abs(newPrice-prev) <= centTolerance:
			same++
		case newPrice > prev:
			increase++
		default:
			decrease++
		}
	}

	switch {
	case increase > decrease && increase > same:
		return BulkIncrease
	case decrease > increase && decrease > same:
		return BulkDecrease
	default:
		return BulkOverride
	}
}
