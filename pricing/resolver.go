package pricing

import (
	"time"
)

// Price source constants reported alongside a resolved price.
const (
	SourceCalculated   = "CALCULATED"
	SourceBaseOverride = "BASE_OVERRIDE"
	SourceRoomIncrease = "ROOM_INCREASE"
	SourceRoomOverride = "ROOM_OVERRIDE"
)

// Override is a date-scoped price row as seen by the resolver. Callers map
// persistence rows into this shape.
type Override struct {
	ID        uint
	RoomID    uint
	Date      time.Time
	Price     float64
	PriceType string
	IsActive  bool
	CreatedAt time.Time
}

// Resolved is an effective price with the source that produced it.
type Resolved struct {
	Price  float64
	Source string
}

// ResolveEffectivePrice picks the price for one (room, date) cell. An
// active override matching the cell at day granularity wins over the
// calculated price regardless of its price type. When several active rows
// match the same cell the most recently created one wins, with row ID as
// the final tiebreak so the result is deterministic.
func ResolveEffectivePrice(roomID uint, date time.Time, overrides []Override, calculated float64) Resolved {
	var winner *Override
	for i := range overrides {
		o := &overrides[i]
		if !o.IsActive || o.RoomID != roomID || !SameDay(o.Date, date) {
			continue
		}
		if winner == nil || o.CreatedAt.After(winner.CreatedAt) ||
			(o.CreatedAt.Equal(winner.CreatedAt) && o.ID > winner.ID) {
			winner = o
		}
	}
	if winner == nil {
		return Resolved{Price: calculated, Source: SourceCalculated}
	}
	return Resolved{Price: winner.Price, Source: winner.PriceType}
}

// SameDay reports whether two instants fall on the same calendar day,
// ignoring time of day. Both are compared in UTC.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
