package models

import (
	"time"

	"gorm.io/gorm"
)

// Price type constants for date-scoped overrides
const (
	PriceTypeBaseOverride = "BASE_OVERRIDE"
	PriceTypeRoomIncrease = "ROOM_INCREASE"
	PriceTypeRoomOverride = "ROOM_OVERRIDE"
)

// RateDatePrice is a date-scoped price override for a (room, rate policy,
// date) cell. Rows are soft-deactivated rather than deleted; the write path
// keeps at most one active row per cell.
type RateDatePrice struct {
	gorm.Model
	RoomID       uint      `json:"room_id" gorm:"index:idx_rate_date_price_cell;not null"`
	Room         Room      `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	RatePolicyID uint      `json:"rate_policy_id" gorm:"index:idx_rate_date_price_cell;not null"`
	Date         time.Time `json:"date" gorm:"index:idx_rate_date_price_cell;type:date;not null"`
	Price        float64   `json:"price"`
	PriceType    string    `json:"price_type" gorm:"default:'BASE_OVERRIDE'"`
	IsActive     bool      `json:"is_active" gorm:"default:true;index"`
}
