package models

import (
	"time"

	"gorm.io/gorm"
)

// Admin represents a staff member with access to the admin panel
type Admin struct {
	gorm.Model
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `json:"-"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	LastLogin time.Time `json:"last_login"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
}

// Payment structure options for a rate policy
const (
	PaymentStructureFull  = "FULL_PAYMENT"
	PaymentStructureSplit = "SPLIT_PAYMENT"
)

// Cancellation policy options for a rate policy
const (
	CancellationFlexible      = "FLEXIBLE"
	CancellationModerate      = "MODERATE"
	CancellationStrict        = "STRICT"
	CancellationNonRefundable = "NON_REFUNDABLE"
)

// RatePolicy represents a named bundle of pricing and cancellation terms
// applied to rooms through RoomRate join rows.
type RatePolicy struct {
	gorm.Model
	Name               string     `json:"name" gorm:"uniqueIndex;not null"`
	Description        string     `json:"description"`
	BasePrice          float64    `json:"base_price"`
	IsRefundable       bool       `json:"is_refundable" gorm:"default:true"`
	PaymentStructure   string     `json:"payment_structure" gorm:"default:'FULL_PAYMENT'"`
	CancellationPolicy string     `json:"cancellation_policy" gorm:"default:'FLEXIBLE'"`
	UseRoomPrice       bool       `json:"use_room_price" gorm:"default:false"`
	IsActive           bool       `json:"is_active" gorm:"default:true"`
	RoomRates          []RoomRate `json:"room_rates,omitempty" gorm:"foreignKey:RatePolicyID"`
}

// Room represents a physical unit available for booking
type Room struct {
	gorm.Model
	Name        string     `json:"name" gorm:"not null"`
	RoomNumber  string     `json:"room_number" gorm:"uniqueIndex"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Capacity    int        `json:"capacity" gorm:"default:2"`
	Amenities   string     `json:"amenities"` // comma-separated
	IsActive    bool       `json:"is_active" gorm:"default:true"`
	RoomRates   []RoomRate `json:"room_rates,omitempty" gorm:"foreignKey:RoomID"`
}

// RoomRate links a room to a rate policy. The percentage adjustment applies
// multiplicatively to whichever base price is in effect for the policy
// (policy base price, or the room's own price when UseRoomPrice is set).
type RoomRate struct {
	gorm.Model
	RoomID               uint       `json:"room_id" gorm:"uniqueIndex:idx_room_rate_pair;not null"`
	Room                 Room       `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	RatePolicyID         uint       `json:"rate_policy_id" gorm:"uniqueIndex:idx_room_rate_pair;not null"`
	RatePolicy           RatePolicy `json:"rate_policy,omitempty" gorm:"foreignKey:RatePolicyID"`
	PercentageAdjustment float64    `json:"percentage_adjustment"`
}
