package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking status constants
const (
	BookingStatusPending    = "PENDING"
	BookingStatusConfirmed  = "CONFIRMED"
	BookingStatusCheckedIn  = "CHECKED_IN"
	BookingStatusCheckedOut = "CHECKED_OUT"
	BookingStatusCancelled  = "CANCELLED"
	BookingStatusRefunded   = "REFUNDED"
)

// Booking represents a guest stay in a room between two dates.
type Booking struct {
	gorm.Model
	ConfirmationNumber string          `json:"confirmation_number" gorm:"uniqueIndex;not null"`
	RoomID             uint            `json:"room_id" gorm:"not null"`
	Room               Room            `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	RatePolicyID       uint            `json:"rate_policy_id"`
	RatePolicy         RatePolicy      `json:"rate_policy,omitempty" gorm:"foreignKey:RatePolicyID"`
	GuestName          string          `json:"guest_name" gorm:"not null"`
	GuestEmail         string          `json:"guest_email" gorm:"not null"`
	GuestPhone         string          `json:"guest_phone"`
	CheckIn            time.Time       `json:"check_in" gorm:"type:date;not null"`
	CheckOut           time.Time       `json:"check_out" gorm:"type:date;not null"`
	Nights             int             `json:"nights"`
	TotalAmount        float64         `json:"total_amount"`
	Status             string          `json:"status" gorm:"default:'PENDING'"`
	CancellationReason string          `json:"cancellation_reason,omitempty"`
	PaymentIntents     []PaymentIntent `json:"payment_intents,omitempty" gorm:"foreignKey:BookingID"`
	Charges            []Charge        `json:"charges,omitempty" gorm:"foreignKey:BookingID"`
}
