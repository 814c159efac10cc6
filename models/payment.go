package models

import (
	"time"
)

// Payment intent status constants
const (
	PaymentIntentPending   = "pending"
	PaymentIntentCompleted = "completed"
	PaymentIntentFailed    = "failed"
	PaymentIntentExpired   = "expired"
)

// PaymentIntent represents an expected payment for a booking. The gateway
// order is created when the intent is created; confirmation marks it
// completed.
type PaymentIntent struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	BookingID       uint       `json:"booking_id" gorm:"not null"`
	Reference       string     `json:"reference" gorm:"uniqueIndex;not null"`
	GatewayOrderID  string     `json:"gateway_order_id"`
	GatewayPayID    string     `json:"gateway_payment_id,omitempty"`
	Amount          float64    `json:"amount"`
	Currency        string     `json:"currency" gorm:"default:'INR'"`
	Status          string     `json:"status" gorm:"default:'pending'"` // pending, completed, failed, expired
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
