package models

import (
	"time"
)

// Charge status constants
const (
	ChargeStatusPending = "pending"
	ChargeStatusSettled = "settled"
	ChargeStatusVoided  = "voided"
)

// Charge is an ad-hoc amount added to a booking (minibar, damages, late
// checkout and the like), settled at checkout.
type Charge struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	BookingID   uint      `json:"booking_id" gorm:"not null;index"`
	Description string    `json:"description" gorm:"not null"`
	Amount      float64   `json:"amount"`
	Status      string    `json:"status" gorm:"default:'pending'"` // pending, settled, voided
	CreatedBy   uint      `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
