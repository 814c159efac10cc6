package models

import (
	"time"
)

// Refund status constants
const (
	RefundStatusPending   = "pending"
	RefundStatusCompleted = "completed"
	RefundStatusFailed    = "failed"
)

// Refund represents money returned against a completed payment intent.
type Refund struct {
	ID              uint          `json:"id" gorm:"primaryKey"`
	BookingID       uint          `json:"booking_id" gorm:"index"`
	PaymentIntentID uint          `json:"payment_intent_id" gorm:"not null"`
	PaymentIntent   PaymentIntent `json:"payment_intent,omitempty" gorm:"foreignKey:PaymentIntentID"`
	Amount          float64       `json:"amount"`
	Reason          string        `json:"reason" gorm:"not null"`
	Status          string        `json:"status" gorm:"default:'pending'"` // pending, completed, failed
	ProcessedAt     *time.Time    `json:"processed_at,omitempty"`
	CreatedBy       uint          `json:"created_by"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}
