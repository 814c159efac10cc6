package models

import (
	"time"
)

// Room order status constants
const (
	RoomOrderStatusPlaced    = "Placed"
	RoomOrderStatusPreparing = "Preparing"
	RoomOrderStatusDelivered = "Delivered"
	RoomOrderStatusCancelled = "Cancelled"
)

// RoomOrder is an in-room service order (dining, spa, amenities) attached
// to a booking and billed as part of the stay.
type RoomOrder struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	BookingID uint            `json:"booking_id" gorm:"not null;index"`
	Booking   Booking         `json:"booking,omitempty" gorm:"foreignKey:BookingID"`
	Total     float64         `json:"total"`
	Status    string          `json:"status" gorm:"default:'Placed'"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Items     []RoomOrderItem `json:"items" gorm:"foreignKey:RoomOrderID"`
}

// RoomOrderItem is one line of a room order.
type RoomOrderItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	RoomOrderID uint    `json:"room_order_id"`
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}
