package models

import (
	"time"

	"gorm.io/gorm"
)

// BlacklistedToken records a revoked admin JWT so logout takes effect
// before the token expires on its own.
type BlacklistedToken struct {
	gorm.Model
	Token     string    `json:"token" gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
}
