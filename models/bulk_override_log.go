package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Bulk action classification constants
const (
	BulkActionIncrease = "BULK_INCREASE"
	BulkActionDecrease = "BULK_DECREASE"
	BulkActionOverride = "BULK_OVERRIDE"
)

// OverrideDetail is one price delta recorded by a bulk operation.
type OverrideDetail struct {
	RoomID     uint    `json:"room_id"`
	Date       string  `json:"date"` // YYYY-MM-DD
	PriorPrice float64 `json:"prior_price"`
	NewPrice   float64 `json:"new_price"`
}

// OverrideDetailList stores the delta snapshot as a JSON column.
type OverrideDetailList []OverrideDetail

// Value implements driver.Valuer for JSON storage
func (l OverrideDetailList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (l *OverrideDetailList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type for OverrideDetailList: %T", value)
	}
}

// BulkOverrideLog is an append-only audit record of one bulk price
// operation. Rows are never updated after creation.
type BulkOverrideLog struct {
	gorm.Model
	RatePolicyID    uint               `json:"rate_policy_id"`
	StartDate       time.Time          `json:"start_date" gorm:"type:date"`
	EndDate         time.Time          `json:"end_date" gorm:"type:date"`
	RoomIDs         string             `json:"room_ids"` // comma-separated
	DateCount       int                `json:"date_count"`
	CellCount       int                `json:"cell_count"`
	NewPrice        float64            `json:"new_price"`
	ActionType      string             `json:"action_type"`
	OverrideDetails OverrideDetailList `json:"override_details" gorm:"type:jsonb"`
	CreatedBy       uint               `json:"created_by"`
}
