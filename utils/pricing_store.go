package utils

import (
	"time"

	"github.com/Bgmi10/booking-engine-sub003/models"
	"github.com/Bgmi10/booking-engine-sub003/pricing"
	"gorm.io/gorm"
)

// PriceRow is one (room, date) price to persist.
type PriceRow struct {
	RoomID    uint
	Date      time.Time
	Price     float64
	PriceType string
}

// UpsertRateDatePrices writes a batch of date-scoped prices for one rate
// policy inside a single transaction. Prior active rows for each affected
// cell are deactivated first so at most one active row exists per
// (room, policy, date). The batch is all-or-nothing: any failure rolls the
// whole write back.
func UpsertRateDatePrices(db *gorm.DB, ratePolicyID uint, rows []PriceRow) error {
	if len(rows) == 0 {
		return nil
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			date := pricing.Truncate(row.Date)
			if err := tx.Model(&models.RateDatePrice{}).
				Where("room_id = ? AND rate_policy_id = ? AND date = ? AND is_active = ?",
					row.RoomID, ratePolicyID, date, true).
				Update("is_active", false).Error; err != nil {
				return WrapError(err, "deactivate prior price rows")
			}
			record := models.RateDatePrice{
				RoomID:       row.RoomID,
				RatePolicyID: ratePolicyID,
				Date:         date,
				Price:        row.Price,
				PriceType:    row.PriceType,
				IsActive:     true,
			}
			if err := tx.Create(&record).Error; err != nil {
				return WrapError(err, "insert price row")
			}
		}
		return nil
	})
}

// ActiveRateDatePrices loads the active overrides for a room set and date
// range, ordered by creation so the resolver's newest-wins rule holds.
func ActiveRateDatePrices(db *gorm.DB, ratePolicyID uint, roomIDs []uint, start, end time.Time) ([]models.RateDatePrice, error) {
	var rows []models.RateDatePrice
	query := db.Where("rate_policy_id = ? AND is_active = ? AND date BETWEEN ? AND ?",
		ratePolicyID, true, pricing.Truncate(start), pricing.Truncate(end))
	if len(roomIDs) > 0 {
		query = query.Where("room_id IN ?", roomIDs)
	}
	if err := query.Order("created_at asc, id asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// DeactivateRateDatePrice soft-deletes one override row by ID.
func DeactivateRateDatePrice(db *gorm.DB, id uint) error {
	result := db.Model(&models.RateDatePrice{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ToOverrides maps persistence rows into the resolver's shape.
func ToOverrides(rows []models.RateDatePrice) []pricing.Override {
	overrides := make([]pricing.Override, len(rows))
	for i, row := range rows {
		overrides[i] = pricing.Override{
			ID:        row.ID,
			RoomID:    row.RoomID,
			Date:      row.Date,
			Price:     row.Price,
			PriceType: row.PriceType,
			IsActive:  row.IsActive,
			CreatedAt: row.CreatedAt,
		}
	}
	return overrides
}
