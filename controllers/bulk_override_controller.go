package controllers

import (
	"fmt"
	"strings"
	"time"

	"github.com/Bgmi10/booking-engine-sub003/config"
	"github.com/Bgmi10/booking-engine-sub003/models"
	"github.com/Bgmi10/booking-engine-sub003/pricing"
	"github.com/Bgmi10/booking-engine-sub003/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BulkOverrideRequest is the payload for a bulk price override
type BulkOverrideRequest struct {
	RatePolicyID uint    `json:"rate_policy_id"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	SelectedDays []int   `json:"selected_days"` // 0=Sunday..6=Saturday
	RoomIDs      []uint  `json:"room_ids"`
	Price        float64 `json:"price"`
	PriceType    string  `json:"price_type"`
	FutureOnly   bool    `json:"future_only"`
}

var validPriceTypes = map[string]bool{
	models.PriceTypeBaseOverride: true,
	models.PriceTypeRoomIncrease: true,
	models.PriceTypeRoomOverride: true,
}

// validateBulkOverride runs the synchronous pre-commit checks. All failures
// are collected so the client can surface them field by field. Returns the
// parsed date range on success.
func validateBulkOverride(req BulkOverrideRequest) (start, end time.Time, errs utils.FieldValidationErrors) {
	if req.Price <= 0 {
		errs = append(errs, utils.FieldValidationError{Field: "price", Message: "price must be greater than zero"})
	}
	if len(req.SelectedDays) == 0 {
		errs = append(errs, utils.FieldValidationError{Field: "selected_days", Message: "select at least one weekday"})
	}
	if len(req.RoomIDs) == 0 {
		errs = append(errs, utils.FieldValidationError{Field: "room_ids", Message: "select at least one room"})
	}
	if req.PriceType != "" && !validPriceTypes[req.PriceType] {
		errs = append(errs, utils.FieldValidationError{Field: "price_type", Message: "unknown price type"})
	}

	var startErr, endErr error
	start, startErr = utils.ParseDate(req.StartDate)
	if startErr != nil {
		errs = append(errs, utils.FieldValidationError{Field: "start_date", Message: startErr.Error()})
	}
	end, endErr = utils.ParseDate(req.EndDate)
	if endErr != nil {
		errs = append(errs, utils.FieldValidationError{Field: "end_date", Message: endErr.Error()})
	}
	if startErr == nil && endErr == nil && start.After(end) {
		errs = append(errs, utils.FieldValidationError{Field: "end_date", Message: "end date must be after start date"})
	}
	return start, end, errs
}

// ApplyBulkOverride writes one override price across a date range filtered
// by weekday selection, for a set of rooms, as a single all-or-nothing
// batch. The aggregate effect is classified against prior effective prices
// and recorded on the audit log; classification never changes what gets
// written.
func ApplyBulkOverride(c *gin.Context) {
	utils.LogInfo("ApplyBulkOverride called")

	var req BulkOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	start, end, errs := validateBulkOverride(req)
	if len(errs) > 0 {
		utils.LogError("Bulk override validation failed: %v", errs)
		utils.ValidationError(c, "Validation failed", errs)
		return
	}

	var policy models.RatePolicy
	if err := config.DB.First(&policy, req.RatePolicyID).Error; err != nil {
		utils.LogError("Rate policy not found: %v", err)
		utils.NotFound(c, "Rate policy not found")
		return
	}

	var rooms []models.Room
	if err := config.DB.Where("id IN ? AND is_active = ?", req.RoomIDs, true).Find(&rooms).Error; err != nil {
		utils.LogError("Failed to fetch rooms: %v", err)
		utils.InternalServerError(c, "Failed to fetch rooms", err.Error())
		return
	}
	if len(rooms) != len(req.RoomIDs) {
		utils.BadRequest(c, "One or more selected rooms do not exist or are inactive", nil)
		return
	}

	dates := pricing.ExpandDates(start, end, pricing.WeekdaySet(req.SelectedDays),
		pricing.ExpandOptions{ExcludePast: req.FutureOnly})
	if len(dates) == 0 {
		utils.BadRequest(c, "No dates in the selected range match the selected weekdays", nil)
		return
	}

	priceType := req.PriceType
	if priceType == "" {
		priceType = models.PriceTypeBaseOverride
	}

	// Snapshot prior effective prices before writing anything.
	percentages, err := roomRateLookup(config.DB, policy.ID, req.RoomIDs)
	if err != nil {
		utils.LogError("Failed to fetch room rates: %v", err)
		utils.InternalServerError(c, "Failed to fetch room rates", err.Error())
		return
	}
	overrideRows, err := utils.ActiveRateDatePrices(config.DB, policy.ID, req.RoomIDs, start, end)
	if err != nil {
		utils.LogError("Failed to fetch date prices: %v", err)
		utils.InternalServerError(c, "Failed to fetch date prices", err.Error())
		return
	}
	overrides := utils.ToOverrides(overrideRows)

	calculated := make(map[uint]float64, len(rooms))
	for _, room := range rooms {
		calculated[room.ID] = pricing.AdjustedPrice(effectiveBasePrice(policy, room), percentages[room.ID])
	}
	prior := priorPriceLookup(overrides, calculated)

	cells := make([]pricing.TargetCell, 0, len(rooms)*len(dates))
	rows := make([]utils.PriceRow, 0, len(rooms)*len(dates))
	details := make(models.OverrideDetailList, 0, len(rooms)*len(dates))
	for _, room := range rooms {
		for _, date := range dates {
			cells = append(cells, pricing.TargetCell{RoomID: room.ID, Date: date})
			rows = append(rows, utils.PriceRow{RoomID: room.ID, Date: date, Price: req.Price, PriceType: priceType})
			priorPrice, _ := prior(room.ID, date)
			details = append(details, models.OverrideDetail{
				RoomID:     room.ID,
				Date:       date.Format(utils.DateFormat),
				PriorPrice: priorPrice,
				NewPrice:   req.Price,
			})
		}
	}

	actionType := pricing.ClassifyBulkAction(cells, req.Price, prior)

	adminID := adminIDFromContext(c)
	roomIDStrings := make([]string, len(req.RoomIDs))
	for i, id := range req.RoomIDs {
		roomIDStrings[i] = fmt.Sprintf("%d", id)
	}

	// One transaction covers the price rows and the audit entry.
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := utils.UpsertRateDatePrices(tx, policy.ID, rows); err != nil {
			return err
		}
		log := models.BulkOverrideLog{
			RatePolicyID:    policy.ID,
			StartDate:       start,
			EndDate:         end,
			RoomIDs:         strings.Join(roomIDStrings, ","),
			DateCount:       len(dates),
			CellCount:       len(cells),
			NewPrice:        req.Price,
			ActionType:      actionType,
			OverrideDetails: details,
			CreatedBy:       adminID,
		}
		return tx.Create(&log).Error
	})
	if err != nil {
		utils.LogError("Bulk override commit failed: %v", err)
		utils.InternalServerError(c, "Failed to apply bulk override", err.Error())
		return
	}

	utils.LogInfo("Bulk override applied: policy=%d rooms=%d dates=%d action=%s",
		policy.ID, len(rooms), len(dates), actionType)
	utils.Success(c, "Bulk override applied successfully", gin.H{
		"action_type": actionType,
		"date_count":  len(dates),
		"cell_count":  len(cells),
	})
}

// adminIDFromContext returns the authenticated admin's ID, or 0 when absent
func adminIDFromContext(c *gin.Context) uint {
	if v, exists := c.Get("admin"); exists {
		if admin, ok := v.(models.Admin); ok {
			return admin.ID
		}
	}
	return 0
}
