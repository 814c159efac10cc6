package controllers

import (
	"testing"

	"github.com/Bgmi10/booking-engine-sub003/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() BulkOverrideRequest {
	return BulkOverrideRequest{
		RatePolicyID: 1,
		StartDate:    "2024-06-01",
		EndDate:      "2024-06-30",
		SelectedDays: []int{5, 6},
		RoomIDs:      []uint{1, 2},
		Price:        150,
	}
}

func fieldsOf(errs utils.FieldValidationErrors) []string {
	fields := make([]string, len(errs))
	for i, e := range errs {
		fields[i] = e.Field
	}
	return fields
}

func TestValidateBulkOverride_Valid(t *testing.T) {
	start, end, errs := validateBulkOverride(validRequest())
	require.Empty(t, errs)
	assert.Equal(t, "2024-06-01", start.Format("2006-01-02"))
	assert.Equal(t, "2024-06-30", end.Format("2006-01-02"))
}

func TestValidateBulkOverride_RejectsNonPositivePrice(t *testing.T) {
	req := validRequest()
	req.Price = 0
	_, _, errs := validateBulkOverride(req)
	assert.Contains(t, fieldsOf(errs), "price")

	req.Price = -10
	_, _, errs = validateBulkOverride(req)
	assert.Contains(t, fieldsOf(errs), "price")
}

func TestValidateBulkOverride_RejectsEmptySelections(t *testing.T) {
	req := validRequest()
	req.SelectedDays = nil
	req.RoomIDs = nil
	_, _, errs := validateBulkOverride(req)
	fields := fieldsOf(errs)
	assert.Contains(t, fields, "selected_days")
	assert.Contains(t, fields, "room_ids")
}

func TestValidateBulkOverride_RejectsReversedRange(t *testing.T) {
	req := validRequest()
	req.StartDate = "2024-07-01"
	req.EndDate = "2024-06-01"
	_, _, errs := validateBulkOverride(req)
	require.Len(t, errs, 1)
	assert.Equal(t, "end_date", errs[0].Field)
	assert.Equal(t, "end date must be after start date", errs[0].Message)
}

func TestValidateBulkOverride_ReportsRangeAlongsideOtherFailures(t *testing.T) {
	// A reversed range is reported even when another field is also bad.
	req := validRequest()
	req.Price = 0
	req.StartDate = "2024-07-01"
	req.EndDate = "2024-06-01"
	_, _, errs := validateBulkOverride(req)
	fields := fieldsOf(errs)
	assert.Contains(t, fields, "price")
	assert.Contains(t, fields, "end_date")
	assert.Len(t, errs, 2)
}

func TestValidateBulkOverride_RejectsMalformedDates(t *testing.T) {
	req := validRequest()
	req.StartDate = "01/06/2024"
	_, _, errs := validateBulkOverride(req)
	assert.Contains(t, fieldsOf(errs), "start_date")
}

func TestValidateBulkOverride_RejectsUnknownPriceType(t *testing.T) {
	req := validRequest()
	req.PriceType = "FLASH_SALE"
	_, _, errs := validateBulkOverride(req)
	assert.Contains(t, fieldsOf(errs), "price_type")
}

func TestValidateBulkOverride_CollectsAllFailures(t *testing.T) {
	req := BulkOverrideRequest{StartDate: "bad", EndDate: "worse"}
	_, _, errs := validateBulkOverride(req)
	// price, selected_days, room_ids, start_date, end_date
	assert.Len(t, errs, 5)
}
