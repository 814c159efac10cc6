package controllers

import (
	"strconv"
	"strings"

	"github.com/Bgmi10/booking-engine-sub003/config"
	"github.com/Bgmi10/booking-engine-sub003/models"
	"github.com/Bgmi10/booking-engine-sub003/pricing"
	"github.com/Bgmi10/booking-engine-sub003/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateBooking creates a booking and prices the stay night by night
// through the rate engine
func CreateBooking(c *gin.Context) {
	utils.LogInfo("CreateBooking called")

	var req struct {
		RoomID       uint   `json:"room_id" binding:"required"`
		RatePolicyID uint   `json:"rate_policy_id" binding:"required"`
		GuestName    string `json:"guest_name" binding:"required"`
		GuestEmail   string `json:"guest_email" binding:"required"`
		GuestPhone   string `json:"guest_phone"`
		CheckIn      string `json:"check_in" binding:"required"`
		CheckOut     string `json:"check_out" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	if !utils.ValidateEmail(req.GuestEmail) {
		utils.BadRequest(c, "Invalid guest email", nil)
		return
	}

	checkIn, err := utils.ParseDate(req.CheckIn)
	if err != nil {
		utils.BadRequest(c, "Invalid check-in date", err.Error())
		return
	}
	checkOut, err := utils.ParseDate(req.CheckOut)
	if err != nil {
		utils.BadRequest(c, "Invalid check-out date", err.Error())
		return
	}
	if !checkIn.Before(checkOut) {
		utils.BadRequest(c, "Check-out must be after check-in", nil)
		return
	}

	var room models.Room
	if err := config.DB.First(&room, req.RoomID).Error; err != nil {
		utils.LogError("Room not found: %v", err)
		utils.NotFound(c, "Room not found")
		return
	}
	var policy models.RatePolicy
	if err := config.DB.First(&policy, req.RatePolicyID).Error; err != nil {
		utils.LogError("Rate policy not found: %v", err)
		utils.NotFound(c, "Rate policy not found")
		return
	}

	// Reject overlapping confirmed stays for the same room.
	var overlap int64
	config.DB.Model(&models.Booking{}).
		Where("room_id = ? AND status IN ? AND check_in < ? AND check_out > ?",
			room.ID,
			[]string{models.BookingStatusConfirmed, models.BookingStatusCheckedIn},
			checkOut, checkIn).
		Count(&overlap)
	if overlap > 0 {
		utils.Conflict(c, "Room is already booked for part of this range", nil)
		return
	}

	// Price each night through the override resolver.
	percentages, err := roomRateLookup(config.DB, policy.ID, []uint{room.ID})
	if err != nil {
		utils.LogError("Failed to fetch room rates: %v", err)
		utils.InternalServerError(c, "Failed to price booking", err.Error())
		return
	}
	lastNight := checkOut.AddDate(0, 0, -1)
	overrideRows, err := utils.ActiveRateDatePrices(config.DB, policy.ID, []uint{room.ID}, checkIn, lastNight)
	if err != nil {
		utils.LogError("Failed to fetch date prices: %v", err)
		utils.InternalServerError(c, "Failed to price booking", err.Error())
		return
	}
	overrides := utils.ToOverrides(overrideRows)
	calculated := pricing.AdjustedPrice(effectiveBasePrice(policy, room), percentages[room.ID])

	nights := pricing.ExpandDates(checkIn, lastNight, pricing.WeekdaySet([]int{0, 1, 2, 3, 4, 5, 6}), pricing.ExpandOptions{})
	total := 0.0
	for _, night := range nights {
		resolved := pricing.ResolveEffectivePrice(room.ID, night, overrides, calculated)
		total = pricing.RoundToCent(total + resolved.Price)
	}

	booking := models.Booking{
		ConfirmationNumber: strings.ToUpper(uuid.New().String()[:8]),
		RoomID:             room.ID,
		RatePolicyID:       policy.ID,
		GuestName:          req.GuestName,
		GuestEmail:         req.GuestEmail,
		GuestPhone:         req.GuestPhone,
		CheckIn:            checkIn,
		CheckOut:           checkOut,
		Nights:             len(nights),
		TotalAmount:        total,
		Status:             models.BookingStatusPending,
	}
	if err := config.DB.Create(&booking).Error; err != nil {
		utils.LogError("Failed to create booking: %v", err)
		utils.InternalServerError(c, "Failed to create booking", err.Error())
		return
	}

	utils.LogInfo("Booking %s created for room %d, %d nights, total %.2f",
		booking.ConfirmationNumber, room.ID, booking.Nights, booking.TotalAmount)
	utils.Created(c, "Booking created successfully", gin.H{"booking": booking})
}

// GetBookings lists bookings with pagination and optional filters
func GetBookings(c *gin.Context) {
	utils.LogInfo("GetBookings called")

	pagination := utils.NewPagination(c)
	query := config.DB.Model(&models.Booking{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if roomID := c.Query("room_id"); roomID != "" {
		query = query.Where("room_id = ?", roomID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count bookings: %v", err)
		utils.InternalServerError(c, "Failed to fetch bookings", err.Error())
		return
	}

	var bookings []models.Booking
	if err := query.Preload("Room").Order("check_in desc").
		Offset(pagination.Offset).Limit(pagination.Limit).Find(&bookings).Error; err != nil {
		utils.LogError("Failed to fetch bookings: %v", err)
		utils.InternalServerError(c, "Failed to fetch bookings", err.Error())
		return
	}

	utils.SuccessWithPagination(c, "Bookings retrieved successfully", gin.H{"bookings": bookings}, total, pagination.Page, pagination.Limit)
}

// GetBooking returns one booking by ID
func GetBooking(c *gin.Context) {
	utils.LogInfo("GetBooking called")

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid booking ID", nil)
		return
	}

	var booking models.Booking
	if err := config.DB.Preload("Room").Preload("RatePolicy").
		Preload("PaymentIntents").Preload("Charges").First(&booking, bookingID).Error; err != nil {
		utils.LogError("Booking not found: %v", err)
		utils.NotFound(c, "Booking not found")
		return
	}

	utils.Success(c, "Booking retrieved successfully", gin.H{"booking": booking})
}

// Allowed booking status transitions
var bookingTransitions = map[string][]string{
	models.BookingStatusPending:    {models.BookingStatusConfirmed, models.BookingStatusCancelled},
	models.BookingStatusConfirmed:  {models.BookingStatusCheckedIn, models.BookingStatusCancelled},
	models.BookingStatusCheckedIn:  {models.BookingStatusCheckedOut},
	models.BookingStatusCancelled:  {models.BookingStatusRefunded},
	models.BookingStatusCheckedOut: {models.BookingStatusRefunded},
}

// UpdateBookingStatus moves a booking through its lifecycle
func UpdateBookingStatus(c *gin.Context) {
	utils.LogInfo("UpdateBookingStatus called")

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid booking ID", nil)
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	var booking models.Booking
	if err := config.DB.First(&booking, bookingID).Error; err != nil {
		utils.LogError("Booking not found: %v", err)
		utils.NotFound(c, "Booking not found")
		return
	}

	allowed := false
	for _, next := range bookingTransitions[booking.Status] {
		if next == req.Status {
			allowed = true
			break
		}
	}
	if !allowed {
		utils.BadRequest(c, "Invalid status transition", gin.H{
			"from": booking.Status,
			"to":   req.Status,
		})
		return
	}

	if req.Status == models.BookingStatusCancelled && req.Reason == "" {
		utils.BadRequest(c, "Cancellation reason is required", nil)
		return
	}

	updates := map[string]interface{}{"status": req.Status}
	if req.Reason != "" {
		updates["cancellation_reason"] = req.Reason
	}
	if err := config.DB.Model(&booking).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update booking status: %v", err)
		utils.InternalServerError(c, "Failed to update booking status", err.Error())
		return
	}

	if req.Status == models.BookingStatusConfirmed {
		if err := utils.SendBookingConfirmation(booking.GuestEmail, booking.GuestName,
			booking.ConfirmationNumber,
			booking.CheckIn.Format(utils.DateFormat),
			booking.CheckOut.Format(utils.DateFormat),
			booking.TotalAmount); err != nil {
			utils.LogError("Failed to send confirmation email for booking %d: %v", booking.ID, err)
		}
	}

	utils.LogInfo("Booking %d moved to %s", booking.ID, req.Status)
	utils.Success(c, "Booking status updated successfully", gin.H{"booking": booking})
}
