package controllers

import (
	"strconv"

	"github.com/Bgmi10/booking-engine-sub003/config"
	"github.com/Bgmi10/booking-engine-sub003/models"
	"github.com/Bgmi10/booking-engine-sub003/utils"
	"github.com/gin-gonic/gin"
)

// AddCharge adds an ad-hoc charge to a booking
func AddCharge(c *gin.Context) {
	utils.LogInfo("AddCharge called")

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid booking ID", nil)
		return
	}

	var req struct {
		Description string  `json:"description" binding:"required"`
		Amount      float64 `json:"amount" binding:"required,gt=0"`
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

	if booking.Status == models.BookingStatusCancelled || booking.Status == models.BookingStatusRefunded {
		utils.BadRequest(c, "Cannot add charges to a cancelled or refunded booking", nil)
		return
	}

	charge := models.Charge{
		BookingID:   booking.ID,
		Description: req.Description,
		Amount:      req.Amount,
		Status:      models.ChargeStatusPending,
		CreatedBy:   adminIDFromContext(c),
	}
	if err := config.DB.Create(&charge).Error; err != nil {
		utils.LogError("Failed to create charge: %v", err)
		utils.InternalServerError(c, "Failed to create charge", err.Error())
		return
	}

	utils.Created(c, "Charge added successfully", gin.H{"charge": charge})
}

// GetCharges lists the charges on a booking
func GetCharges(c *gin.Context) {
	utils.LogInfo("GetCharges called")

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid booking ID", nil)
		return
	}

	var charges []models.Charge
	if err := config.DB.Where("booking_id = ?", bookingID).Order("created_at asc").Find(&charges).Error; err != nil {
		utils.LogError("Failed to fetch charges: %v", err)
		utils.InternalServerError(c, "Failed to fetch charges", err.Error())
		return
	}

	total := 0.0
	for _, charge := range charges {
		if charge.Status != models.ChargeStatusVoided {
			total += charge.Amount
		}
	}

	utils.Success(c, "Charges retrieved successfully", gin.H{
		"charges": charges,
		"total":   total,
	})
}

// VoidCharge voids a pending charge
func VoidCharge(c *gin.Context) {
	utils.LogInfo("VoidCharge called")

	chargeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid charge ID", nil)
		return
	}

	var charge models.Charge
	if err := config.DB.First(&charge, chargeID).Error; err != nil {
		utils.LogError("Charge not found: %v", err)
		utils.NotFound(c, "Charge not found")
		return
	}

	if charge.Status != models.ChargeStatusPending {
		utils.BadRequest(c, "Only pending charges can be voided", gin.H{"status": charge.Status})
		return
	}

	if err := config.DB.Model(&charge).Update("status", models.ChargeStatusVoided).Error; err != nil {
		utils.LogError("Failed to void charge: %v", err)
		utils.InternalServerError(c, "Failed to void charge", err.Error())
		return
	}

	utils.Success(c, "Charge voided successfully", gin.H{"charge": charge})
}
