package controllers

import (
	"errors"
	"strconv"

	"github.com/Bgmi10/booking-engine-sub003/config"
	"github.com/Bgmi10/booking-engine-sub003/models"
	"github.com/Bgmi10/booking-engine-sub003/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetRateDatePrice writes a single-cell override for one (room, date)
func SetRateDatePrice(c *gin.Context) {
	utils.LogInfo("SetRateDatePrice called")

	var req struct {
		RatePolicyID uint    `json:"rate_policy_id" binding:"required"`
		RoomID       uint    `json:"room_id" binding:"required"`
		Date         string  `json:"date" binding:"required"`
		Price        float64 `json:"price" binding:"required,gt=0"`
		PriceType    string  `json:"price_type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		utils.BadRequest(c, "Invalid date", err.Error())
		return
	}

	priceType := req.PriceType
	if priceType == "" {
		priceType = models.PriceTypeBaseOverride
	} else if !validPriceTypes[priceType] {
		utils.BadRequest(c, "Unknown price type", nil)
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

	rows := []utils.PriceRow{{RoomID: room.ID, Date: date, Price: req.Price, PriceType: priceType}}
	if err := utils.UpsertRateDatePrices(config.DB, policy.ID, rows); err != nil {
		utils.LogError("Failed to write date price: %v", err)
		utils.InternalServerError(c, "Failed to write date price", err.Error())
		return
	}

	utils.Success(c, "Date price set successfully", gin.H{
		"room_id":    room.ID,
		"date":       req.Date,
		"price":      req.Price,
		"price_type": priceType,
	})
}

// DeactivateRateDatePrice soft-deactivates one override row so the cell
// falls back to its calculated price
func DeactivateRateDatePrice(c *gin.Context) {
	utils.LogInfo("DeactivateRateDatePrice called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid date price ID", nil)
		return
	}

	if err := utils.DeactivateRateDatePrice(config.DB, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Active date price not found")
			return
		}
		utils.LogError("Failed to deactivate date price: %v", err)
		utils.InternalServerError(c, "Failed to deactivate date price", err.Error())
		return
	}

	utils.Success(c, "Date price deactivated successfully", nil)
}
