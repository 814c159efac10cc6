package controllers

import (
	"strconv"
	"time"

	"github.com/Bgmi10/booking-engine-sub003/config"
	"github.com/Bgmi10/booking-engine-sub003/models"
	"github.com/Bgmi10/booking-engine-sub003/utils"
	"github.com/gin-gonic/gin"
)

// CreateRefund records a refund against a completed payment intent
func CreateRefund(c *gin.Context) {
	utils.LogInfo("CreateRefund called")

	var req struct {
		PaymentIntentID uint     `json:"payment_intent_id" binding:"required"`
		Amount          *float64 `json:"amount"` // defaults to the full intent amount
		Reason          string   `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	var intent models.PaymentIntent
	if err := config.DB.First(&intent, req.PaymentIntentID).Error; err != nil {
		utils.LogError("Payment intent not found: %v", err)
		utils.NotFound(c, "Payment intent not found")
		return
	}

	if intent.Status != models.PaymentIntentCompleted {
		utils.BadRequest(c, "Only completed payments can be refunded", gin.H{"status": intent.Status})
		return
	}

	amount := intent.Amount
	if req.Amount != nil {
		amount = *req.Amount
	}
	if amount <= 0 || amount > intent.Amount {
		utils.BadRequest(c, "Refund amount must be positive and not exceed the payment amount", nil)
		return
	}

	// Cap cumulative refunds at the payment amount.
	var refunded float64
	config.DB.Model(&models.Refund{}).
		Where("payment_intent_id = ? AND status != ?", intent.ID, models.RefundStatusFailed).
		Select("COALESCE(SUM(amount), 0)").Scan(&refunded)
	if refunded+amount > intent.Amount {
		utils.Conflict(c, "Refund would exceed the amount paid", gin.H{
			"already_refunded": refunded,
		})
		return
	}

	refund := models.Refund{
		BookingID:       intent.BookingID,
		PaymentIntentID: intent.ID,
		Amount:          amount,
		Reason:          req.Reason,
		Status:          models.RefundStatusPending,
		CreatedBy:       adminIDFromContext(c),
	}
	if err := config.DB.Create(&refund).Error; err != nil {
		utils.LogError("Failed to create refund: %v", err)
		utils.InternalServerError(c, "Failed to create refund", err.Error())
		return
	}

	utils.Created(c, "Refund created successfully", gin.H{"refund": refund})
}

// GetRefunds lists refunds with optional status filter
func GetRefunds(c *gin.Context) {
	utils.LogInfo("GetRefunds called")

	pagination := utils.NewPagination(c)
	query := config.DB.Model(&models.Refund{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count refunds: %v", err)
		utils.InternalServerError(c, "Failed to fetch refunds", err.Error())
		return
	}

	var refunds []models.Refund
	if err := query.Order("created_at desc").Offset(pagination.Offset).Limit(pagination.Limit).Find(&refunds).Error; err != nil {
		utils.LogError("Failed to fetch refunds: %v", err)
		utils.InternalServerError(c, "Failed to fetch refunds", err.Error())
		return
	}

	utils.SuccessWithPagination(c, "Refunds retrieved successfully", gin.H{"refunds": refunds}, total, pagination.Page, pagination.Limit)
}

// UpdateRefundStatus completes or fails a pending refund
func UpdateRefundStatus(c *gin.Context) {
	utils.LogInfo("UpdateRefundStatus called")

	refundID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid refund ID", nil)
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}
	if req.Status != models.RefundStatusCompleted && req.Status != models.RefundStatusFailed {
		utils.BadRequest(c, "Status must be completed or failed", nil)
		return
	}

	var refund models.Refund
	if err := config.DB.First(&refund, refundID).Error; err != nil {
		utils.LogError("Refund not found: %v", err)
		utils.NotFound(c, "Refund not found")
		return
	}

	if refund.Status != models.RefundStatusPending {
		utils.BadRequest(c, "Refund is not pending", gin.H{"status": refund.Status})
		return
	}

	updates := map[string]interface{}{"status": req.Status}
	if req.Status == models.RefundStatusCompleted {
		now := time.Now()
		updates["processed_at"] = &now
	}
	if err := config.DB.Model(&refund).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update refund status: %v", err)
		utils.InternalServerError(c, "Failed to update refund status", err.Error())
		return
	}

	if req.Status == models.RefundStatusCompleted {
		var booking models.Booking
		if err := config.DB.First(&booking, refund.BookingID).Error; err == nil {
			if err := utils.SendRefundProcessed(booking.GuestEmail, booking.GuestName, refund.Amount, refund.Reason); err != nil {
				utils.LogError("Failed to send refund email for refund %d: %v", refund.ID, err)
			}
		}
	}

	utils.LogInfo("Refund %d moved to %s", refund.ID, req.Status)
	utils.Success(c, "Refund status updated successfully", gin.H{"refund": refund})
}
