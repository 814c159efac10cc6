package controllers

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/Bgmi10/booking-engine-sub003/config"
	"github.com/Bgmi10/booking-engine-sub003/models"
	"github.com/Bgmi10/booking-engine-sub003/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	razorpay "github.com/razorpay/razorpay-go"
)

// minorUnits converts a major-unit amount to the gateway's integer minor
// units, rounding so float noise never drops a cent.
func minorUnits(amount float64) int {
	return int(math.Round(amount * 100))
}

// CreatePaymentIntent creates a payment intent for a booking and registers
// the corresponding order with the payment gateway
func CreatePaymentIntent(c *gin.Context) {
	utils.LogInfo("CreatePaymentIntent called")

	var req struct {
		BookingID uint     `json:"booking_id" binding:"required"`
		Amount    *float64 `json:"amount"` // defaults to the booking total
		Currency  string   `json:"currency"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	var booking models.Booking
	if err := config.DB.First(&booking, req.BookingID).Error; err != nil {
		utils.LogError("Booking not found: %v", err)
		utils.NotFound(c, "Booking not found")
		return
	}

	amount := booking.TotalAmount
	if req.Amount != nil {
		amount = *req.Amount
	}
	if amount <= 0 {
		utils.BadRequest(c, "Amount must be greater than zero", nil)
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}

	// One pending intent per booking at a time.
	var pending int64
	config.DB.Model(&models.PaymentIntent{}).
		Where("booking_id = ? AND status = ?", booking.ID, models.PaymentIntentPending).
		Count(&pending)
	if pending > 0 {
		utils.Conflict(c, "A payment is already in progress for this booking", nil)
		return
	}

	reference := "pi_" + uuid.New().String()

	client := razorpay.NewClient(os.Getenv("RAZORPAY_KEY"), os.Getenv("RAZORPAY_SECRET"))
	orderData := map[string]interface{}{
		"amount":          minorUnits(amount), // gateway expects minor units
		"currency":        currency,
		"receipt":         reference,
		"payment_capture": 1,
	}
	rzOrder, err := client.Order.Create(orderData, nil)
	if err != nil {
		utils.LogError("Failed to create gateway order for booking %d: %v", booking.ID, err)
		utils.InternalServerError(c, "Failed to create gateway order", err.Error())
		return
	}

	intent := models.PaymentIntent{
		BookingID:      booking.ID,
		Reference:      reference,
		GatewayOrderID: fmt.Sprintf("%v", rzOrder["id"]),
		Amount:         amount,
		Currency:       currency,
		Status:         models.PaymentIntentPending,
	}
	if err := config.DB.Create(&intent).Error; err != nil {
		utils.LogError("Failed to create payment intent: %v", err)
		utils.InternalServerError(c, "Failed to create payment intent", err.Error())
		return
	}

	utils.LogInfo("Payment intent %s created for booking %d, amount %.2f", reference, booking.ID, amount)
	utils.Created(c, "Payment intent created successfully", gin.H{"payment_intent": intent})
}

// GetPaymentIntents lists payment intents with optional filters
func GetPaymentIntents(c *gin.Context) {
	utils.LogInfo("GetPaymentIntents called")

	pagination := utils.NewPagination(c)
	query := config.DB.Model(&models.PaymentIntent{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if bookingID := c.Query("booking_id"); bookingID != "" {
		query = query.Where("booking_id = ?", bookingID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count payment intents: %v", err)
		utils.InternalServerError(c, "Failed to fetch payment intents", err.Error())
		return
	}

	var intents []models.PaymentIntent
	if err := query.Order("created_at desc").Offset(pagination.Offset).Limit(pagination.Limit).Find(&intents).Error; err != nil {
		utils.LogError("Failed to fetch payment intents: %v", err)
		utils.InternalServerError(c, "Failed to fetch payment intents", err.Error())
		return
	}

	utils.SuccessWithPagination(c, "Payment intents retrieved successfully", gin.H{"payment_intents": intents}, total, pagination.Page, pagination.Limit)
}

// ConfirmPaymentIntent marks a pending intent completed after the gateway
// reports payment
func ConfirmPaymentIntent(c *gin.Context) {
	utils.LogInfo("ConfirmPaymentIntent called")

	intentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid payment intent ID", nil)
		return
	}

	var req struct {
		GatewayPaymentID string `json:"gateway_payment_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	var intent models.PaymentIntent
	if err := config.DB.First(&intent, intentID).Error; err != nil {
		utils.LogError("Payment intent not found: %v", err)
		utils.NotFound(c, "Payment intent not found")
		return
	}

	if intent.Status != models.PaymentIntentPending {
		utils.BadRequest(c, "Payment intent is not pending", gin.H{"status": intent.Status})
		return
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":         models.PaymentIntentCompleted,
		"gateway_pay_id": req.GatewayPaymentID,
		"completed_at":   &now,
	}
	if err := config.DB.Model(&intent).Updates(updates).Error; err != nil {
		utils.LogError("Failed to confirm payment intent: %v", err)
		utils.InternalServerError(c, "Failed to confirm payment intent", err.Error())
		return
	}

	utils.LogInfo("Payment intent %d confirmed", intent.ID)
	utils.Success(c, "Payment intent confirmed successfully", gin.H{"payment_intent": intent})
}
