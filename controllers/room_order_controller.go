package controllers

import (
	"strconv"

	"github.com/Bgmi10/booking-engine-sub003/config"
	"github.com/Bgmi10/booking-engine-sub003/models"
	"github.com/Bgmi10/booking-engine-sub003/pricing"
	"github.com/Bgmi10/booking-engine-sub003/utils"
	"github.com/gin-gonic/gin"
)

// CreateRoomOrder places an in-room service order against a booking
func CreateRoomOrder(c *gin.Context) {
	utils.LogInfo("CreateRoomOrder called")

	var req struct {
		BookingID uint   `json:"booking_id" binding:"required"`
		Notes     string `json:"notes"`
		Items     []struct {
			Name      string  `json:"name" binding:"required"`
			Quantity  int     `json:"quantity" binding:"required,min=1"`
			UnitPrice float64 `json:"unit_price" binding:"required,gt=0"`
		} `json:"items" binding:"required,min=1"`
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
	if booking.Status != models.BookingStatusCheckedIn {
		utils.BadRequest(c, "Room orders require a checked-in booking", gin.H{"status": booking.Status})
		return
	}

	order := models.RoomOrder{
		BookingID: booking.ID,
		Status:    models.RoomOrderStatusPlaced,
		Notes:     req.Notes,
	}
	total := 0.0
	for _, item := range req.Items {
		lineTotal := pricing.RoundToCent(float64(item.Quantity) * item.UnitPrice)
		order.Items = append(order.Items, models.RoomOrderItem{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     lineTotal,
		})
		total = pricing.RoundToCent(total + lineTotal)
	}
	order.Total = total

	if err := config.DB.Create(&order).Error; err != nil {
		utils.LogError("Failed to create room order: %v", err)
		utils.InternalServerError(c, "Failed to create room order", err.Error())
		return
	}

	utils.Created(c, "Room order placed successfully", gin.H{"room_order": order})
}

// GetRoomOrders lists room orders with optional filters
func GetRoomOrders(c *gin.Context) {
	utils.LogInfo("GetRoomOrders called")

	pagination := utils.NewPagination(c)
	query := config.DB.Model(&models.RoomOrder{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if bookingID := c.Query("booking_id"); bookingID != "" {
		query = query.Where("booking_id = ?", bookingID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count room orders: %v", err)
		utils.InternalServerError(c, "Failed to fetch room orders", err.Error())
		return
	}

	var orders []models.RoomOrder
	if err := query.Preload("Items").Order("created_at desc").
		Offset(pagination.Offset).Limit(pagination.Limit).Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch room orders: %v", err)
		utils.InternalServerError(c, "Failed to fetch room orders", err.Error())
		return
	}

	utils.SuccessWithPagination(c, "Room orders retrieved successfully", gin.H{"room_orders": orders}, total, pagination.Page, pagination.Limit)
}

// Allowed room order status transitions
var roomOrderTransitions = map[string][]string{
	models.RoomOrderStatusPlaced:    {models.RoomOrderStatusPreparing, models.RoomOrderStatusCancelled},
	models.RoomOrderStatusPreparing: {models.RoomOrderStatusDelivered, models.RoomOrderStatusCancelled},
}

// UpdateRoomOrderStatus moves a room order through its lifecycle
func UpdateRoomOrderStatus(c *gin.Context) {
	utils.LogInfo("UpdateRoomOrderStatus called")

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid room order ID", nil)
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

	var order models.RoomOrder
	if err := config.DB.First(&order, orderID).Error; err != nil {
		utils.LogError("Room order not found: %v", err)
		utils.NotFound(c, "Room order not found")
		return
	}

	allowed := false
	for _, next := range roomOrderTransitions[order.Status] {
		if next == req.Status {
			allowed = true
			break
		}
	}
	if !allowed {
		utils.BadRequest(c, "Invalid status transition", gin.H{
			"from": order.Status,
			"to":   req.Status,
		})
		return
	}

	if err := config.DB.Model(&order).Update("status", req.Status).Error; err != nil {
		utils.LogError("Failed to update room order status: %v", err)
		utils.InternalServerError(c, "Failed to update room order status", err.Error())
		return
	}

	utils.Success(c, "Room order status updated successfully", gin.H{"room_order": order})
}
