package controllers

import (
	"strconv"

	"github.com/Bgmi10/booking-engine-sub003/config"
	"github.com/Bgmi10/booking-engine-sub003/models"
	"github.com/Bgmi10/booking-engine-sub003/utils"
	"github.com/gin-gonic/gin"
)

// CreateRoom adds a new room
func CreateRoom(c *gin.Context) {
	utils.LogInfo("CreateRoom called")

	var req struct {
		Name        string  `json:"name" binding:"required"`
		RoomNumber  string  `json:"room_number" binding:"required"`
		Description string  `json:"description"`
		Price       float64 `json:"price" binding:"min=0"`
		Capacity    int     `json:"capacity" binding:"min=1"`
		Amenities   string  `json:"amenities"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	room := models.Room{
		Name:        req.Name,
		RoomNumber:  req.RoomNumber,
		Description: req.Description,
		Price:       req.Price,
		Capacity:    req.Capacity,
		Amenities:   req.Amenities,
		IsActive:    true,
	}
	if err := config.DB.Create(&room).Error; err != nil {
		utils.LogError("Failed to create room: %v", err)
		utils.InternalServerError(c, "Failed to create room", err.Error())
		return
	}

	utils.Created(c, "Room created successfully", gin.H{"room": room})
}

// GetRooms returns all rooms with pagination
func GetRooms(c *gin.Context) {
	utils.LogInfo("GetRooms called")

	pagination := utils.NewPagination(c)
	query := config.DB.Model(&models.Room{})
	if c.Query("active") == "true" {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count rooms: %v", err)
		utils.InternalServerError(c, "Failed to fetch rooms", err.Error())
		return
	}

	var rooms []models.Room
	if err := query.Order("room_number asc").Offset(pagination.Offset).Limit(pagination.Limit).Find(&rooms).Error; err != nil {
		utils.LogError("Failed to fetch rooms: %v", err)
		utils.InternalServerError(c, "Failed to fetch rooms", err.Error())
		return
	}

	utils.SuccessWithPagination(c, "Rooms retrieved successfully", gin.H{"rooms": rooms}, total, pagination.Page, pagination.Limit)
}

// GetRoom returns one room by ID
func GetRoom(c *gin.Context) {
	utils.LogInfo("GetRoom called")

	roomID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid room ID", nil)
		return
	}

	var room models.Room
	if err := config.DB.Preload("RoomRates.RatePolicy").First(&room, roomID).Error; err != nil {
		utils.LogError("Room not found: %v", err)
		utils.NotFound(c, "Room not found")
		return
	}

	utils.Success(c, "Room retrieved successfully", gin.H{"room": room})
}

// UpdateRoom updates room details
func UpdateRoom(c *gin.Context) {
	utils.LogInfo("UpdateRoom called")

	roomID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid room ID", nil)
		return
	}

	var req struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
		Capacity    *int     `json:"capacity"`
		Amenities   *string  `json:"amenities"`
		IsActive    *bool    `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	var room models.Room
	if err := config.DB.First(&room, roomID).Error; err != nil {
		utils.LogError("Room not found: %v", err)
		utils.NotFound(c, "Room not found")
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			utils.BadRequest(c, "Price must not be negative", nil)
			return
		}
		updates["price"] = *req.Price
	}
	if req.Capacity != nil {
		updates["capacity"] = *req.Capacity
	}
	if req.Amenities != nil {
		updates["amenities"] = *req.Amenities
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if err := config.DB.Model(&room).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update room: %v", err)
		utils.InternalServerError(c, "Failed to update room", err.Error())
		return
	}

	utils.Success(c, "Room updated successfully", gin.H{"room": room})
}

// DeleteRoom soft-deletes a room
func DeleteRoom(c *gin.Context) {
	utils.LogInfo("DeleteRoom called")

	roomID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid room ID", nil)
		return
	}

	var room models.Room
	if err := config.DB.First(&room, roomID).Error; err != nil {
		utils.LogError("Room not found: %v", err)
		utils.NotFound(c, "Room not found")
		return
	}

	var bookingCount int64
	config.DB.Model(&models.Booking{}).
		Where("room_id = ? AND status IN ?", room.ID, []string{models.BookingStatusConfirmed, models.BookingStatusCheckedIn}).
		Count(&bookingCount)
	if bookingCount > 0 {
		utils.Conflict(c, "Room has active bookings and cannot be deleted", nil)
		return
	}

	if err := config.DB.Delete(&room).Error; err != nil {
		utils.LogError("Failed to delete room: %v", err)
		utils.InternalServerError(c, "Failed to delete room", err.Error())
		return
	}

	utils.Success(c, "Room deleted successfully", nil)
}
