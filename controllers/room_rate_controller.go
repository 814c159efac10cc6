package controllers

import (
	"strconv"

	"github.com/Bgmi10/booking-engine-sub003/config"
	"github.com/Bgmi10/booking-engine-sub003/models"
	"github.com/Bgmi10/booking-engine-sub003/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetRoomRates returns the per-room percentage adjustments for a rate policy
func GetRoomRates(c *gin.Context) {
	utils.LogInfo("GetRoomRates called")

	policyID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid rate policy ID", nil)
		return
	}

	var roomRates []models.RoomRate
	if err := config.DB.Preload("Room").Where("rate_policy_id = ?", policyID).Find(&roomRates).Error; err != nil {
		utils.LogError("Failed to fetch room rates: %v", err)
		utils.InternalServerError(c, "Failed to fetch room rates", err.Error())
		return
	}

	utils.Success(c, "Room rates retrieved successfully", gin.H{"room_rates": roomRates})
}

// UpdateRoomRates applies a batch of per-room percentage adjustments for a
// rate policy. Each room is updated independently and failures are reported
// per row rather than aborting the batch.
func UpdateRoomRates(c *gin.Context) {
	utils.LogInfo("UpdateRoomRates called")

	policyID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid rate policy ID", nil)
		return
	}

	var req struct {
		RoomPercentages []struct {
			RoomID               uint    `json:"room_id" binding:"required"`
			PercentageAdjustment float64 `json:"percentage_adjustment"`
		} `json:"room_percentages" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	var policy models.RatePolicy
	if err := config.DB.First(&policy, policyID).Error; err != nil {
		utils.LogError("Rate policy not found: %v", err)
		utils.NotFound(c, "Rate policy not found")
		return
	}

	type rowResult struct {
		RoomID uint   `json:"room_id"`
		Status string `json:"status"`
		Error  string `json:"error,omitempty"`
	}
	results := make([]rowResult, 0, len(req.RoomPercentages))
	failed := 0

	for _, rp := range req.RoomPercentages {
		var room models.Room
		if err := config.DB.First(&room, rp.RoomID).Error; err != nil {
			results = append(results, rowResult{RoomID: rp.RoomID, Status: "failed", Error: "room not found"})
			failed++
			continue
		}

		roomRate := models.RoomRate{
			RoomID:               rp.RoomID,
			RatePolicyID:         uint(policyID),
			PercentageAdjustment: rp.PercentageAdjustment,
		}
		err := config.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "room_id"}, {Name: "rate_policy_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"percentage_adjustment", "updated_at"}),
		}).Create(&roomRate).Error
		if err != nil {
			utils.LogError("Failed to update room rate for room %d: %v", rp.RoomID, err)
			results = append(results, rowResult{RoomID: rp.RoomID, Status: "failed", Error: err.Error()})
			failed++
			continue
		}
		results = append(results, rowResult{RoomID: rp.RoomID, Status: "updated"})
	}

	utils.LogInfo("Room rates updated for policy %d: %d ok, %d failed", policyID, len(results)-failed, failed)
	utils.Success(c, "Room rates processed", gin.H{
		"results":      results,
		"failed_count": failed,
	})
}

// effectiveBasePrice picks the base price in effect for a room under a policy
func effectiveBasePrice(policy models.RatePolicy, room models.Room) float64 {
	if policy.UseRoomPrice {
		return room.Price
	}
	return policy.BasePrice
}

// roomRateLookup loads the percentage adjustments for a set of rooms under
// one policy, keyed by room ID. Rooms without a join row default to 0.
func roomRateLookup(db *gorm.DB, policyID uint, roomIDs []uint) (map[uint]float64, error) {
	var roomRates []models.RoomRate
	if err := db.Where("rate_policy_id = ? AND room_id IN ?", policyID, roomIDs).Find(&roomRates).Error; err != nil {
		return nil, err
	}
	lookup := make(map[uint]float64, len(roomRates))
	for _, rr := range roomRates {
		lookup[rr.RoomID] = rr.PercentageAdjustment
	}
	return lookup, nil
}
