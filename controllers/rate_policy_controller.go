package controllers

import (
	"strconv"

	"github.com/Bgmi10/booking-engine-sub003/config"
	"github.com/Bgmi10/booking-engine-sub003/models"
	"github.com/Bgmi10/booking-engine-sub003/utils"
	"github.com/gin-gonic/gin"
)

var validPaymentStructures = map[string]bool{
	models.PaymentStructureFull:  true,
	models.PaymentStructureSplit: true,
}

var validCancellationPolicies = map[string]bool{
	models.CancellationFlexible:      true,
	models.CancellationModerate:      true,
	models.CancellationStrict:        true,
	models.CancellationNonRefundable: true,
}

// CreateDefaultRatePolicy seeds a standard rate policy if none exists
func CreateDefaultRatePolicy() error {
	var count int64
	if err := config.DB.Model(&models.RatePolicy{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	policy := models.RatePolicy{
		Name:               "Standard Rate",
		Description:        "Default flexible rate",
		BasePrice:          100,
		IsRefundable:       true,
		PaymentStructure:   models.PaymentStructureFull,
		CancellationPolicy: models.CancellationFlexible,
		IsActive:           true,
	}
	if err := config.DB.Create(&policy).Error; err != nil {
		return err
	}

	utils.LogInfo("Default rate policy created: %s", policy.Name)
	return nil
}

// CreateRatePolicy adds a new rate policy
func CreateRatePolicy(c *gin.Context) {
	utils.LogInfo("CreateRatePolicy called")

	var req struct {
		Name               string  `json:"name" binding:"required"`
		Description        string  `json:"description"`
		BasePrice          float64 `json:"base_price" binding:"required,gt=0"`
		IsRefundable       *bool   `json:"is_refundable"`
		PaymentStructure   string  `json:"payment_structure"`
		CancellationPolicy string  `json:"cancellation_policy"`
		UseRoomPrice       bool    `json:"use_room_price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	if req.PaymentStructure != "" && !validPaymentStructures[req.PaymentStructure] {
		utils.BadRequest(c, "Invalid payment structure", nil)
		return
	}
	if req.CancellationPolicy != "" && !validCancellationPolicies[req.CancellationPolicy] {
		utils.BadRequest(c, "Invalid cancellation policy", nil)
		return
	}

	policy := models.RatePolicy{
		Name:         req.Name,
		Description:  req.Description,
		BasePrice:    req.BasePrice,
		UseRoomPrice: req.UseRoomPrice,
		IsActive:     true,
	}
	if req.IsRefundable != nil {
		policy.IsRefundable = *req.IsRefundable
	} else {
		policy.IsRefundable = true
	}
	if req.PaymentStructure != "" {
		policy.PaymentStructure = req.PaymentStructure
	} else {
		policy.PaymentStructure = models.PaymentStructureFull
	}
	if req.CancellationPolicy != "" {
		policy.CancellationPolicy = req.CancellationPolicy
	} else {
		policy.CancellationPolicy = models.CancellationFlexible
	}

	if err := config.DB.Create(&policy).Error; err != nil {
		utils.LogError("Failed to create rate policy: %v", err)
		utils.InternalServerError(c, "Failed to create rate policy", err.Error())
		return
	}

	utils.Created(c, "Rate policy created successfully", gin.H{"rate_policy": policy})
}

// GetRatePolicies returns all rate policies
func GetRatePolicies(c *gin.Context) {
	utils.LogInfo("GetRatePolicies called")

	var policies []models.RatePolicy
	query := config.DB.Model(&models.RatePolicy{})
	if c.Query("active") == "true" {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Order("name asc").Find(&policies).Error; err != nil {
		utils.LogError("Failed to fetch rate policies: %v", err)
		utils.InternalServerError(c, "Failed to fetch rate policies", err.Error())
		return
	}

	utils.Success(c, "Rate policies retrieved successfully", gin.H{"rate_policies": policies})
}

// UpdateRatePolicy updates an existing rate policy
func UpdateRatePolicy(c *gin.Context) {
	utils.LogInfo("UpdateRatePolicy called")

	policyID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid rate policy ID", nil)
		return
	}

	var req struct {
		Name               *string `json:"name"`
		Description        *string `json:"description"`
		IsRefundable       *bool   `json:"is_refundable"`
		PaymentStructure   *string `json:"payment_structure"`
		CancellationPolicy *string `json:"cancellation_policy"`
		UseRoomPrice       *bool   `json:"use_room_price"`
		IsActive           *bool   `json:"is_active"`
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

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.IsRefundable != nil {
		updates["is_refundable"] = *req.IsRefundable
	}
	if req.PaymentStructure != nil {
		if !validPaymentStructures[*req.PaymentStructure] {
			utils.BadRequest(c, "Invalid payment structure", nil)
			return
		}
		updates["payment_structure"] = *req.PaymentStructure
	}
	if req.CancellationPolicy != nil {
		if !validCancellationPolicies[*req.CancellationPolicy] {
			utils.BadRequest(c, "Invalid cancellation policy", nil)
			return
		}
		updates["cancellation_policy"] = *req.CancellationPolicy
	}
	if req.UseRoomPrice != nil {
		updates["use_room_price"] = *req.UseRoomPrice
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if err := config.DB.Model(&policy).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update rate policy: %v", err)
		utils.InternalServerError(c, "Failed to update rate policy", err.Error())
		return
	}

	utils.Success(c, "Rate policy updated successfully", gin.H{"rate_policy": policy})
}

// UpdateRatePolicyBasePrice sets the base price used by price calculation
// for all rooms linked to the policy
func UpdateRatePolicyBasePrice(c *gin.Context) {
	utils.LogInfo("UpdateRatePolicyBasePrice called")

	policyID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid rate policy ID", nil)
		return
	}

	var req struct {
		BasePrice float64 `json:"base_price" binding:"required,gt=0"`
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

	if err := config.DB.Model(&policy).Update("base_price", req.BasePrice).Error; err != nil {
		utils.LogError("Failed to update base price: %v", err)
		utils.InternalServerError(c, "Failed to update base price", err.Error())
		return
	}

	utils.LogInfo("Base price for rate policy %d updated to %.2f", policy.ID, req.BasePrice)
	utils.Success(c, "Base price updated successfully", gin.H{"rate_policy": policy})
}

// DeleteRatePolicy soft-deletes a rate policy
func DeleteRatePolicy(c *gin.Context) {
	utils.LogInfo("DeleteRatePolicy called")

	policyID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid rate policy ID", nil)
		return
	}

	var policy models.RatePolicy
	if err := config.DB.First(&policy, policyID).Error; err != nil {
		utils.LogError("Rate policy not found: %v", err)
		utils.NotFound(c, "Rate policy not found")
		return
	}

	if err := config.DB.Delete(&policy).Error; err != nil {
		utils.LogError("Failed to delete rate policy: %v", err)
		utils.InternalServerError(c, "Failed to delete rate policy", err.Error())
		return
	}

	utils.Success(c, "Rate policy deleted successfully", nil)
}
