package controllers

import (
	"strconv"
	"time"

	"github.com/Bgmi10/booking-engine-sub003/config"
	"github.com/Bgmi10/booking-engine-sub003/models"
	"github.com/Bgmi10/booking-engine-sub003/pricing"
	"github.com/Bgmi10/booking-engine-sub003/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateProposal creates a wedding proposal with a generated payment plan
func CreateProposal(c *gin.Context) {
	utils.LogInfo("CreateProposal called")

	var req struct {
		Name             string  `json:"name" binding:"required"`
		CustomerName     string  `json:"customer_name" binding:"required"`
		CustomerEmail    string  `json:"customer_email"`
		EventDate        string  `json:"event_date" binding:"required"`
		TotalAmount      float64 `json:"total_amount" binding:"required,gt=0"`
		InstallmentCount int     `json:"installment_count" binding:"required,min=1,max=24"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	eventDate, err := utils.ParseDate(req.EventDate)
	if err != nil {
		utils.BadRequest(c, "Invalid event date", err.Error())
		return
	}
	if !eventDate.After(pricing.Truncate(time.Now())) {
		utils.BadRequest(c, "Event date must be in the future", nil)
		return
	}
	if req.CustomerEmail != "" && !utils.ValidateEmail(req.CustomerEmail) {
		utils.BadRequest(c, "Invalid customer email", nil)
		return
	}

	plan := pricing.BuildInstallmentPlan(req.TotalAmount, req.InstallmentCount, time.Now(), eventDate)

	proposal := models.WeddingProposal{
		Name:          req.Name,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		EventDate:     eventDate,
		TotalAmount:   req.TotalAmount,
		Status:        models.ProposalStatusDraft,
	}
	for _, ins := range plan {
		proposal.Installments = append(proposal.Installments, models.PaymentPlanInstallment{
			Sequence: ins.Sequence,
			Amount:   ins.Amount,
			DueDate:  ins.DueDate,
			Status:   models.InstallmentStatusDue,
		})
	}

	if err := config.DB.Create(&proposal).Error; err != nil {
		utils.LogError("Failed to create proposal: %v", err)
		utils.InternalServerError(c, "Failed to create proposal", err.Error())
		return
	}

	utils.Created(c, "Proposal created successfully", gin.H{"proposal": proposal})
}

// GetProposals lists proposals with optional status filter
func GetProposals(c *gin.Context) {
	utils.LogInfo("GetProposals called")

	pagination := utils.NewPagination(c)
	query := config.DB.Model(&models.WeddingProposal{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count proposals: %v", err)
		utils.InternalServerError(c, "Failed to fetch proposals", err.Error())
		return
	}

	var proposals []models.WeddingProposal
	if err := query.Order("event_date asc").Offset(pagination.Offset).Limit(pagination.Limit).Find(&proposals).Error; err != nil {
		utils.LogError("Failed to fetch proposals: %v", err)
		utils.InternalServerError(c, "Failed to fetch proposals", err.Error())
		return
	}

	utils.SuccessWithPagination(c, "Proposals retrieved successfully", gin.H{"proposals": proposals}, total, pagination.Page, pagination.Limit)
}

// GetProposal returns one proposal with its payment plan
func GetProposal(c *gin.Context) {
	utils.LogInfo("GetProposal called")

	proposalID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid proposal ID", nil)
		return
	}

	var proposal models.WeddingProposal
	if err := config.DB.Preload("Installments", func(db *gorm.DB) *gorm.DB {
		return db.Order("sequence asc")
	}).First(&proposal, proposalID).Error; err != nil {
		utils.LogError("Proposal not found: %v", err)
		utils.NotFound(c, "Proposal not found")
		return
	}

	paid := 0.0
	for _, ins := range proposal.Installments {
		if ins.Status == models.InstallmentStatusPaid {
			paid = pricing.RoundToCent(paid + ins.Amount)
		}
	}

	utils.Success(c, "Proposal retrieved successfully", gin.H{
		"proposal":    proposal,
		"paid_amount": paid,
		"balance":     pricing.RoundToCent(proposal.TotalAmount - paid),
	})
}

// PayInstallment marks one installment of a proposal's plan as paid
func PayInstallment(c *gin.Context) {
	utils.LogInfo("PayInstallment called")

	proposalID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid proposal ID", nil)
		return
	}
	sequence, err := strconv.Atoi(c.Param("seq"))
	if err != nil {
		utils.BadRequest(c, "Invalid installment sequence", nil)
		return
	}

	var installment models.PaymentPlanInstallment
	if err := config.DB.Where("proposal_id = ? AND sequence = ?", proposalID, sequence).First(&installment).Error; err != nil {
		utils.LogError("Installment not found: %v", err)
		utils.NotFound(c, "Installment not found")
		return
	}

	if installment.Status == models.InstallmentStatusPaid {
		utils.BadRequest(c, "Installment is already paid", nil)
		return
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":  models.InstallmentStatusPaid,
		"paid_at": &now,
	}
	if err := config.DB.Model(&installment).Updates(updates).Error; err != nil {
		utils.LogError("Failed to pay installment: %v", err)
		utils.InternalServerError(c, "Failed to pay installment", err.Error())
		return
	}

	// Mark the proposal completed once every installment is paid.
	var due int64
	config.DB.Model(&models.PaymentPlanInstallment{}).
		Where("proposal_id = ? AND status = ?", proposalID, models.InstallmentStatusDue).
		Count(&due)
	if due == 0 {
		config.DB.Model(&models.WeddingProposal{}).
			Where("id = ?", proposalID).
			Update("status", models.ProposalStatusCompleted)
	}

	utils.Success(c, "Installment paid successfully", gin.H{"installment": installment})
}

// UpdateProposalStatus moves a proposal between draft, sent, accepted and
// declined
func UpdateProposalStatus(c *gin.Context) {
	utils.LogInfo("UpdateProposalStatus called")

	proposalID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid proposal ID", nil)
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

	valid := map[string]bool{
		models.ProposalStatusDraft:    true,
		models.ProposalStatusSent:     true,
		models.ProposalStatusAccepted: true,
		models.ProposalStatusDeclined: true,
	}
	if !valid[req.Status] {
		utils.BadRequest(c, "Invalid proposal status", nil)
		return
	}

	var proposal models.WeddingProposal
	if err := config.DB.First(&proposal, proposalID).Error; err != nil {
		utils.LogError("Proposal not found: %v", err)
		utils.NotFound(c, "Proposal not found")
		return
	}

	if err := config.DB.Model(&proposal).Update("status", req.Status).Error; err != nil {
		utils.LogError("Failed to update proposal status: %v", err)
		utils.InternalServerError(c, "Failed to update proposal status", err.Error())
		return
	}

	utils.Success(c, "Proposal status updated successfully", gin.H{"proposal": proposal})
}
