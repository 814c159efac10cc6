package controllers

import (
	"fmt"
	"time"

	"github.com/Bgmi10/booking-engine-sub003/config"
	"github.com/Bgmi10/booking-engine-sub003/models"
	"github.com/Bgmi10/booking-engine-sub003/utils"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// GetBulkOverrideLogs returns the bulk override audit trail, newest first
func GetBulkOverrideLogs(c *gin.Context) {
	utils.LogInfo("GetBulkOverrideLogs called")

	pagination := utils.NewPagination(c)
	query := config.DB.Model(&models.BulkOverrideLog{})
	if actionType := c.Query("action_type"); actionType != "" {
		query = query.Where("action_type = ?", actionType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count override logs: %v", err)
		utils.InternalServerError(c, "Failed to fetch override logs", err.Error())
		return
	}

	var logs []models.BulkOverrideLog
	if err := query.Order("created_at desc").Offset(pagination.Offset).Limit(pagination.Limit).Find(&logs).Error; err != nil {
		utils.LogError("Failed to fetch override logs: %v", err)
		utils.InternalServerError(c, "Failed to fetch override logs", err.Error())
		return
	}

	utils.SuccessWithPagination(c, "Override logs retrieved successfully", gin.H{"logs": logs}, total, pagination.Page, pagination.Limit)
}

// ExportBulkOverrideLogs downloads the audit trail as an xlsx workbook
func ExportBulkOverrideLogs(c *gin.Context) {
	utils.LogInfo("ExportBulkOverrideLogs called")

	var logs []models.BulkOverrideLog
	if err := config.DB.Order("created_at desc").Find(&logs).Error; err != nil {
		utils.LogError("Failed to fetch override logs: %v", err)
		utils.InternalServerError(c, "Failed to fetch override logs", err.Error())
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Bulk Override Log")
	if err != nil {
		utils.LogError("Failed to create sheet: %v", err)
		utils.InternalServerError(c, "Failed to generate export", err.Error())
		return
	}

	header := sheet.AddRow()
	for _, title := range []string{"ID", "Created At", "Rate Policy", "Start Date", "End Date", "Rooms", "Dates", "Cells", "New Price", "Action"} {
		header.AddCell().SetString(title)
	}

	for _, log := range logs {
		row := sheet.AddRow()
		row.AddCell().SetInt(int(log.ID))
		row.AddCell().SetString(log.CreatedAt.Format("2006-01-02 15:04"))
		row.AddCell().SetInt(int(log.RatePolicyID))
		row.AddCell().SetString(log.StartDate.Format(utils.DateFormat))
		row.AddCell().SetString(log.EndDate.Format(utils.DateFormat))
		row.AddCell().SetString(log.RoomIDs)
		row.AddCell().SetInt(log.DateCount)
		row.AddCell().SetInt(log.CellCount)
		row.AddCell().SetFloat(log.NewPrice)
		row.AddCell().SetString(log.ActionType)
	}

	filename := fmt.Sprintf("bulk-override-log-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write xlsx: %v", err)
	}
}
