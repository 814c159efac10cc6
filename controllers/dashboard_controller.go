package controllers

import (
	"time"

	"github.com/Bgmi10/booking-engine-sub003/config"
	"github.com/Bgmi10/booking-engine-sub003/models"
	"github.com/Bgmi10/booking-engine-sub003/pricing"
	"github.com/Bgmi10/booking-engine-sub003/utils"
	"github.com/gin-gonic/gin"
)

// GetDashboard returns headline counts and revenue for the admin panel
func GetDashboard(c *gin.Context) {
	utils.LogInfo("GetDashboard called")

	today := pricing.Truncate(time.Now())

	var roomCount, activeBookings, pendingRefunds, proposalCount int64
	config.DB.Model(&models.Room{}).Where("is_active = ?", true).Count(&roomCount)
	config.DB.Model(&models.Booking{}).
		Where("status IN ?", []string{models.BookingStatusConfirmed, models.BookingStatusCheckedIn}).
		Count(&activeBookings)
	config.DB.Model(&models.Refund{}).Where("status = ?", models.RefundStatusPending).Count(&pendingRefunds)
	config.DB.Model(&models.WeddingProposal{}).
		Where("status NOT IN ?", []string{models.ProposalStatusDeclined, models.ProposalStatusCompleted}).
		Count(&proposalCount)

	// Rooms occupied tonight.
	var occupiedTonight int64
	config.DB.Model(&models.Booking{}).
		Where("status IN ? AND check_in <= ? AND check_out > ?",
			[]string{models.BookingStatusConfirmed, models.BookingStatusCheckedIn}, today, today).
		Count(&occupiedTonight)

	occupancyRate := 0.0
	if roomCount > 0 {
		occupancyRate = pricing.RoundToCent(float64(occupiedTonight) / float64(roomCount) * 100)
	}

	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	var monthRevenue float64
	config.DB.Model(&models.PaymentIntent{}).
		Where("status = ? AND completed_at >= ?", models.PaymentIntentCompleted, monthStart).
		Select("COALESCE(SUM(amount), 0)").Scan(&monthRevenue)

	var monthRefunded float64
	config.DB.Model(&models.Refund{}).
		Where("status = ? AND processed_at >= ?", models.RefundStatusCompleted, monthStart).
		Select("COALESCE(SUM(amount), 0)").Scan(&monthRefunded)

	utils.Success(c, "Dashboard retrieved successfully", gin.H{
		"rooms":             roomCount,
		"active_bookings":   activeBookings,
		"occupied_tonight":  occupiedTonight,
		"occupancy_rate":    occupancyRate,
		"pending_refunds":   pendingRefunds,
		"open_proposals":    proposalCount,
		"month_revenue":     monthRevenue,
		"month_refunded":    monthRefunded,
		"month_net_revenue": pricing.RoundToCent(monthRevenue - monthRefunded),
	})
}
