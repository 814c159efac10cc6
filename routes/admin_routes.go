package routes

import (
	"github.com/Bgmi10/booking-engine-sub003/controllers"
	"github.com/Bgmi10/booking-engine-sub003/middleware"
	"github.com/gin-gonic/gin"
)

// initAdminRoutes initializes all admin-related routes
func initAdminRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	{
		// Public admin routes
		admin.POST("/login", controllers.AdminLogin)
		admin.POST("/logout", controllers.AdminLogout)

		// Protected admin routes
		admin.Use(middleware.AdminAuthMiddleware())
		{
			// Room management
			admin.POST("/rooms", controllers.CreateRoom)
			admin.GET("/rooms", controllers.GetRooms)
			admin.GET("/rooms/:id", controllers.GetRoom)
			admin.PUT("/rooms/:id", controllers.UpdateRoom)
			admin.DELETE("/rooms/:id", controllers.DeleteRoom)

			// Rate policy management
			admin.POST("/rate-policies", controllers.CreateRatePolicy)
			admin.GET("/rate-policies", controllers.GetRatePolicies)
			admin.PUT("/rate-policies/:id", controllers.UpdateRatePolicy)
			admin.DELETE("/rate-policies/:id", controllers.DeleteRatePolicy)
			admin.PUT("/rate-policies/:id/base-price", controllers.UpdateRatePolicyBasePrice)
			admin.GET("/rate-policies/:id/room-rates", controllers.GetRoomRates)
			admin.PUT("/rate-policies/:id/room-rates", controllers.UpdateRoomRates)

			// Pricing calendar and overrides
			admin.GET("/pricing/calendar", controllers.GetPricingCalendar)
			admin.POST("/pricing/overrides", controllers.SetRateDatePrice)
			admin.DELETE("/pricing/overrides/:id", controllers.DeactivateRateDatePrice)
			admin.POST("/pricing/bulk-override", controllers.ApplyBulkOverride)
			admin.GET("/pricing/override-logs", controllers.GetBulkOverrideLogs)
			admin.GET("/pricing/override-logs/export", controllers.ExportBulkOverrideLogs)

			// Booking management
			admin.POST("/bookings", controllers.CreateBooking)
			admin.GET("/bookings", controllers.GetBookings)
			admin.GET("/bookings/:id", controllers.GetBooking)
			admin.PATCH("/bookings/:id/status", controllers.UpdateBookingStatus)
			admin.POST("/bookings/:id/charges", controllers.AddCharge)
			admin.GET("/bookings/:id/charges", controllers.GetCharges)

			// Charges
			admin.DELETE("/charges/:id", controllers.VoidCharge)

			// Payments and refunds
			admin.POST("/payment-intents", controllers.CreatePaymentIntent)
			admin.GET("/payment-intents", controllers.GetPaymentIntents)
			admin.POST("/payment-intents/:id/confirm", controllers.ConfirmPaymentIntent)
			admin.POST("/refunds", controllers.CreateRefund)
			admin.GET("/refunds", controllers.GetRefunds)
			admin.PATCH("/refunds/:id/status", controllers.UpdateRefundStatus)

			// Room service orders
			admin.POST("/room-orders", controllers.CreateRoomOrder)
			admin.GET("/room-orders", controllers.GetRoomOrders)
			admin.PATCH("/room-orders/:id/status", controllers.UpdateRoomOrderStatus)

			// Wedding proposals
			admin.POST("/proposals", controllers.CreateProposal)
			admin.GET("/proposals", controllers.GetProposals)
			admin.GET("/proposals/:id", controllers.GetProposal)
			admin.PATCH("/proposals/:id/status", controllers.UpdateProposalStatus)
			admin.PATCH("/proposals/:id/installments/:seq/pay", controllers.PayInstallment)

			// Dashboard
			admin.GET("/dashboard", controllers.GetDashboard)
		}
	}
}
