package routes

import (
	"github.com/Bgmi10/booking-engine-sub003/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// SetupRouter initializes and returns the Gin router with all routes.
// Middleware must be registered before the route groups; gin freezes each
// handler chain at registration time.
func SetupRouter() *gin.Engine {
	router := gin.Default()

	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	// Session middleware backs the admin login/logout session state
	store := cookie.NewStore([]byte("booking-engine-session-key"))
	store.Options(sessions.Options{
		MaxAge:   60 * 60 * 24, // 1 day
		Path:     "/",
		Secure:   false, // Set to true in production with HTTPS
		HttpOnly: true,
	})
	router.Use(sessions.Sessions("bookingengine", store))

	// API version group
	api := router.Group("/v1")
	{
		initAdminRoutes(api)
	}

	return router
}
