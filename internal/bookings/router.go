package bookings

import (
	"github.com/JadenRazo/showersautodetailing/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes configures all booking-related routes
func SetupBookingRoutes(rg *gin.RouterGroup, controller *Controller) {
	bookings := rg.Group("/bookings")
	{
		// Public routes - customers create and look up their own bookings
		bookings.POST("", controller.Create)   // POST /api/bookings
		bookings.GET("/:id", controller.Get)   // GET /api/bookings/:id

		// Admin routes - list everything, force a status
		bookings.GET("", middleware.JWTAuth(), middleware.RequireAdmin(), controller.List)                        // GET /api/bookings
		bookings.PATCH("/:id/status", middleware.JWTAuth(), middleware.RequireAdmin(), controller.UpdateStatus) // PATCH /api/bookings/:id/status
	}
}
