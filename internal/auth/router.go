package auth

import (
	"github.com/JadenRazo/showersautodetailing/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes configures authentication routes
func SetupAuthRoutes(rg *gin.RouterGroup, controller *Controller) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", controller.Login)     // POST /api/auth/login
		auth.POST("/refresh", controller.Refresh) // POST /api/auth/refresh
		auth.POST("/logout", controller.Logout)   // POST /api/auth/logout
		auth.POST("/setup", controller.Setup)     // POST /api/auth/setup

		authed := auth.Group("")
		authed.Use(middleware.JWTAuth())
		{
			authed.GET("/me", controller.Me)                           // GET /api/auth/me
			authed.POST("/change-password", controller.ChangePassword) // POST /api/auth/change-password
		}
	}
}
