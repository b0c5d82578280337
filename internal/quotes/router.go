package quotes

import (
	"github.com/JadenRazo/showersautodetailing/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupQuoteRoutes configures quote-request routes
func SetupQuoteRoutes(rg *gin.RouterGroup, controller *Controller) {
	quotes := rg.Group("/quotes")
	{
		quotes.POST("", controller.Submit)                                                  // POST /api/quotes
		quotes.GET("", middleware.JWTAuth(), middleware.RequireAdmin(), controller.List) // GET /api/quotes
	}
}
