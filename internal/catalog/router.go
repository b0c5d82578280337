package catalog

import (
	"github.com/gin-gonic/gin"
)

// SetupCatalogRoutes configures catalog browsing routes. Static paths must
// register before the :identifier wildcard.
func SetupCatalogRoutes(rg *gin.RouterGroup, controller *Controller, calculate gin.HandlerFunc) {
	addons := rg.Group("/addons")
	{
		addons.GET("", controller.ListAddons) // GET /addons?category=
		addons.GET("/services/all", controller.ListServices)
		addons.GET("/services/:serviceId/addons", controller.ListServiceAddons)
		addons.GET("/standalone/all", controller.ListStandaloneAddons)
		addons.POST("/calculate", calculate)            // POST /addons/calculate
		addons.GET("/:identifier", controller.GetAddon) // GET /addons/:id-or-slug
	}
}
