package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service CatalogService
}

func NewController(service CatalogService) *Controller {
	return &Controller{service: service}
}

// ListAddons handles GET /addons?category=
func (c *Controller) ListAddons(ctx *gin.Context) {
	addons, err := c.service.ListAddons(ctx.Request.Context(), ctx.Query("category"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch addons"})
		return
	}

	ctx.JSON(http.StatusOK, addons)
}

// GetAddon handles GET /addons/:identifier (numeric id or slug)
func (c *Controller) GetAddon(ctx *gin.Context) {
	addon, err := c.service.GetAddon(ctx.Request.Context(), ctx.Param("identifier"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Addon not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch addon"})
		return
	}

	ctx.JSON(http.StatusOK, addon)
}

// ListServices handles GET /addons/services/all
func (c *Controller) ListServices(ctx *gin.Context) {
	services, err := c.service.ListServices(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch services"})
		return
	}

	ctx.JSON(http.StatusOK, services)
}

// ListServiceAddons handles GET /addons/services/:serviceId/addons
func (c *Controller) ListServiceAddons(ctx *gin.Context) {
	serviceID, err := strconv.ParseUint(ctx.Param("serviceId"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service ID"})
		return
	}

	included, available, err := c.service.ListServiceAddons(ctx.Request.Context(), uint(serviceID))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch service addons"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"included":  included,
		"available": available,
	})
}

// ListStandaloneAddons handles GET /addons/standalone/all
func (c *Controller) ListStandaloneAddons(ctx *gin.Context) {
	addons, err := c.service.ListStandaloneAddons(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch standalone addons"})
		return
	}

	ctx.JSON(http.StatusOK, addons)
}
