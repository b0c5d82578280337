package pricing

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	engine *Engine
}

func NewController(engine *Engine) *Controller {
	return &Controller{engine: engine}
}

// CalculateAddonsRequest is the body for POST /addons/calculate
type CalculateAddonsRequest struct {
	AddonIDs    []uint `json:"addonIds"`
	VehicleType string `json:"vehicleType"`
}

// CalculateAddons handles POST /addons/calculate
func (c *Controller) CalculateAddons(ctx *gin.Context) {
	var req CalculateAddonsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if len(req.AddonIDs) == 0 {
		ctx.JSON(http.StatusOK, gin.H{"total": 0, "addons": []AddonCharge{}})
		return
	}

	if req.VehicleType == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Vehicle type required"})
		return
	}

	vehicleType, err := ParseVehicleType(req.VehicleType)
	if err != nil {
		if errors.Is(err, ErrInvalidVehicleType) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vehicle type"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate addon total"})
		return
	}

	addons, total, err := c.engine.CalculateAddons(ctx.Request.Context(), vehicleType, req.AddonIDs)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate addon total"})
		return
	}

	if addons == nil {
		addons = []AddonCharge{}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"total":       Round2(total),
		"vehicleType": vehicleType,
		"addons":      addons,
	})
}
