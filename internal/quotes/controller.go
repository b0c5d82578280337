package quotes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JadenRazo/showersautodetailing/internal/pricing"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// Submit handles POST /quotes
func (ctrl *Controller) Submit(c *gin.Context) {
	var req SubmitQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quote data: " + err.Error()})
		return
	}

	quote, err := ctrl.service.Submit(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidVehicleType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vehicle type"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit quote request"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":        true,
		"quote":          quote,
		"estimatedPrice": quote.EstimatedPrice,
	})
}

// List handles GET /quotes (admin)
func (ctrl *Controller) List(c *gin.Context) {
	requests, err := ctrl.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch quotes"})
		return
	}

	c.JSON(http.StatusOK, requests)
}
