package bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/JadenRazo/showersautodetailing/internal/pricing"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// Create handles POST /bookings
func (ctrl *Controller) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking data: " + err.Error()})
		return
	}

	resp, err := ctrl.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrInvalidVehicleType):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vehicle type"})
		case errors.Is(err, ErrInvalidBookingDate):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking date"})
		case errors.Is(err, pricing.ErrSelectionRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Service or package is required"})
		case errors.Is(err, pricing.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		case errors.Is(err, pricing.ErrPackageNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Get handles GET /bookings/:id
func (ctrl *Controller) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	booking, err := ctrl.service.Get(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch booking"})
		return
	}

	c.JSON(http.StatusOK, booking)
}

// List handles GET /bookings (admin)
func (ctrl *Controller) List(c *gin.Context) {
	bookings, err := ctrl.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// UpdateStatus handles PATCH /bookings/:id/status (admin)
func (ctrl *Controller) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
		return
	}

	booking, err := ctrl.service.SetStatus(c.Request.Context(), uint(id), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		case errors.Is(err, ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking status"})
		}
		return
	}

	c.JSON(http.StatusOK, booking)
}
