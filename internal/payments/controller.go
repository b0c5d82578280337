package payments

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/JadenRazo/showersautodetailing/internal/bookings"
	"github.com/JadenRazo/showersautodetailing/pkg/logger"
)

// signatureHeader carries Square's webhook HMAC
const signatureHeader = "x-square-hmacsha256-signature"

// CreatePaymentRequest is the body for both charge endpoints
type CreatePaymentRequest struct {
	BookingID uint   `json:"bookingId" binding:"required"`
	SourceID  string `json:"sourceId" binding:"required"`
}

type Controller struct {
	service Service
	logger  *logger.Logger
}

func NewController(service Service, log *logger.Logger) *Controller {
	if log == nil {
		log = logger.GetDefault()
	}
	return &Controller{service: service, logger: log}
}

// CreateDepositPayment handles POST /payments/create-deposit-payment
func (ctrl *Controller) CreateDepositPayment(c *gin.Context) {
	ctrl.createPayment(c, ctrl.service.CreateDepositPayment)
}

// CreateFinalPayment handles POST /payments/create-final-payment
func (ctrl *Controller) CreateFinalPayment(c *gin.Context) {
	ctrl.createPayment(c, ctrl.service.CreateFinalPayment)
}

func (ctrl *Controller) createPayment(c *gin.Context, create func(ctx context.Context, bookingID uint, sourceID string) (*PaymentResult, error)) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if strings.Contains(err.Error(), "SourceID") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Payment source ID required"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Booking ID required"})
		return
	}

	result, err := create(c.Request.Context(), req.BookingID, req.SourceID)
	if err != nil {
		ctrl.renderPaymentError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (ctrl *Controller) renderPaymentError(c *gin.Context, err error) {
	var declined *DeclinedError
	switch {
	case errors.Is(err, bookings.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
	case errors.Is(err, ErrDepositAlreadyPaid):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Deposit already paid"})
	case errors.Is(err, ErrDepositNotPaid):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Deposit must be paid first"})
	case errors.As(err, &declined):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Payment failed",
			"details": strings.Join(declined.Details, ", "),
		})
	default:
		ctrl.logger.WithError(err).Error("payment creation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment"})
	}
}

// Webhook handles POST /payments/webhook. The body must be read raw;
// signature verification covers the exact bytes Square sent.
func (ctrl *Controller) Webhook(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable webhook body"})
		return
	}

	err = ctrl.service.HandleWebhook(c.Request.Context(), c.GetHeader(signatureHeader), body)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidSignature):
			ctrl.logger.LogWebhookRejected(c.Request.Context(), c.ClientIP())
			c.JSON(http.StatusBadRequest, gin.H{"error": "Webhook signature verification failed"})
		case errors.Is(err, ErrMalformedEvent):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed webhook event"})
		default:
			// Transient failure: let Square retry the delivery
			ctrl.logger.WithError(err).Error("webhook processing failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook processing failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
