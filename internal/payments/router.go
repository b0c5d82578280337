package payments

import (
	"github.com/gin-gonic/gin"
)

// SetupPaymentRoutes configures the payment endpoints. All three are
// public: the charge endpoints are driven by the customer checkout flow
// and the webhook authenticates itself via its signature.
func SetupPaymentRoutes(rg *gin.RouterGroup, controller *Controller) {
	payments := rg.Group("/payments")
	{
		payments.POST("/create-deposit-payment", controller.CreateDepositPayment) // POST /api/payments/create-deposit-payment
		payments.POST("/create-final-payment", controller.CreateFinalPayment)     // POST /api/payments/create-final-payment
		payments.POST("/webhook", controller.Webhook)                             // POST /api/payments/webhook
	}
}
