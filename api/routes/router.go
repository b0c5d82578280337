// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JadenRazo/showersautodetailing/internal/auth"
	"github.com/JadenRazo/showersautodetailing/internal/bookings"
	"github.com/JadenRazo/showersautodetailing/internal/catalog"
	"github.com/JadenRazo/showersautodetailing/internal/notifications"
	"github.com/JadenRazo/showersautodetailing/internal/payments"
	"github.com/JadenRazo/showersautodetailing/internal/payments/square"
	"github.com/JadenRazo/showersautodetailing/internal/pricing"
	"github.com/JadenRazo/showersautodetailing/internal/quotes"
	"github.com/JadenRazo/showersautodetailing/internal/shared/config"
	"github.com/JadenRazo/showersautodetailing/internal/shared/database"
	"github.com/JadenRazo/showersautodetailing/pkg/cache"
	"github.com/JadenRazo/showersautodetailing/pkg/logger"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	notifier notifications.Notifier
	logger   *logger.Logger

	// shared across feature setups
	cacheService   cache.Service
	catalogService catalog.CatalogService
	pricingEngine  *pricing.Engine
	bookingService bookings.Service
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, notifier notifications.Notifier, log *logger.Logger) *Router {
	if log == nil {
		log = logger.GetDefault()
	}
	return &Router{
		config:   cfg,
		db:       db,
		notifier: notifier,
		logger:   log,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	if r.db.Redis != nil {
		r.cacheService = cache.NewService(r.db.GetRedisClient())
	}

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)
		// Catalog and pricing come first; bookings and payments build on them
		r.setupCatalogRoutes(api)
		r.setupQuoteRoutes(api)
		r.setupBookingRoutes(api)
		r.setupPaymentRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "showersautodetailing-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "showersautodetailing-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

// setupAuthRoutes configures authentication routes
func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(authRepo, r.config)
	authController := auth.NewController(authService, r.logger)

	auth.SetupAuthRoutes(rg, authController)
}

// setupCatalogRoutes configures catalog browsing plus the addon calculator
func (r *Router) setupCatalogRoutes(rg *gin.RouterGroup) {
	catalogRepo := catalog.NewRepository(r.db.GetPostgreSQL())
	r.catalogService = catalog.NewService(catalogRepo, r.cacheService, r.config.Redis.CacheTTL)
	r.pricingEngine = pricing.NewEngine(r.catalogService, r.config.Payments.DepositPercentage)

	catalogController := catalog.NewController(r.catalogService)
	pricingController := pricing.NewController(r.pricingEngine)

	catalog.SetupCatalogRoutes(rg, catalogController, pricingController.CalculateAddons)
}

// setupQuoteRoutes configures quote request routes
func (r *Router) setupQuoteRoutes(rg *gin.RouterGroup) {
	quoteRepo := quotes.NewRepository(r.db.GetPostgreSQL())
	quoteService := quotes.NewService(quoteRepo, r.notifier)
	quoteController := quotes.NewController(quoteService)

	quotes.SetupQuoteRoutes(rg, quoteController)
}

// setupBookingRoutes configures booking management routes
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	bookingRepo := bookings.NewRepository(r.db.GetPostgreSQL())
	r.bookingService = bookings.NewService(bookingRepo, r.pricingEngine, r.notifier, r.logger)
	bookingController := bookings.NewController(r.bookingService)

	bookings.SetupBookingRoutes(rg, bookingController)
}

// setupPaymentRoutes configures payment and webhook routes
func (r *Router) setupPaymentRoutes(rg *gin.RouterGroup) {
	gateway := square.NewClient(r.config.Square.AccessToken, r.config.Square.Environment)
	verifier := payments.NewSignatureVerifier(r.config.Square.WebhookSignatureKey, r.config.Square.NotificationURL)
	paymentService := payments.NewService(gateway, r.bookingService, verifier, payments.Config{
		LocationID: r.config.Square.LocationID,
		Currency:   r.config.Payments.Currency,
	}, r.logger)
	paymentController := payments.NewController(paymentService, r.logger)

	payments.SetupPaymentRoutes(rg, paymentController)
}
