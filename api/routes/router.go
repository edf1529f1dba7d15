// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"haven/internal/booking"
	"haven/internal/catalog"
	"haven/internal/notifications"
	"haven/internal/payment"
	"haven/internal/shared/config"
	"haven/internal/shared/database"
	"haven/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	producer notifications.Producer
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, producer notifications.Producer) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		producer: producer,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	booking.RegisterValidations()

	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// Shared catalog service: both the public room routes and the
	// booking flow resolve rooms through it.
	catalogService := catalog.NewService(catalog.NewMemoryRepository(catalog.DefaultRooms()))

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupCatalogRoutes(api, catalogService)

		bookingService := r.setupBookingServices(catalogService)
		paymentService := r.setupPaymentRoutes(api, bookingService)

		// Booking routes last: the controller needs the payment
		// canceller so abandoning a session tears down its attempt.
		bookingController := booking.NewController(bookingService, paymentCancellerAdapter{paymentService})
		booking.SetupBookingRoutes(api, bookingController)
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
				"service":   "haven-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "haven-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})
}

// setupCatalogRoutes configures the public room catalog routes
func (r *Router) setupCatalogRoutes(rg *gin.RouterGroup, catalogService catalog.Service) {
	catalogController := catalog.NewController(catalogService)
	catalog.SetupCatalogRoutes(rg, catalogController)
}

// setupBookingServices wires the booking session and reservation stack
func (r *Router) setupBookingServices(catalogService catalog.Service) booking.Service {
	sessionStore := booking.NewRedisSessionStore(r.db.GetRedisClient(), r.config.Redis.SessionTTL)
	bookingRepo := booking.NewRepository(r.db.GetPostgreSQL())
	return booking.NewService(sessionStore, bookingRepo, catalogService)
}

// setupPaymentRoutes configures the payment attempt routes
func (r *Router) setupPaymentRoutes(rg *gin.RouterGroup, bookingService booking.Service) payment.Service {
	gateway := payment.NewSimulatedGateway(r.config.Payment.SettleDelay)
	paymentService := payment.NewService(gateway, r.config.Payment, bookingService, r.producer, logger.GetDefault())
	paymentController := payment.NewController(paymentService)
	payment.SetupPaymentRoutes(rg, paymentController)
	return paymentService
}

// paymentCancellerAdapter adapts the payment service to the booking
// controller's canceller seam.
type paymentCancellerAdapter struct {
	payments payment.Service
}

func (a paymentCancellerAdapter) CancelAttempt(sessionID string) {
	a.payments.CancelAttempt(sessionID)
}
