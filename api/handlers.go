package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lenslink/lenslink/internal/auth"
	"github.com/lenslink/lenslink/services"
)

// API holds the dependencies shared by all handlers.
type API struct {
	store     services.Store
	analytics services.Analytics
	logger    *zap.Logger
}

// NewAPI creates a new API handler structure.
func NewAPI(store services.Store, analytics services.Analytics, logger *zap.Logger) *API {
	return &API{
		store:     store,
		analytics: analytics,
		logger:    logger,
	}
}

// SetupRoutes defines all the API routes for the marketplace. Everything
// except the health check requires a valid bearer token.
func SetupRoutes(router *gin.Engine, api *API, verifier auth.Verifier) {
	// Health check route
	router.GET("/health", api.HealthCheckHandler)

	authed := router.Group("/", AuthMiddleware(verifier))

	// Analytics route
	authed.GET("/analytics", api.GetAnalyticsHandler)

	// Creator profile routes
	creatorRoutes := authed.Group("/creators")
	{
		creatorRoutes.POST("", api.CreateCreatorHandler)              // Create a creator profile
		creatorRoutes.GET("", api.ListCreatorsHandler)                // List creators with pagination
		creatorRoutes.GET("/:creatorId", api.GetCreatorHandler)       // Get a creator profile
		creatorRoutes.PUT("/:creatorId", api.UpdateCreatorHandler)    // Update a creator profile
		creatorRoutes.DELETE("/:creatorId", api.DeleteCreatorHandler) // Delete a creator profile

		// Attached records per creator
		creatorRoutes.POST("/:creatorId/portfolio", api.AddPortfolioImageHandler)
		creatorRoutes.GET("/:creatorId/portfolio", api.ListPortfolioHandler)
		creatorRoutes.POST("/:creatorId/projects", api.AddProjectHandler)
		creatorRoutes.GET("/:creatorId/projects", api.ListProjectsHandler)
		creatorRoutes.POST("/:creatorId/availability", api.AddAvailabilityHandler)
		creatorRoutes.GET("/:creatorId/availability", api.ListAvailabilityHandler)
		creatorRoutes.GET("/:creatorId/reviews", api.ListReviewsHandler)

		// Match route over the creator pool
		creatorRoutes.POST("/_match", api.MatchHandler)
	}

	// Swipe and mutual-match routes
	authed.POST("/swipes", api.SwipeHandler)
	authed.GET("/matches", api.ListMatchesHandler)

	// Messaging routes
	threadRoutes := authed.Group("/threads")
	{
		threadRoutes.GET("", api.ListThreadsHandler)
		threadRoutes.GET("/:threadId/messages", api.ListMessagesHandler)
		threadRoutes.POST("/:threadId/messages", api.SendMessageHandler)
	}

	// Booking routes
	bookingRoutes := authed.Group("/bookings")
	{
		bookingRoutes.POST("", api.CreateBookingHandler)
		bookingRoutes.GET("", api.ListBookingsHandler)
		bookingRoutes.GET("/:bookingId", api.GetBookingHandler)
		bookingRoutes.PATCH("/:bookingId/status", api.UpdateBookingStatusHandler)
		bookingRoutes.POST("/:bookingId/review", api.CreateReviewHandler)
	}
}

// HealthCheckHandler provides a simple health check endpoint
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "lenslink",
		"timestamp": fmt.Sprintf("%d", time.Now().Unix()),
	})
}

// GetAnalyticsHandler handles the request to get analytics data
func (api *API) GetAnalyticsHandler(c *gin.Context) {
	dashboard, err := api.analytics.GetDashboardData(c.Request.Context())
	if err != nil {
		SendInternalError(c, "analytics aggregation", err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
