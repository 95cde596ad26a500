// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"courtly/internal/analytics"
	"courtly/internal/availability"
	"courtly/internal/blocks"
	"courtly/internal/clubs"
	"courtly/internal/courts"
	"courtly/internal/pricing"
	"courtly/internal/reservations"
	"courtly/internal/shared/config"
	"courtly/internal/shared/database"
	"courtly/pkg/cache"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config    *config.Config
	db        *database.DB
	publisher analytics.Publisher
}

// NewRouter creates a new router instance. The publisher may be nil when the
// analytics event stream is disabled.
func NewRouter(cfg *config.Config, db *database.DB, publisher analytics.Publisher) *Router {
	return &Router{
		config:    cfg,
		db:        db,
		publisher: publisher,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		// Aggregated availability endpoint
		r.setupAvailabilityRoutes(api)

		// Direct per-resource endpoints. These stay up even when the
		// aggregated endpoint is gated off.
		r.setupCourtRoutes(api)
		r.setupReservationRoutes(api)
		r.setupPricingRoutes(api)
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
				"service":   "courtly-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "courtly-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":              "operational",
			"api_version":         r.config.APIVersion,
			"availability_engine": r.config.Availability.Enabled,
			"timestamp":           time.Now(),
		})
	})
}

// setupAvailabilityRoutes configures the aggregated availability endpoint
func (r *Router) setupAvailabilityRoutes(rg *gin.RouterGroup) {
	clubRepo := clubs.NewRepository(r.db.GetPostgreSQL())
	courtRepo := courts.NewRepository(r.db.GetPostgreSQL())
	reservationRepo := reservations.NewRepository(r.db.GetPostgreSQL())
	pricingRepo := pricing.NewRepository(r.db.GetPostgreSQL())
	blockRepo := blocks.NewRepository(r.db.GetPostgreSQL())

	snapshotCache := r.snapshotCache()

	svc := availability.NewService(
		r.config.Availability,
		clubRepo,
		courtRepo,
		reservationRepo,
		pricingRepo,
		blockRepo,
		snapshotCache,
		r.publisher,
	)

	controller := availability.NewController(svc, r.config.Availability)
	availability.SetupAvailabilityRoutes(rg, controller)
}

// snapshotCache picks redis when available, in-process otherwise
func (r *Router) snapshotCache() availability.SnapshotCache {
	if r.db.GetRedis() != nil {
		return availability.NewRedisCache(
			cache.NewService(r.db.GetRedis()),
			r.config.Availability.SnapshotTTL,
		)
	}
	return availability.NewMemoryCache(r.config.Availability.SnapshotTTL)
}

// catalogCache returns the shared cache service for catalog reads, nil
// without redis
func (r *Router) catalogCache() cache.Service {
	if r.db.GetRedis() == nil {
		return nil
	}
	return cache.NewService(r.db.GetRedis())
}

// setupCourtRoutes configures direct court read routes
func (r *Router) setupCourtRoutes(rg *gin.RouterGroup) {
	courtRepo := courts.NewRepository(r.db.GetPostgreSQL())
	controller := courts.NewController(courtRepo, r.catalogCache())
	courts.SetupCourtRoutes(rg, controller)
}

// setupReservationRoutes configures direct reservation read routes. These are
// never cached; the ledger is the real-time source of truth.
func (r *Router) setupReservationRoutes(rg *gin.RouterGroup) {
	reservationRepo := reservations.NewRepository(r.db.GetPostgreSQL())
	controller := reservations.NewController(reservationRepo)
	reservations.SetupReservationRoutes(rg, controller)
}

// setupPricingRoutes configures direct pricing-rule and promotion read routes
func (r *Router) setupPricingRoutes(rg *gin.RouterGroup) {
	pricingRepo := pricing.NewRepository(r.db.GetPostgreSQL())
	controller := pricing.NewController(pricingRepo, r.catalogCache())
	pricing.SetupPricingRoutes(rg, controller)
}
