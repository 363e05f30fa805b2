package api

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/goldenharvestfarm/goldenharvest-backend/internal/api/handlers"
	"github.com/goldenharvestfarm/goldenharvest-backend/internal/api/middleware"
	"github.com/goldenharvestfarm/goldenharvest-backend/internal/config"
	"github.com/goldenharvestfarm/goldenharvest-backend/internal/services"
)

// SetupRouter configures and returns the main Gin engine.
func SetupRouter(cfg *config.Config, db *mongo.Database) *gin.Engine {
	// Initialize services needed by API handlers
	listingService := services.NewListingService(db, cfg)
	contactService := services.NewContactService(db)
	statsService := services.NewStatsService(db)

	r := gin.New()
	r.Use(gin.Logger())
	// Uncaught handler panics become the generic server-error JSON body.
	r.Use(gin.CustomRecovery(func(c *gin.Context, _ interface{}) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}))
	r.Use(middleware.CORSMiddleware())

	// Initialize handlers
	listingHandler := handlers.NewRestListingHandler(listingService)
	contactHandler := handlers.NewRestContactHandler(contactService)
	statsHandler := handlers.NewRestStatsHandler(statsService)

	api := r.Group("/api")
	{
		// Public routes
		api.GET("/listings", listingHandler.SearchListings)
		api.GET("/listings/:id", listingHandler.GetListingByID)
		api.POST("/contact", contactHandler.SubmitMessage)

		// Demo/test bootstrap. Destructive: wipes all listings.
		api.GET("/seed", listingHandler.SeedListings)

		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "ok"})
		})

		// Admin routes, guarded by the static shared secret
		admin := api.Group("/admin")
		admin.Use(middleware.AdminGate(cfg.AdminSecret))
		{
			admin.POST("/listings", listingHandler.CreateListing)
			admin.PUT("/listings/:id", listingHandler.UpdateListing)
			admin.DELETE("/listings/:id", listingHandler.DeleteListing)
			admin.GET("/messages", contactHandler.ListMessages)
			admin.GET("/stats", statsHandler.GetStats)
		}
	}

	// Static pages
	r.StaticFile("/", filepath.Join(cfg.StaticDir, "index.html"))
	r.StaticFile("/admin/dashboard", filepath.Join(cfg.StaticDir, "admin", "dashboard.html"))

	// Any other path returns a generic not-found JSON body.
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	})

	return r
}
