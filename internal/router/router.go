// internal/router/router.go
package router

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/javajoker/shopsmart-admin/internal/catalog"
	"github.com/javajoker/shopsmart-admin/internal/config"
	"github.com/javajoker/shopsmart-admin/internal/handlers"
	"github.com/javajoker/shopsmart-admin/internal/middleware"
	"github.com/javajoker/shopsmart-admin/internal/seed"
	"github.com/javajoker/shopsmart-admin/internal/services"
	"github.com/javajoker/shopsmart-admin/internal/utils"
)

// App is the wired HTTP surface plus the long-lived state behind it.
type App struct {
	Engine  *gin.Engine
	Catalog *catalog.Store

	limiters []*middleware.RateLimiter
}

// Run evicts idle rate limit visitors until ctx is done.
func (a *App) Run(ctx context.Context) {
	for _, limiter := range a.limiters {
		go limiter.Run(ctx)
	}
}

// Close drops any pending catalog submission.
func (a *App) Close() {
	a.Catalog.Close()
}

func Initialize(cfg *config.Config, logger *logrus.Entry) (*App, error) {
	// Initialize services
	assetService := services.NewAssetService(cfg, logger)

	store, err := catalog.New(seed.Products(), catalog.Options{
		SubmitDelay:         cfg.Catalog.SubmitDelay(),
		PlaceholderImageURL: cfg.Catalog.PlaceholderImageURL,
		ClosePolicy:         catalog.ClosePolicy(cfg.Catalog.ClosePolicy),
		Images:              assetService,
		Logger:              logger.WithField("component", "catalog"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize catalog: %w", err)
	}

	settingsService, err := services.NewSettingsService(cfg.Auth.OwnerName, cfg.Auth.OwnerEmail, cfg.Auth.OwnerPassword, seed.Preferences(), logger)
	if err != nil {
		return nil, err
	}
	authService := services.NewAuthService(settingsService, cfg)
	customerService := services.NewCustomerService(seed.Customers())
	orderService := services.NewOrderService(seed.Orders())
	dashboardService := services.NewDashboardService(store, seed.Stats(), seed.Sales(), seed.RecentOrders())

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, settingsService)
	productHandler := handlers.NewProductHandler(store)
	assetHandler := handlers.NewAssetHandler(assetService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	orderHandler := handlers.NewOrderHandler(orderService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.Auth.SecretKey)

	generalLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
	authLimiter := middleware.NewRateLimiter(rate.Every(time.Minute), 5)
	uploadLimiter := middleware.NewRateLimiter(uploadRate(cfg.RateLimit.UploadsPerMinute), cfg.RateLimit.UploadsPerMinute)

	// Initialize Gin router
	r := gin.New()
	r.MaxMultipartMemory = cfg.Assets.MaxSize + 1<<20

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger.WithField("component", "http")))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.I18nMiddleware(cfg.I18n.DefaultLocale))
	r.Use(generalLimiter.Middleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authLimiter.Middleware(), authHandler.Login)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetCurrentUser)
		}

		// Uploaded product images (public, content addressed)
		v1.GET("/assets/:key", assetHandler.GetAsset)

		protected := v1.Group("")
		protected.Use(middleware.AuthRequired())

		// Product routes
		products := protected.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.POST("", uploadLimiter.Middleware(), productHandler.CreateProduct)
			products.GET("/:id", productHandler.GetProduct)
			products.PUT("/:id", uploadLimiter.Middleware(), productHandler.UpdateProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
			products.POST("/:id/edit", productHandler.BeginEdit)

			// Product editor
			products.GET("/editor", productHandler.GetEditor)
			products.POST("/editor/create", productHandler.BeginCreate)
			products.POST("/editor/cancel", productHandler.CancelEditor)
			products.POST("/editor/submit", uploadLimiter.Middleware(), productHandler.SubmitEditor)
			products.GET("/submissions/:id", productHandler.GetSubmission)
		}

		protected.GET("/dashboard", dashboardHandler.GetDashboard)
		protected.GET("/customers", customerHandler.GetCustomers)

		orders := protected.Group("/orders")
		{
			orders.GET("", orderHandler.GetOrders)
			orders.GET("/export", orderHandler.ExportOrders)
		}

		settings := protected.Group("/settings")
		{
			settings.GET("/profile", settingsHandler.GetProfile)
			settings.PUT("/profile", settingsHandler.UpdateProfile)
			settings.GET("/preferences", settingsHandler.GetPreferences)
			settings.PUT("/preferences", settingsHandler.UpdatePreferences)
			settings.PUT("/password", settingsHandler.ChangePassword)
		}
	}

	return &App{
		Engine:   r,
		Catalog:  store,
		limiters: []*middleware.RateLimiter{generalLimiter, authLimiter, uploadLimiter},
	}, nil
}

func uploadRate(perMinute int) rate.Limit {
	if perMinute <= 0 {
		return rate.Inf
	}
	return rate.Every(time.Minute / time.Duration(perMinute))
}
