package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tripfolio/tripfolio-api/config"
	"github.com/tripfolio/tripfolio-api/pkg/api/handlers"
	custommw "github.com/tripfolio/tripfolio-api/pkg/api/middleware"
	"github.com/tripfolio/tripfolio-api/pkg/auth"
	"github.com/tripfolio/tripfolio-api/pkg/billing"
	"github.com/tripfolio/tripfolio-api/pkg/cache"
	"github.com/tripfolio/tripfolio-api/pkg/database"
	"github.com/tripfolio/tripfolio-api/pkg/email"
	"github.com/tripfolio/tripfolio-api/pkg/logger"
	"github.com/tripfolio/tripfolio-api/pkg/metrics"
	custommiddleware "github.com/tripfolio/tripfolio-api/pkg/middleware"
	"github.com/tripfolio/tripfolio-api/pkg/team"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 1.0, // Capture 100% of transactions in development, adjust in production
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Initialize database
	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize Redis cache
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Structured access logger (JSON via slog)
	accessLogger := logger.New(cfg.LogLevel)

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Initialize JWT blacklist
	tokenBlacklist := auth.NewTokenBlacklist(redisClient)

	// Initialize email service
	emailService := email.NewService(
		cfg.EmailFrom,
		cfg.EmailFromName,
		cfg.FrontendURL,
		cfg.SendGridAPIKey,
	)
	// Service logs its own initialization status

	// Initialize services
	stripeProcessor := billing.NewStripeProcessor(cfg.StripeSecretKey, cfg.StripeWebhookSecret)
	billingService := billing.NewService(db.Ent, stripeProcessor, &billing.Config{
		WebhookSecret: cfg.StripeWebhookSecret,
		PriceStarter:  cfg.StripePriceStarter,
		PricePro:      cfg.StripePricePro,
		PriceAgency:   cfg.StripePriceAgency,
		SuccessURL:    cfg.FrontendURL + "/dashboard/settings/billing?success=true",
		CancelURL:     cfg.FrontendURL + "/pricing?canceled=true",
		BaseURL:       cfg.FrontendURL,
	})
	billingService.SetEmailSender(emailService)
	billingService.SetMetrics(prometheusMetrics)

	teamService := team.NewService(db.Ent)
	teamService.SetEmailSender(emailService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db.Ent, cfg, tokenBlacklist)
	billingHandler := handlers.NewBillingHandler(billingService)
	teamHandler := handlers.NewTeamHandler(teamService)

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Initialize rate limiters
	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	authRateLimiter := custommiddleware.NewRateLimiter(5, 2)       // 5 req/min for login
	registerRateLimiter := custommiddleware.NewRateLimiter(3, 1)   // registration abuse guard
	webhookRateLimiter := custommiddleware.NewRateLimiter(100, 20) // 100 req/min for Stripe webhooks

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			accessLogger.Info("request",
				"method", c.Request().Method,
				"uri", v.URI,
				"status", v.Status,
			)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	// Sentry error tracking middleware (if configured)
	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true, // Repanic after capturing to let the Recover middleware handle it
		}))
	}

	// Prometheus metrics middleware
	e.Use(prometheusMetrics.Middleware())

	// CORS with restricted origins
	e.Use(middleware.CORSWithConfig(custommiddleware.CORSConfig()))

	e.Use(middleware.Gzip())
	e.Use(custommiddleware.SecurityHeaders(custommiddleware.SecurityHeadersConfig{}))

	// Global rate limiting (default 60 req/min)
	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Health check endpoints (public)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "Tripfolio API",
			"version":     "0.1.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		// Check database connection
		if err := db.Ping(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}

		// Check Redis connection
		if _, err := redisClient.Redis.Ping(ctx).Result(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"cache":  "down",
			})
		}

		return c.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    "up",
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// API v1 routes
	v1 := e.Group("/api/v1")

	// Authentication routes (public)
	authRoutes := v1.Group("/auth")
	{
		// Register with strict rate limit
		authRoutes.POST("/register", authHandler.Register, registerRateLimiter.RateLimitMiddleware())
		// Login with rate limit: 5 per minute (prevent brute force)
		authRoutes.POST("/login", authHandler.Login, authRateLimiter.RateLimitMiddleware())
		// Me endpoint with JWT validation and blacklist check
		authRoutes.GET("/me", authHandler.Me, custommw.JWTMiddlewareWithBlacklist(cfg.JWTSecret, tokenBlacklist))
		// Logout endpoint (revoke token)
		authRoutes.POST("/logout", authHandler.Logout, custommw.JWTMiddlewareWithBlacklist(cfg.JWTSecret, tokenBlacklist))
	}

	// Public billing routes. Checkout session creation is public because
	// new signups pay before they have an account.
	v1.GET("/pricing", billingHandler.GetPricing)
	v1.POST("/checkout-session", billingHandler.CreateCheckoutSession)
	v1.GET("/checkout-session/:id", billingHandler.GetCheckoutSession)
	// Stripe webhook with higher rate limit: 100 per minute
	v1.POST("/webhook/stripe", billingHandler.HandleWebhook, webhookRateLimiter.RateLimitMiddleware())

	// Public team invitation lookup (invitee may not be logged in yet)
	v1.GET("/team-invitation-info", teamHandler.InvitationInfo)

	// Protected routes (require JWT with blacklist validation)
	protected := v1.Group("")
	protected.Use(custommw.JWTMiddlewareWithBlacklist(cfg.JWTSecret, tokenBlacklist))
	{
		// Billing routes
		protected.POST("/update-subscription", billingHandler.UpdateSubscription)

		// Team routes
		teamGroup := protected.Group("/team")
		{
			teamGroup.POST("", teamHandler.CreateTeam)
			teamGroup.POST("/invite", teamHandler.Invite)
			teamGroup.POST("/accept-invite", teamHandler.AcceptInvite)
		}
	}

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 Tripfolio API starting on %s", address)
	log.Printf("🔐 JWT expiration: %d hours", cfg.JWTExpirationHours)
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d)", cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	log.Printf("🔒 Auth endpoints: login (5/min), register (3/min), webhook (100/min)")

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	// Gracefully shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
