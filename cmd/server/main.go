package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stayhub/hotel-booking-backend/internal/config"
	"github.com/stayhub/hotel-booking-backend/internal/database"
	"github.com/stayhub/hotel-booking-backend/internal/handlers"
	"github.com/stayhub/hotel-booking-backend/internal/middleware"
	"github.com/stayhub/hotel-booking-backend/internal/models"
	"github.com/stayhub/hotel-booking-backend/internal/services"
	"github.com/stayhub/hotel-booking-backend/pkg/jwt"
)

var (
	version   = "1.0.0"
	buildTime = "unknown"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	logger.Info("Starting StayHub Hotel Booking Backend")
	logger.Infof("Version: %s, Build Time: %s", version, buildTime)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	logLevel, err := logrus.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		logger.Warn("Invalid log level, using INFO")
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	logger.Info("Connecting to database...")
	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	logger.Info("Database connection established")

	// Repositories
	userRepo := database.NewUserRepository(db)
	bookingRepo := database.NewBookingRepository(db)
	hotelRepo := database.NewHotelRepository(db)

	// Services
	jwtService := jwt.NewService(
		cfg.JWT.Secret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	policy := services.NewPermissionPolicy()
	bookingService := services.NewBookingService(
		bookingRepo, userRepo, hotelRepo, policy, logger, cfg.Booking.HoldDuration,
	)
	authService := services.NewAuthService(userRepo, jwtService, logger, cfg.Security.BcryptCost)

	// Background services
	expirationService := services.NewBookingExpirationService(
		bookingRepo, logger, cfg.Booking.ExpirationSweep, cfg.Booking.ExpirationBatch,
	)
	expirationService.Start()
	defer expirationService.Stop()

	sweeper := services.NewHotelStatusService(hotelRepo, logger, cfg.Sweep.Interval)
	if err := sweeper.Start(); err != nil {
		logger.Fatalf("Failed to start hotel status sweeper: %v", err)
	}
	defer sweeper.Stop()

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, cfg.Booking.DefaultPageSize)
	hotelHandler := handlers.NewHotelHandler(hotelRepo, policy, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.Security.EnableRequestLog {
		router.Use(requestLogger(logger))
	}

	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", healthCheckHandler(db))

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh-token", authHandler.RefreshToken)
		}

		bookings := v1.Group("/bookings")
		{
			// Creation is public so guests can book without an account
			bookings.POST("", bookingHandler.CreateBooking)

			protected := bookings.Group("")
			protected.Use(middleware.AuthMiddleware(jwtService))
			{
				protected.GET("", bookingHandler.ListBookings)
				protected.GET("/:id", bookingHandler.GetBooking)
				protected.PUT("/:id", bookingHandler.UpdateBooking)
				protected.PUT("/:id/status", bookingHandler.UpdateBookingStatus)
			}
		}

		hotels := v1.Group("/hotels")
		{
			hotels.GET("", hotelHandler.ListHotels)
			hotels.GET("/:id", hotelHandler.GetHotel)

			protected := hotels.Group("")
			protected.Use(middleware.AuthMiddleware(jwtService))
			{
				protected.POST("", middleware.RequireRole(models.RolePartner, models.RoleAdmin), hotelHandler.CreateHotel)
				protected.PUT("/:id", middleware.RequireRole(models.RolePartner, models.RoleAdmin), hotelHandler.UpdateHotel)
				protected.PUT("/:id/status", hotelHandler.UpdateHotelStatus)
			}
		}
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		logger.Infof("Server listening on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}
	logger.Info("Server exited")
}

// requestLogger logs each request with method, path, status and latency
func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
			"ip":      c.ClientIP(),
		}).Info("request")
	}
}

// healthCheckHandler reports service and database health
func healthCheckHandler(db database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  "database unreachable",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": version,
		})
	}
}
