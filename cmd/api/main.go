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

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/clinovate/clinic-scheduling-api/internal/api"
	"github.com/clinovate/clinic-scheduling-api/internal/config"
	"github.com/clinovate/clinic-scheduling-api/internal/middleware"
	"github.com/clinovate/clinic-scheduling-api/internal/repository/postgres"
	"github.com/clinovate/clinic-scheduling-api/internal/scope"
	"github.com/clinovate/clinic-scheduling-api/internal/service"
	"github.com/clinovate/clinic-scheduling-api/pkg/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Initialize logger
	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	cfg, err := config.Load()
	if err != nil {
		appLogger.Fatal("Failed to load config", err)
	}

	dbConnections, err := config.NewDatabaseConnections()
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer dbConnections.Close()

	appLogger.Info("Database connections established - writer and reader connected")

	// Initialize Redis
	redisConfig := config.DefaultRedisConfig()
	redisClient, err := redisConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()

	repo := postgres.NewPostgresRepository(dbConnections)
	guard := scope.NewGuard()

	// Initialize services
	tenantService := service.NewTenantService(repo)
	patientService := service.NewPatientService(repo, guard)
	therapistService := service.NewTherapistService(repo, guard)
	appointmentService := service.NewAppointmentService(repo, guard)
	documentTypeService := service.NewDocumentTypeService(repo, guard)
	paymentTypeService := service.NewPaymentTypeService(repo, guard)
	reportService := service.NewReportService(repo, guard)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(redisClient, cfg, appLogger)

	// Initialize server
	server := api.NewServer(
		tenantService,
		patientService,
		therapistService,
		appointmentService,
		documentTypeService,
		paymentTypeService,
		reportService,
		authMiddleware,
		rateLimitMiddleware,
		cfg.GlobalRateLimit,
	)

	// Initialize router
	router := gin.Default()

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Setup API routes
	apiGroup := router.Group("/api/v1")
	server.SetupRoutes(apiGroup)

	// Start server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	// Shutdown the HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", err)
	}

	appLogger.Info("Server exiting")
	appLogger.Sync()
}
