package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"btl-run-api/internal/config"
	"btl-run-api/internal/handlers"
	"btl-run-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	config.SetupLogging(cfg)

	// Setup Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := NewRouter(cfg)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("Server started on port %s (%s mode)", cfg.Port, config.GetDeploymentMode())

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// NewRouter builds the gin router serving the same routes as the Lambda
// deployment.
func NewRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	// Add middleware
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())

	apiHandler := handlers.NewAPIHandler(cfg)

	router.GET("/health", handlers.Gin(apiHandler.HandleHealth))
	router.GET("/api/health", handlers.Gin(apiHandler.HandleHealth))
	router.GET("/", handlers.Gin(apiHandler.HandleRoot))
	router.GET("/api", handlers.Gin(apiHandler.HandleRoot))
	router.NoRoute(handlers.Gin(apiHandler.HandleNotFound))

	return router
}
