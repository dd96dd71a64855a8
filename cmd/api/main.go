package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/xosoviet/xoso-backend/api/routes"
	"github.com/xosoviet/xoso-backend/internal/cache"
	"github.com/xosoviet/xoso-backend/internal/config"
	"github.com/xosoviet/xoso-backend/internal/handlers"
	"github.com/xosoviet/xoso-backend/internal/repositories"
	mongorepo "github.com/xosoviet/xoso-backend/internal/repositories/mongodb"
	"github.com/xosoviet/xoso-backend/internal/services"
	"github.com/xosoviet/xoso-backend/pkg/mongodb"
	"github.com/xosoviet/xoso-backend/pkg/upstream"
)

func main() {
	// Load .env if present, then configuration
	_ = godotenv.Load()
	cfg, err := config.LoadConfig(config.GetEnv("CONFIG_PATH", "."))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if config.GetEnvAsBool("GIN_RELEASE", false) {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to MongoDB
	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()
	db := mongoClient.Database(cfg.MongoDB.Database)

	// Initialize repositories
	var resultRepo repositories.ResultRepository = mongorepo.NewResultRepository(db)
	var adminUserRepo repositories.AdminUserRepository = mongorepo.NewAdminUserRepository(db)

	// Initialize the result cache and the live feed client
	resultCache := cache.New(cfg.Cache.Capacity, time.Duration(cfg.Cache.TTLMs)*time.Millisecond)
	feed := upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.APIKey, cfg.Upstream.Mock)

	// Initialize services
	resultService := services.NewResultService(resultCache, feed, resultRepo)
	authService := services.NewAuthService(adminUserRepo, cfg)

	// Initialize handlers
	resultHandler := handlers.NewResultHandler(resultService)
	authHandler := handlers.NewAuthHandler(authService)

	handlerDeps := routes.HandlerDependencies{
		AuthHandler:   authHandler,
		ResultHandler: resultHandler,
	}

	router := routes.SetupRouter(cfg, handlerDeps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	log.Printf("Server starting on port %s", cfg.Server.Port)

	// Run server in a goroutine so that it doesn't block
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
