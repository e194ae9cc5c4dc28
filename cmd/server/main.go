package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/HGWhappuarachchi/FurnishDesignStudio/internal/api"
	"github.com/HGWhappuarachchi/FurnishDesignStudio/internal/cache"
	"github.com/HGWhappuarachchi/FurnishDesignStudio/internal/config"
	"github.com/HGWhappuarachchi/FurnishDesignStudio/internal/core"
	"github.com/HGWhappuarachchi/FurnishDesignStudio/internal/db"
	"github.com/HGWhappuarachchi/FurnishDesignStudio/internal/middleware"
	"github.com/HGWhappuarachchi/FurnishDesignStudio/internal/outbox"
)

func main() {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize zap logger: %v", err)
	}
	defer zapLogger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		zapLogger.Fatal("Failed to load application configuration", zap.Error(err))
	}
	zapLogger.Info("Application configuration loaded")

	initCtx, cancelInit := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInit()

	clients, err := db.NewClients(initCtx, cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to initialize Firebase clients", zap.Error(err))
	}
	defer clients.Close()
	zapLogger.Info("Firebase Admin SDK initialized", zap.String("projectID", cfg.FirebaseProjectID))

	// The cache is optional: without REDIS_ADDR a nil RedisCache is wired in
	// and every list request goes straight to Firestore.
	var designCache *cache.RedisCache
	if cfg.RedisAddr != "" {
		designCache, err = cache.NewRedisCache(initCtx, cache.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      time.Duration(cfg.CacheTTLSeconds) * time.Second,
		})
		if err != nil {
			zapLogger.Fatal("Failed to connect to redis", zap.Error(err))
		}
		defer designCache.Close()
		zapLogger.Info("Design-list cache enabled", zap.String("addr", cfg.RedisAddr))
	} else {
		zapLogger.Info("Design-list cache disabled: REDIS_ADDR is not set")
	}

	userRepo := db.NewFirestoreUserRepository(clients.Firestore)
	designRepo := db.NewFirestoreDesignRepository(clients.Firestore)
	outboxRepo := db.NewFirestoreOutboxRepository(clients.Firestore)

	authService := core.NewAuthService(clients.Auth, userRepo, outboxRepo, zapLogger)
	designService := core.NewDesignService(designRepo, designCache, zapLogger)
	editorService := core.NewEditorService()

	mirrorWorker := outbox.NewWorker(outboxRepo, userRepo, cfg.OutboxRetrySchedule, cfg.OutboxMaxAttempts, zapLogger)
	if err := mirrorWorker.Start(); err != nil {
		zapLogger.Fatal("Failed to start profile mirror outbox worker", zap.Error(err))
	}
	defer mirrorWorker.Stop()

	if strings.ToLower(cfg.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	if cfg.ClientURL != "" {
		router.Use(middleware.CORSMiddleware(cfg))
		zapLogger.Info("CORS middleware enabled", zap.String("clientURL", cfg.ClientURL))
	} else {
		zapLogger.Warn("CORS middleware skipped: CLIENT_URL is not configured")
	}

	authMW := middleware.NewAuthMiddleware(clients.Auth, zapLogger)
	api.SetupRoutes(router, zapLogger, authMW, authService, designService, editorService)

	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	zapLogger.Info("Starting HTTP server", zap.String("address", serverAddr), zap.String("ginMode", gin.Mode()))
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exiting gracefully")
}
