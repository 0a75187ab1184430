package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"flavour_fusion/internal/config"
	"flavour_fusion/internal/database"
	"flavour_fusion/internal/handler"
	"flavour_fusion/internal/middleware"
	"flavour_fusion/internal/service"

	"github.com/gin-gonic/gin"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger(cfg.Log)
	slog.SetDefault(logger)

	// --- Database Connection ---
	connector := database.NewConnector(cfg.Database, logger)
	store, err := connector.Connect(context.Background())
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}

	// --- Initialize Services ---
	userService := service.NewUserService(store.Users(), cfg.Images.ProfilePicture)
	recipeService := service.NewRecipeService(store.Recipes(), cfg.Images)

	// --- Initialize Handlers ---
	healthHandler := handler.NewHealthHandler(connector, logger)
	userHandler := handler.NewUserHandler(userService, logger)
	recipeHandler := handler.NewRecipeHandler(recipeService, logger)

	// --- Setup Gin Router ---
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(logger), middleware.CORS())

	// --- Register Routes ---
	healthHandler.RegisterHealthRoutes(router)
	apiGroup := router.Group("/api")
	userHandler.RegisterUserRoutes(apiGroup)
	recipeHandler.RegisterRecipeRoutes(apiGroup)

	// --- Start Server ---
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", slog.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	exitCode := 0
	select {
	case sig := <-quit:
		logger.Info("shutting down server", slog.String("signal", sig.String()))
	case err := <-serverErr:
		logger.Error("server failed", slog.Any("error", err))
		exitCode = 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", slog.Any("error", err))
	}

	if err := connector.Shutdown(ctx); err != nil {
		logger.Error("failed to close database connection", slog.Any("error", err))
		exitCode = 1
	}

	logger.Info("server exiting")
	cancel()
	os.Exit(exitCode)
}

func newLogger(cfg config.Log) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
