package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apphttp "itinerary_backend/internal/http"
	"itinerary_backend/internal/http/router"
	"itinerary_backend/internal/itinerary"
	notionclient "itinerary_backend/internal/notion/client"
	"itinerary_backend/platform/config"
	"itinerary_backend/platform/logger"
	"itinerary_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	startupPingTimeout = 10 * time.Second
	shutdownTimeout    = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	if !isDevelopment(cfg.Env) {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	notion := notionclient.New(cfg, log)

	pingCtx, cancelPing := context.WithTimeout(ctx, startupPingTimeout)
	if err := notion.Ping(pingCtx); err != nil {
		log.Warn("notion API not reachable at startup", "error", err)
	} else {
		log.Info("notion API reachable", "baseURL", cfg.GetNotionBaseURL(), "version", cfg.GetNotionVersion())
	}
	cancelPing()

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	itineraryModule := itinerary.NewModule(notion, cfg, val, log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Health: itineraryModule.Service(),
		Modules: []apphttp.Module{
			itineraryModule,
		},
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router.New(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

func isDevelopment(env string) bool {
	return env == "development"
}
