// ABOUTME: Entry point for the study time prediction service
// ABOUTME: Loads the model artifact once and serves the HTTP API

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/studyplanner/study-time-api/config"
	"github.com/studyplanner/study-time-api/handlers"
	"github.com/studyplanner/study-time-api/logger"
	"github.com/studyplanner/study-time-api/middleware"
	"github.com/studyplanner/study-time-api/services"
)

func main() {
	// Initialize structured logging
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting Study Time Prediction API", "environment", cfg.Environment)

	// Load the model once. A failed load leaves the process in the unloaded
	// state for its lifetime: /health reports model_missing and /predict
	// returns 503, but the server keeps running (restart to retry).
	var reg services.Regressor
	forest, err := services.LoadForest(cfg.ModelPath)
	if err != nil {
		slog.Warn("Model load failed, serving without a model", "path", cfg.ModelPath, "error", err)
	} else {
		reg = forest
		slog.Info("Model loaded", "path", cfg.ModelPath, "trees", len(forest.Trees))
	}

	// Initialize handlers with the read-only model reference
	h := handlers.NewHandler(cfg, reg)

	// Register routes with the shared middleware chain
	corsMiddleware := middleware.CORSWithConfig(cfg.CORSAllowedOrigins)
	mux := http.NewServeMux()
	for _, rt := range h.Routes() {
		chained := middleware.Chain(rt.Handler,
			middleware.LogRequest,
			corsMiddleware,
			middleware.Metrics(rt.Path),
		)
		mux.HandleFunc(rt.Method+" "+rt.Path, chained)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Serve until SIGINT/SIGTERM, then drain in-flight requests
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(),
			time.Duration(cfg.ShutdownTimeout)*time.Second)
		defer cancel()
		slog.Info("Shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
