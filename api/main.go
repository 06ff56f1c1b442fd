package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rogerio-castellano/product-catalog/internal/config"
	api "github.com/rogerio-castellano/product-catalog/internal/http"
	"github.com/rogerio-castellano/product-catalog/internal/http/handlers"
	rl "github.com/rogerio-castellano/product-catalog/internal/http/rate_limiter"
	"github.com/rogerio-castellano/product-catalog/internal/mediator"
	"github.com/rogerio-castellano/product-catalog/internal/obs"
	"github.com/rogerio-castellano/product-catalog/internal/product"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
)

// @title Product Catalog API
// @version 1.0
// @description CQRS-style REST API for creating and fetching catalog products.
// @host localhost:8080
// @BasePath /
func main() {
	obs.InitLogger()

	cfg, err := config.Load()
	if err != nil {
		obs.Logger.Error("could not load configuration", "error", err)
		os.Exit(1)
	}

	rl.Configure(cfg.RateLimitRate, cfg.RateLimitBurst)
	go rl.StartVisitorCleanupLoop()

	productRepo := repo.NewInMemoryProductRepository()

	med := mediator.New()
	if err := product.RegisterHandlers(med, productRepo); err != nil {
		obs.Logger.Error("could not register handlers", "error", err)
		os.Exit(1)
	}
	handlers.SetMediator(med)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      api.NewRouter(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		obs.Logger.Info("server running", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			obs.Logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		obs.Logger.Error("shutdown failed", "error", err)
		os.Exit(1)
	}
	obs.Logger.Info("server stopped")
}
