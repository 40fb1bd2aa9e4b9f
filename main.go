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

	"github.com/nikolayk812/shopapi/internal/config"
	"github.com/nikolayk812/shopapi/internal/repository"
	"github.com/nikolayk812/shopapi/internal/service"
	"github.com/nikolayk812/shopapi/internal/stripe"
	"github.com/nikolayk812/shopapi/internal/web"
	"github.com/nikolayk812/shopapi/migrations"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := migrations.Apply(ctx, pool); err != nil {
		return err
	}

	provider, err := stripe.NewCheckoutProvider(cfg.StripeKey)
	if err != nil {
		return err
	}

	productRepo := repository.NewProduct(pool)
	orderRepo := repository.NewOrder(pool)

	catalogSvc := service.NewCatalog(productRepo)
	orderSvc := service.NewOrder(orderRepo, productRepo)
	checkoutSvc := service.NewCheckout(orderRepo, provider)

	server := web.NewServer(catalogSvc, orderSvc, checkoutSvc, web.Options{
		AllowedOrigin: cfg.AllowedOrigin,
		Currency:      cfg.Currency.String(),
		Ping:          pool.Ping,
		Logger:        logger,
	})

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: server.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	return httpServer.Shutdown(shutdownCtx)
}
