package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"cruisebook/internal/cart"
	"cruisebook/internal/catalog"
	"cruisebook/internal/checkout"
	"cruisebook/internal/config"
	"cruisebook/internal/httpserver"
	"cruisebook/internal/ledger"
	"cruisebook/internal/notify"
	"cruisebook/internal/reservation"
	"cruisebook/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	store, closeStore, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("open storage: %v", err)
	}
	defer closeStore()

	notifier := notify.NewLog(logger)

	cat := catalog.Default()
	cartStore := cart.NewStore(notifier)
	led := ledger.Open(ctx, store, cfg.LedgerKey, logger, notifier)
	formatter := reservation.NewFormatter()
	simulator := checkout.New(cfg.CheckoutLatency, led, cartStore, notifier)

	logger.Printf("ledger loaded with %d bookings under key %q", len(led.List()), cfg.LedgerKey)

	srv := httpserver.New(cfg.HTTPAddr, logger, cfg.AllowedOrigins, httpserver.Deps{
		Catalog:   cat,
		Cart:      cartStore,
		Checkout:  simulator,
		Formatter: formatter,
		Ledger:    led,
		Store:     store,
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
