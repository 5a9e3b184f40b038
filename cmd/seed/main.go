package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"cruisebook/internal/catalog"
	"cruisebook/internal/config"
	"cruisebook/internal/ledger"
	"cruisebook/internal/notify"
	"cruisebook/internal/reservation"
	"cruisebook/internal/seed"
	"cruisebook/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	store, closeStore, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("open storage: %v", err)
	}
	defer closeStore()

	led := ledger.Open(ctx, store, cfg.LedgerKey, logger, notify.Nop())
	if err := seed.Apply(ctx, led, catalog.Default(), reservation.NewFormatter()); err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Printf("seed applied, ledger has %d bookings", len(led.List()))
}
