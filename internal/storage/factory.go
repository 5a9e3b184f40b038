package storage

import (
	"context"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"

	"cruisebook/internal/config"
	"cruisebook/internal/db"
)

// Open builds the Store selected by cfg.StorageBackend and returns it with a
// cleanup func for any underlying connections.
func Open(ctx context.Context, cfg config.Config, logger *log.Logger) (Store, func(), error) {
	switch cfg.StorageBackend {
	case config.StorageMemory:
		logger.Printf("storage: in-memory backend, bookings will not survive restarts")
		return NewMemory(), func() {}, nil

	case config.StorageFile:
		store, err := NewFile(cfg.DataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("init file storage: %w", err)
		}
		logger.Printf("storage: file backend at %s", cfg.DataDir)
		return store, func() {}, nil

	case config.StoragePostgres:
		pool, err := db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		logger.Printf("storage: postgres backend")
		return NewPostgres(pool), pool.Close, nil

	case config.StorageRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		logger.Printf("storage: redis backend at %s", cfg.RedisAddr)
		return NewRedis(client), func() { client.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
