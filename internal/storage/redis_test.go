package storage

import (
	"context"
	"os"
	"testing"

	"github.com/go-redis/redis/v8"
)

func TestRedis(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}

	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: addr, DB: 15})
	defer client.Close()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Fatalf("ping redis: %v", err)
	}
	if err := client.Del(ctx, "cruise-bookings").Err(); err != nil {
		t.Fatalf("reset key: %v", err)
	}

	testStoreContract(t, NewRedis(client))
}
