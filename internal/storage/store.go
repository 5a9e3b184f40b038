// Package storage provides the durable blob store the booking ledger
// persists into. The ledger only needs get/set of one serialized value per
// key, so every backend implements the same small capability interface and
// the rest of the system stays storage-agnostic.
package storage

import "context"

// Store is the durable blob capability. Get returns domain.ErrNotFound when
// the key has never been written.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
}
