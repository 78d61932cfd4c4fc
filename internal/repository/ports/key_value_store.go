package ports

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by KeyValueStore.Get when no value is stored.
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is the durable backend behind client storage. Values are
// grouped by namespace, one namespace per visitor.
type KeyValueStore interface {
	Get(ctx context.Context, namespace, key string) (string, error)
	Set(ctx context.Context, namespace, key, value string) error
	Delete(ctx context.Context, namespace, key string) error
}

// ClientStorage is the key-value area of a single visitor.
type ClientStorage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
