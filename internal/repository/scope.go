package repository

import (
	"context"

	"github.com/njprem/DestiMatch_Web/internal/repository/ports"
)

type scopedStorage struct {
	kv        ports.KeyValueStore
	namespace string
}

// Scope binds a key-value backend to one visitor namespace.
func Scope(kv ports.KeyValueStore, namespace string) ports.ClientStorage {
	return &scopedStorage{kv: kv, namespace: namespace}
}

func (s *scopedStorage) Get(ctx context.Context, key string) (string, error) {
	return s.kv.Get(ctx, s.namespace, key)
}

func (s *scopedStorage) Set(ctx context.Context, key, value string) error {
	return s.kv.Set(ctx, s.namespace, key, value)
}

func (s *scopedStorage) Delete(ctx context.Context, key string) error {
	return s.kv.Delete(ctx, s.namespace, key)
}
