package memory

import (
	"context"
	"sync"

	"github.com/njprem/DestiMatch_Web/internal/repository/ports"
)

// KeyValueStore keeps client storage in process memory. Contents are lost on
// restart; it backs tests and local development.
type KeyValueStore struct {
	mu    sync.RWMutex
	items map[string]map[string]string
}

func NewKeyValueStore() *KeyValueStore {
	return &KeyValueStore{items: make(map[string]map[string]string)}
}

func (s *KeyValueStore) Get(_ context.Context, namespace, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.items[namespace][key]
	if !ok {
		return "", ports.ErrKeyNotFound
	}
	return value, nil
}

func (s *KeyValueStore) Set(_ context.Context, namespace, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ns, ok := s.items[namespace]
	if !ok {
		ns = make(map[string]string)
		s.items[namespace] = ns
	}
	ns[key] = value
	return nil
}

func (s *KeyValueStore) Delete(_ context.Context, namespace, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ns, ok := s.items[namespace]
	if !ok {
		return nil
	}
	delete(ns, key)
	if len(ns) == 0 {
		delete(s.items, namespace)
	}
	return nil
}

var _ ports.KeyValueStore = (*KeyValueStore)(nil)
