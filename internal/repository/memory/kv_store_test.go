package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/njprem/DestiMatch_Web/internal/repository"
	"github.com/njprem/DestiMatch_Web/internal/repository/ports"
)

func TestKeyValueStoreNamespacesAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := NewKeyValueStore()

	alice := repository.Scope(store, "alice")
	bob := repository.Scope(store, "bob")

	if err := alice.Set(ctx, "destimatch_token", "a-token"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if _, err := bob.Get(ctx, "destimatch_token"); !errors.Is(err, ports.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound for other namespace, got %v", err)
	}

	value, err := alice.Get(ctx, "destimatch_token")
	if err != nil || value != "a-token" {
		t.Fatalf("expected a-token, got %q (%v)", value, err)
	}

	if err := alice.Delete(ctx, "destimatch_token"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := alice.Get(ctx, "destimatch_token"); !errors.Is(err, ports.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound after delete, got %v", err)
	}
	if err := bob.Delete(ctx, "missing"); err != nil {
		t.Fatalf("deleting a missing key should succeed, got %v", err)
	}
}
