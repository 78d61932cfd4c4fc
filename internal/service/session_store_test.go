package service

import (
	"context"
	"errors"
	"testing"

	"github.com/njprem/DestiMatch_Web/internal/domain"
	"github.com/njprem/DestiMatch_Web/internal/repository/ports"
)

func TestSessionStore_SentinelUserIsAbsent(t *testing.T) {
	ctx := context.Background()
	for _, raw := range []string{"undefined", "[object Object]", "null", "  "} {
		storage := newClientStorage()
		if err := storage.Set(ctx, UserKey, raw); err != nil {
			t.Fatalf("Set: %v", err)
		}
		if u := NewSessionStore(storage).User(ctx); u != nil {
			t.Fatalf("expected no user for %q, got %+v", raw, u)
		}
	}
}

func TestSessionStore_MalformedUserIsRemoved(t *testing.T) {
	ctx := context.Background()
	storage := newClientStorage()
	_ = storage.Set(ctx, UserKey, "{not json")
	_ = storage.Set(ctx, TokenKey, "abc")

	session := NewSessionStore(storage).Load(ctx)
	if session.User != nil {
		t.Fatalf("expected user to be absent")
	}
	if session.Token != "abc" {
		t.Fatalf("expected token to survive, got %q", session.Token)
	}
	if _, err := storage.Get(ctx, UserKey); !errors.Is(err, ports.ErrKeyNotFound) {
		t.Fatalf("expected malformed record removed, got %v", err)
	}
}

func TestSessionStore_SaveLoadClear(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(newClientStorage())

	style := domain.TravelCouple
	if err := store.Save(ctx, &domain.User{Name: "Ana", TravelStyle: &style}, "tok-1"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	session := store.Load(ctx)
	if !session.Authenticated() || session.Token != "tok-1" {
		t.Fatalf("unexpected token %q", session.Token)
	}
	if session.User == nil || session.User.Name != "Ana" || *session.User.TravelStyle != domain.TravelCouple {
		t.Fatalf("unexpected user %+v", session.User)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok := store.Token(ctx); ok {
		t.Fatalf("expected token cleared")
	}
	if store.User(ctx) != nil {
		t.Fatalf("expected user cleared")
	}
}

func TestSessionStore_SaveWithoutTokenDropsPrevious(t *testing.T) {
	ctx := context.Background()
	storage := newClientStorage()
	store := NewSessionStore(storage)
	if err := store.Save(ctx, &domain.User{Name: "Bob"}, "bob-token"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := store.Save(ctx, &domain.User{Name: "Ana"}, ""); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if tok, ok := store.Token(ctx); ok {
		t.Fatalf("expected previous token dropped, got %q", tok)
	}
	if u := store.User(ctx); u == nil || u.Name != "Ana" {
		t.Fatalf("expected new user stored, got %+v", u)
	}
	if err := store.Save(ctx, nil, ""); err != nil {
		t.Fatalf("Save on empty storage: %v", err)
	}
}

func TestSessionStore_TokenSentinel(t *testing.T) {
	ctx := context.Background()
	storage := newClientStorage()
	_ = storage.Set(ctx, TokenKey, "undefined")
	if _, ok := NewSessionStore(storage).Token(ctx); ok {
		t.Fatalf("expected sentinel token to read as absent")
	}
}
