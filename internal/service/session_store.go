package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"

	"github.com/njprem/DestiMatch_Web/internal/domain"
	"github.com/njprem/DestiMatch_Web/internal/repository/ports"
)

const (
	TokenKey = "destimatch_token"
	UserKey  = "destimatch_user"
)

// Values written by careless serialization of a missing object. They are
// treated as if nothing had been stored.
var storageSentinels = map[string]struct{}{
	"undefined":       {},
	"null":            {},
	"[object Object]": {},
}

// SessionStore keeps the auth token and the user record in the visitor's
// client storage. The two entries are independent and either may be missing.
type SessionStore struct {
	storage ports.ClientStorage
}

func NewSessionStore(storage ports.ClientStorage) *SessionStore {
	return &SessionStore{storage: storage}
}

func (s *SessionStore) Load(ctx context.Context) domain.Session {
	token, _ := s.Token(ctx)
	return domain.Session{Token: token, User: s.User(ctx)}
}

// Token is read from storage on every call.
func (s *SessionStore) Token(ctx context.Context) (string, bool) {
	raw, ok := s.read(ctx, TokenKey)
	if !ok {
		return "", false
	}
	return raw, true
}

// User returns nil when no usable record is stored. Malformed records are removed.
func (s *SessionStore) User(ctx context.Context) *domain.User {
	raw, ok := s.read(ctx, UserKey)
	if !ok {
		return nil
	}
	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		log.Printf("session: malformed user record removed: %v", err)
		if err := s.storage.Delete(ctx, UserKey); err != nil {
			log.Printf("session: remove user record: %v", err)
		}
		return nil
	}
	return &user
}

// Save stores a fresh auth result. A result without a token drops any
// previously stored one so it is never paired with the new user.
func (s *SessionStore) Save(ctx context.Context, user *domain.User, token string) error {
	if token = strings.TrimSpace(token); token != "" {
		if err := s.storage.Set(ctx, TokenKey, token); err != nil {
			return err
		}
	} else if err := s.storage.Delete(ctx, TokenKey); err != nil {
		return err
	}
	if user == nil {
		return nil
	}
	return s.SaveUser(ctx, user)
}

func (s *SessionStore) SaveUser(ctx context.Context, user *domain.User) error {
	if user == nil {
		return nil
	}
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.storage.Set(ctx, UserKey, string(data))
}

// Clear forgets the session locally. The remote API is not told.
func (s *SessionStore) Clear(ctx context.Context) error {
	return errors.Join(
		s.storage.Delete(ctx, TokenKey),
		s.storage.Delete(ctx, UserKey),
	)
}

func (s *SessionStore) read(ctx context.Context, key string) (string, bool) {
	raw, err := s.storage.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ports.ErrKeyNotFound) {
			log.Printf("session: read %s: %v", key, err)
		}
		return "", false
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if _, sentinel := storageSentinels[raw]; sentinel {
		return "", false
	}
	return raw, true
}
