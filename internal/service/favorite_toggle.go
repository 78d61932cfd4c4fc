package service

import (
	"context"
	"log"
	"sync"

	"github.com/njprem/DestiMatch_Web/internal/repository/ports"
)

type ToggleState int

const (
	ToggleIdle ToggleState = iota
	TogglePending
)

type ToggleResult string

const (
	ToggleCommitted    ToggleResult = "committed"
	ToggleReverted     ToggleResult = "reverted"
	ToggleSkipped      ToggleResult = "skipped"
	ToggleAuthRequired ToggleResult = "auth_required"
	ToggleUnavailable  ToggleResult = "unavailable"
)

// TokenSource exposes the current auth token, read fresh on each call.
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

// FavoriteToggle is the optimistic favorite switch of one destination.
// While a remote call is pending further toggles are ignored.
type FavoriteToggle struct {
	destinationID string

	mu        sync.Mutex
	state     ToggleState
	favorited bool
}

func NewFavoriteToggle(destinationID string, favorited bool) *FavoriteToggle {
	return &FavoriteToggle{destinationID: destinationID, favorited: favorited}
}

func (t *FavoriteToggle) Favorited() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.favorited
}

func (t *FavoriteToggle) State() ToggleState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Mount sets the known remote value. It is ignored while a toggle is pending.
func (t *FavoriteToggle) Mount(favorited bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == TogglePending {
		return false
	}
	t.favorited = favorited
	return true
}

func (t *FavoriteToggle) Toggle(ctx context.Context, session TokenSource, favorites ports.FavoriteGateway, notices Notifier) ToggleResult {
	if _, ok := session.Token(ctx); !ok {
		notify(notices, NoticeError, MsgAuthRequiredFavorite)
		return ToggleAuthRequired
	}

	t.mu.Lock()
	if t.state == TogglePending {
		t.mu.Unlock()
		return ToggleSkipped
	}
	previous := t.favorited
	t.favorited = !previous
	t.state = TogglePending
	t.mu.Unlock()

	var err error
	if previous {
		err = favorites.RemoveFavorite(ctx, t.destinationID)
	} else {
		err = favorites.AddFavorite(ctx, t.destinationID)
	}

	t.mu.Lock()
	t.state = ToggleIdle
	if err != nil {
		t.favorited = previous
	}
	t.mu.Unlock()

	if err != nil {
		log.Printf("favorites: toggle %s: %v", t.destinationID, err)
		notify(notices, NoticeError, MsgFavoriteFailed)
		return ToggleReverted
	}
	if previous {
		notify(notices, NoticeSuccess, MsgFavoriteRemoved)
	} else {
		notify(notices, NoticeSuccess, MsgFavoriteAdded)
	}
	return ToggleCommitted
}
