package service

import (
	"context"
	"log"
	"sync"

	"github.com/njprem/DestiMatch_Web/internal/domain"
	"github.com/njprem/DestiMatch_Web/internal/repository/ports"
)

type FavoriteService struct {
	favorites ports.FavoriteGateway

	mu       sync.Mutex
	inFlight map[string]*toggleEntry
}

// toggleEntry tracks one in-flight toggle. target and failed are written
// before ready is closed; done is closed once the toggle has settled.
type toggleEntry struct {
	toggle *FavoriteToggle
	ready  chan struct{}
	done   chan struct{}
	target bool
	failed bool
}

// observe reports the value a concurrent caller should see. It blocks
// until the remote status of the in-flight toggle is known.
func (e *toggleEntry) observe(ctx context.Context) ToggleOutcome {
	select {
	case <-e.ready:
	case <-ctx.Done():
		return ToggleOutcome{Result: ToggleUnavailable}
	}
	if e.failed {
		return ToggleOutcome{Result: ToggleUnavailable}
	}
	select {
	case <-e.done:
		return ToggleOutcome{Result: ToggleSkipped, Favorited: e.toggle.Favorited()}
	default:
		return ToggleOutcome{Result: ToggleSkipped, Favorited: e.target}
	}
}

type ToggleOutcome struct {
	Result    ToggleResult `json:"result"`
	Favorited bool         `json:"favorited"`
}

func NewFavoriteService(favorites ports.FavoriteGateway) *FavoriteService {
	return &FavoriteService{
		favorites: favorites,
		inFlight:  make(map[string]*toggleEntry),
	}
}

// Status reports whether the destination is among the current user's
// favorites. Anonymous visitors have none.
func (s *FavoriteService) Status(ctx context.Context, session TokenSource, visitorID, destinationID string) (bool, error) {
	if _, ok := session.Token(ctx); !ok {
		return false, nil
	}
	if t := s.pending(visitorID, destinationID); t != nil {
		return t.Favorited(), nil
	}
	items, err := s.favorites.ListFavorites(ctx)
	if err != nil {
		return false, err
	}
	return domain.ContainsDestination(items, destinationID), nil
}

// Toggle flips the favorite flag of one destination for one visitor. Only
// one toggle per visitor and destination reaches the remote API at a time;
// concurrent requests for the same pair are skipped and report the
// optimistic value once the in-flight toggle knows the remote status.
func (s *FavoriteService) Toggle(ctx context.Context, session TokenSource, notices Notifier, visitorID, destinationID string) ToggleOutcome {
	if _, ok := session.Token(ctx); !ok {
		notify(notices, NoticeError, MsgAuthRequiredFavorite)
		return ToggleOutcome{Result: ToggleAuthRequired}
	}

	key := toggleKey(visitorID, destinationID)
	s.mu.Lock()
	if e, busy := s.inFlight[key]; busy {
		s.mu.Unlock()
		return e.observe(ctx)
	}
	e := &toggleEntry{
		toggle: NewFavoriteToggle(destinationID, false),
		ready:  make(chan struct{}),
		done:   make(chan struct{}),
	}
	s.inFlight[key] = e
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inFlight, key)
		s.mu.Unlock()
		close(e.done)
	}()

	items, err := s.favorites.ListFavorites(ctx)
	if err != nil {
		log.Printf("favorites: status %s: %v", destinationID, err)
		e.failed = true
		close(e.ready)
		notify(notices, NoticeError, MsgFavoriteFailed)
		return ToggleOutcome{Result: ToggleUnavailable}
	}
	current := domain.ContainsDestination(items, destinationID)
	t := e.toggle
	t.Mount(current)
	e.target = !current
	close(e.ready)

	result := t.Toggle(ctx, session, s.favorites, notices)
	return ToggleOutcome{Result: result, Favorited: t.Favorited()}
}

func (s *FavoriteService) List(ctx context.Context) ([]domain.Destination, error) {
	items, err := s.favorites.ListFavorites(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Destination{}
	}
	return items, nil
}

func (s *FavoriteService) MostLikedContinents(ctx context.Context) []string {
	items, err := s.favorites.MostLikedContinents(ctx)
	if err != nil {
		log.Printf("favorites: most liked continents: %v", err)
		return []string{}
	}
	if items == nil {
		return []string{}
	}
	return items
}

func (s *FavoriteService) pending(visitorID, destinationID string) *FavoriteToggle {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.inFlight[toggleKey(visitorID, destinationID)]
	if !ok || e.toggle.State() != TogglePending {
		return nil
	}
	return e.toggle
}

func toggleKey(visitorID, destinationID string) string {
	return visitorID + "/" + destinationID
}
