package service

import (
	"context"
	"errors"
	"sync"

	"github.com/njprem/DestiMatch_Web/internal/domain"
	"github.com/njprem/DestiMatch_Web/internal/repository"
	"github.com/njprem/DestiMatch_Web/internal/repository/memory"
	"github.com/njprem/DestiMatch_Web/internal/repository/ports"
)

var errUpstream = errors.New("upstream unavailable")

func newClientStorage() ports.ClientStorage {
	return repository.Scope(memory.NewKeyValueStore(), "visitor-1")
}

type staticToken string

func (t staticToken) Token(context.Context) (string, bool) {
	return string(t), t != ""
}

type fakeFavorites struct {
	mu        sync.Mutex
	ids       []string
	listErr   error
	changeErr error
	adds      int
	removes   int
	lists     int

	// block, when set, holds add/remove calls until closed. entered is
	// signalled once a call is waiting.
	block   chan struct{}
	entered chan struct{}
	// listBlock and listEntered do the same for ListFavorites.
	listBlock   chan struct{}
	listEntered chan struct{}

	continents    []string
	continentsErr error
}

func (f *fakeFavorites) ListFavorites(context.Context) ([]domain.Destination, error) {
	if f.listBlock != nil {
		if f.listEntered != nil {
			f.listEntered <- struct{}{}
		}
		<-f.listBlock
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]domain.Destination, 0, len(f.ids))
	for _, id := range f.ids {
		out = append(out, domain.Destination{ID: id})
	}
	return out, nil
}

func (f *fakeFavorites) AddFavorite(_ context.Context, id string) error {
	f.wait()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.adds++
	if f.changeErr != nil {
		return f.changeErr
	}
	f.ids = append(f.ids, id)
	return nil
}

func (f *fakeFavorites) RemoveFavorite(_ context.Context, id string) error {
	f.wait()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removes++
	if f.changeErr != nil {
		return f.changeErr
	}
	kept := f.ids[:0]
	for _, existing := range f.ids {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	f.ids = kept
	return nil
}

func (f *fakeFavorites) MostLikedContinents(context.Context) ([]string, error) {
	return f.continents, f.continentsErr
}

func (f *fakeFavorites) wait() {
	if f.block == nil {
		return
	}
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	<-f.block
}

func (f *fakeFavorites) changes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.adds + f.removes
}

type fakeDestinations struct {
	mu          sync.Mutex
	catalog     []domain.Destination
	catalogErr  error
	matches     []domain.DestinationMatch
	matchErr    error
	detail      map[string]domain.Destination
	search      []domain.Destination
	searchErr   error
	searchCalls int
	tags        []string
}

func (f *fakeDestinations) ListDestinations(context.Context) ([]domain.Destination, error) {
	return f.catalog, f.catalogErr
}

func (f *fakeDestinations) GetDestination(_ context.Context, id string) (*domain.Destination, error) {
	d, ok := f.detail[id]
	if !ok {
		return nil, errUpstream
	}
	return &d, nil
}

func (f *fakeDestinations) SearchDestinations(context.Context, domain.SearchParams) ([]domain.Destination, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchCalls++
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.search, nil
}

func (f *fakeDestinations) MatchDestinations(context.Context) ([]domain.DestinationMatch, error) {
	return f.matches, f.matchErr
}

func (f *fakeDestinations) ListTags(context.Context) ([]string, error) {
	return f.tags, nil
}

func (f *fakeDestinations) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.searchCalls
}

type fakeReviews struct {
	items   []domain.Review
	listErr error
	added   []domain.Review
	addErr  error
}

func (f *fakeReviews) ListReviews(context.Context, string) ([]domain.Review, error) {
	return f.items, f.listErr
}

func (f *fakeReviews) AddReview(_ context.Context, destinationID string, rating float64, content string) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.added = append(f.added, domain.Review{DestinationID: destinationID, Rating: rating, Content: content})
	return nil
}

type fakeUsers struct {
	logins      int
	registered  []domain.Registration
	preferences []domain.Preferences
}

func (f *fakeUsers) Login(_ context.Context, email, _ string) (*domain.AuthResult, error) {
	f.logins++
	return &domain.AuthResult{Token: "tok", User: &domain.User{Email: email}}, nil
}

func (f *fakeUsers) Register(_ context.Context, in domain.Registration) (*domain.AuthResult, error) {
	f.registered = append(f.registered, in)
	return &domain.AuthResult{Token: "tok", User: &domain.User{Name: in.Name, Email: in.Email}}, nil
}

func (f *fakeUsers) UpdatePreferences(_ context.Context, prefs domain.Preferences) (*domain.User, error) {
	f.preferences = append(f.preferences, prefs)
	return &domain.User{Preferences: prefs.Tags}, nil
}
