package service

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/njprem/DestiMatch_Web/internal/domain"
	"github.com/njprem/DestiMatch_Web/internal/repository/ports"
)

type ScoredDestination struct {
	domain.Destination
	MatchScore int `json:"match_score"`
}

type Recommendations struct {
	User         *domain.User         `json:"user,omitempty"`
	HasCriteria  bool                 `json:"has_criteria"`
	Top          *ScoredDestination   `json:"top,omitempty"`
	TopFavorited bool                 `json:"top_favorited"`
	Others       []ScoredDestination  `json:"others"`
	Inspiration  []ScoredDestination  `json:"inspiration"`
	Popular      []domain.Destination `json:"popular"`
}

type RecommendationService struct {
	destinations ports.DestinationGateway
}

func NewRecommendationService(destinations ports.DestinationGateway) *RecommendationService {
	return &RecommendationService{destinations: destinations}
}

// Home builds the personalised home view. Remote failures are logged and
// leave the affected sections empty.
func (s *RecommendationService) Home(ctx context.Context, session *SessionStore) (*Recommendations, error) {
	if _, ok := session.Token(ctx); !ok {
		return nil, ErrAuthRequired
	}
	user := session.User(ctx)

	var (
		matches []domain.DestinationMatch
		catalog []domain.Destination
	)
	var g errgroup.Group
	g.Go(func() error {
		items, err := s.destinations.MatchDestinations(ctx)
		if err != nil {
			log.Printf("recommendations: match: %v", err)
			return nil
		}
		matches = items
		return nil
	})
	g.Go(func() error {
		items, err := s.destinations.ListDestinations(ctx)
		if err != nil {
			log.Printf("recommendations: catalog: %v", err)
			return nil
		}
		catalog = items
		return nil
	})
	_ = g.Wait()

	scored := make([]ScoredDestination, 0, len(matches))
	for _, m := range matches {
		scored = append(scored, ScoredDestination{Destination: m.Destination, MatchScore: m.RoundedScore()})
	}

	rec := &Recommendations{
		User:        user,
		HasCriteria: user.HasMatchingCriteria(),
		Others:      window(scored, 1, 5),
		Inspiration: window(scored, 5, 9),
		Popular:     window(catalog, 1, 5),
	}
	if len(scored) > 0 {
		top := scored[0]
		rec.Top = &top
	}
	return rec, nil
}

// window returns items[from:to] clipped to the slice bounds, never nil.
func window[T any](items []T, from, to int) []T {
	if to > len(items) {
		to = len(items)
	}
	if from >= to {
		return []T{}
	}
	out := make([]T, to-from)
	copy(out, items[from:to])
	return out
}
