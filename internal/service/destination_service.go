package service

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/njprem/DestiMatch_Web/internal/domain"
	"github.com/njprem/DestiMatch_Web/internal/repository/ports"
)

type DestinationDetail struct {
	Destination *domain.Destination `json:"destination"`
	Reviews     []domain.Review     `json:"reviews"`
	BestMonths  []string            `json:"best_months"`
}

type DestinationService struct {
	destinations ports.DestinationGateway
	reviews      ports.ReviewGateway
	history      *HistoryService
}

func NewDestinationService(destinations ports.DestinationGateway, reviews ports.ReviewGateway, history *HistoryService) *DestinationService {
	return &DestinationService{
		destinations: destinations,
		reviews:      reviews,
		history:      history,
	}
}

func (s *DestinationService) List(ctx context.Context) ([]domain.Destination, error) {
	items, err := s.destinations.ListDestinations(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Destination{}
	}
	return items, nil
}

func (s *DestinationService) Tags(ctx context.Context) ([]string, error) {
	tags, err := s.destinations.ListTags(ctx)
	if err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}

// Detail loads a destination and its reviews together. A failed review
// fetch yields no reviews; a failed destination fetch is reported as not
// found. Successful views are added to the visitor's history.
func (s *DestinationService) Detail(ctx context.Context, storage ports.ClientStorage, id string) (*DestinationDetail, error) {
	var (
		dest    *domain.Destination
		destErr error
		reviews []domain.Review
	)
	var g errgroup.Group
	g.Go(func() error {
		dest, destErr = s.destinations.GetDestination(ctx, id)
		return nil
	})
	g.Go(func() error {
		items, err := s.reviews.ListReviews(ctx, id)
		if err != nil {
			log.Printf("destinations: reviews %s: %v", id, err)
			return nil
		}
		reviews = items
		return nil
	})
	_ = g.Wait()

	if destErr != nil || dest == nil {
		if destErr != nil {
			log.Printf("destinations: get %s: %v", id, destErr)
		}
		return nil, ErrDestinationNotFound
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	if s.history != nil && storage != nil {
		s.history.Record(ctx, storage, *dest)
	}
	return &DestinationDetail{
		Destination: dest,
		Reviews:     reviews,
		BestMonths:  domain.MonthNames(dest.BestMonths),
	}, nil
}
