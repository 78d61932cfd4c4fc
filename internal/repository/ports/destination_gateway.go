package ports

import (
	"context"

	"github.com/njprem/DestiMatch_Web/internal/domain"
)

type DestinationGateway interface {
	ListDestinations(ctx context.Context) ([]domain.Destination, error)
	GetDestination(ctx context.Context, id string) (*domain.Destination, error)
	SearchDestinations(ctx context.Context, params domain.SearchParams) ([]domain.Destination, error)
	MatchDestinations(ctx context.Context) ([]domain.DestinationMatch, error)
	ListTags(ctx context.Context) ([]string, error)
}
