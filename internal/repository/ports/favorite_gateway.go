package ports

import (
	"context"

	"github.com/njprem/DestiMatch_Web/internal/domain"
)

type FavoriteGateway interface {
	ListFavorites(ctx context.Context) ([]domain.Destination, error)
	AddFavorite(ctx context.Context, destinationID string) error
	RemoveFavorite(ctx context.Context, destinationID string) error
	MostLikedContinents(ctx context.Context) ([]string, error)
}
