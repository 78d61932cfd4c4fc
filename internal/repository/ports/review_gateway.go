package ports

import (
	"context"

	"github.com/njprem/DestiMatch_Web/internal/domain"
)

type ReviewGateway interface {
	ListReviews(ctx context.Context, destinationID string) ([]domain.Review, error)
	AddReview(ctx context.Context, destinationID string, rating float64, content string) error
}
