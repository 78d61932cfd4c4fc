package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/njprem/DestiMatch_Web/internal/domain"
	"github.com/njprem/DestiMatch_Web/internal/repository/ports"
)

type ReviewService struct {
	reviews ports.ReviewGateway
}

func NewReviewService(reviews ports.ReviewGateway) *ReviewService {
	return &ReviewService{reviews: reviews}
}

// List never fails; an unavailable review feed reads as empty.
func (s *ReviewService) List(ctx context.Context, destinationID string) []domain.Review {
	items, err := s.reviews.ListReviews(ctx, destinationID)
	if err != nil {
		log.Printf("reviews: list %s: %v", destinationID, err)
		return []domain.Review{}
	}
	if items == nil {
		return []domain.Review{}
	}
	return items
}

func (s *ReviewService) Submit(ctx context.Context, session TokenSource, destinationID string, rating float64, content string) error {
	if _, ok := session.Token(ctx); !ok {
		return ErrAuthRequired
	}
	content = strings.TrimSpace(content)
	switch {
	case strings.TrimSpace(destinationID) == "":
		return fmt.Errorf("%w: destination required", ErrReviewValidation)
	case math.IsNaN(rating) || rating < domain.MinReviewRating || rating > domain.MaxReviewRating:
		return fmt.Errorf("%w: rating must be between %d and %d", ErrReviewValidation, domain.MinReviewRating, domain.MaxReviewRating)
	case content == "":
		return fmt.Errorf("%w: content required", ErrReviewValidation)
	}
	return s.reviews.AddReview(ctx, destinationID, rating, content)
}
