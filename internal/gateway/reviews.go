package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/njprem/DestiMatch_Web/internal/domain"
	"github.com/njprem/DestiMatch_Web/internal/repository/ports"
)

func (c *Client) ListReviews(ctx context.Context, destinationID string) ([]domain.Review, error) {
	var out []domain.Review
	err := c.do(ctx, call{
		op:         "list reviews",
		method:     http.MethodGet,
		path:       "/destinations/" + url.PathEscape(destinationID) + "/reviews",
		authorized: true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddReview(ctx context.Context, destinationID string, rating float64, content string) error {
	return c.do(ctx, call{
		op:     "add review",
		method: http.MethodPost,
		path:   "/destinations/" + url.PathEscape(destinationID) + "/reviews",
		body: struct {
			Rating  float64 `json:"rating"`
			Content string  `json:"content"`
		}{Rating: rating, Content: content},
		authorized: true,
	}, nil)
}

var _ ports.ReviewGateway = (*Client)(nil)
