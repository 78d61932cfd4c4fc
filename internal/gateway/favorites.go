package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/njprem/DestiMatch_Web/internal/domain"
	"github.com/njprem/DestiMatch_Web/internal/repository/ports"
)

func (c *Client) ListFavorites(ctx context.Context) ([]domain.Destination, error) {
	var out []domain.Destination
	err := c.do(ctx, call{op: "list favorites", method: http.MethodGet, path: "/favorites", authorized: true}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddFavorite(ctx context.Context, destinationID string) error {
	return c.do(ctx, call{
		op:         "add favorite",
		method:     http.MethodPost,
		path:       "/favorites",
		query:      url.Values{"destination_id": {destinationID}},
		authorized: true,
	}, nil)
}

func (c *Client) RemoveFavorite(ctx context.Context, destinationID string) error {
	return c.do(ctx, call{
		op:         "remove favorite",
		method:     http.MethodDelete,
		path:       "/favorites",
		query:      url.Values{"destination_id": {destinationID}},
		authorized: true,
	}, nil)
}

func (c *Client) MostLikedContinents(ctx context.Context) ([]string, error) {
	var out []string
	err := c.do(ctx, call{op: "most liked continents", method: http.MethodGet, path: "/favorites/most-liked-continents"}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

var _ ports.FavoriteGateway = (*Client)(nil)
