package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/njprem/DestiMatch_Web/internal/domain"
	"github.com/njprem/DestiMatch_Web/internal/repository/ports"
)

func (c *Client) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	var out []domain.Destination
	err := c.do(ctx, call{op: "list destinations", method: http.MethodGet, path: "/destinations"}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetDestination(ctx context.Context, id string) (*domain.Destination, error) {
	var out domain.Destination
	err := c.do(ctx, call{op: "get destination", method: http.MethodGet, path: "/destinations/" + url.PathEscape(id)}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SearchDestinations(ctx context.Context, params domain.SearchParams) ([]domain.Destination, error) {
	query := url.Values{}
	if q := strings.TrimSpace(params.Query); q != "" {
		query.Set("q", q)
	}
	if raw := strings.TrimSpace(params.Continent); raw != "" {
		if continent, ok := domain.ParseContinent(raw); ok {
			query.Set("continent", string(continent))
		} else {
			query.Set("continent", raw)
		}
	}
	if tag := strings.TrimSpace(params.Tag); tag != "" {
		query.Set("tag", tag)
	}
	if style := strings.TrimSpace(params.Style); style != "" {
		query.Set("style", style)
	}
	if budget := strings.TrimSpace(params.Budget); budget != "" {
		query.Set("budget", budget)
	}

	var out []domain.Destination
	err := c.do(ctx, call{op: "search destinations", method: http.MethodGet, path: "/destinations/search", query: query}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MatchDestinations returns the server-ranked matches for the session user,
// best match first.
func (c *Client) MatchDestinations(ctx context.Context) ([]domain.DestinationMatch, error) {
	var out []domain.DestinationMatch
	err := c.do(ctx, call{
		op:         "match destinations",
		method:     http.MethodPost,
		path:       "/destinations/match",
		body:       struct{}{},
		authorized: true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListTags(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.do(ctx, call{op: "list tags", method: http.MethodGet, path: "/tags"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

var _ ports.DestinationGateway = (*Client)(nil)
