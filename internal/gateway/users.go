package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/njprem/DestiMatch_Web/internal/domain"
	"github.com/njprem/DestiMatch_Web/internal/repository/ports"
)

// Login authenticates against the API and stores the returned token and user
// in the context session.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	var out domain.AuthResult
	err := c.do(ctx, call{
		op:     "login",
		method: http.MethodPost,
		path:   "/users/auth/login",
		body: struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}{Email: email, Password: password},
	}, &out)
	if err != nil {
		return nil, err
	}
	if err := persistAuth(ctx, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, input domain.Registration) (*domain.AuthResult, error) {
	var out domain.AuthResult
	err := c.do(ctx, call{
		op:     "register",
		method: http.MethodPost,
		path:   "/users/register",
		body: struct {
			Name     string                      `json:"name"`
			Email    string                      `json:"email"`
			Password string                      `json:"password"`
			Location domain.RegistrationLocation `json:"location"`
		}{Name: input.Name, Email: input.Email, Password: input.Password, Location: input.Location},
	}, &out)
	if err != nil {
		return nil, err
	}
	if err := persistAuth(ctx, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePreferences sends the matching profile and replaces the stored user
// with the server's copy.
func (c *Client) UpdatePreferences(ctx context.Context, prefs domain.Preferences) (*domain.User, error) {
	if prefs.Tags == nil {
		prefs.Tags = []string{}
	}
	if prefs.FavoriteContinents == nil {
		prefs.FavoriteContinents = []string{}
	}
	var out domain.User
	err := c.do(ctx, call{
		op:         "update preferences",
		method:     http.MethodPut,
		path:       "/users/preferences",
		body:       prefs,
		authorized: true,
	}, &out)
	if err != nil {
		return nil, err
	}
	if session, ok := sessionFrom(ctx); ok {
		if err := session.SaveUser(ctx, &out); err != nil {
			return nil, fmt.Errorf("gateway update preferences: store user: %w", err)
		}
	}
	return &out, nil
}

func persistAuth(ctx context.Context, result *domain.AuthResult) error {
	session, ok := sessionFrom(ctx)
	if !ok {
		return nil
	}
	if err := session.Save(ctx, result.User, result.Token); err != nil {
		return fmt.Errorf("gateway: store session: %w", err)
	}
	return nil
}

var _ ports.UserGateway = (*Client)(nil)
