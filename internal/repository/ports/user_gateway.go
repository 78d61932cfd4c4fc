package ports

import (
	"context"

	"github.com/njprem/DestiMatch_Web/internal/domain"
)

type UserGateway interface {
	Login(ctx context.Context, email, password string) (*domain.AuthResult, error)
	Register(ctx context.Context, input domain.Registration) (*domain.AuthResult, error)
	UpdatePreferences(ctx context.Context, prefs domain.Preferences) (*domain.User, error)
}
