package ports

import (
	"context"

	"github.com/njprem/DestiMatch_Web/internal/domain"
)

// SessionSource is read by the API gateway on every authorized call and
// written after login, registration and preference updates.
type SessionSource interface {
	Token(ctx context.Context) (string, bool)
	Save(ctx context.Context, user *domain.User, token string) error
	SaveUser(ctx context.Context, user *domain.User) error
}
