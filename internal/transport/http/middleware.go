package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/njprem/DestiMatch_Web/internal/gateway"
	"github.com/njprem/DestiMatch_Web/internal/repository"
	"github.com/njprem/DestiMatch_Web/internal/repository/ports"
	"github.com/njprem/DestiMatch_Web/internal/service"
	"github.com/njprem/DestiMatch_Web/internal/util"
)

const (
	VisitorCookieName = "destimatch_visitor"
	visitorCookieTTL  = 365 * 24 * time.Hour

	contextVisitorKey = "visitor.id"
	contextStorageKey = "visitor.storage"
	contextSessionKey = "visitor.session"
)

type VisitorConfig struct {
	Signer *util.VisitorSigner
	Store  ports.KeyValueStore
	Secure bool
}

// Visitor identifies the caller through a signed cookie, issuing one when it
// is missing or invalid, and binds the visitor's client storage and session
// to the request. The session is attached to the request context so gateway
// calls read the bearer token at call time.
func Visitor(cfg VisitorConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var visitorID string
			if cookie, err := c.Cookie(VisitorCookieName); err == nil {
				visitorID, _ = cfg.Signer.Verify(cookie.Value)
			}
			if visitorID == "" {
				id, value := cfg.Signer.Issue()
				visitorID = id
				c.SetCookie(&http.Cookie{
					Name:     VisitorCookieName,
					Value:    value,
					Path:     "/",
					Expires:  time.Now().Add(visitorCookieTTL),
					HttpOnly: true,
					Secure:   cfg.Secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			storage := repository.Scope(cfg.Store, visitorID)
			session := service.NewSessionStore(storage)
			c.Set(contextVisitorKey, visitorID)
			c.Set(contextStorageKey, storage)
			c.Set(contextSessionKey, session)

			req := c.Request()
			c.SetRequest(req.WithContext(gateway.WithSession(req.Context(), session)))
			return next(c)
		}
	}
}

// RequireSession rejects visitors without a stored token.
func RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := CurrentSession(c).Token(c.Request().Context()); !ok {
			return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
		}
		return next(c)
	}
}

func VisitorID(c echo.Context) string {
	id, _ := c.Get(contextVisitorKey).(string)
	return id
}

func ClientStorage(c echo.Context) ports.ClientStorage {
	storage, _ := c.Get(contextStorageKey).(ports.ClientStorage)
	return storage
}

func CurrentSession(c echo.Context) *service.SessionStore {
	session, _ := c.Get(contextSessionKey).(*service.SessionStore)
	return session
}
