package http

import (
	"github.com/labstack/echo/v4"

	"github.com/njprem/DestiMatch_Web/internal/repository/ports"
	"github.com/njprem/DestiMatch_Web/internal/service"
	"github.com/njprem/DestiMatch_Web/internal/util"
)

type ServerConfig struct {
	Router          RouterConfig
	Visitors        *util.VisitorSigner
	Storage         ports.KeyValueStore
	SecureCookies   bool
	SwaggerSpecPath string
}

type Services struct {
	Auth            *service.AuthService
	Destinations    *service.DestinationService
	Search          *service.SearchService
	Favorites       *service.FavoriteService
	Reviews         *service.ReviewService
	Recommendations *service.RecommendationService
	Profiles        *service.ProfileService
}

// NewServer assembles the router and mounts every API route under /api/v1.
func NewServer(cfg ServerConfig, svc Services) *echo.Echo {
	e := NewRouter(cfg.Router)

	api := e.Group("/api/v1", Visitor(VisitorConfig{
		Signer: cfg.Visitors,
		Store:  cfg.Storage,
		Secure: cfg.SecureCookies,
	}))
	RegisterHome(api, svc.Recommendations, svc.Favorites)
	RegisterDestinations(api, svc.Destinations, svc.Search, svc.Favorites)
	RegisterFavorites(api, svc.Favorites)
	RegisterReviews(api, svc.Reviews)
	RegisterAuth(api, svc.Auth)
	RegisterProfile(api, svc.Profiles, svc.Auth)

	if cfg.SwaggerSpecPath != "" {
		RegisterSwagger(e, cfg.SwaggerSpecPath)
	}
	return e
}
