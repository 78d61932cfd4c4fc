package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njprem/DestiMatch_Web/internal/service"
	"github.com/njprem/DestiMatch_Web/internal/util"
)

type HomeHandler struct {
	recommendations *service.RecommendationService
	favorites       *service.FavoriteService
}

func RegisterHome(g *echo.Group, recommendations *service.RecommendationService, favorites *service.FavoriteService) {
	h := &HomeHandler{recommendations: recommendations, favorites: favorites}
	g.GET("/home", h.home)
}

func (h *HomeHandler) home(c echo.Context) error {
	ctx := c.Request().Context()
	rec, err := h.recommendations.Home(ctx, CurrentSession(c))
	if err != nil {
		return respondError(c, err, nil)
	}
	if rec.Top != nil {
		favorited, err := h.favorites.Status(ctx, CurrentSession(c), VisitorID(c), rec.Top.ID)
		if err != nil {
			c.Logger().Warnf("favorite status %s: %v", rec.Top.ID, err)
		}
		rec.TopFavorited = favorited
	}
	return c.JSON(http.StatusOK, util.Data("home", rec))
}
