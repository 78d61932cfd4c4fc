package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/njprem/DestiMatch_Web/internal/service"
	"github.com/njprem/DestiMatch_Web/internal/util"
)

type FavoriteHandler struct {
	favorites *service.FavoriteService
}

func RegisterFavorites(g *echo.Group, favorites *service.FavoriteService) {
	h := &FavoriteHandler{favorites: favorites}

	g.POST("/destinations/:id/favorite", h.toggle)
	g.GET("/favorites", h.list, RequireSession)
	g.GET("/favorites/most-liked-continents", h.mostLikedContinents)
}

var toggleStatus = map[service.ToggleResult]int{
	service.ToggleCommitted:    http.StatusOK,
	service.ToggleSkipped:      http.StatusConflict,
	service.ToggleAuthRequired: http.StatusUnauthorized,
	service.ToggleReverted:     http.StatusBadGateway,
	service.ToggleUnavailable:  http.StatusBadGateway,
}

func (h *FavoriteHandler) toggle(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, util.Error("destination id is required"))
	}
	notices := &service.NoticeList{}
	outcome := h.favorites.Toggle(c.Request().Context(), CurrentSession(c), notices, VisitorID(c), id)

	status, ok := toggleStatus[outcome.Result]
	if !ok {
		status = http.StatusInternalServerError
	}
	return respond(c, status, util.Envelope{
		"result":    outcome.Result,
		"favorited": outcome.Favorited,
	}, notices)
}

func (h *FavoriteHandler) list(c echo.Context) error {
	items, err := h.favorites.List(c.Request().Context())
	if err != nil {
		return respondError(c, err, nil)
	}
	return c.JSON(http.StatusOK, util.Data("favorites", items))
}

func (h *FavoriteHandler) mostLikedContinents(c echo.Context) error {
	items := h.favorites.MostLikedContinents(c.Request().Context())
	return c.JSON(http.StatusOK, util.Data("continents", items))
}
