package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njprem/DestiMatch_Web/internal/service"
	"github.com/njprem/DestiMatch_Web/internal/util"
)

type ProfileHandler struct {
	profiles *service.ProfileService
	auth     *service.AuthService
}

func RegisterProfile(g *echo.Group, profiles *service.ProfileService, auth *service.AuthService) {
	h := &ProfileHandler{profiles: profiles, auth: auth}
	g.GET("/profile", h.overview)
	g.PUT("/profile/preferences", h.updatePreferences, RequireSession)
}

func (h *ProfileHandler) overview(c echo.Context) error {
	overview, err := h.profiles.Overview(c.Request().Context(), ClientStorage(c))
	if err != nil {
		return respondError(c, err, nil)
	}
	return c.JSON(http.StatusOK, util.Data("profile", overview))
}

func (h *ProfileHandler) updatePreferences(c echo.Context) error {
	var req PreferencesRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	notices := &service.NoticeList{}
	user, err := h.auth.UpdatePreferences(c.Request().Context(), service.PreferencesInput{
		TravelStyle:        req.TravelStyle,
		BudgetLevel:        req.BudgetLevel,
		FavoriteContinents: req.FavoriteContinents,
		Tags:               req.Tags,
	})
	if err != nil {
		notices.Error(service.MsgPreferencesFailed)
		return respondError(c, err, notices)
	}
	notices.Success(service.MsgPreferencesSaved)
	return respond(c, http.StatusOK, util.Data("user", user), notices)
}
