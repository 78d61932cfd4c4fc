package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njprem/DestiMatch_Web/internal/service"
	"github.com/njprem/DestiMatch_Web/internal/util"
)

type AuthHandler struct {
	auth *service.AuthService
}

func RegisterAuth(g *echo.Group, auth *service.AuthService) {
	h := &AuthHandler{auth: auth}
	g.POST("/auth/login", h.login)
	g.POST("/auth/register", h.register)
	g.POST("/auth/logout", h.logout)
}

// login stores the token in the visitor's client storage. The token itself
// is not returned to the browser.
func (h *AuthHandler) login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	result, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err, nil)
	}
	return c.JSON(http.StatusOK, util.Data("user", result.User))
}

func (h *AuthHandler) register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	result, err := h.auth.Register(c.Request().Context(), service.RegisterInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		City:        req.City,
		Country:     req.Country,
		CountryCode: req.CountryCode,
		Continent:   req.Continent,
	})
	if err != nil {
		return respondError(c, err, nil)
	}
	return c.JSON(http.StatusCreated, util.Data("user", result.User))
}

func (h *AuthHandler) logout(c echo.Context) error {
	if err := h.auth.Logout(c.Request().Context(), ClientStorage(c)); err != nil {
		return respondError(c, err, nil)
	}
	notices := &service.NoticeList{}
	notices.Notify(service.Notice{Level: service.NoticeInfo, Message: service.MsgLoggedOut})
	return respond(c, http.StatusOK, util.Data("ok", true), notices)
}
