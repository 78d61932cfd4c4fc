package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/njprem/DestiMatch_Web/internal/service"
	"github.com/njprem/DestiMatch_Web/internal/util"
)

type ReviewHandler struct {
	reviews *service.ReviewService
}

func RegisterReviews(g *echo.Group, reviews *service.ReviewService) {
	h := &ReviewHandler{reviews: reviews}
	g.GET("/destinations/:id/reviews", h.list)
	g.POST("/destinations/:id/reviews", h.submit)
}

func (h *ReviewHandler) list(c echo.Context) error {
	items := h.reviews.List(c.Request().Context(), strings.TrimSpace(c.Param("id")))
	return c.JSON(http.StatusOK, util.Data("reviews", items))
}

func (h *ReviewHandler) submit(c echo.Context) error {
	var req ReviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	notices := &service.NoticeList{}
	err := h.reviews.Submit(c.Request().Context(), CurrentSession(c), strings.TrimSpace(c.Param("id")), req.Rating, req.Content)
	if err != nil {
		return respondError(c, err, notices)
	}
	notices.Success(service.MsgReviewSent)
	return respond(c, http.StatusCreated, util.Data("ok", true), notices)
}
