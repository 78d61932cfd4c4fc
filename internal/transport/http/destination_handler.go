package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/njprem/DestiMatch_Web/internal/domain"
	"github.com/njprem/DestiMatch_Web/internal/service"
	"github.com/njprem/DestiMatch_Web/internal/util"
)

type DestinationHandler struct {
	destinations *service.DestinationService
	search       *service.SearchService
	favorites    *service.FavoriteService
}

func RegisterDestinations(g *echo.Group, destinations *service.DestinationService, search *service.SearchService, favorites *service.FavoriteService) {
	h := &DestinationHandler{
		destinations: destinations,
		search:       search,
		favorites:    favorites,
	}
	g.GET("/destinations", h.list)
	g.GET("/destinations/search", h.searchDestinations)
	g.GET("/destinations/:id", h.detail)
	g.GET("/tags", h.tags)
}

func (h *DestinationHandler) list(c echo.Context) error {
	items, err := h.destinations.List(c.Request().Context())
	if err != nil {
		return respondError(c, err, nil)
	}
	return c.JSON(http.StatusOK, util.Data("destinations", items))
}

func (h *DestinationHandler) tags(c echo.Context) error {
	tags, err := h.destinations.Tags(c.Request().Context())
	if err != nil {
		return respondError(c, err, nil)
	}
	return c.JSON(http.StatusOK, util.Data("tags", tags))
}

func (h *DestinationHandler) searchDestinations(c echo.Context) error {
	req, err := parseSearchRequest(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}
	snapshot, err := h.search.Search(c.Request().Context(), VisitorID(c), req)
	if err != nil {
		notices := &service.NoticeList{}
		notices.Error(service.MsgSearchFailed)
		return respondError(c, err, notices)
	}
	return c.JSON(http.StatusOK, util.Data("search", snapshot))
}

func (h *DestinationHandler) detail(c echo.Context) error {
	ctx := c.Request().Context()
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, util.Error("destination id is required"))
	}

	detail, err := h.destinations.Detail(ctx, ClientStorage(c), id)
	if err != nil {
		return respondError(c, err, nil)
	}

	favorited, err := h.favorites.Status(ctx, CurrentSession(c), VisitorID(c), id)
	if err != nil {
		c.Logger().Warnf("favorite status %s: %v", id, err)
	}
	return c.JSON(http.StatusOK, util.Envelope{
		"destination": detail.Destination,
		"reviews":     detail.Reviews,
		"best_months": detail.BestMonths,
		"favorited":   favorited,
	})
}

var errInvalidMinRating = errors.New("min_rating must be a number between 0 and 5")

func parseSearchRequest(c echo.Context) (service.SearchRequest, error) {
	req := service.SearchRequest{
		Params: domain.SearchParams{
			Query:     strings.TrimSpace(c.QueryParam("q")),
			Continent: strings.TrimSpace(c.QueryParam("continent")),
			Tag:       strings.TrimSpace(c.QueryParam("tag")),
			Style:     strings.TrimSpace(c.QueryParam("style")),
			Budget:    strings.TrimSpace(c.QueryParam("budget")),
		},
		Sort: service.ParseSortOption(c.QueryParam("sort")),
	}
	if raw := strings.TrimSpace(c.QueryParam("min_rating")); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < domain.MinReviewRating || v > domain.MaxReviewRating {
			return service.SearchRequest{}, errInvalidMinRating
		}
		req.MinRating = v
	}
	if raw := strings.TrimSpace(c.QueryParam("page")); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return service.SearchRequest{}, errors.New("page must be an integer")
		}
		if page < 1 {
			page = 1
		}
		req.Page = page
	}
	return req, nil
}
