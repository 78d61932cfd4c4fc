package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njprem/DestiMatch_Web/internal/gateway"
	"github.com/njprem/DestiMatch_Web/internal/service"
	"github.com/njprem/DestiMatch_Web/internal/util"
)

// respond writes body with the notices collected during the request.
func respond(c echo.Context, status int, body util.Envelope, notices *service.NoticeList) error {
	if notices != nil {
		body = body.With("notices", notices.Items())
	}
	return c.JSON(status, body)
}

// respondError maps service and gateway failures to HTTP statuses. Upstream
// client errors keep their status and message; anything the API could not
// answer becomes a bad gateway.
func respondError(c echo.Context, err error, notices *service.NoticeList) error {
	status, message := http.StatusInternalServerError, gateway.GenericMessage

	var gwErr *gateway.Error
	switch {
	case errors.Is(err, service.ErrAuthRequired):
		status, message = http.StatusUnauthorized, "authentication required"
	case errors.Is(err, service.ErrDestinationNotFound):
		status, message = http.StatusNotFound, "destination not found"
	case errors.Is(err, service.ErrReviewValidation),
		errors.Is(err, service.ErrPreferencesValidation),
		errors.Is(err, service.ErrRegistrationValidation),
		errors.Is(err, service.ErrCredentialsRequired):
		status, message = http.StatusBadRequest, err.Error()
	case errors.As(err, &gwErr):
		message = gwErr.Message
		if message == "" {
			message = gateway.GenericMessage
		}
		switch {
		case gwErr.Kind == gateway.KindHTTPStatus && gwErr.Status >= 400 && gwErr.Status < 500:
			status = gwErr.Status
		default:
			status = http.StatusBadGateway
		}
		if gwErr.Kind == gateway.KindNetwork {
			message = gateway.GenericMessage
		}
	default:
		c.Logger().Errorf("unhandled error: %v", err)
	}
	return respond(c, status, util.Error(message), notices)
}
