// Package apierr turns controller and upstream errors into the JSON
// envelope with a matching status.
package apierr

import (
	"errors"
	"net/http"

	"eventPortal/internal/lib/api/request"
	"eventPortal/internal/lib/api/response"
	"eventPortal/internal/portal"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

var badRequest = []error{
	portal.ErrNotEnoughSeats,
	portal.ErrInvalidSeats,
	portal.ErrInvalidDate,
	portal.ErrRecurrenceRequired,
}

// Status picks the status code and message shown for err. fallback is used
// for errors that carry nothing fit for the client.
func Status(err error, fallback string) (int, response.Response) {
	var validateErr validator.ValidationErrors
	if errors.As(err, &validateErr) {
		return http.StatusBadRequest, response.ValidationError(validateErr)
	}

	for _, target := range badRequest {
		if errors.Is(err, target) {
			return http.StatusBadRequest, response.Error(target.Error())
		}
	}

	switch {
	case errors.Is(err, portal.ErrNotLoggedIn):
		return http.StatusUnauthorized, response.Error(portal.ErrNotLoggedIn.Error())
	case errors.Is(err, portal.ErrLoginRequired):
		return http.StatusUnauthorized, response.Error(portal.ErrLoginRequired.Error())
	case errors.Is(err, portal.ErrForbidden):
		return http.StatusForbidden, response.Error(portal.ErrForbidden.Error())
	case errors.Is(err, portal.ErrNoCode):
		return http.StatusNotFound, response.Error(portal.ErrNoCode.Error())
	case errors.Is(err, request.ErrNetwork):
		return http.StatusServiceUnavailable, response.Error(request.NetworkMessage)
	}

	var httpErr *request.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.StatusCode == http.StatusNotFound {
			return http.StatusNotFound, response.Error(httpErr.Error())
		}
		return http.StatusBadGateway, response.Error(httpErr.Error())
	}

	if errors.Is(err, portal.ErrIncompleteLogin) || errors.Is(err, request.ErrUnexpectedContent) {
		return http.StatusBadGateway, response.Error(fallback)
	}

	return http.StatusInternalServerError, response.Error(fallback)
}

func Render(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status, resp := Status(err, fallback)
	render.Status(r, status)
	render.JSON(w, r, resp)
}
