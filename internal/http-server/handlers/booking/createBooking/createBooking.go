package createBooking

import (
	"context"
	"log/slog"
	"net/http"

	"eventPortal/internal/http-server/handlers/apierr"
	"eventPortal/internal/http-server/view"
	"eventPortal/internal/lib/api/response"
	"eventPortal/internal/lib/api/urlparam"
	"eventPortal/internal/lib/logger/sl"
	"eventPortal/internal/models"
	"eventPortal/internal/portal"

	"github.com/go-chi/render"
)

type BookingResponse struct {
	response.Response
	Booking view.BookingView `json:"booking"`
	Event   *view.EventView  `json:"event,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventGetter
type EventGetter interface {
	Event(ctx context.Context, id int64) (models.Event, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	Book(ctx context.Context, event models.Event, form portal.BookingForm) (portal.BookingResult, error)
}

// New books against the event as currently published, so a request for
// more seats than are left never reaches the booking service.
func New(log *slog.Logger, events EventGetter, booking BookingCreator, views view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log := log.With(slog.String("op", op))

		eventID, err := urlparam.ID(r, "id")
		if err != nil {
			log.Error("invalid event id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id "+err.Error()))
			return
		}

		log = log.With(slog.Int64("event_id", eventID))

		var req portal.BookingForm
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		event, err := events.Event(r.Context(), eventID)
		if err != nil {
			log.Error("failed to get event", sl.Err(err))
			apierr.Render(w, r, err, "failed to get event")
			return
		}

		res, err := booking.Book(r.Context(), event, req)
		if err != nil {
			log.Error("failed to book event", sl.Err(err))
			apierr.Render(w, r, err, "failed to book event")
			return
		}

		log.Info("event booked successfully", slog.Int64("booking_id", res.Booking.ID))

		resp := BookingResponse{
			Response: response.OK(),
			Booking:  views.Booking(res.Booking),
		}
		if res.Event != nil {
			ev := views.Detail(*res.Event)
			resp.Event = &ev
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, resp)
	}
}
