package myBookings

import (
	"context"
	"log/slog"
	"net/http"

	"eventPortal/internal/http-server/handlers/apierr"
	"eventPortal/internal/http-server/view"
	"eventPortal/internal/lib/api/response"
	"eventPortal/internal/lib/logger/sl"
	"eventPortal/internal/models"

	"github.com/go-chi/render"
)

type BookingsResponse struct {
	response.Response
	Bookings []view.BookingView `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingsLister
type BookingsLister interface {
	MyBookings(ctx context.Context) ([]models.EnrichedBooking, error)
}

func New(log *slog.Logger, lister BookingsLister, views view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.myBookings.New"

		log := log.With(slog.String("op", op))

		bookings, err := lister.MyBookings(r.Context())
		if err != nil {
			log.Error("failed to get bookings", sl.Err(err))
			apierr.Render(w, r, err, "failed to get bookings")
			return
		}

		log.Info("bookings retrieved", slog.Int("count", len(bookings)))

		render.JSON(w, r, BookingsResponse{
			Response: response.OK(),
			Bookings: views.EnrichedList(bookings),
		})
	}
}
