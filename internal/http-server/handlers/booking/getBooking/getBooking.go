package getBooking

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

	"github.com/go-chi/render"
)

type BookingResponse struct {
	response.Response
	Booking view.BookingView `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingGetter
type BookingGetter interface {
	Booking(ctx context.Context, id int64) (models.Booking, error)
}

func New(log *slog.Logger, getter BookingGetter, views view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getBooking.New"

		log := log.With(slog.String("op", op))

		bookingID, err := urlparam.ID(r, "id")
		if err != nil {
			log.Error("invalid booking id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking id "+err.Error()))
			return
		}

		booking, err := getter.Booking(r.Context(), bookingID)
		if err != nil {
			log.Error("failed to get booking", slog.Int64("booking_id", bookingID), sl.Err(err))
			apierr.Render(w, r, err, "failed to get booking")
			return
		}

		render.JSON(w, r, BookingResponse{
			Response: response.OK(),
			Booking:  views.Booking(booking),
		})
	}
}
