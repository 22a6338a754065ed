package bookingTickets

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

type TicketsResponse struct {
	response.Response
	Tickets []view.TicketView `json:"tickets"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketsGetter
type TicketsGetter interface {
	Tickets(ctx context.Context, bookingID int64) ([]models.Ticket, error)
}

// New lists the tickets of a booking. base prefixes the code image links.
func New(log *slog.Logger, getter TicketsGetter, views view.Renderer, base string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.bookingTickets.New"

		log := log.With(slog.String("op", op))

		bookingID, err := urlparam.ID(r, "id")
		if err != nil {
			log.Error("invalid booking id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking id "+err.Error()))
			return
		}

		tickets, err := getter.Tickets(r.Context(), bookingID)
		if err != nil {
			log.Error("failed to get tickets", slog.Int64("booking_id", bookingID), sl.Err(err))
			apierr.Render(w, r, err, "failed to get tickets")
			return
		}

		render.JSON(w, r, TicketsResponse{
			Response: response.OK(),
			Tickets:  views.Tickets(base, tickets),
		})
	}
}
