package myTickets

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

type TicketsResponse struct {
	response.Response
	Tickets []view.TicketView `json:"tickets"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketsLister
type TicketsLister interface {
	MyTickets(ctx context.Context) ([]models.Ticket, error)
}

func New(log *slog.Logger, lister TicketsLister, views view.Renderer, base string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.myTickets.New"

		log := log.With(slog.String("op", op))

		tickets, err := lister.MyTickets(r.Context())
		if err != nil {
			log.Error("failed to get tickets", sl.Err(err))
			apierr.Render(w, r, err, "failed to get tickets")
			return
		}

		log.Info("tickets retrieved", slog.Int("count", len(tickets)))

		render.JSON(w, r, TicketsResponse{
			Response: response.OK(),
			Tickets:  views.Tickets(base, tickets),
		})
	}
}
