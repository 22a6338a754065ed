package reserveSeats

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"eventPortal/internal/http-server/handlers/apierr"
	"eventPortal/internal/lib/api/response"
	"eventPortal/internal/lib/api/urlparam"
	"eventPortal/internal/lib/logger/sl"

	"github.com/go-chi/render"
)

type ReserveResponse struct {
	response.Response
	Reserved bool `json:"reserved"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SeatReserver
type SeatReserver interface {
	ReserveSeats(ctx context.Context, id int64, seats int) (bool, error)
}

func New(log *slog.Logger, reserver SeatReserver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.reserveSeats.New"

		log := log.With(slog.String("op", op))

		eventID, err := urlparam.ID(r, "id")
		if err != nil {
			log.Error("invalid event id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id "+err.Error()))
			return
		}

		seats, err := strconv.Atoi(r.URL.Query().Get("seats"))
		if err != nil {
			log.Error("invalid seats", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("seats must be a number"))
			return
		}

		log = log.With(slog.Int64("event_id", eventID), slog.Int("seats", seats))

		reserved, err := reserver.ReserveSeats(r.Context(), eventID, seats)
		if err != nil {
			log.Error("failed to reserve seats", sl.Err(err))
			apierr.Render(w, r, err, "failed to reserve seats")
			return
		}

		log.Info("seat reservation answered", slog.Bool("reserved", reserved))

		render.JSON(w, r, ReserveResponse{
			Response: response.OK(),
			Reserved: reserved,
		})
	}
}
