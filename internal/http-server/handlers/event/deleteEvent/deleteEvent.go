package deleteEvent

import (
	"context"
	"log/slog"
	"net/http"

	"eventPortal/internal/http-server/handlers/apierr"
	"eventPortal/internal/lib/api/response"
	"eventPortal/internal/lib/api/urlparam"
	"eventPortal/internal/lib/logger/sl"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventDeleter
type EventDeleter interface {
	DeleteEvent(ctx context.Context, id int64) error
}

func New(log *slog.Logger, deleter EventDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.deleteEvent.New"

		log := log.With(slog.String("op", op))

		eventID, err := urlparam.ID(r, "id")
		if err != nil {
			log.Error("invalid event id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id "+err.Error()))
			return
		}

		log = log.With(slog.Int64("event_id", eventID))

		if err := deleter.DeleteEvent(r.Context(), eventID); err != nil {
			log.Error("failed to delete event", sl.Err(err))
			apierr.Render(w, r, err, "failed to delete event")
			return
		}

		log.Info("event deleted")

		render.JSON(w, r, response.OK())
	}
}
