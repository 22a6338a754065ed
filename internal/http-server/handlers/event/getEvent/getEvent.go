package getEvent

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

type EventResponse struct {
	response.Response
	Event view.EventView `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventGetter
type EventGetter interface {
	Event(ctx context.Context, id int64) (models.Event, error)
}

func New(log *slog.Logger, getter EventGetter, views view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEvent.New"

		log := log.With(slog.String("op", op))

		eventID, err := urlparam.ID(r, "id")
		if err != nil {
			log.Error("invalid event id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id "+err.Error()))
			return
		}

		log = log.With(slog.Int64("event_id", eventID))

		event, err := getter.Event(r.Context(), eventID)
		if err != nil {
			log.Error("failed to get event", sl.Err(err))
			apierr.Render(w, r, err, "failed to get event")
			return
		}

		log.Info("event retrieved")

		render.JSON(w, r, EventResponse{
			Response: response.OK(),
			Event:    views.Detail(event),
		})
	}
}
