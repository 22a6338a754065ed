package manageEvents

import (
	"context"
	"log/slog"
	"net/http"

	"eventPortal/internal/http-server/handlers/apierr"
	"eventPortal/internal/http-server/view"
	"eventPortal/internal/lib/api/response"
	"eventPortal/internal/lib/logger/sl"
	"eventPortal/internal/models"
	"eventPortal/internal/portal"

	"github.com/go-chi/render"
)

type EventsResponse struct {
	response.Response
	Filter portal.Filter    `json:"filter"`
	Events []view.EventView `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventManager
type EventManager interface {
	ManageEvents(ctx context.Context, filter portal.Filter) ([]models.Event, error)
}

func New(log *slog.Logger, manager EventManager, views view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.manageEvents.New"

		log := log.With(slog.String("op", op))

		raw := r.URL.Query().Get("filter")
		filter, ok := portal.ParseFilter(raw)
		if !ok {
			log.Error("invalid filter", slog.String("filter", raw))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("filter must be one of [ALL PUBLISHED DRAFT]"))
			return
		}

		events, err := manager.ManageEvents(r.Context(), filter)
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			apierr.Render(w, r, err, "failed to get events")
			return
		}

		log.Info("events retrieved", slog.String("filter", string(filter)), slog.Int("count", len(events)))

		render.JSON(w, r, EventsResponse{
			Response: response.OK(),
			Filter:   filter,
			Events:   views.Cards(events),
		})
	}
}
