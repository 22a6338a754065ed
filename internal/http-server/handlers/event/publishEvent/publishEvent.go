package publishEvent

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

type EventsResponse struct {
	response.Response
	Events []view.EventView `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventPublisher
type EventPublisher interface {
	Publish(ctx context.Context, id int64, filter portal.Filter) ([]models.Event, error)
}

// New publishes the event and answers with the management list under the
// filter the page was showing.
func New(log *slog.Logger, publisher EventPublisher, views view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.publishEvent.New"

		log := log.With(slog.String("op", op))

		eventID, err := urlparam.ID(r, "id")
		if err != nil {
			log.Error("invalid event id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id "+err.Error()))
			return
		}

		filter, ok := portal.ParseFilter(r.URL.Query().Get("filter"))
		if !ok {
			log.Error("invalid filter", slog.String("filter", r.URL.Query().Get("filter")))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("filter must be one of [ALL PUBLISHED DRAFT]"))
			return
		}

		log = log.With(slog.Int64("event_id", eventID))

		events, err := publisher.Publish(r.Context(), eventID, filter)
		if err != nil {
			log.Error("failed to publish event", sl.Err(err))
			apierr.Render(w, r, err, "failed to publish event")
			return
		}

		log.Info("event published", slog.Int("count", len(events)))

		render.JSON(w, r, EventsResponse{
			Response: response.OK(),
			Events:   views.Cards(events),
		})
	}
}
