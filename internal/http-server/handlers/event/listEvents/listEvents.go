package listEvents

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"eventPortal/internal/http-server/handlers/apierr"
	"eventPortal/internal/http-server/view"
	"eventPortal/internal/lib/api/response"
	"eventPortal/internal/lib/logger/sl"
	"eventPortal/internal/models"

	"github.com/go-chi/render"
)

type EventsResponse struct {
	response.Response
	Events []view.EventView `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventLister
type EventLister interface {
	ListEvents(ctx context.Context, publishedOnly bool) ([]models.Event, error)
}

func New(log *slog.Logger, lister EventLister, views view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.listEvents.New"

		log := log.With(slog.String("op", op))

		publishedOnly := false
		if s := r.URL.Query().Get("published"); s != "" {
			v, err := strconv.ParseBool(s)
			if err != nil {
				log.Error("invalid published flag", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid published flag"))
				return
			}
			publishedOnly = v
		}

		events, err := lister.ListEvents(r.Context(), publishedOnly)
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			apierr.Render(w, r, err, "failed to get events")
			return
		}

		log.Info("events retrieved successfully", slog.Int("count", len(events)))

		responseOK(w, r, views.Cards(events))
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, events []view.EventView) {
	render.JSON(w, r, EventsResponse{
		Response: response.OK(),
		Events:   events,
	})
}
