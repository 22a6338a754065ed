package ticketCode

import (
	"context"
	"log/slog"
	"net/http"

	"eventPortal/internal/http-server/handlers/apierr"
	"eventPortal/internal/lib/api/response"
	"eventPortal/internal/lib/api/urlparam"
	"eventPortal/internal/lib/logger/sl"
	"eventPortal/internal/models"
	"eventPortal/internal/portal"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketGetter
type TicketGetter interface {
	Ticket(ctx context.Context, number string) (models.Ticket, error)
}

// New serves a ticket code as a PNG. The route is mounted behind
// middleware.URLFormat, which strips the .png suffix off {kind}.
func New(log *slog.Logger, getter TicketGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.ticketCode.New"

		kind := portal.CodeKind(chi.URLParam(r, "kind"))

		log := log.With(slog.String("op", op), slog.String("kind", string(kind)))

		number, err := urlparam.Path(r, "number")
		if err != nil {
			log.Error("invalid ticket number", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("ticket number "+err.Error()))
			return
		}

		log = log.With(slog.String("ticket", number))

		if format, _ := r.Context().Value(middleware.URLFormatCtxKey).(string); format != "" && format != "png" {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("codes are served as png"))
			return
		}

		if kind != portal.CodeQR && kind != portal.CodeBarcode {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error(portal.ErrNoCode.Error()))
			return
		}

		ticket, err := getter.Ticket(r.Context(), number)
		if err != nil {
			log.Error("failed to get ticket", sl.Err(err))
			apierr.Render(w, r, err, "failed to get ticket")
			return
		}

		img, err := portal.TicketCode(ticket, kind)
		if err != nil {
			log.Error("failed to decode ticket code", sl.Err(err))
			apierr.Render(w, r, err, "failed to decode ticket code")
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(img); err != nil {
			log.Error("failed to write ticket code", sl.Err(err))
		}
	}
}
