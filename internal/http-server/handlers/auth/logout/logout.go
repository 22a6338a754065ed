package logout

import (
	"context"
	"log/slog"
	"net/http"

	"eventPortal/internal/http-server/handlers/apierr"
	"eventPortal/internal/lib/api/response"
	"eventPortal/internal/lib/logger/sl"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionCloser
type SessionCloser interface {
	Logout(ctx context.Context) error
}

func New(log *slog.Logger, closer SessionCloser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.logout.New"

		if err := closer.Logout(r.Context()); err != nil {
			log.Error("failed to log out", slog.String("op", op), sl.Err(err))
			apierr.Render(w, r, err, "failed to log out")
			return
		}

		render.JSON(w, r, response.OK())
	}
}
