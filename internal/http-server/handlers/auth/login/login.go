package login

import (
	"context"
	"log/slog"
	"net/http"

	"eventPortal/internal/http-server/handlers/apierr"
	"eventPortal/internal/lib/api/response"
	"eventPortal/internal/lib/logger/sl"
	"eventPortal/internal/models"
	"eventPortal/internal/portal"

	"github.com/go-chi/render"
)

// UserResponse never carries the token; it stays in the session.
type UserResponse struct {
	response.Response
	User models.User `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Authenticator
type Authenticator interface {
	Login(ctx context.Context, form portal.LoginForm) (models.AuthUser, error)
}

func New(log *slog.Logger, auth Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.login.New"

		log := log.With(slog.String("op", op))

		var req portal.LoginForm
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log = log.With(slog.String("username", req.Username))

		user, err := auth.Login(r.Context(), req)
		if err != nil {
			log.Error("failed to log in", sl.Err(err))
			apierr.Render(w, r, err, "failed to log in")
			return
		}

		log.Info("logged in", slog.Int64("user_id", user.ID))

		render.JSON(w, r, UserResponse{
			Response: response.OK(),
			User:     user.User,
		})
	}
}
