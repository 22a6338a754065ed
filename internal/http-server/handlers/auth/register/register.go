package register

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

type UserResponse struct {
	response.Response
	User models.User `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Registrar
type Registrar interface {
	Register(ctx context.Context, form portal.RegisterForm) (models.User, error)
}

func New(log *slog.Logger, registrar Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.register.New"

		log := log.With(slog.String("op", op))

		var req portal.RegisterForm
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		user, err := registrar.Register(r.Context(), req)
		if err != nil {
			log.Error("failed to register", slog.String("username", req.Username), sl.Err(err))
			apierr.Render(w, r, err, "failed to register")
			return
		}

		log.Info("user registered", slog.Int64("user_id", user.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, UserResponse{
			Response: response.OK(),
			User:     user,
		})
	}
}
