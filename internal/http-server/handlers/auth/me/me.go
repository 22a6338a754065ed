package me

import (
	"context"
	"log/slog"
	"net/http"

	"eventPortal/internal/http-server/handlers/apierr"
	"eventPortal/internal/lib/api/response"
	"eventPortal/internal/lib/logger/sl"
	"eventPortal/internal/models"

	"github.com/go-chi/render"
)

type UserResponse struct {
	response.Response
	User models.User `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CurrentUser
type CurrentUser interface {
	Me() (models.AuthUser, error)
	Profile(ctx context.Context) (models.User, error)
}

// New answers with the session user. With ?refresh=true the profile is
// fetched from the user service instead.
func New(log *slog.Logger, current CurrentUser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.me.New"

		log := log.With(slog.String("op", op))

		if r.URL.Query().Get("refresh") == "true" {
			user, err := current.Profile(r.Context())
			if err != nil {
				log.Error("failed to get profile", sl.Err(err))
				apierr.Render(w, r, err, "failed to get profile")
				return
			}

			render.JSON(w, r, UserResponse{
				Response: response.OK(),
				User:     user,
			})
			return
		}

		user, err := current.Me()
		if err != nil {
			log.Debug("no current user")
			apierr.Render(w, r, err, "failed to get current user")
			return
		}

		render.JSON(w, r, UserResponse{
			Response: response.OK(),
			User:     user.User,
		})
	}
}
