package updateRole

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

	"github.com/go-chi/render"
)

type UserResponse struct {
	response.Response
	User models.User `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RoleUpdater
type RoleUpdater interface {
	UpdateRole(ctx context.Context, userID int64, form portal.RoleForm) (models.User, error)
}

func New(log *slog.Logger, updater RoleUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.updateRole.New"

		log := log.With(slog.String("op", op))

		userID, err := urlparam.ID(r, "id")
		if err != nil {
			log.Error("invalid user id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("user id "+err.Error()))
			return
		}

		var req portal.RoleForm
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log = log.With(slog.Int64("user_id", userID), slog.String("role", string(req.Role)))

		user, err := updater.UpdateRole(r.Context(), userID, req)
		if err != nil {
			log.Error("failed to update role", sl.Err(err))
			apierr.Render(w, r, err, "failed to update role")
			return
		}

		log.Info("role updated")

		render.JSON(w, r, UserResponse{
			Response: response.OK(),
			User:     user,
		})
	}
}
