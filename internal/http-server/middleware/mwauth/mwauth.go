// Package mwauth guards routes with the portal session.
package mwauth

import (
	"net/http"

	"eventPortal/internal/lib/api/response"
	"eventPortal/internal/models"
	"eventPortal/internal/portal"

	"github.com/go-chi/render"
)

type Session interface {
	Current() (models.AuthUser, bool)
}

func RequireUser(s Session) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := s.Current(); !ok {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error(portal.ErrLoginRequired.Error()))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func RequireAdmin(s Session) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := s.Current()
			if !ok {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error(portal.ErrLoginRequired.Error()))
				return
			}
			if !user.HasRole(models.RoleAdmin) {
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error(portal.ErrForbidden.Error()))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
