package portal

import (
	"context"
	"testing"

	"eventPortal/internal/lib/logger/handlers/slogdiscard"
	"eventPortal/internal/models"
	"eventPortal/internal/session"
	"eventPortal/internal/session/storage/file"

	"github.com/stretchr/testify/require"
)

func role(r models.Role) *models.Role {
	return &r
}

func adminUser() *models.AuthUser {
	return &models.AuthUser{
		User:  models.User{ID: 1, Username: "root", Email: "root@example.com", Role: role(models.RoleAdmin)},
		Token: "admin-token",
	}
}

func plainUser() *models.AuthUser {
	return &models.AuthUser{
		User:  models.User{ID: 4, Username: "ann", Email: "ann@example.com", Role: role(models.RoleUser)},
		Token: "user-token",
	}
}

// newSession returns a store logged in as user, or logged out for nil.
func newSession(t *testing.T, user *models.AuthUser) *session.Store {
	t.Helper()

	st, err := file.New(t.TempDir())
	require.NoError(t, err)

	s, err := session.Open(context.Background(), slogdiscard.NewDiscardLogger(), st)
	require.NoError(t, err)

	if user != nil {
		require.NoError(t, s.Login(context.Background(), *user))
	}

	return s
}
