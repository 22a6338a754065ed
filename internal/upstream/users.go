package upstream

import (
	"context"
	"fmt"
	"net/http"

	"eventPortal/internal/lib/api/request"
	"eventPortal/internal/models"
)

type Users struct {
	c    *request.Client
	base string
}

func (u *Users) Register(ctx context.Context, reg models.Registration) (models.User, error) {
	const op = "upstream.Users.Register"

	user, err := request.JSON[models.User](ctx, u.c, http.MethodPost, u.base+"/users/register", reg)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

func (u *Users) Login(ctx context.Context, creds models.Credentials) (models.AuthUser, error) {
	const op = "upstream.Users.Login"

	user, err := request.JSON[models.AuthUser](ctx, u.c, http.MethodPost, u.base+"/users/login", creds)
	if err != nil {
		return models.AuthUser{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

func (u *Users) Profile(ctx context.Context, id int64) (models.User, error) {
	const op = "upstream.Users.Profile"

	user, err := request.JSON[models.User](ctx, u.c, http.MethodGet, fmt.Sprintf("%s/users/%d/profile", u.base, id), nil)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

func (u *Users) UpdateRole(ctx context.Context, id int64, role models.Role) (models.User, error) {
	const op = "upstream.Users.UpdateRole"

	body := struct {
		Role models.Role `json:"role"`
	}{Role: role}

	user, err := request.JSON[models.User](ctx, u.c, http.MethodPut, fmt.Sprintf("%s/users/%d/role", u.base, id), body)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}
