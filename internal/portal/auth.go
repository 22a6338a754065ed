package portal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"eventPortal/internal/lib/logger/sl"
	"eventPortal/internal/models"
)

var ErrIncompleteLogin = errors.New("login response carried no usable session")

type LoginForm struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterForm struct {
	Username string       `json:"username" validate:"required"`
	Email    string       `json:"email" validate:"required,email"`
	Password string       `json:"password" validate:"required,min=6"`
	Role     *models.Role `json:"role" validate:"omitempty,oneof=USER AUDITOR ADMIN"`
}

type Auth struct {
	log     *slog.Logger
	users   UserService
	session Session
}

func NewAuth(log *slog.Logger, users UserService, session Session) *Auth {
	return &Auth{
		log:     log,
		users:   users,
		session: session,
	}
}

func (a *Auth) Login(ctx context.Context, form LoginForm) (models.AuthUser, error) {
	const op = "portal.Auth.Login"

	if err := validate.Struct(form); err != nil {
		return models.AuthUser{}, err
	}

	user, err := a.users.Login(ctx, models.Credentials{Username: form.Username, Password: form.Password})
	if err != nil {
		return models.AuthUser{}, fmt.Errorf("%s: %w", op, err)
	}

	if !user.Valid() {
		return models.AuthUser{}, ErrIncompleteLogin
	}

	if err := a.session.Login(ctx, user); err != nil {
		return models.AuthUser{}, fmt.Errorf("%s: %w", op, err)
	}

	a.log.Info("user logged in", slog.String("op", op), slog.Int64("user_id", user.ID))

	return user, nil
}

// Register creates the account; the user logs in separately.
func (a *Auth) Register(ctx context.Context, form RegisterForm) (models.User, error) {
	const op = "portal.Auth.Register"

	if err := validate.Struct(form); err != nil {
		return models.User{}, err
	}

	user, err := a.users.Register(ctx, models.Registration{
		Username: form.Username,
		Email:    form.Email,
		Password: form.Password,
		Role:     form.Role,
	})
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

func (a *Auth) Logout(ctx context.Context) error {
	const op = "portal.Auth.Logout"

	if err := a.session.Logout(ctx); err != nil {
		a.log.Error("failed to clear persisted session", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (a *Auth) Me() (models.AuthUser, error) {
	return requireUser(a.session)
}

// Profile returns the current user as the user service sees it now.
func (a *Auth) Profile(ctx context.Context) (models.User, error) {
	user, err := requireUser(a.session)
	if err != nil {
		return models.User{}, err
	}
	return a.users.Profile(ctx, user.ID)
}

type RoleForm struct {
	Role models.Role `json:"role" validate:"required,oneof=USER AUDITOR ADMIN"`
}

func (a *Auth) UpdateRole(ctx context.Context, userID int64, form RoleForm) (models.User, error) {
	const op = "portal.Auth.UpdateRole"

	if _, err := requireAdmin(a.session); err != nil {
		return models.User{}, err
	}

	if err := validate.Struct(form); err != nil {
		return models.User{}, err
	}

	user, err := a.users.UpdateRole(ctx, userID, form.Role)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}
