// Package portal implements what each page of the front end does: fetch,
// validate locally, submit. Business rules stay with the upstream services.
package portal

import (
	"context"
	"errors"

	"eventPortal/internal/models"

	"github.com/go-playground/validator/v10"
)

var (
	ErrLoginRequired      = errors.New("You must be logged in.")
	ErrNotLoggedIn        = &loginRequiredError{msg: "You must be logged in to book tickets."}
	ErrForbidden          = errors.New("admin role required")
	ErrNotEnoughSeats     = errors.New("Not enough available seats.")
	ErrInvalidDate        = errors.New("invalid date")
	ErrRecurrenceRequired = errors.New("recurrence pattern is required for recurring events")
	ErrInvalidSeats       = errors.New("seats must be at least 1")
	ErrNoCode             = errors.New("ticket has no such code")
)

var validate = validator.New()

// loginRequiredError is a login failure worded for one page. It matches
// ErrLoginRequired.
type loginRequiredError struct {
	msg string
}

func (e *loginRequiredError) Error() string {
	return e.msg
}

func (e *loginRequiredError) Is(target error) bool {
	return target == ErrLoginRequired
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventService
type EventService interface {
	List(ctx context.Context) ([]models.Event, error)
	Published(ctx context.Context) ([]models.Event, error)
	Get(ctx context.Context, id int64) (models.Event, error)
	Create(ctx context.Context, p models.EventPayload) (models.Event, error)
	Update(ctx context.Context, id int64, p models.EventPatch) (models.Event, error)
	Publish(ctx context.Context, id int64) error
	Reserve(ctx context.Context, id int64, seats int) (bool, error)
	Delete(ctx context.Context, id int64) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingService
type BookingService interface {
	Create(ctx context.Context, p models.BookingPayload) (models.Booking, error)
	Get(ctx context.Context, id int64) (models.Booking, error)
	ByUser(ctx context.Context, userID int64) ([]models.Booking, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketService
type TicketService interface {
	ByBooking(ctx context.Context, bookingID int64) ([]models.Ticket, error)
	ByUser(ctx context.Context, userID int64) ([]models.Ticket, error)
	Get(ctx context.Context, number string) (models.Ticket, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserService
type UserService interface {
	Register(ctx context.Context, reg models.Registration) (models.User, error)
	Login(ctx context.Context, creds models.Credentials) (models.AuthUser, error)
	Profile(ctx context.Context, id int64) (models.User, error)
	UpdateRole(ctx context.Context, id int64, role models.Role) (models.User, error)
}

// Session is the part of session.Store the controllers rely on.
type Session interface {
	Current() (models.AuthUser, bool)
	Login(ctx context.Context, user models.AuthUser) error
	Logout(ctx context.Context) error
}

func requireUser(s Session) (models.AuthUser, error) {
	user, ok := s.Current()
	if !ok {
		return models.AuthUser{}, ErrLoginRequired
	}
	return user, nil
}

func requireAdmin(s Session) (models.AuthUser, error) {
	user, err := requireUser(s)
	if err != nil {
		return user, err
	}
	if !user.HasRole(models.RoleAdmin) {
		return user, ErrForbidden
	}
	return user, nil
}
