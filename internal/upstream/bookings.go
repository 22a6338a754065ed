package upstream

import (
	"context"
	"fmt"
	"net/http"

	"eventPortal/internal/lib/api/request"
	"eventPortal/internal/models"
)

type Bookings struct {
	c    *request.Client
	base string
}

func (b *Bookings) Create(ctx context.Context, p models.BookingPayload) (models.Booking, error) {
	const op = "upstream.Bookings.Create"

	booking, err := request.JSON[models.Booking](ctx, b.c, http.MethodPost, b.base+"/bookings", p)
	if err != nil {
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	return booking, nil
}

func (b *Bookings) List(ctx context.Context) ([]models.Booking, error) {
	const op = "upstream.Bookings.List"

	bookings, err := request.JSON[[]models.Booking](ctx, b.c, http.MethodGet, b.base+"/bookings", nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return bookings, nil
}

func (b *Bookings) Get(ctx context.Context, id int64) (models.Booking, error) {
	const op = "upstream.Bookings.Get"

	booking, err := request.JSON[models.Booking](ctx, b.c, http.MethodGet, fmt.Sprintf("%s/bookings/%d", b.base, id), nil)
	if err != nil {
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	return booking, nil
}

func (b *Bookings) ByUser(ctx context.Context, userID int64) ([]models.Booking, error) {
	const op = "upstream.Bookings.ByUser"

	bookings, err := request.JSON[[]models.Booking](ctx, b.c, http.MethodGet, fmt.Sprintf("%s/bookings/user/%d", b.base, userID), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return bookings, nil
}
