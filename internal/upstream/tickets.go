package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"eventPortal/internal/lib/api/request"
	"eventPortal/internal/models"
)

type Tickets struct {
	c    *request.Client
	base string
}

func (t *Tickets) ByBooking(ctx context.Context, bookingID int64) ([]models.Ticket, error) {
	const op = "upstream.Tickets.ByBooking"

	tickets, err := request.JSON[[]models.Ticket](ctx, t.c, http.MethodGet, fmt.Sprintf("%s/tickets/booking/%d", t.base, bookingID), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tickets, nil
}

func (t *Tickets) ByUser(ctx context.Context, userID int64) ([]models.Ticket, error) {
	const op = "upstream.Tickets.ByUser"

	tickets, err := request.JSON[[]models.Ticket](ctx, t.c, http.MethodGet, fmt.Sprintf("%s/tickets/user/%d", t.base, userID), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tickets, nil
}

func (t *Tickets) Get(ctx context.Context, number string) (models.Ticket, error) {
	const op = "upstream.Tickets.Get"

	ticket, err := request.JSON[models.Ticket](ctx, t.c, http.MethodGet, t.base+"/tickets/"+url.PathEscape(number), nil)
	if err != nil {
		return models.Ticket{}, fmt.Errorf("%s: %w", op, err)
	}

	return ticket, nil
}
