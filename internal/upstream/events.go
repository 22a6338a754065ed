package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"eventPortal/internal/lib/api/request"
	"eventPortal/internal/models"
)

type Events struct {
	c    *request.Client
	base string
}

func (e *Events) List(ctx context.Context) ([]models.Event, error) {
	const op = "upstream.Events.List"

	events, err := request.JSON[[]models.Event](ctx, e.c, http.MethodGet, e.base+"/events", nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}

func (e *Events) Published(ctx context.Context) ([]models.Event, error) {
	const op = "upstream.Events.Published"

	events, err := request.JSON[[]models.Event](ctx, e.c, http.MethodGet, e.base+"/events/published", nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}

func (e *Events) Get(ctx context.Context, id int64) (models.Event, error) {
	const op = "upstream.Events.Get"

	event, err := request.JSON[models.Event](ctx, e.c, http.MethodGet, e.eventURL(id, ""), nil)
	if err != nil {
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}

	return event, nil
}

func (e *Events) Create(ctx context.Context, p models.EventPayload) (models.Event, error) {
	const op = "upstream.Events.Create"

	event, err := request.JSON[models.Event](ctx, e.c, http.MethodPost, e.base+"/events", p)
	if err != nil {
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}

	return event, nil
}

func (e *Events) Update(ctx context.Context, id int64, p models.EventPatch) (models.Event, error) {
	const op = "upstream.Events.Update"

	event, err := request.JSON[models.Event](ctx, e.c, http.MethodPut, e.eventURL(id, ""), p)
	if err != nil {
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}

	return event, nil
}

func (e *Events) Publish(ctx context.Context, id int64) error {
	const op = "upstream.Events.Publish"

	if err := request.NoContent(ctx, e.c, http.MethodPost, e.eventURL(id, "/publish"), nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Reserve answers with a bare true/false text body.
func (e *Events) Reserve(ctx context.Context, id int64, seats int) (bool, error) {
	const op = "upstream.Events.Reserve"

	q := url.Values{"seats": {strconv.Itoa(seats)}}

	ok, err := request.Bool(ctx, e.c, http.MethodPost, e.eventURL(id, "/reserve")+"?"+q.Encode(), nil)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return ok, nil
}

func (e *Events) Delete(ctx context.Context, id int64) error {
	const op = "upstream.Events.Delete"

	if err := request.NoContent(ctx, e.c, http.MethodDelete, e.eventURL(id, ""), nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (e *Events) eventURL(id int64, suffix string) string {
	return e.base + "/events/" + strconv.FormatInt(id, 10) + suffix
}
