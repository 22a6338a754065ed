package portal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"eventPortal/internal/models"
)

type Filter string

const (
	FilterAll       Filter = "ALL"
	FilterPublished Filter = "PUBLISHED"
	FilterDraft     Filter = "DRAFT"
)

func ParseFilter(s string) (Filter, bool) {
	switch f := Filter(strings.ToUpper(strings.TrimSpace(s))); f {
	case "":
		return FilterAll, true
	case FilterAll, FilterPublished, FilterDraft:
		return f, true
	default:
		return "", false
	}
}

// Apply keeps the order of events. DRAFT means anything not yet published.
func (f Filter) Apply(events []models.Event) []models.Event {
	if f == FilterAll || f == "" {
		return events
	}

	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if e.IsPublished() == (f == FilterPublished) {
			out = append(out, e)
		}
	}

	return out
}

// EventForm is the create-event form. Dates are HTML datetime-local values
// in the viewer's zone or RFC 3339 strings.
type EventForm struct {
	Name              string                   `json:"name" validate:"required"`
	Description       string                   `json:"description"`
	Location          string                   `json:"location" validate:"required"`
	Venue             string                   `json:"venue"`
	Agenda            string                   `json:"agenda"`
	Categories        string                   `json:"categories"`
	EventDate         string                   `json:"eventDate" validate:"required"`
	EndDate           string                   `json:"endDate"`
	Capacity          int                      `json:"capacity" validate:"required,min=1"`
	IsRecurring       bool                     `json:"isRecurring"`
	RecurrencePattern models.RecurrencePattern `json:"recurrencePattern" validate:"omitempty,oneof=DAILY WEEKLY MONTHLY YEARLY"`
	IsMultiSession    bool                     `json:"isMultiSession"`
}

// EventUpdate carries only the fields being changed. A field sent empty is
// cleared.
type EventUpdate struct {
	Name              *string                   `json:"name" validate:"omitempty,min=1"`
	Description       *string                   `json:"description"`
	Location          *string                   `json:"location" validate:"omitempty,min=1"`
	Venue             *string                   `json:"venue"`
	Agenda            *string                   `json:"agenda"`
	Categories        *string                   `json:"categories"`
	EventDate         *string                   `json:"eventDate"`
	EndDate           *string                   `json:"endDate"`
	Capacity          *int                      `json:"capacity" validate:"omitempty,min=1"`
	IsRecurring       *bool                     `json:"isRecurring"`
	RecurrencePattern *models.RecurrencePattern `json:"recurrencePattern" validate:"omitempty,oneof=DAILY WEEKLY MONTHLY YEARLY"`
	IsMultiSession    *bool                     `json:"isMultiSession"`
}

type Catalog struct {
	log     *slog.Logger
	events  EventService
	session Session
	loc     *time.Location
}

func NewCatalog(log *slog.Logger, events EventService, session Session, loc *time.Location) *Catalog {
	if loc == nil {
		loc = time.Local
	}
	return &Catalog{
		log:     log,
		events:  events,
		session: session,
		loc:     loc,
	}
}

func (c *Catalog) ListEvents(ctx context.Context, publishedOnly bool) ([]models.Event, error) {
	if publishedOnly {
		return c.events.Published(ctx)
	}
	return c.events.List(ctx)
}

func (c *Catalog) Event(ctx context.Context, id int64) (models.Event, error) {
	return c.events.Get(ctx, id)
}

func (c *Catalog) DeleteEvent(ctx context.Context, id int64) error {
	if _, err := requireUser(c.session); err != nil {
		return err
	}
	return c.events.Delete(ctx, id)
}

func (c *Catalog) CreateEvent(ctx context.Context, form EventForm) (models.Event, error) {
	const op = "portal.Catalog.CreateEvent"

	if _, err := requireAdmin(c.session); err != nil {
		return models.Event{}, err
	}

	if err := validate.Struct(form); err != nil {
		return models.Event{}, err
	}

	if form.IsRecurring && form.RecurrencePattern == "" {
		return models.Event{}, ErrRecurrenceRequired
	}

	start, err := c.isoDate(form.EventDate)
	if err != nil {
		return models.Event{}, err
	}

	var end string
	if strings.TrimSpace(form.EndDate) != "" {
		if end, err = c.isoDate(form.EndDate); err != nil {
			return models.Event{}, err
		}
	}

	var pattern *models.RecurrencePattern
	if form.IsRecurring {
		p := form.RecurrencePattern
		pattern = &p
	}

	payload := models.EventPayload{
		Name:              form.Name,
		Description:       form.Description,
		Location:          form.Location,
		Venue:             form.Venue,
		Agenda:            form.Agenda,
		Categories:        form.Categories,
		EventDate:         start,
		EndDate:           end,
		Capacity:          form.Capacity,
		IsRecurring:       &form.IsRecurring,
		RecurrencePattern: pattern,
		IsMultiSession:    &form.IsMultiSession,
	}

	event, err := c.events.Create(ctx, payload)
	if err != nil {
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}

	c.log.Info("event created", slog.String("op", op), slog.Int64("event_id", event.ID))

	return event, nil
}

func (c *Catalog) UpdateEvent(ctx context.Context, id int64, upd EventUpdate) (models.Event, error) {
	const op = "portal.Catalog.UpdateEvent"

	if _, err := requireAdmin(c.session); err != nil {
		return models.Event{}, err
	}

	if err := validate.Struct(upd); err != nil {
		return models.Event{}, err
	}

	if upd.IsRecurring != nil && *upd.IsRecurring && upd.RecurrencePattern == nil {
		return models.Event{}, ErrRecurrenceRequired
	}

	payload := models.EventPatch{
		Name:              upd.Name,
		Description:       upd.Description,
		Location:          upd.Location,
		Venue:             upd.Venue,
		Agenda:            upd.Agenda,
		Categories:        upd.Categories,
		Capacity:          upd.Capacity,
		IsRecurring:       upd.IsRecurring,
		RecurrencePattern: upd.RecurrencePattern,
		IsMultiSession:    upd.IsMultiSession,
	}

	if upd.EventDate != nil {
		start, err := c.isoDate(*upd.EventDate)
		if err != nil {
			return models.Event{}, err
		}
		payload.EventDate = &start
	}

	// An empty end date clears it.
	if upd.EndDate != nil {
		end := ""
		if strings.TrimSpace(*upd.EndDate) != "" {
			var err error
			if end, err = c.isoDate(*upd.EndDate); err != nil {
				return models.Event{}, err
			}
		}
		payload.EndDate = &end
	}

	event, err := c.events.Update(ctx, id, payload)
	if err != nil {
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}

	return event, nil
}

func (c *Catalog) ManageEvents(ctx context.Context, filter Filter) ([]models.Event, error) {
	if _, err := requireAdmin(c.session); err != nil {
		return nil, err
	}

	events, err := c.events.List(ctx)
	if err != nil {
		return nil, err
	}

	return filter.Apply(events), nil
}

// Publish publishes the event and returns the freshly fetched list under
// filter.
func (c *Catalog) Publish(ctx context.Context, id int64, filter Filter) ([]models.Event, error) {
	const op = "portal.Catalog.Publish"

	if _, err := requireAdmin(c.session); err != nil {
		return nil, err
	}

	if err := c.events.Publish(ctx, id); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c.log.Info("event published", slog.String("op", op), slog.Int64("event_id", id))

	events, err := c.events.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return filter.Apply(events), nil
}

func (c *Catalog) ReserveSeats(ctx context.Context, id int64, seats int) (bool, error) {
	if _, err := requireAdmin(c.session); err != nil {
		return false, err
	}

	if seats < 1 {
		return false, ErrInvalidSeats
	}

	return c.events.Reserve(ctx, id, seats)
}

const isoMillis = "2006-01-02T15:04:05.000Z"

var formDateLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
}

// isoDate turns a form date into the UTC ISO string the event service takes.
func (c *Catalog) isoDate(s string) (string, error) {
	s = strings.TrimSpace(s)

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC().Format(isoMillis), nil
	}

	for _, layout := range formDateLayouts {
		if t, err := time.ParseInLocation(layout, s, c.loc); err == nil {
			return t.UTC().Format(isoMillis), nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
}
