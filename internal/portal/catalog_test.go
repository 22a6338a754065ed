package portal

import (
	"context"
	"errors"
	"testing"
	"time"

	"eventPortal/internal/lib/logger/handlers/slogdiscard"
	"eventPortal/internal/models"
	"eventPortal/internal/portal/mocks"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var plus2 = time.FixedZone("UTC+2", 2*60*60)

func sampleEvents() []models.Event {
	return []models.Event{
		{ID: 1, Name: "Draft", Status: models.EventStatusDraft},
		{ID: 2, Name: "Live", Status: models.EventStatusPublished},
		{ID: 3, Name: "Gone", Status: models.EventStatusCancelled},
		{ID: 4, Name: "Unset"},
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	ids := func(events []models.Event) []int64 {
		var out []int64
		for _, e := range events {
			out = append(out, e.ID)
		}
		return out
	}

	assert.Equal(t, []int64{1, 2, 3, 4}, ids(FilterAll.Apply(sampleEvents())))
	assert.Equal(t, []int64{2}, ids(FilterPublished.Apply(sampleEvents())))
	assert.Equal(t, []int64{1, 3, 4}, ids(FilterDraft.Apply(sampleEvents())))

	for in, want := range map[string]Filter{"": FilterAll, "all": FilterAll, "Draft": FilterDraft, " PUBLISHED ": FilterPublished} {
		got, ok := ParseFilter(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := ParseFilter("archived")
	assert.False(t, ok)
}

func TestListEvents(t *testing.T) {
	t.Parallel()

	events := mocks.NewEventService(t)
	events.On("List", mock.Anything).Return(sampleEvents(), nil).Once()
	events.On("Published", mock.Anything).Return(sampleEvents()[1:2], nil).Once()

	c := NewCatalog(slogdiscard.NewDiscardLogger(), events, newSession(t, nil), plus2)

	all, err := c.ListEvents(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	published, err := c.ListEvents(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, published, 1)
}

func TestCreateEvent(t *testing.T) {
	t.Parallel()

	validForm := func() EventForm {
		return EventForm{
			Name:      "Gophercon",
			Location:  "Berlin",
			EventDate: "2024-06-01T20:00",
			Capacity:  100,
		}
	}

	testCases := []struct {
		name      string
		user      *models.AuthUser
		form      func() EventForm
		mockSetup func(m *mocks.EventService)
		check     func(t *testing.T, event models.Event, err error)
	}{
		{
			name: "Logged out",
			form: validForm,
			check: func(t *testing.T, _ models.Event, err error) {
				assert.ErrorIs(t, err, ErrLoginRequired)
			},
		},
		{
			name: "Not an admin",
			user: plainUser(),
			form: validForm,
			check: func(t *testing.T, _ models.Event, err error) {
				assert.ErrorIs(t, err, ErrForbidden)
			},
		},
		{
			name: "Missing name",
			user: adminUser(),
			form: func() EventForm {
				f := validForm()
				f.Name = ""
				return f
			},
			check: func(t *testing.T, _ models.Event, err error) {
				var verr validator.ValidationErrors
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, "Name", verr[0].Field())
			},
		},
		{
			name: "Zero capacity",
			user: adminUser(),
			form: func() EventForm {
				f := validForm()
				f.Capacity = 0
				return f
			},
			check: func(t *testing.T, _ models.Event, err error) {
				var verr validator.ValidationErrors
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, "Capacity", verr[0].Field())
			},
		},
		{
			name: "Recurring without pattern",
			user: adminUser(),
			form: func() EventForm {
				f := validForm()
				f.IsRecurring = true
				return f
			},
			check: func(t *testing.T, _ models.Event, err error) {
				assert.ErrorIs(t, err, ErrRecurrenceRequired)
			},
		},
		{
			name: "Unparseable date",
			user: adminUser(),
			form: func() EventForm {
				f := validForm()
				f.EventDate = "first of june"
				return f
			},
			check: func(t *testing.T, _ models.Event, err error) {
				assert.ErrorIs(t, err, ErrInvalidDate)
			},
		},
		{
			name: "Dates sent as UTC ISO strings",
			user: adminUser(),
			form: func() EventForm {
				f := validForm()
				f.EndDate = "2024-06-02T01:30:00+02:00"
				f.Categories = "Technology,Conference"
				f.RecurrencePattern = models.RecurrenceWeekly
				return f
			},
			mockSetup: func(m *mocks.EventService) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(p models.EventPayload) bool {
					return p.Name == "Gophercon" &&
						p.EventDate == "2024-06-01T18:00:00.000Z" &&
						p.EndDate == "2024-06-01T23:30:00.000Z" &&
						p.Capacity == 100 &&
						p.Categories == "Technology,Conference" &&
						p.RecurrencePattern == nil &&
						p.IsRecurring != nil && !*p.IsRecurring
				})).Return(models.Event{ID: 12, Name: "Gophercon"}, nil)
			},
			check: func(t *testing.T, event models.Event, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(12), event.ID)
			},
		},
		{
			name: "Recurring keeps pattern",
			user: adminUser(),
			form: func() EventForm {
				f := validForm()
				f.IsRecurring = true
				f.RecurrencePattern = models.RecurrenceMonthly
				return f
			},
			mockSetup: func(m *mocks.EventService) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(p models.EventPayload) bool {
					return p.RecurrencePattern != nil && *p.RecurrencePattern == models.RecurrenceMonthly
				})).Return(models.Event{ID: 13}, nil)
			},
			check: func(t *testing.T, event models.Event, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(13), event.ID)
			},
		},
		{
			name: "Upstream failure",
			user: adminUser(),
			form: validForm,
			mockSetup: func(m *mocks.EventService) {
				m.On("Create", mock.Anything, mock.Anything).Return(models.Event{}, errors.New("boom"))
			},
			check: func(t *testing.T, _ models.Event, err error) {
				assert.EqualError(t, err, "portal.Catalog.CreateEvent: boom")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			events := mocks.NewEventService(t)
			if tc.mockSetup != nil {
				tc.mockSetup(events)
			}

			c := NewCatalog(slogdiscard.NewDiscardLogger(), events, newSession(t, tc.user), plus2)

			event, err := c.CreateEvent(context.Background(), tc.form())
			tc.check(t, event, err)
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}

func TestUpdateEventSendsOnlyChangedFields(t *testing.T) {
	t.Parallel()

	events := mocks.NewEventService(t)
	events.On("Update", mock.Anything, int64(5), models.EventPatch{
		Name:      ptr("Renamed"),
		EventDate: ptr("2024-07-01T08:00:00.000Z"),
	}).Return(models.Event{ID: 5, Name: "Renamed"}, nil)

	c := NewCatalog(slogdiscard.NewDiscardLogger(), events, newSession(t, adminUser()), plus2)

	event, err := c.UpdateEvent(context.Background(), 5, EventUpdate{Name: ptr("Renamed"), EventDate: ptr("2024-07-01T10:00")})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", event.Name)
}

func TestUpdateEventClearsFields(t *testing.T) {
	t.Parallel()

	events := mocks.NewEventService(t)
	events.On("Update", mock.Anything, int64(5), models.EventPatch{
		Description: ptr(""),
		Venue:       ptr(""),
		Categories:  ptr(""),
		EndDate:     ptr(""),
	}).Return(models.Event{ID: 5}, nil)

	c := NewCatalog(slogdiscard.NewDiscardLogger(), events, newSession(t, adminUser()), plus2)

	_, err := c.UpdateEvent(context.Background(), 5, EventUpdate{
		Description: ptr(""),
		Venue:       ptr(""),
		Categories:  ptr(""),
		EndDate:     ptr(" "),
	})
	require.NoError(t, err)
}

func TestUpdateEventRejects(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		upd   EventUpdate
		check func(t *testing.T, err error)
	}{
		{
			name: "Zero capacity",
			upd:  EventUpdate{Capacity: ptr(0)},
			check: func(t *testing.T, err error) {
				var verr validator.ValidationErrors
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, "Capacity", verr[0].Field())
			},
		},
		{
			name: "Recurring without pattern",
			upd:  EventUpdate{IsRecurring: ptr(true)},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrRecurrenceRequired)
			},
		},
		{
			name: "Recurring with empty pattern",
			upd:  EventUpdate{IsRecurring: ptr(true), RecurrencePattern: ptr(models.RecurrencePattern(""))},
			check: func(t *testing.T, err error) {
				var verr validator.ValidationErrors
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, "RecurrencePattern", verr[0].Field())
			},
		},
		{
			name: "Bad end date",
			upd:  EventUpdate{EndDate: ptr("tomorrow")},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrInvalidDate)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			events := mocks.NewEventService(t)
			c := NewCatalog(slogdiscard.NewDiscardLogger(), events, newSession(t, adminUser()), plus2)

			_, err := c.UpdateEvent(context.Background(), 5, tc.upd)
			tc.check(t, err)
			events.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestManageEvents(t *testing.T) {
	t.Parallel()

	events := mocks.NewEventService(t)
	events.On("List", mock.Anything).Return(sampleEvents(), nil)

	c := NewCatalog(slogdiscard.NewDiscardLogger(), events, newSession(t, adminUser()), plus2)

	drafts, err := c.ManageEvents(context.Background(), FilterDraft)
	require.NoError(t, err)
	assert.Len(t, drafts, 3)

	forbidden := NewCatalog(slogdiscard.NewDiscardLogger(), events, newSession(t, plainUser()), plus2)
	_, err = forbidden.ManageEvents(context.Background(), FilterAll)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestPublishRefetches(t *testing.T) {
	t.Parallel()

	after := sampleEvents()
	after[0].Status = models.EventStatusPublished

	events := mocks.NewEventService(t)
	events.On("Publish", mock.Anything, int64(1)).Return(nil).Once()
	events.On("List", mock.Anything).Return(after, nil).Once()

	c := NewCatalog(slogdiscard.NewDiscardLogger(), events, newSession(t, adminUser()), plus2)

	published, err := c.Publish(context.Background(), 1, FilterPublished)
	require.NoError(t, err)
	require.Len(t, published, 2)
	assert.Equal(t, int64(1), published[0].ID)
}

func TestPublishFailureSkipsRefetch(t *testing.T) {
	t.Parallel()

	events := mocks.NewEventService(t)
	events.On("Publish", mock.Anything, int64(1)).Return(errors.New("conflict"))

	c := NewCatalog(slogdiscard.NewDiscardLogger(), events, newSession(t, adminUser()), plus2)

	_, err := c.Publish(context.Background(), 1, FilterAll)
	require.Error(t, err)
	events.AssertNotCalled(t, "List", mock.Anything)
}

func TestReserveSeats(t *testing.T) {
	t.Parallel()

	events := mocks.NewEventService(t)
	events.On("Reserve", mock.Anything, int64(7), 3).Return(true, nil)

	c := NewCatalog(slogdiscard.NewDiscardLogger(), events, newSession(t, adminUser()), plus2)

	ok, err := c.ReserveSeats(context.Background(), 7, 3)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = c.ReserveSeats(context.Background(), 7, 0)
	assert.ErrorIs(t, err, ErrInvalidSeats)
}

func TestDeleteEventRequiresSession(t *testing.T) {
	t.Parallel()

	events := mocks.NewEventService(t)
	events.On("Delete", mock.Anything, int64(7)).Return(nil).Once()

	loggedOut := NewCatalog(slogdiscard.NewDiscardLogger(), events, newSession(t, nil), plus2)
	assert.ErrorIs(t, loggedOut.DeleteEvent(context.Background(), 7), ErrLoginRequired)

	loggedIn := NewCatalog(slogdiscard.NewDiscardLogger(), events, newSession(t, plainUser()), plus2)
	assert.NoError(t, loggedIn.DeleteEvent(context.Background(), 7))
}
