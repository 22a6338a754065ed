package portal

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"eventPortal/internal/lib/api/request"
	"eventPortal/internal/lib/logger/handlers/slogdiscard"
	"eventPortal/internal/models"
	"eventPortal/internal/portal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bookingMocks struct {
	events   *mocks.EventService
	bookings *mocks.BookingService
	tickets  *mocks.TicketService
}

func newBookings(t *testing.T, user *models.AuthUser) (*Bookings, bookingMocks) {
	t.Helper()

	m := bookingMocks{
		events:   mocks.NewEventService(t),
		bookings: mocks.NewBookingService(t),
		tickets:  mocks.NewTicketService(t),
	}

	b := NewBookings(slogdiscard.NewDiscardLogger(), m.events, m.bookings, m.tickets, newSession(t, user))

	return b, m
}

func TestBook(t *testing.T) {
	t.Parallel()

	event := models.Event{ID: 9, Name: "Concert", Capacity: 10, AvailableSeats: 2}

	testCases := []struct {
		name      string
		user      *models.AuthUser
		form      BookingForm
		mockSetup func(m bookingMocks)
		check     func(t *testing.T, res BookingResult, err error)
	}{
		{
			name: "Logged out",
			form: BookingForm{NumberOfTickets: 1},
			check: func(t *testing.T, _ BookingResult, err error) {
				assert.ErrorIs(t, err, ErrNotLoggedIn)
				assert.ErrorIs(t, err, ErrLoginRequired)
				assert.EqualError(t, err, "You must be logged in to book tickets.")
			},
		},
		{
			name: "More tickets than seats",
			user: plainUser(),
			form: BookingForm{NumberOfTickets: 3, TicketType: models.TicketTypePaid, PricePerTicket: 10},
			check: func(t *testing.T, _ BookingResult, err error) {
				assert.ErrorIs(t, err, ErrNotEnoughSeats)
				assert.EqualError(t, err, "Not enough available seats.")
			},
		},
		{
			name: "Zero tickets",
			user: plainUser(),
			form: BookingForm{NumberOfTickets: 0},
			check: func(t *testing.T, _ BookingResult, err error) {
				require.Error(t, err)
			},
		},
		{
			name: "Default ticket type is paid",
			user: plainUser(),
			form: BookingForm{NumberOfTickets: 2, PricePerTicket: 25},
			mockSetup: func(m bookingMocks) {
				m.bookings.On("Create", mock.Anything, models.BookingPayload{
					UserID:          4,
					EventID:         9,
					NumberOfTickets: 2,
					TicketType:      models.TicketTypePaid,
					PricePerTicket:  25,
				}).Return(models.Booking{ID: 100, EventID: 9, NumberOfTickets: 2}, nil)
				m.events.On("Get", mock.Anything, int64(9)).Return(models.Event{ID: 9, AvailableSeats: 0}, nil)
			},
			check: func(t *testing.T, res BookingResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(100), res.Booking.ID)
				require.NotNil(t, res.Event)
				assert.Equal(t, 0, res.Event.AvailableSeats)
			},
		},
		{
			name: "Free tickets cost nothing",
			user: plainUser(),
			form: BookingForm{NumberOfTickets: 1, TicketType: models.TicketTypeFree, PricePerTicket: 40},
			mockSetup: func(m bookingMocks) {
				m.bookings.On("Create", mock.Anything, mock.MatchedBy(func(p models.BookingPayload) bool {
					return p.TicketType == models.TicketTypeFree && p.PricePerTicket == 0
				})).Return(models.Booking{ID: 101}, nil)
				m.events.On("Get", mock.Anything, int64(9)).Return(event, nil)
			},
			check: func(t *testing.T, res BookingResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(101), res.Booking.ID)
			},
		},
		{
			name: "Refresh failure keeps the booking",
			user: plainUser(),
			form: BookingForm{NumberOfTickets: 1},
			mockSetup: func(m bookingMocks) {
				m.bookings.On("Create", mock.Anything, mock.Anything).Return(models.Booking{ID: 102}, nil)
				m.events.On("Get", mock.Anything, int64(9)).Return(models.Event{}, &request.NetworkError{Err: errors.New("refused")})
			},
			check: func(t *testing.T, res BookingResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(102), res.Booking.ID)
				assert.Nil(t, res.Event)
			},
		},
		{
			name: "Upstream rejects",
			user: plainUser(),
			form: BookingForm{NumberOfTickets: 1},
			mockSetup: func(m bookingMocks) {
				m.bookings.On("Create", mock.Anything, mock.Anything).
					Return(models.Booking{}, &request.HTTPError{StatusCode: 409, Message: "sold out"})
			},
			check: func(t *testing.T, _ BookingResult, err error) {
				var herr *request.HTTPError
				require.ErrorAs(t, err, &herr)
				assert.Equal(t, "sold out", herr.Message)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			b, m := newBookings(t, tc.user)
			if tc.mockSetup != nil {
				tc.mockSetup(m)
			}

			res, err := b.Book(context.Background(), event, tc.form)
			tc.check(t, res, err)
		})
	}
}

func TestMyBookings(t *testing.T) {
	t.Parallel()

	b, m := newBookings(t, plainUser())

	m.bookings.On("ByUser", mock.Anything, int64(4)).Return([]models.Booking{
		{ID: 1, EventID: 10},
		{ID: 2, EventID: 20},
		{ID: 3, EventID: 30},
	}, nil)
	m.events.On("Get", mock.Anything, int64(10)).Return(models.Event{ID: 10, Name: "A"}, nil)
	m.events.On("Get", mock.Anything, int64(20)).Return(models.Event{}, &request.HTTPError{StatusCode: 404, Message: "not found"})
	m.events.On("Get", mock.Anything, int64(30)).Return(models.Event{ID: 30, Name: "C"}, nil)

	got, err := b.MyBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, int64(1), got[0].ID)
	require.NotNil(t, got[0].Event)
	assert.Equal(t, "A", got[0].Event.Name)

	assert.Equal(t, int64(2), got[1].ID)
	assert.Nil(t, got[1].Event)

	assert.Equal(t, int64(3), got[2].ID)
	require.NotNil(t, got[2].Event)
	assert.Equal(t, "C", got[2].Event.Name)
}

func TestMyBookingsMoreThanLimit(t *testing.T) {
	t.Parallel()

	b, m := newBookings(t, plainUser())

	n := 3 * enrichLimit
	bookings := make([]models.Booking, n)
	for i := range bookings {
		bookings[i] = models.Booking{ID: int64(i + 1), EventID: int64(100 + i)}
	}

	m.bookings.On("ByUser", mock.Anything, int64(4)).Return(bookings, nil)
	m.events.On("Get", mock.Anything, int64(100)).Return(models.Event{}, errors.New("timeout"))
	m.events.On("Get", mock.Anything, mock.AnythingOfType("int64")).Return(func(_ context.Context, id int64) (models.Event, error) {
		return models.Event{ID: id}, nil
	})

	got, err := b.MyBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, got, n)

	assert.Nil(t, got[0].Event)
	for i, booking := range got[1:] {
		require.NotNil(t, booking.Event, i)
		assert.Equal(t, booking.EventID, booking.Event.ID)
	}
}

func TestMyBookingsErrors(t *testing.T) {
	t.Parallel()

	b, _ := newBookings(t, nil)
	_, err := b.MyBookings(context.Background())
	assert.ErrorIs(t, err, ErrLoginRequired)
	assert.NotErrorIs(t, err, ErrNotLoggedIn)

	b, m := newBookings(t, plainUser())
	m.bookings.On("ByUser", mock.Anything, int64(4)).Return(nil, &request.NetworkError{Err: errors.New("refused")})

	_, err = b.MyBookings(context.Background())
	assert.ErrorIs(t, err, request.ErrNetwork)
	m.events.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestTicketsUseCurrentUser(t *testing.T) {
	t.Parallel()

	b, m := newBookings(t, plainUser())
	m.tickets.On("ByUser", mock.Anything, int64(4)).Return([]models.Ticket{{TicketNumber: "T-1"}}, nil)
	m.tickets.On("ByBooking", mock.Anything, int64(100)).Return([]models.Ticket{{TicketNumber: "T-1"}, {TicketNumber: "T-2"}}, nil)
	m.tickets.On("Get", mock.Anything, "T-2").Return(models.Ticket{TicketNumber: "T-2"}, nil)

	mine, err := b.MyTickets(context.Background())
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	forBooking, err := b.Tickets(context.Background(), 100)
	require.NoError(t, err)
	assert.Len(t, forBooking, 2)

	ticket, err := b.Ticket(context.Background(), "T-2")
	require.NoError(t, err)
	assert.Equal(t, "T-2", ticket.TicketNumber)
}

func TestTicketCode(t *testing.T) {
	t.Parallel()

	png := []byte{0x89, 'P', 'N', 'G'}
	raw := base64.StdEncoding.EncodeToString(png)

	ticket := models.Ticket{
		TicketNumber: "T-1",
		QRCode:       raw,
		Barcode:      "data:image/png;base64," + raw,
	}

	img, err := TicketCode(ticket, CodeQR)
	require.NoError(t, err)
	assert.Equal(t, png, img)

	img, err = TicketCode(ticket, CodeBarcode)
	require.NoError(t, err)
	assert.Equal(t, png, img)

	_, err = TicketCode(models.Ticket{}, CodeQR)
	assert.ErrorIs(t, err, ErrNoCode)

	_, err = TicketCode(ticket, CodeKind("aztec"))
	assert.ErrorIs(t, err, ErrNoCode)

	_, err = TicketCode(models.Ticket{QRCode: "%%%"}, CodeQR)
	assert.Error(t, err)
}
