package portal

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"

	"eventPortal/internal/lib/logger/sl"
	"eventPortal/internal/models"

	"golang.org/x/sync/errgroup"
)

type BookingForm struct {
	NumberOfTickets int               `json:"numberOfTickets" validate:"required,min=1"`
	TicketType      models.TicketType `json:"ticketType" validate:"omitempty,oneof=FREE PAID VIP GROUP"`
	PricePerTicket  float64           `json:"pricePerTicket" validate:"min=0"`
}

type BookingResult struct {
	Booking models.Booking
	// Event is the event as it looks after the booking; nil if the
	// refresh failed.
	Event *models.Event
}

type CodeKind string

const (
	CodeQR      CodeKind = "qr"
	CodeBarcode CodeKind = "barcode"
)

type Bookings struct {
	log      *slog.Logger
	events   EventService
	bookings BookingService
	tickets  TicketService
	session  Session
}

func NewBookings(log *slog.Logger, events EventService, bookings BookingService, tickets TicketService, session Session) *Bookings {
	return &Bookings{
		log:      log,
		events:   events,
		bookings: bookings,
		tickets:  tickets,
		session:  session,
	}
}

// Book checks the form against the event snapshot the user is looking at
// and only then submits it.
func (b *Bookings) Book(ctx context.Context, event models.Event, form BookingForm) (BookingResult, error) {
	const op = "portal.Bookings.Book"

	log := b.log.With(slog.String("op", op), slog.Int64("event_id", event.ID))

	user, ok := b.session.Current()
	if !ok {
		return BookingResult{}, ErrNotLoggedIn
	}

	if err := validate.Struct(form); err != nil {
		return BookingResult{}, err
	}

	if form.NumberOfTickets > event.AvailableSeats {
		return BookingResult{}, ErrNotEnoughSeats
	}

	ticketType := form.TicketType
	if ticketType == "" {
		ticketType = models.TicketTypePaid
	}

	price := form.PricePerTicket
	if ticketType == models.TicketTypeFree {
		price = 0
	}

	booking, err := b.bookings.Create(ctx, models.BookingPayload{
		UserID:          user.ID,
		EventID:         event.ID,
		NumberOfTickets: form.NumberOfTickets,
		TicketType:      ticketType,
		PricePerTicket:  price,
	})
	if err != nil {
		return BookingResult{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("booking created", slog.Int64("booking_id", booking.ID), slog.Int("tickets", form.NumberOfTickets))

	res := BookingResult{Booking: booking}

	refreshed, err := b.events.Get(ctx, event.ID)
	if err != nil {
		log.Warn("failed to refresh event after booking", sl.Err(err))
		return res, nil
	}
	res.Event = &refreshed

	return res, nil
}

// enrichLimit bounds the concurrent event lookups of one MyBookings call.
const enrichLimit = 8

// MyBookings joins every booking of the current user with its event. The
// join is best effort: a booking whose event cannot be fetched comes back
// without one.
func (b *Bookings) MyBookings(ctx context.Context) ([]models.EnrichedBooking, error) {
	const op = "portal.Bookings.MyBookings"

	log := b.log.With(slog.String("op", op))

	user, err := requireUser(b.session)
	if err != nil {
		return nil, err
	}

	bookings, err := b.bookings.ByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	enriched := make([]models.EnrichedBooking, len(bookings))

	var g errgroup.Group
	g.SetLimit(enrichLimit)

	for i, booking := range bookings {
		i, booking := i, booking
		enriched[i] = models.EnrichedBooking{Booking: booking}

		g.Go(func() error {
			event, err := b.events.Get(ctx, booking.EventID)
			if err != nil {
				log.Warn("failed to fetch event for booking",
					slog.Int64("booking_id", booking.ID),
					slog.Int64("event_id", booking.EventID),
					sl.Err(err),
				)
				return fmt.Errorf("booking %d: %w", booking.ID, err)
			}
			enriched[i].Event = &event
			return nil
		})
	}

	// Each failure is logged above and only costs its booking the event.
	if err := g.Wait(); err != nil {
		log.Debug("bookings returned without their event", sl.Err(err))
	}

	return enriched, nil
}

func (b *Bookings) Booking(ctx context.Context, id int64) (models.Booking, error) {
	if _, err := requireUser(b.session); err != nil {
		return models.Booking{}, err
	}
	return b.bookings.Get(ctx, id)
}

func (b *Bookings) Tickets(ctx context.Context, bookingID int64) ([]models.Ticket, error) {
	if _, err := requireUser(b.session); err != nil {
		return nil, err
	}
	return b.tickets.ByBooking(ctx, bookingID)
}

func (b *Bookings) MyTickets(ctx context.Context) ([]models.Ticket, error) {
	user, err := requireUser(b.session)
	if err != nil {
		return nil, err
	}
	return b.tickets.ByUser(ctx, user.ID)
}

func (b *Bookings) Ticket(ctx context.Context, number string) (models.Ticket, error) {
	if _, err := requireUser(b.session); err != nil {
		return models.Ticket{}, err
	}
	return b.tickets.Get(ctx, number)
}

// TicketCode decodes the base64 raster of the requested code. Both bare
// base64 and data URIs are accepted.
func TicketCode(t models.Ticket, kind CodeKind) ([]byte, error) {
	var encoded string
	switch kind {
	case CodeQR:
		encoded = t.QRCode
	case CodeBarcode:
		encoded = t.Barcode
	default:
		return nil, ErrNoCode
	}

	encoded = strings.TrimSpace(encoded)
	if i := strings.Index(encoded, ";base64,"); strings.HasPrefix(encoded, "data:") && i >= 0 {
		encoded = encoded[i+len(";base64,"):]
	}
	if encoded == "" {
		return nil, ErrNoCode
	}

	img, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode %s code of ticket %s: %w", kind, t.TicketNumber, err)
	}

	return img, nil
}
