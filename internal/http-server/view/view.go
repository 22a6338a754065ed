// Package view shapes models for the front end, with every timestamp
// already rendered for the viewer's zone.
package view

import (
	"fmt"
	"net/url"

	"eventPortal/internal/lib/timestamp"
	"eventPortal/internal/models"
)

type EventView struct {
	models.Event
	DisplayDate    string   `json:"displayDate"`
	DisplayEndDate string   `json:"displayEndDate,omitempty"`
	CategoryTags   []string `json:"categoryTags"`
	SoldOut        bool     `json:"soldOut"`
}

type BookingView struct {
	models.Booking
	DisplayCreatedAt string     `json:"displayCreatedAt"`
	Event            *EventView `json:"event,omitempty"`
}

type TicketView struct {
	models.Ticket
	DisplayUsedAt string `json:"displayUsedAt,omitempty"`
	QRCodeURL     string `json:"qrCodeUrl,omitempty"`
	BarcodeURL    string `json:"barcodeUrl,omitempty"`
}

type Renderer struct {
	f timestamp.Formatter
}

func New(f timestamp.Formatter) Renderer {
	return Renderer{f: f}
}

// Card is the event as shown in lists.
func (r Renderer) Card(e models.Event) EventView {
	return r.event(e, timestamp.DateTime)
}

func (r Renderer) Cards(events []models.Event) []EventView {
	out := make([]EventView, 0, len(events))
	for _, e := range events {
		out = append(out, r.Card(e))
	}
	return out
}

// Detail is the event as shown on its own page.
func (r Renderer) Detail(e models.Event) EventView {
	return r.event(e, timestamp.DateTimeWeekday)
}

func (r Renderer) event(e models.Event, style timestamp.Style) EventView {
	v := EventView{
		Event:        e,
		DisplayDate:  r.f.FormatField(e.EventDate, style),
		CategoryTags: e.CategoryList(),
		SoldOut:      e.AvailableSeats <= 0,
	}
	if v.CategoryTags == nil {
		v.CategoryTags = []string{}
	}
	if !e.EndDate.IsZero() {
		v.DisplayEndDate = r.f.FormatField(e.EndDate, style)
	}
	return v
}

func (r Renderer) Booking(b models.Booking) BookingView {
	return BookingView{
		Booking:          b,
		DisplayCreatedAt: r.f.FormatField(b.CreatedAt, timestamp.DateOnly),
	}
}

// Enriched renders a joined booking. A missing event stays nil so the
// front end can show the booking on its own.
func (r Renderer) Enriched(b models.EnrichedBooking) BookingView {
	v := r.Booking(b.Booking)
	if b.Event != nil {
		ev := r.Card(*b.Event)
		v.Event = &ev
	}
	return v
}

func (r Renderer) EnrichedList(bookings []models.EnrichedBooking) []BookingView {
	out := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, r.Enriched(b))
	}
	return out
}

// Ticket links the code images to the ticket code route under base.
func (r Renderer) Ticket(base string, t models.Ticket) TicketView {
	v := TicketView{Ticket: t}
	if !t.UsedAt.IsZero() {
		v.DisplayUsedAt = r.f.FormatField(t.UsedAt, timestamp.DateTime)
	}

	number := url.PathEscape(t.TicketNumber)
	if t.QRCode != "" {
		v.QRCodeURL = fmt.Sprintf("%s/tickets/%s/qr.png", base, number)
	}
	if t.Barcode != "" {
		v.BarcodeURL = fmt.Sprintf("%s/tickets/%s/barcode.png", base, number)
	}

	// The raw codes are served as images instead.
	v.QRCode, v.Barcode = "", ""

	return v
}

func (r Renderer) Tickets(base string, tickets []models.Ticket) []TicketView {
	out := make([]TicketView, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, r.Ticket(base, t))
	}
	return out
}
