package models

import "eventPortal/internal/lib/timestamp"

type TicketType string

const (
	TicketTypeFree  TicketType = "FREE"
	TicketTypePaid  TicketType = "PAID"
	TicketTypeVIP   TicketType = "VIP"
	TicketTypeGroup TicketType = "GROUP"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

type Booking struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"userId"`
	EventID         int64           `json:"eventId"`
	NumberOfTickets int             `json:"numberOfTickets"`
	TicketType      *TicketType     `json:"ticketType,omitempty"`
	PricePerTicket  *float64        `json:"pricePerTicket,omitempty"`
	TotalPrice      *float64        `json:"totalPrice,omitempty"`
	Status          BookingStatus   `json:"status"`
	CreatedAt       timestamp.Field `json:"createdAt"`
}

// EnrichedBooking joins a booking with its event. Event is nil when the
// event could not be fetched.
type EnrichedBooking struct {
	Booking
	Event *Event `json:"event,omitempty"`
}

type BookingPayload struct {
	UserID          int64      `json:"userId"`
	EventID         int64      `json:"eventId"`
	NumberOfTickets int        `json:"numberOfTickets"`
	TicketType      TicketType `json:"ticketType"`
	PricePerTicket  float64    `json:"pricePerTicket"`
}
