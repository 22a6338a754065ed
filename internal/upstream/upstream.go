// Package upstream holds typed clients for the user, event, booking and
// ticketing services. Every call goes through request.Client.
package upstream

import (
	"eventPortal/internal/config"
	"eventPortal/internal/lib/api/request"
)

type Services struct {
	Users    *Users
	Events   *Events
	Bookings *Bookings
	Tickets  *Tickets
}

func New(c *request.Client, urls config.Services) *Services {
	return &Services{
		Users:    &Users{c: c, base: urls.UserURL},
		Events:   &Events{c: c, base: urls.EventURL},
		Bookings: &Bookings{c: c, base: urls.BookingURL},
		Tickets:  &Tickets{c: c, base: urls.TicketingURL},
	}
}
