package models

import "eventPortal/internal/lib/timestamp"

type Ticket struct {
	ID           int64           `json:"id"`
	TicketNumber string          `json:"ticketNumber"`
	BookingID    int64           `json:"bookingId"`
	UserID       int64           `json:"userId"`
	EventID      int64           `json:"eventId"`
	TicketType   TicketType      `json:"ticketType"`
	Price        float64         `json:"price"`
	QRCode       string          `json:"qrCode,omitempty"`
	Barcode      string          `json:"barcode,omitempty"`
	IsUsed       bool            `json:"isUsed"`
	UsedAt       timestamp.Field `json:"usedAt"`
}
