package models

import (
	"strings"

	"eventPortal/internal/lib/timestamp"
)

type EventStatus string

const (
	EventStatusDraft     EventStatus = "DRAFT"
	EventStatusPublished EventStatus = "PUBLISHED"
	EventStatusCancelled EventStatus = "CANCELLED"
	EventStatusCompleted EventStatus = "COMPLETED"
)

type RecurrencePattern string

const (
	RecurrenceDaily   RecurrencePattern = "DAILY"
	RecurrenceWeekly  RecurrencePattern = "WEEKLY"
	RecurrenceMonthly RecurrencePattern = "MONTHLY"
	RecurrenceYearly  RecurrencePattern = "YEARLY"
)

// Event is owned by the event service; the portal only reads it.
// Invariant: 0 <= AvailableSeats <= Capacity.
type Event struct {
	ID                int64              `json:"id"`
	Name              string             `json:"name"`
	Description       string             `json:"description,omitempty"`
	Location          string             `json:"location"`
	Venue             string             `json:"venue,omitempty"`
	Agenda            string             `json:"agenda,omitempty"`
	Categories        string             `json:"categories,omitempty"`
	EventDate         timestamp.Field    `json:"eventDate"`
	EndDate           timestamp.Field    `json:"endDate"`
	Capacity          int                `json:"capacity"`
	AvailableSeats    int                `json:"availableSeats"`
	Status            EventStatus        `json:"status,omitempty"`
	IsRecurring       bool               `json:"isRecurring,omitempty"`
	RecurrencePattern *RecurrencePattern `json:"recurrencePattern,omitempty"`
	IsMultiSession    bool               `json:"isMultiSession,omitempty"`
}

// CategoryList splits the comma-joined tag list.
func (e Event) CategoryList() []string {
	if strings.TrimSpace(e.Categories) == "" {
		return nil
	}

	var out []string
	for _, c := range strings.Split(e.Categories, ",") {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}

	return out
}

func (e Event) IsPublished() bool {
	return e.Status == EventStatusPublished
}

// EventPayload is what the event service accepts on create. Dates travel as
// ISO strings.
type EventPayload struct {
	Name              string             `json:"name,omitempty"`
	Description       string             `json:"description,omitempty"`
	Location          string             `json:"location,omitempty"`
	Venue             string             `json:"venue,omitempty"`
	Agenda            string             `json:"agenda,omitempty"`
	Categories        string             `json:"categories,omitempty"`
	EventDate         string             `json:"eventDate,omitempty"`
	EndDate           string             `json:"endDate,omitempty"`
	Capacity          int                `json:"capacity,omitempty"`
	IsRecurring       *bool              `json:"isRecurring,omitempty"`
	RecurrencePattern *RecurrencePattern `json:"recurrencePattern,omitempty"`
	IsMultiSession    *bool              `json:"isMultiSession,omitempty"`
}

// EventPatch is an update: nil fields are left out, set fields are sent even
// when empty, so a value can be cleared.
type EventPatch struct {
	Name              *string            `json:"name,omitempty"`
	Description       *string            `json:"description,omitempty"`
	Location          *string            `json:"location,omitempty"`
	Venue             *string            `json:"venue,omitempty"`
	Agenda            *string            `json:"agenda,omitempty"`
	Categories        *string            `json:"categories,omitempty"`
	EventDate         *string            `json:"eventDate,omitempty"`
	EndDate           *string            `json:"endDate,omitempty"`
	Capacity          *int               `json:"capacity,omitempty"`
	IsRecurring       *bool              `json:"isRecurring,omitempty"`
	RecurrencePattern *RecurrencePattern `json:"recurrencePattern,omitempty"`
	IsMultiSession    *bool              `json:"isMultiSession,omitempty"`
}
