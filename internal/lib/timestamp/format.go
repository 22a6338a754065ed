package timestamp

import "time"

type Style int

const (
	DateOnly Style = iota
	DateTime
	DateTimeWeekday
)

var layouts = map[Style]string{
	DateOnly:        "January 2, 2006",
	DateTime:        "January 2, 2006 at 03:04 PM",
	DateTimeWeekday: "Monday, January 2, 2006 at 03:04 PM",
}

// Formatter renders values for viewers in Location.
type Formatter struct {
	Location *time.Location
}

func NewFormatter(loc *time.Location) Formatter {
	if loc == nil {
		loc = time.Local
	}
	return Formatter{Location: loc}
}

func (f Formatter) Format(v Value, style Style) string {
	t, ok := Decode(v, f.Location)
	if !ok {
		return NotAvailable
	}

	layout, ok := layouts[style]
	if !ok {
		layout = layouts[DateTime]
	}

	return t.Format(layout)
}

func (f Formatter) FormatField(field Field, style Style) string {
	return f.Format(field.Value, style)
}
