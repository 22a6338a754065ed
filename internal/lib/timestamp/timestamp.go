// Package timestamp decodes the two wire shapes the upstream services use for
// points in time: an ISO-8601 string or a [year, month, day, hour, minute, ...]
// component tuple with a 1-based month.
package timestamp

import (
	"time"
)

// NotAvailable is rendered for any value that cannot be decoded.
const NotAvailable = "Date not available"

// minTupleLen is year, month, day, hour, minute.
const minTupleLen = 5

// Value is either an IsoString or a ComponentTuple.
type Value interface {
	isValue()
}

// IsoString is an ISO-8601 timestamp as sent on the wire.
type IsoString string

// ComponentTuple is [year, month, day, hour, minute, ...] with month in 1..12.
type ComponentTuple []int

func (IsoString) isValue()      {}
func (ComponentTuple) isValue() {}

var isoLayouts = []struct {
	layout string
	// zoned layouts carry their own offset; the rest are wall time.
	zoned bool
}{
	{time.RFC3339Nano, true},
	{"2006-01-02T15:04:05.999999999", false},
	{"2006-01-02T15:04", false},
}

const dateOnlyLayout = "2006-01-02"

// Decode resolves v to an instant shown in loc. The boolean is false for a
// nil value, a tuple shorter than five elements or an unparseable string.
func Decode(v Value, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}

	switch v := v.(type) {
	case IsoString:
		return decodeIso(string(v), loc)
	case ComponentTuple:
		return decodeTuple(v, loc)
	default:
		return time.Time{}, false
	}
}

func decodeIso(s string, loc *time.Location) (time.Time, bool) {
	for _, l := range isoLayouts {
		if l.zoned {
			if t, err := time.Parse(l.layout, s); err == nil {
				return t.In(loc), true
			}
			continue
		}
		if t, err := time.ParseInLocation(l.layout, s, loc); err == nil {
			return t, true
		}
	}

	// date-only forms are UTC midnight, the way browsers read them
	if t, err := time.Parse(dateOnlyLayout, s); err == nil {
		return t.In(loc), true
	}

	return time.Time{}, false
}

func decodeTuple(c ComponentTuple, loc *time.Location) (time.Time, bool) {
	if len(c) < minTupleLen {
		return time.Time{}, false
	}

	year, month, day, hour, minute := c[0], c[1], c[2], c[3], c[4]

	// time.Month is 1-based like the wire month, so it maps without a shift.
	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, loc), true
}
