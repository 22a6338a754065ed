package timestamp

import (
	"bytes"
	"encoding/json"
)

// Field carries a Value through JSON. Shapes other than a string or an
// array of integers decode to an absent value instead of failing the
// enclosing document.
type Field struct {
	Value Value
}

func Iso(s string) Field {
	return Field{Value: IsoString(s)}
}

func Tuple(parts ...int) Field {
	return Field{Value: ComponentTuple(parts)}
}

func (f Field) IsZero() bool {
	return f.Value == nil
}

func (f *Field) UnmarshalJSON(b []byte) error {
	f.Value = nil

	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil
	}

	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err == nil {
			f.Value = IsoString(s)
		}
	case '[':
		var parts []int
		if err := json.Unmarshal(b, &parts); err == nil {
			f.Value = ComponentTuple(parts)
		}
	}

	return nil
}

func (f Field) MarshalJSON() ([]byte, error) {
	switch v := f.Value.(type) {
	case IsoString:
		return json.Marshal(string(v))
	case ComponentTuple:
		return json.Marshal([]int(v))
	default:
		return []byte("null"), nil
	}
}
