package form

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/aarondl/null/v8"
)

// Number is a numeric form field that may arrive as text.
// "" and null mean not provided; "12" and 12 both mean 12. A provided zero
// stays distinct from an absent value.
type Number struct {
	null.Float64
}

// NumberFrom returns a provided Number.
func NumberFrom(f float64) Number {
	return Number{null.Float64From(f)}
}

// NumberFromPtr returns an absent Number for nil.
func NumberFromPtr(f *float64) Number {
	return Number{null.Float64FromPtr(f)}
}

// UnmarshalJSON accepts a JSON number, a numeric string, "" or null.
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		n.Float64 = null.Float64{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return n.UnmarshalText([]byte(s))
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return ErrNotANumber
	}
	n.Float64 = null.Float64From(f)
	return nil
}

// UnmarshalText parses form-encoded input.
func (n *Number) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if s == "" {
		n.Float64 = null.Float64{}
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return ErrNotANumber
	}
	n.Float64 = null.Float64From(f)
	return nil
}

// IsZero reports an absent value, so `omitzero` drops it from payloads.
func (n Number) IsZero() bool {
	return !n.Valid
}

// Int returns the value truncated to an int64, 0 when absent.
func (n Number) Int() int64 {
	if !n.Valid {
		return 0
	}
	return int64(n.Float64.Float64)
}

func (n Number) value() any {
	if !n.Valid {
		return nil
	}
	f := n.Float64.Float64
	return &f
}
