package datatable

import (
	"strconv"
	"strings"
	"time"

	"github.com/aarondl/null/v8"
)

// Speed renders a rate in Mbps.
func Speed(mbps float64) string {
	return strconv.FormatFloat(mbps, 'f', -1, 64) + " Mbps"
}

// Money renders an amount with two decimals and thousands separators.
func Money(currency string, amount float64) string {
	s := strconv.FormatFloat(amount, 'f', 2, 64)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, frac, _ := strings.Cut(s, ".")
	var sb strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}

	out := sb.String() + "." + frac
	if neg {
		out = "-" + out
	}
	if currency == "" {
		return out
	}
	return currency + " " + out
}

// Enum renders an upper snake case value as words: IN_PROGRESS is "In Progress".
func Enum[E ~string](v E) string {
	words := strings.Split(strings.ToLower(string(v)), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// Date renders t as a calendar date; the zero time is blank.
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// NullDate renders an optional date, blank when absent.
func NullDate(t null.Time) string {
	if !t.Valid {
		return ""
	}
	return Date(t.Time)
}

// Bool renders a yes/no flag.
func Bool(b bool, yes, no string) string {
	if b {
		return yes
	}
	return no
}
