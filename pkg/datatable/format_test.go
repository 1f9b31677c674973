package datatable

import (
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		currency string
		amount   float64
		want     string
	}{
		{"KES", 0, "KES 0.00"},
		{"KES", 999.5, "KES 999.50"},
		{"KES", 1500, "KES 1,500.00"},
		{"", 1234567.891, "1,234,567.89"},
		{"USD", -2500, "USD -2,500.00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Money(tt.currency, tt.amount))
		})
	}
}

func TestEnum(t *testing.T) {
	assert.Equal(t, "In Progress", Enum("IN_PROGRESS"))
	assert.Equal(t, "Pppoe", Enum("PPPOE"))
	assert.Equal(t, "", Enum(""))
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "10 Mbps", Speed(10))
	assert.Equal(t, "2.5 Mbps", Speed(2.5))
	assert.Equal(t, "", Date(time.Time{}))
	assert.Equal(t, "2026-03-01", NullDate(null.TimeFrom(time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC))))
	assert.Equal(t, "", NullDate(null.Time{}))
	assert.Equal(t, "Active", Bool(true, "Active", "Inactive"))
}
