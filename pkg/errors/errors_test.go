package errors

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorCollector(t *testing.T) {
	var empty *ValidationErrorCollector
	assert.False(t, empty.HasError())

	c := NewValidationErrorCollector().
		Add(NewValidationError(400, "phone", "Phone is required")).
		Add(NewValidationError(400, "name", "Name is required")).
		Add(NewValidationError(400, "phone", "Phone must be a Kenyan number"))

	assert.True(t, c.HasError())
	assert.Len(t, c.Errors(), 2)
	assert.Equal(t, map[string]string{"phone": "Phone is required", "name": "Name is required"}, c.Fields())
	assert.Equal(t, "phone: Phone is required, Phone must be a Kenyan number; name: Name is required", c.Error())
}

func TestHTTPErrorWithRetryAfter(t *testing.T) {
	base := NewHTTPError(20002, "busy", 0)
	assert.Equal(t, 400, base.StatusCode)

	hinted := base.WithRetryAfter(30 * time.Second)
	assert.Equal(t, 30*time.Second, hinted.RetryAfter)
	assert.Zero(t, base.RetryAfter)
}

func TestPermissionError(t *testing.T) {
	err := NewPermissionError(403, "packages", "full")
	assert.Equal(t, "full access to packages required", err.Error())
}
