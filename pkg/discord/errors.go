package discord

import (
	"errors"
	"fmt"
)

var (
	errWebhookRequired = errors.New("discord: webhook url is required")
	errInvalidWebhook  = errors.New("discord: webhook url must be https://discord.com/api/webhooks/{id}/{token}")
	errEmbedTooLong    = errors.New("discord: embed exceeds 6000 characters")
)

// statusError is a non-2xx webhook response.
type statusError struct {
	status int
	body   string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("discord: webhook returned status %d: %s", e.status, e.body)
}

// retryable reports whether resending the same payload can succeed.
func (e *statusError) retryable() bool {
	return e.status == 429 || e.status >= 500
}
