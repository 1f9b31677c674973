package discord

import (
	"context"
	"net/http"
	"time"

	"isp-dashboard/pkg/log"
)

// Config tunes the webhook client. Zero values fall back to the defaults.
type Config struct {
	Timeout    time.Duration
	RetryCount int
	RetryDelay time.Duration
	Username   string
}

type discordImpl struct {
	l        log.Logger
	endpoint string
	config   Config
	client   *http.Client
	sleep    func(ctx context.Context, d time.Duration) error
}

// MessageType picks the embed color when MessageOptions.Color is zero.
type MessageType string

const (
	MessageTypeInfo    MessageType = "info"
	MessageTypeSuccess MessageType = "success"
	MessageTypeWarning MessageType = "warning"
	MessageTypeError   MessageType = "error"
)

type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

type EmbedFooter struct {
	Text string `json:"text"`
}

type embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
	Footer      *EmbedFooter `json:"footer,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
}

func (e embed) length() int {
	n := len(e.Title) + len(e.Description)
	if e.Footer != nil {
		n += len(e.Footer.Text)
	}
	for _, f := range e.Fields {
		n += len(f.Name) + len(f.Value)
	}
	return n
}

type webhookPayload struct {
	Username string  `json:"username,omitempty"`
	Embeds   []embed `json:"embeds"`
}

// rateLimitBody is the JSON Discord sends with a 429.
type rateLimitBody struct {
	RetryAfter float64 `json:"retry_after"`
}

// MessageOptions describes one embed.
type MessageOptions struct {
	Type MessageType
	// Color overrides the color derived from Type when non-zero.
	Color       int
	Title       string
	Description string
	Fields      []EmbedField
	Footer      *EmbedFooter
	Timestamp   time.Time
}
