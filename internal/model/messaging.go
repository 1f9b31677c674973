package model

import (
	"time"

	"github.com/aarondl/null/v8"
)

// SmsConfig is the organization's SMS gateway configuration.
// APIKey is write-only and comes back null.
type SmsConfig struct {
	ID        string      `json:"id"`
	Provider  string      `json:"provider"`
	SenderID  string      `json:"senderId"`
	Username  string      `json:"username"`
	APIKey    null.String `json:"apiKey"`
	IsActive  bool        `json:"isActive"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// SmsTemplate is a reusable message body with {{variable}} placeholders.
type SmsTemplate struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	Category  string    `json:"category,omitempty"`
	Variables []string  `json:"variables"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
