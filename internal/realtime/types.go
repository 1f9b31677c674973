package realtime

import (
	"strings"
	"time"

	"isp-dashboard/internal/model"

	"github.com/gorilla/websocket"
)

const (
	channelPrefix = "isp:"
	channelSuffix = ":changes"

	// ChannelPattern matches the change channel of every organization.
	ChannelPattern = channelPrefix + "*" + channelSuffix
)

// Channel is the Redis channel carrying changes of organizationID.
func Channel(organizationID string) string {
	return channelPrefix + organizationID + channelSuffix
}

// ParseChannel extracts the organization from a change channel.
func ParseChannel(channel string) (string, error) {
	if !strings.HasPrefix(channel, channelPrefix) || !strings.HasSuffix(channel, channelSuffix) {
		return "", ErrInvalidChannel
	}
	orgID := strings.TrimSuffix(strings.TrimPrefix(channel, channelPrefix), channelSuffix)
	if orgID == "" || strings.Contains(orgID, ":") {
		return "", ErrInvalidChannel
	}
	return orgID, nil
}

type MessageType string

const (
	MessageTypeChange MessageType = "CHANGE"
)

// Config bounds the hub and the per-connection pumps.
type Config struct {
	MaxConnections  int
	MaxConnsPerUser int
	// ConnectRate caps connection attempts per user within ConnectWindow. Zero disables it.
	ConnectRate    int
	ConnectWindow  time.Duration
	PongWait       time.Duration
	PingPeriod     time.Duration
	WriteWait      time.Duration
	MaxMessageSize int64
}

// ProcessMessageInput is one message from a change channel.
type ProcessMessageInput struct {
	Channel string
	Payload []byte
}

// ConnectionInput is an upgraded dashboard connection.
type ConnectionInput struct {
	OrganizationID string
	UserID         string
	Conn           *websocket.Conn
}

type HubStats struct {
	ActiveConnections   int   `json:"active_connections"`
	ActiveOrganizations int   `json:"active_organizations"`
	TotalMessagesSent   int64 `json:"total_messages_sent"`
	TotalMessagesFailed int64 `json:"total_messages_failed"`
}

// NotificationOutput is what a dashboard receives.
type NotificationOutput struct {
	Type      MessageType       `json:"type"`
	Timestamp time.Time         `json:"timestamp"`
	Payload   model.ChangeEvent `json:"payload"`
}
