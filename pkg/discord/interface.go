package discord

import (
	"context"
	"net/http"
	"strings"
	"time"

	"isp-dashboard/pkg/log"
)

// IDiscord posts embeds to a Discord webhook.
type IDiscord interface {
	SendEmbed(ctx context.Context, options MessageOptions) error
	// ReportBug posts message as a preformatted error report.
	ReportBug(ctx context.Context, message string) error
	Close() error
}

func parseWebhookURL(webhookURL string) (id, token string, err error) {
	webhookURL = strings.TrimSpace(webhookURL)
	if !strings.HasPrefix(webhookURL, webhookPrefix) {
		return "", "", errInvalidWebhook
	}
	parts := strings.SplitN(strings.TrimPrefix(webhookURL, webhookPrefix), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", errInvalidWebhook
	}
	return parts[0], strings.TrimSuffix(parts[1], "/"), nil
}

// New builds a webhook client from a full webhook URL.
func New(l log.Logger, webhookURL string, cfg Config) (IDiscord, error) {
	if webhookURL == "" {
		return nil, errWebhookRequired
	}
	id, token, err := parseWebhookURL(webhookURL)
	if err != nil {
		return nil, err
	}
	return newImpl(l, webhookPrefix+id+"/"+token, cfg), nil
}

func newImpl(l log.Logger, endpoint string, cfg Config) *discordImpl {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RetryCount < 0 {
		cfg.RetryCount = 0
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = DefaultRetryDelay
	}
	if cfg.Username == "" {
		cfg.Username = DefaultUsername
	}
	return &discordImpl{
		l:        l,
		endpoint: endpoint,
		config:   cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        4,
				MaxIdleConnsPerHost: 4,
				IdleConnTimeout:     30 * time.Second,
			},
		},
		sleep: sleepCtx,
	}
}
