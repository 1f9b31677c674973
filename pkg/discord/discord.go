package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func colorFor(msgType MessageType) int {
	switch msgType {
	case MessageTypeSuccess:
		return ColorGreen
	case MessageTypeWarning:
		return ColorYellow
	case MessageTypeError:
		return ColorRed
	default:
		return ColorBlue
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func (d *discordImpl) Close() error {
	d.client.CloseIdleConnections()
	return nil
}

func (d *discordImpl) SendEmbed(ctx context.Context, options MessageOptions) error {
	e := embed{
		Title:       truncate(options.Title, maxTitleLen),
		Description: truncate(options.Description, maxDescriptionLen),
		Color:       options.Color,
		Footer:      options.Footer,
		Fields:      make([]EmbedField, 0, len(options.Fields)),
	}
	if e.Color == 0 {
		e.Color = colorFor(options.Type)
	}
	if !options.Timestamp.IsZero() {
		e.Timestamp = options.Timestamp.UTC().Format(time.RFC3339)
	}
	for _, f := range options.Fields {
		f.Value = truncate(f.Value, maxFieldValueLen)
		e.Fields = append(e.Fields, f)
	}
	if e.length() > maxEmbedLength {
		return errEmbedTooLong
	}
	return d.send(ctx, webhookPayload{Username: d.config.Username, Embeds: []embed{e}})
}

func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	// Leave room for the code fence.
	message = truncate(message, maxDescriptionLen-6)
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeError,
		Title:       reportBugTitle,
		Description: "```" + message + "```",
		Timestamp:   time.Now(),
	})
}

func (d *discordImpl) send(ctx context.Context, payload webhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("discord: marshal payload: %w", err)
	}

	var lastErr error
	wait := d.config.RetryDelay
	for attempt := 0; attempt <= d.config.RetryCount; attempt++ {
		if attempt > 0 {
			if d.l != nil {
				d.l.Infof(ctx, "pkg.discord.send: retrying in %s (attempt %d/%d)", wait, attempt, d.config.RetryCount)
			}
			if err := d.sleep(ctx, wait); err != nil {
				return err
			}
			wait = d.config.RetryDelay
		}

		err := d.post(ctx, body)
		if err == nil {
			return nil
		}
		lastErr = err
		if d.l != nil {
			d.l.Warnf(ctx, "pkg.discord.send: attempt %d failed: %v", attempt+1, err)
		}

		var se *statusError
		if errors.As(err, &se) {
			if !se.retryable() {
				return err
			}
			if hint := retryAfter(se); hint > 0 {
				wait = hint
			}
		}
	}
	return fmt.Errorf("discord: failed after %d attempts: %w", d.config.RetryCount+1, lastErr)
}

func (d *discordImpl) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("discord: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("discord: send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return &statusError{status: resp.StatusCode, body: string(msg)}
}

// retryAfter reads the wait Discord asks for on a 429, capped at maxRetryWait.
func retryAfter(se *statusError) time.Duration {
	if se.status != http.StatusTooManyRequests {
		return 0
	}
	var rl rateLimitBody
	if err := json.Unmarshal([]byte(se.body), &rl); err != nil || rl.RetryAfter <= 0 {
		return 0
	}
	return min(time.Duration(rl.RetryAfter*float64(time.Second)), maxRetryWait)
}
