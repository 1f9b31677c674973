package usecase

import (
	"context"
	"strings"

	"isp-dashboard/pkg/discord"
)

// Go runs fn in the background with a context that outlives the request.
func (uc *implUseCase) Go(ctx context.Context, name string, fn func(ctx context.Context) error) {
	detached := context.WithoutCancel(ctx)
	go func() {
		if err := fn(detached); err != nil {
			uc.logger.Errorf(detached, "internal.alert.usecase.Go.%s: %v", name, err)
		}
	}()
}

// mapPriorityToColor maps ticket priority to Discord embed color.
func mapPriorityToColor(priority string) int {
	switch strings.ToUpper(priority) {
	case "URGENT":
		return discord.ColorRed
	case "HIGH":
		return discord.ColorOrange
	case "MEDIUM":
		return discord.ColorYellow
	case "LOW":
		return discord.ColorBlue
	default:
		return discord.ColorGray
	}
}

func buildField(name string, value string, inline bool) discord.EmbedField {
	if value == "" {
		value = "N/A"
	}
	// Discord rejects field values over 1024 characters.
	if len(value) > 1024 {
		value = truncateText(value, 1024)
	}
	return discord.EmbedField{
		Name:   name,
		Value:  value,
		Inline: inline,
	}
}

func truncateText(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max < 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
