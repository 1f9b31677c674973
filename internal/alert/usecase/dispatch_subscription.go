package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"isp-dashboard/internal/alert"
	"isp-dashboard/pkg/discord"
)

func (uc *implUseCase) DispatchSubscriptionChange(ctx context.Context, input alert.SubscriptionChangeInput) error {
	if input.SubscriptionID == "" || input.Event == "" {
		return alert.ErrInvalidInput
	}
	if uc.discord == nil {
		return nil
	}

	msgType := discord.MessageTypeInfo
	if strings.EqualFold(input.Event, "cancelled") {
		msgType = discord.MessageTypeWarning
	}

	ts := input.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	opts := discord.MessageOptions{
		Type:        msgType,
		Title:       fmt.Sprintf("Subscription %s: %s", strings.ToLower(input.Event), input.PlanName),
		Description: fmt.Sprintf("Organization %s, subscription **%s**.", input.OrganizationID, input.SubscriptionID),
		Fields: []discord.EmbedField{
			buildField("Plan", input.PlanName, true),
			buildField("By", input.User, true),
		},
		Timestamp: ts,
		Footer: &discord.EmbedFooter{
			Text: "ISP Dashboard • Billing",
		},
	}

	return uc.discord.SendEmbed(ctx, opts)
}
