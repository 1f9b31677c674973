package usecase

import (
	"context"
	"fmt"
	"time"

	"isp-dashboard/internal/alert"
	"isp-dashboard/pkg/discord"
)

func (uc *implUseCase) DispatchUrgentTicket(ctx context.Context, input alert.UrgentTicketInput) error {
	if input.TicketID == "" || input.Title == "" {
		return alert.ErrInvalidInput
	}
	if uc.discord == nil {
		return nil
	}

	fields := []discord.EmbedField{
		buildField("Priority", input.Priority, true),
		buildField("Status", input.Status, true),
		buildField("Category", input.Category, true),
		buildField("Customer", input.CustomerName, true),
		buildField("Reported By", input.ReportedBy, true),
		buildField("Description", input.Description, false),
	}

	createdAt := input.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	opts := discord.MessageOptions{
		Type:        discord.MessageTypeError,
		Color:       mapPriorityToColor(input.Priority),
		Title:       fmt.Sprintf("🚨 %s ticket: %s", input.Priority, truncateText(input.Title, 200)),
		Description: fmt.Sprintf("Ticket **%s** in organization %s needs attention.", input.TicketID, input.OrganizationID),
		Fields:      fields,
		Timestamp:   createdAt,
		Footer: &discord.EmbedFooter{
			Text: "ISP Dashboard • Support",
		},
	}

	return uc.discord.SendEmbed(ctx, opts)
}
