package usecase

import (
	"context"
	"unicode/utf8"

	"isp-dashboard/internal/messaging"
	"isp-dashboard/internal/model"
)

func (uc *usecase) Preview(ctx context.Context, sc model.Scope, ip messaging.PreviewInput) (messaging.Preview, error) {
	if _, err := placeholders(ip.Content); err != nil {
		return messaging.Preview{}, err
	}

	text, missing := render(ip.Content, ip.Values)
	return messaging.Preview{
		Text:       text,
		Characters: utf8.RuneCountInString(text),
		Parts:      smsParts(text),
		Missing:    missing,
	}, nil
}
