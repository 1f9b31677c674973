package http

import (
	"isp-dashboard/internal/billing"
	"isp-dashboard/pkg/discord"
	pkgLog "isp-dashboard/pkg/log"
)

type Handler struct {
	l       pkgLog.Logger
	uc      billing.UseCase
	discord discord.IDiscord
}

func New(l pkgLog.Logger, uc billing.UseCase, d discord.IDiscord) *Handler {
	return &Handler{
		l:       l,
		uc:      uc,
		discord: d,
	}
}
