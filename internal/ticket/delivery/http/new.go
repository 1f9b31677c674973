package http

import (
	"isp-dashboard/internal/ticket"
	"isp-dashboard/pkg/discord"
	pkgLog "isp-dashboard/pkg/log"
)

type Handler struct {
	l       pkgLog.Logger
	uc      ticket.UseCase
	discord discord.IDiscord
}

func New(l pkgLog.Logger, uc ticket.UseCase, d discord.IDiscord) *Handler {
	return &Handler{
		l:       l,
		uc:      uc,
		discord: d,
	}
}
