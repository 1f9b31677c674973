package http

import (
	"isp-dashboard/internal/station"
	"isp-dashboard/pkg/discord"
	pkgLog "isp-dashboard/pkg/log"
)

type Handler struct {
	l       pkgLog.Logger
	uc      station.UseCase
	discord discord.IDiscord
}

func New(l pkgLog.Logger, uc station.UseCase, d discord.IDiscord) *Handler {
	return &Handler{
		l:       l,
		uc:      uc,
		discord: d,
	}
}
