package http

import (
	"isp-dashboard/internal/servicepackage"
	"isp-dashboard/pkg/discord"
	pkgLog "isp-dashboard/pkg/log"
)

type Handler struct {
	l       pkgLog.Logger
	uc      servicepackage.UseCase
	discord discord.IDiscord
}

// New returns a new package handler.
func New(l pkgLog.Logger, uc servicepackage.UseCase, d discord.IDiscord) *Handler {
	return &Handler{
		l:       l,
		uc:      uc,
		discord: d,
	}
}
