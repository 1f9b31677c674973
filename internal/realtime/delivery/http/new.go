package http

import (
	"net/http"

	"isp-dashboard/internal/middleware"
	"isp-dashboard/internal/realtime"
	"isp-dashboard/pkg/discord"
	pkgLog "isp-dashboard/pkg/log"

	"github.com/gorilla/websocket"
)

// WSConfig sizes the upgrader and lists the dashboard origins allowed to connect.
type WSConfig struct {
	ReadBufferSize  int
	WriteBufferSize int
	AllowedOrigins  []string
}

type Handler struct {
	l        pkgLog.Logger
	uc       realtime.UseCase
	discord  discord.IDiscord
	upgrader websocket.Upgrader
}

func New(l pkgLog.Logger, uc realtime.UseCase, d discord.IDiscord, cfg WSConfig) *Handler {
	return &Handler{
		l:       l,
		uc:      uc,
		discord: d,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin: func(r *http.Request) bool {
				return middleware.IsOriginAllowed(r.Header.Get("Origin"), cfg.AllowedOrigins)
			},
		},
	}
}
