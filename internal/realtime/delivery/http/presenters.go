package http

import (
	"strings"

	"isp-dashboard/internal/realtime"

	"github.com/gorilla/websocket"
)

type connectReq struct {
	OrganizationID string
	UserID         string
}

func (r connectReq) validate() error {
	if strings.TrimSpace(r.OrganizationID) == "" || strings.TrimSpace(r.UserID) == "" {
		return errWrongParams
	}
	return nil
}

func (r connectReq) toInput(conn *websocket.Conn) realtime.ConnectionInput {
	return realtime.ConnectionInput{
		OrganizationID: r.OrganizationID,
		UserID:         r.UserID,
		Conn:           conn,
	}
}
