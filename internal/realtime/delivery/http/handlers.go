package http

import (
	"isp-dashboard/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary		Live change feed
// @Description	Upgrades to a websocket that receives a message whenever an entity of the organization changes.
// @Description	Browsers pass the access token in the token query parameter.
// @Tags			Realtime
// @Param			organizationId	path		string	true	"Organization ID"
// @Param			token			query		string	false	"Access token"
// @Success		101				{string}	string	"Switching Protocols"
// @Failure		401				{object}	response.Resp
// @Failure		429				{object}	response.Resp
// @Router			/api/v1/{organizationId}/ws [GET]
func (h *Handler) Connect(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processConnectRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	input := req.toInput(nil)
	if err := h.uc.Admit(ctx, input); err != nil {
		h.l.Warnf(ctx, "internal.realtime.delivery.http.Connect.Admit: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already answered the request.
		h.l.Warnf(ctx, "internal.realtime.delivery.http.Connect.Upgrade: %v", err)
		return
	}

	if err := h.uc.Register(ctx, req.toInput(conn)); err != nil {
		h.l.Errorf(ctx, "internal.realtime.delivery.http.Connect.Register: %v", err)
		conn.Close()
	}
}
