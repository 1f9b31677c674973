package http

import (
	"isp-dashboard/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *Handler) processConnectRequest(c *gin.Context) (connectReq, error) {
	sc := scope.GetScopeFromContext(c.Request.Context())
	req := connectReq{
		OrganizationID: c.Param("organizationId"),
		UserID:         sc.UserID,
	}
	if err := req.validate(); err != nil {
		return connectReq{}, err
	}
	return req, nil
}
