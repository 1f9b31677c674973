package http

import (
	"isp-dashboard/internal/model"
	"isp-dashboard/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *Handler) processConfigRequest(c *gin.Context) (configReq, model.Scope, error) {
	req := configReq{OrganizationID: c.Param("organizationId")}
	if err := req.validate(); err != nil {
		return configReq{}, model.Scope{}, err
	}
	return req, scope.GetScopeFromContext(c.Request.Context()), nil
}

func (h *Handler) processMpesaRequest(c *gin.Context) (mpesaReq, model.Scope, error) {
	ctx := c.Request.Context()

	var req mpesaReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.payment.delivery.http.processMpesaRequest.ShouldBindJSON: %v", err)
		return mpesaReq{}, model.Scope{}, errWrongBody
	}
	req.OrganizationID = c.Param("organizationId")

	if err := req.validate(); err != nil {
		return mpesaReq{}, model.Scope{}, err
	}
	return req, scope.GetScopeFromContext(ctx), nil
}

func (h *Handler) processKopoKopoRequest(c *gin.Context) (kopoKopoReq, model.Scope, error) {
	ctx := c.Request.Context()

	var req kopoKopoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.payment.delivery.http.processKopoKopoRequest.ShouldBindJSON: %v", err)
		return kopoKopoReq{}, model.Scope{}, errWrongBody
	}
	req.OrganizationID = c.Param("organizationId")

	if err := req.validate(); err != nil {
		return kopoKopoReq{}, model.Scope{}, err
	}
	return req, scope.GetScopeFromContext(ctx), nil
}
