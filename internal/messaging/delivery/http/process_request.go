package http

import (
	"isp-dashboard/internal/model"
	"isp-dashboard/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *Handler) processListRequest(c *gin.Context) (listReq, model.Scope, error) {
	ctx := c.Request.Context()

	var req listReq
	if err := c.ShouldBindQuery(&req.Filter); err != nil {
		h.l.Warnf(ctx, "internal.messaging.delivery.http.processListRequest.ShouldBindQuery: %v", err)
		return listReq{}, model.Scope{}, errWrongParams
	}
	req.OrganizationID = c.Param("organizationId")

	if err := req.validate(); err != nil {
		return listReq{}, model.Scope{}, err
	}

	return req, scope.GetScopeFromContext(ctx), nil
}

func (h *Handler) processDispatchRequest(c *gin.Context) (dispatchReq, model.Scope, error) {
	ctx := c.Request.Context()

	var req dispatchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.messaging.delivery.http.processDispatchRequest.ShouldBindJSON: %v", err)
		return dispatchReq{}, model.Scope{}, errWrongBody
	}
	req.OrganizationID = c.Param("organizationId")

	if err := req.validate(); err != nil {
		return dispatchReq{}, model.Scope{}, err
	}

	return req, scope.GetScopeFromContext(ctx), nil
}

func (h *Handler) processDetailRequest(c *gin.Context) (detailReq, model.Scope, error) {
	req := detailReq{
		OrganizationID: c.Param("organizationId"),
		ID:             c.Param("templateId"),
	}
	if err := req.validate(); err != nil {
		return detailReq{}, model.Scope{}, err
	}

	return req, scope.GetScopeFromContext(c.Request.Context()), nil
}

func (h *Handler) processWriteRequest(c *gin.Context, withID bool) (writeReq, model.Scope, error) {
	ctx := c.Request.Context()

	var req writeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.messaging.delivery.http.processWriteRequest.ShouldBindJSON: %v", err)
		return writeReq{}, model.Scope{}, errWrongBody
	}
	req.OrganizationID = c.Param("organizationId")
	req.ID = c.Param("templateId")

	if err := req.validate(withID); err != nil {
		return writeReq{}, model.Scope{}, err
	}

	return req, scope.GetScopeFromContext(ctx), nil
}

func (h *Handler) processConfigRequest(c *gin.Context, withBody bool) (configReq, model.Scope, error) {
	ctx := c.Request.Context()

	var req configReq
	if withBody {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.l.Warnf(ctx, "internal.messaging.delivery.http.processConfigRequest.ShouldBindJSON: %v", err)
			return configReq{}, model.Scope{}, errWrongBody
		}
	}
	req.OrganizationID = c.Param("organizationId")

	if err := req.validate(); err != nil {
		return configReq{}, model.Scope{}, err
	}
	return req, scope.GetScopeFromContext(ctx), nil
}

func (h *Handler) processPreviewRequest(c *gin.Context) (previewReq, model.Scope, error) {
	ctx := c.Request.Context()

	var req previewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.messaging.delivery.http.processPreviewRequest.ShouldBindJSON: %v", err)
		return previewReq{}, model.Scope{}, errWrongBody
	}

	if err := req.validate(); err != nil {
		return previewReq{}, model.Scope{}, err
	}
	return req, scope.GetScopeFromContext(ctx), nil
}
