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
		h.l.Warnf(ctx, "internal.servicepackage.delivery.http.processListRequest.ShouldBindQuery: %v", err)
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
		h.l.Warnf(ctx, "internal.servicepackage.delivery.http.processDispatchRequest.ShouldBindJSON: %v", err)
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
		ID:             c.Param("packageId"),
	}
	if err := req.validate(); err != nil {
		return detailReq{}, model.Scope{}, err
	}

	return req, scope.GetScopeFromContext(c.Request.Context()), nil
}

func (h *Handler) processCreateRequest(c *gin.Context) (createReq, model.Scope, error) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.servicepackage.delivery.http.processCreateRequest.ShouldBindJSON: %v", err)
		return createReq{}, model.Scope{}, errWrongBody
	}
	req.OrganizationID = c.Param("organizationId")

	if err := req.validate(); err != nil {
		return createReq{}, model.Scope{}, err
	}

	return req, scope.GetScopeFromContext(ctx), nil
}

func (h *Handler) processUpdateRequest(c *gin.Context) (updateReq, model.Scope, error) {
	ctx := c.Request.Context()

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.servicepackage.delivery.http.processUpdateRequest.ShouldBindJSON: %v", err)
		return updateReq{}, model.Scope{}, errWrongBody
	}
	req.OrganizationID = c.Param("organizationId")
	req.ID = c.Param("packageId")

	if err := req.validate(); err != nil {
		return updateReq{}, model.Scope{}, err
	}

	return req, scope.GetScopeFromContext(ctx), nil
}
