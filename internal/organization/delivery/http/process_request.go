package http

import (
	"isp-dashboard/internal/model"
	"isp-dashboard/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *Handler) processOrgRequest(c *gin.Context) (orgReq, model.Scope, error) {
	req := orgReq{OrganizationID: c.Param("organizationId")}
	if err := req.validate(); err != nil {
		return orgReq{}, model.Scope{}, err
	}
	return req, scope.GetScopeFromContext(c.Request.Context()), nil
}

func (h *Handler) processUpdateRequest(c *gin.Context) (updateReq, model.Scope, error) {
	ctx := c.Request.Context()

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.organization.delivery.http.processUpdateRequest.ShouldBindJSON: %v", err)
		return updateReq{}, model.Scope{}, errWrongBody
	}
	req.OrganizationID = c.Param("organizationId")

	if err := req.validate(); err != nil {
		return updateReq{}, model.Scope{}, err
	}
	return req, scope.GetScopeFromContext(ctx), nil
}

func (h *Handler) processListRequest(c *gin.Context) (listReq, model.Scope, error) {
	ctx := c.Request.Context()

	var req listReq
	if err := c.ShouldBindQuery(&req.Filter); err != nil {
		h.l.Warnf(ctx, "internal.organization.delivery.http.processListRequest.ShouldBindQuery: %v", err)
		return listReq{}, model.Scope{}, errWrongParams
	}
	req.OrganizationID = c.Param("organizationId")

	if err := req.validate(); err != nil {
		return listReq{}, model.Scope{}, err
	}
	return req, scope.GetScopeFromContext(ctx), nil
}

func (h *Handler) processInviteRequest(c *gin.Context) (inviteReq, model.Scope, error) {
	ctx := c.Request.Context()

	var req inviteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.organization.delivery.http.processInviteRequest.ShouldBindJSON: %v", err)
		return inviteReq{}, model.Scope{}, errWrongBody
	}
	req.OrganizationID = c.Param("organizationId")

	if err := req.validate(); err != nil {
		return inviteReq{}, model.Scope{}, err
	}
	return req, scope.GetScopeFromContext(ctx), nil
}

func (h *Handler) processMemberRequest(c *gin.Context, withBody bool) (memberReq, model.Scope, error) {
	ctx := c.Request.Context()

	var req memberReq
	if withBody {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.l.Warnf(ctx, "internal.organization.delivery.http.processMemberRequest.ShouldBindJSON: %v", err)
			return memberReq{}, model.Scope{}, errWrongBody
		}
	}
	req.OrganizationID = c.Param("organizationId")
	req.MemberID = c.Param("memberId")

	if err := req.validate(); err != nil {
		return memberReq{}, model.Scope{}, err
	}
	return req, scope.GetScopeFromContext(ctx), nil
}

func (h *Handler) processRoleRequest(c *gin.Context, withBody, withID bool) (roleReq, model.Scope, error) {
	ctx := c.Request.Context()

	var req roleReq
	if withBody {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.l.Warnf(ctx, "internal.organization.delivery.http.processRoleRequest.ShouldBindJSON: %v", err)
			return roleReq{}, model.Scope{}, errWrongBody
		}
	}
	req.OrganizationID = c.Param("organizationId")
	req.ID = c.Param("roleId")

	if err := req.validate(withID); err != nil {
		return roleReq{}, model.Scope{}, err
	}
	return req, scope.GetScopeFromContext(ctx), nil
}
