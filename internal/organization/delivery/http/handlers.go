package http

import (
	"net/http"

	"isp-dashboard/internal/permission"
	"isp-dashboard/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary		Organization detail with members and roles
// @Tags			Organization
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Success		200				{object}	response.Resp
// @Failure		404				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/organization [GET]
func (h *Handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processOrgRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	org, err := h.uc.Organization(ctx, sc, req.OrganizationID)
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, org)
}

// @Summary		Organization settings form
// @Tags			Organization
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Success		200				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/organization/edit [GET]
func (h *Handler) EditForm(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processOrgRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	view, err := h.uc.EditForm(ctx, sc, req.OrganizationID)
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, view)
}

// @Summary		Update organization settings
// @Tags			Organization
// @Accept			json
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Success		200				{object}	response.Resp
// @Failure		400				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/organization [PUT]
func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUpdateRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	org, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, org)
}

// @Summary		List organization members
// @Tags			Members
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Param			page			query		int		false	"Page"
// @Param			page_size		query		int		false	"Page size"
// @Param			sort_by			query		string	false	"Sort field"
// @Param			search			query		string	false	"Name or email"
// @Success		200				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/members [GET]
func (h *Handler) Members(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	screen, err := h.uc.Members(ctx, sc, req.toInput(permission.AccessFromGin(c)))
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, screen)
}

// @Summary		Invite a member
// @Tags			Members
// @Accept			json
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Success		201				{object}	response.Resp
// @Failure		409				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/members/invite [POST]
func (h *Handler) InviteMember(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processInviteRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	inv, err := h.uc.InviteMember(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	c.JSON(http.StatusCreated, response.NewOKResp(inv))
}

// @Summary		Change a member's role
// @Tags			Members
// @Accept			json
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Param			memberId		path		string	true	"Member ID"
// @Success		200				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/members/{memberId}/role [PUT]
func (h *Handler) UpdateMemberRole(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processMemberRequest(c, true)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	m, err := h.uc.UpdateMemberRole(ctx, sc, req.toRoleInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, m)
}

// @Summary		Remove a member
// @Tags			Members
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Param			memberId		path		string	true	"Member ID"
// @Success		200				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/members/{memberId} [DELETE]
func (h *Handler) RemoveMember(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processMemberRequest(c, false)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.RemoveMember(ctx, sc, req.toInput()); err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}

// @Summary		List roles
// @Tags			Roles
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Success		200				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/roles [GET]
func (h *Handler) Roles(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	screen, err := h.uc.Roles(ctx, sc, req.toInput(permission.AccessFromGin(c)))
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, screen)
}

// @Summary		Blank role form
// @Tags			Roles
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Success		200				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/roles/new [GET]
func (h *Handler) NewRoleForm(c *gin.Context) {
	h.roleForm(c, false)
}

// @Summary		Role edit form
// @Tags			Roles
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Param			roleId			path		string	true	"Role ID"
// @Success		200				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/roles/{roleId}/edit [GET]
func (h *Handler) EditRoleForm(c *gin.Context) {
	h.roleForm(c, true)
}

func (h *Handler) roleForm(c *gin.Context, withID bool) {
	ctx := c.Request.Context()

	req, sc, err := h.processRoleRequest(c, false, withID)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	f, err := h.uc.RoleForm(ctx, sc, req.toDetailInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, f)
}

// @Summary		Create role
// @Tags			Roles
// @Accept			json
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Success		201				{object}	response.Resp
// @Failure		400				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/roles [POST]
func (h *Handler) CreateRole(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processRoleRequest(c, true, false)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	role, err := h.uc.CreateRole(ctx, sc, req.toWriteInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	c.JSON(http.StatusCreated, response.NewOKResp(role))
}

// @Summary		Update role
// @Tags			Roles
// @Accept			json
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Param			roleId			path		string	true	"Role ID"
// @Success		200				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/roles/{roleId} [PUT]
func (h *Handler) UpdateRole(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processRoleRequest(c, true, true)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	role, err := h.uc.UpdateRole(ctx, sc, req.toWriteInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, role)
}

// @Summary		Delete role
// @Tags			Roles
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Param			roleId			path		string	true	"Role ID"
// @Success		200				{object}	response.Resp
// @Failure		409				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/roles/{roleId} [DELETE]
func (h *Handler) DeleteRole(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processRoleRequest(c, false, true)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.DeleteRole(ctx, sc, req.toDetailInput()); err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}
