package http

import (
	"isp-dashboard/internal/middleware"
	"isp-dashboard/internal/permission"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware, gate permission.Gate) {
	org := r.Group("/:organizationId/isp/organization", mw.Auth(), gate.Require(permission.FeatureOrganization))
	{
		org.GET("", h.Detail)
		org.GET("/edit", h.EditForm)
		org.PUT("", permission.RequireManage(), mw.SubmitOnce(), h.Update)
	}

	members := r.Group("/:organizationId/isp/members", mw.Auth(), gate.Require(permission.FeatureMembers))
	{
		members.GET("", h.Members)
		members.POST("/invite", permission.RequireManage(), mw.SubmitOnce(), h.InviteMember)
		members.PUT("/:memberId/role", permission.RequireManage(), mw.SubmitOnce(), h.UpdateMemberRole)
		members.DELETE("/:memberId", permission.RequireManage(), mw.SubmitOnce(), h.RemoveMember)
	}

	roles := r.Group("/:organizationId/isp/roles", mw.Auth(), gate.Require(permission.FeatureRoles))
	{
		roles.GET("", h.Roles)
		roles.GET("/new", permission.RequireManage(), h.NewRoleForm)
		roles.GET("/:roleId/edit", h.EditRoleForm)
		roles.POST("", permission.RequireManage(), mw.SubmitOnce(), h.CreateRole)
		roles.PUT("/:roleId", permission.RequireManage(), mw.SubmitOnce(), h.UpdateRole)
		roles.DELETE("/:roleId", permission.RequireManage(), mw.SubmitOnce(), h.DeleteRole)
	}
}
