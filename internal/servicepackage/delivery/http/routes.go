package http

import (
	"isp-dashboard/internal/middleware"
	"isp-dashboard/internal/permission"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the package screens under /:organizationId/isp/packages.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware, gate permission.Gate) {
	g := r.Group("/:organizationId/isp/packages", mw.Auth(), gate.Require(permission.FeaturePackages))
	{
		g.GET("", h.List)
		g.POST("/table", h.Dispatch)
		g.GET("/options", h.Options)
		g.GET("/:packageId", h.Detail)
		g.GET("/:packageId/edit", h.EditForm)

		g.POST("", permission.RequireManage(), mw.SubmitOnce(), h.Create)
		g.PUT("/:packageId", permission.RequireManage(), mw.SubmitOnce(), h.Update)
		g.DELETE("/:packageId", permission.RequireManage(), mw.SubmitOnce(), h.Delete)
	}
}
