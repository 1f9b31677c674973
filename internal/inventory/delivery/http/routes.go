package http

import (
	"isp-dashboard/internal/middleware"
	"isp-dashboard/internal/permission"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware, gate permission.Gate) {
	g := r.Group("/:organizationId/isp/inventory", mw.Auth(), gate.Require(permission.FeatureInventory))
	{
		g.GET("", h.List)
		g.POST("/table", h.Dispatch)
		g.GET("/export", h.Export)
		g.GET("/:itemId", h.Detail)
		g.GET("/:itemId/edit", h.EditForm)

		g.POST("", permission.RequireManage(), mw.SubmitOnce(), h.Create)
		g.PUT("/:itemId", permission.RequireManage(), mw.SubmitOnce(), h.Update)
		g.DELETE("/:itemId", permission.RequireManage(), mw.SubmitOnce(), h.Delete)
	}
}
