package http

import (
	"isp-dashboard/internal/middleware"
	"isp-dashboard/internal/permission"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware, gate permission.Gate) {
	g := r.Group("/:organizationId/isp/sms/templates", mw.Auth(), gate.Require(permission.FeatureSms))
	{
		g.GET("", h.List)
		g.POST("/table", h.Dispatch)
		g.POST("/preview", h.Preview)
		g.GET("/:templateId", h.Detail)
		g.GET("/:templateId/edit", h.EditForm)

		g.POST("", permission.RequireManage(), mw.SubmitOnce(), h.Create)
		g.PUT("/:templateId", permission.RequireManage(), mw.SubmitOnce(), h.Update)
		g.DELETE("/:templateId", permission.RequireManage(), mw.SubmitOnce(), h.Delete)
	}

	cfg := r.Group("/:organizationId/isp/sms/config", mw.Auth(), gate.Require(permission.FeatureSms))
	{
		cfg.GET("", h.Config)
		cfg.GET("/edit", h.ConfigForm)
		cfg.PUT("", permission.RequireManage(), mw.SubmitOnce(), h.UpdateConfig)
	}
}
