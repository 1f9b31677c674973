package http

import (
	"isp-dashboard/internal/middleware"
	"isp-dashboard/internal/permission"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware, gate permission.Gate) {
	g := r.Group("/:organizationId/isp/customers", mw.Auth(), gate.Require(permission.FeatureCustomers))
	{
		g.GET("", h.List)
		g.POST("/table", h.Dispatch)
		g.GET("/export", h.Export)
		g.GET("/new", permission.RequireManage(), h.NewForm)
		g.GET("/:customerId", h.Detail)
		g.GET("/:customerId/edit", h.EditForm)

		g.POST("", permission.RequireManage(), mw.SubmitOnce(), h.Create)
		g.PUT("/:customerId", permission.RequireManage(), mw.SubmitOnce(), h.Update)
		g.DELETE("/:customerId", permission.RequireManage(), mw.SubmitOnce(), h.Delete)
	}
}
