package http

import (
	"isp-dashboard/internal/middleware"
	"isp-dashboard/internal/permission"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware, gate permission.Gate) {
	g := r.Group("/:organizationId/isp/tickets", mw.Auth(), gate.Require(permission.FeatureTickets))
	{
		g.GET("", h.List)
		g.POST("/table", h.Dispatch)
		g.GET("/:ticketId", h.Detail)
		g.GET("/:ticketId/edit", h.EditForm)

		g.POST("", permission.RequireManage(), mw.SubmitOnce(), h.Create)
		g.POST("/attachments", permission.RequireManage(), h.UploadAttachment)
		g.PUT("/:ticketId", permission.RequireManage(), mw.SubmitOnce(), h.Update)
		g.DELETE("/:ticketId", permission.RequireManage(), mw.SubmitOnce(), h.Delete)
	}
}
