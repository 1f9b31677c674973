package http

import (
	"isp-dashboard/internal/middleware"
	"isp-dashboard/internal/permission"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware, gate permission.Gate) {
	g := r.Group("/:organizationId/isp/stations", mw.Auth(), gate.Require(permission.FeatureStations))
	{
		g.GET("", h.List)
		g.POST("/table", h.Dispatch)
		g.GET("/options", h.Options)
		g.GET("/:stationId", h.Detail)
		g.GET("/:stationId/edit", h.EditForm)

		g.POST("", permission.RequireManage(), mw.SubmitOnce(), h.Create)
		g.PUT("/:stationId", permission.RequireManage(), mw.SubmitOnce(), h.Update)
		g.DELETE("/:stationId", permission.RequireManage(), mw.SubmitOnce(), h.Delete)
	}
}
