package http

import (
	"isp-dashboard/internal/middleware"
	"isp-dashboard/internal/permission"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware, gate permission.Gate) {
	g := r.Group("/:organizationId/isp/subscriptions", mw.Auth(), gate.Require(permission.FeatureSubscriptions))
	{
		g.GET("", h.Subscriptions)
		g.POST("/table", h.DispatchSubscriptions)
		g.GET("/:subscriptionId", h.Subscription)

		g.POST("", permission.RequireManage(), mw.SubmitOnce(), h.Subscribe)
		g.POST("/:subscriptionId/cancel", permission.RequireManage(), mw.SubmitOnce(), h.Cancel)
	}

	plans := r.Group("/:organizationId/isp/plans", mw.Auth(), gate.Require(permission.FeatureSubscriptions))
	{
		plans.GET("", h.Plans)
		plans.POST("/table", h.DispatchPlans)
	}
}
