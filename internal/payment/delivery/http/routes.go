package http

import (
	"isp-dashboard/internal/middleware"
	"isp-dashboard/internal/permission"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware, gate permission.Gate) {
	g := r.Group("/:organizationId/isp/payments", mw.Auth(), gate.Require(permission.FeaturePayments))
	{
		g.GET("", h.Config)

		g.GET("/mpesa/edit", h.MpesaForm)
		g.PUT("/mpesa", permission.RequireManage(), mw.SubmitOnce(), h.UpdateMpesa)

		g.GET("/kopokopo/edit", h.KopoKopoForm)
		g.PUT("/kopokopo", permission.RequireManage(), mw.SubmitOnce(), h.UpdateKopoKopo)
	}
}
