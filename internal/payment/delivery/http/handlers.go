package http

import (
	"isp-dashboard/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary		Payment provider configuration
// @Description	Secrets are never returned.
// @Tags			Payments
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Success		200				{object}	response.Resp
// @Failure		404				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/payments [GET]
func (h *Handler) Config(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processConfigRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	cfg, err := h.uc.Config(ctx, sc, req.OrganizationID)
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, cfg)
}

// @Summary		M-Pesa configuration form
// @Tags			Payments
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Success		200				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/payments/mpesa/edit [GET]
func (h *Handler) MpesaForm(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processConfigRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	view, err := h.uc.MpesaForm(ctx, sc, req.OrganizationID)
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, view)
}

// @Summary		Save M-Pesa configuration
// @Description	Blank secrets keep the stored ones.
// @Tags			Payments
// @Accept			json
// @Produce		json
// @Param			organizationId	path		string				true	"Organization ID"
// @Param			body			body		payment.MpesaInput	true	"M-Pesa configuration"
// @Success		200				{object}	response.Resp
// @Failure		400				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/payments/mpesa [PUT]
func (h *Handler) UpdateMpesa(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processMpesaRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	cfg, err := h.uc.UpdateMpesa(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, cfg)
}

// @Summary		KopoKopo configuration form
// @Tags			Payments
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Success		200				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/payments/kopokopo/edit [GET]
func (h *Handler) KopoKopoForm(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processConfigRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	view, err := h.uc.KopoKopoForm(ctx, sc, req.OrganizationID)
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, view)
}

// @Summary		Save KopoKopo configuration
// @Description	Blank secrets keep the stored ones.
// @Tags			Payments
// @Accept			json
// @Produce		json
// @Param			organizationId	path		string					true	"Organization ID"
// @Param			body			body		payment.KopoKopoInput	true	"KopoKopo configuration"
// @Success		200				{object}	response.Resp
// @Failure		400				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/payments/kopokopo [PUT]
func (h *Handler) UpdateKopoKopo(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processKopoKopoRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	cfg, err := h.uc.UpdateKopoKopo(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, cfg)
}
