package http

import (
	"net/http"

	"isp-dashboard/internal/permission"
	"isp-dashboard/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary		List SMS templates
// @Tags			SMS
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Param			page			query		int		false	"Page"
// @Param			page_size		query		int		false	"Page size"
// @Param			sort_by			query		string	false	"Sort field"
// @Param			sort_direction	query		string	false	"asc or desc"
// @Param			search			query		string	false	"Search"
// @Success		200				{object}	response.Resp
// @Failure		403				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/sms/templates [GET]
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	screen, err := h.uc.List(ctx, sc, req.toInput(permission.AccessFromGin(c)))
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, screen)
}

// @Summary		Apply a table action to the SMS template list
// @Tags			SMS
// @Accept			json
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Success		200				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/sms/templates/table [POST]
func (h *Handler) Dispatch(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processDispatchRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	screen, err := h.uc.Dispatch(ctx, sc, req.toInput(permission.AccessFromGin(c)))
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, screen)
}

// @Summary		SMS template detail
// @Tags			SMS
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Param			templateId	path		string	true	"SMS template ID"
// @Success		200				{object}	response.Resp
// @Failure		404				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/sms/templates/{templateId} [GET]
func (h *Handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processDetailRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	tpl, err := h.uc.Detail(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, tpl)
}

// @Summary		SMS template edit form
// @Tags			SMS
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Param			templateId	path		string	true	"SMS template ID"
// @Success		200				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/sms/templates/{templateId}/edit [GET]
func (h *Handler) EditForm(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processDetailRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	view, err := h.uc.EditForm(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, view)
}

// @Summary		Create SMS template
// @Tags			SMS
// @Accept			json
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Success		201				{object}	response.Resp
// @Failure		400				{object}	response.Resp
// @Failure		422				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/sms/templates [POST]
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processWriteRequest(c, false)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	tpl, err := h.uc.Create(ctx, sc, req.toCreateInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	c.JSON(http.StatusCreated, response.NewOKResp(tpl))
}

// @Summary		Update SMS template
// @Tags			SMS
// @Accept			json
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Param			templateId	path		string	true	"SMS template ID"
// @Success		200				{object}	response.Resp
// @Failure		400				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/sms/templates/{templateId} [PUT]
func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processWriteRequest(c, true)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	tpl, err := h.uc.Update(ctx, sc, req.toUpdateInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, tpl)
}

// @Summary		Delete SMS template
// @Tags			SMS
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Param			templateId	path		string	true	"SMS template ID"
// @Success		200				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/sms/templates/{templateId} [DELETE]
func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processDetailRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.Delete(ctx, sc, req.toInput()); err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}

// @Summary		Preview an SMS template
// @Tags			SMS
// @Accept			json
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Success		200				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/sms/templates/preview [POST]
func (h *Handler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processPreviewRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	p, err := h.uc.Preview(ctx, sc, req.PreviewInput)
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, p)
}

// @Summary		SMS gateway configuration
// @Tags			SMS
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Success		200				{object}	response.Resp
// @Failure		404				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/sms/config [GET]
func (h *Handler) Config(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processConfigRequest(c, false)
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

// @Summary		SMS gateway configuration form
// @Tags			SMS
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Success		200				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/sms/config/edit [GET]
func (h *Handler) ConfigForm(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processConfigRequest(c, false)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	view, err := h.uc.ConfigForm(ctx, sc, req.OrganizationID)
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, view)
}

// @Summary		Save SMS gateway configuration
// @Description	A blank API key keeps the stored one.
// @Tags			SMS
// @Accept			json
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Success		200				{object}	response.Resp
// @Failure		400				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/sms/config [PUT]
func (h *Handler) UpdateConfig(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processConfigRequest(c, true)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	cfg, err := h.uc.UpdateConfig(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, cfg)
}
