package http

import (
	"net/http"

	"isp-dashboard/internal/permission"
	"isp-dashboard/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary		List tickets
// @Tags			Tickets
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Param			page			query		int		false	"Page"
// @Param			page_size		query		int		false	"Page size"
// @Param			sort_by			query		string	false	"Sort field"
// @Param			sort_direction	query		string	false	"asc or desc"
// @Param			search			query		string	false	"Search"
// @Success		200				{object}	response.Resp
// @Failure		403				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/tickets [GET]
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

// @Summary		Apply a table action to the ticket list
// @Tags			Tickets
// @Accept			json
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Success		200				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/tickets/table [POST]
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

// @Summary		Ticket detail
// @Tags			Tickets
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Param			ticketId	path		string	true	"Ticket ID"
// @Success		200				{object}	response.Resp
// @Failure		404				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/tickets/{ticketId} [GET]
func (h *Handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processDetailRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	tkt, err := h.uc.Detail(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, tkt)
}

// @Summary		Ticket edit form
// @Tags			Tickets
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Param			ticketId	path		string	true	"Ticket ID"
// @Success		200				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/tickets/{ticketId}/edit [GET]
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

// @Summary		Create ticket
// @Tags			Tickets
// @Accept			json
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Success		201				{object}	response.Resp
// @Failure		400				{object}	response.Resp
// @Failure		422				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/tickets [POST]
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processWriteRequest(c, false)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	tkt, err := h.uc.Create(ctx, sc, req.toCreateInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	c.JSON(http.StatusCreated, response.NewOKResp(tkt))
}

// @Summary		Update ticket
// @Tags			Tickets
// @Accept			json
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Param			ticketId	path		string	true	"Ticket ID"
// @Success		200				{object}	response.Resp
// @Failure		400				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/tickets/{ticketId} [PUT]
func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processWriteRequest(c, true)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	tkt, err := h.uc.Update(ctx, sc, req.toUpdateInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, tkt)
}

// @Summary		Delete ticket
// @Tags			Tickets
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Param			ticketId	path		string	true	"Ticket ID"
// @Success		200				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/tickets/{ticketId} [DELETE]
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

// @Summary		Upload a ticket attachment
// @Description	Stores the file and returns the attachment to reference from a ticket create or update.
// @Tags			Tickets
// @Accept			multipart/form-data
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Param			file			formData	file	true	"Attachment"
// @Success		201				{object}	response.Resp
// @Failure		413				{object}	response.Resp
// @Failure		415				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/tickets/attachments [POST]
func (h *Handler) UploadAttachment(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUploadRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	f, err := req.File.Open()
	if err != nil {
		h.l.Warnf(ctx, "internal.ticket.delivery.http.UploadAttachment.Open: %v", err)
		response.Error(c, errMissingFile, h.discord)
		return
	}
	defer f.Close()

	att, err := h.uc.UploadAttachment(ctx, sc, req.toInput(f))
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	c.JSON(http.StatusCreated, response.NewOKResp(att))
}
