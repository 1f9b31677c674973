package http

import (
	"bytes"
	"net/http"

	"isp-dashboard/internal/permission"
	"isp-dashboard/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary		List inventory
// @Tags			Inventory
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Param			page			query		int		false	"Page"
// @Param			page_size		query		int		false	"Page size"
// @Param			sort_by			query		string	false	"Sort field"
// @Param			sort_direction	query		string	false	"asc or desc"
// @Param			search			query		string	false	"Search"
// @Success		200				{object}	response.Resp
// @Failure		403				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/inventory [GET]
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

// @Summary		Apply a table action to the inventory item list
// @Tags			Inventory
// @Accept			json
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Success		200				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/inventory/table [POST]
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

// @Summary		Inventory item detail
// @Tags			Inventory
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Param			itemId	path		string	true	"Inventory item ID"
// @Success		200				{object}	response.Resp
// @Failure		404				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/inventory/{itemId} [GET]
func (h *Handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processDetailRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	item, err := h.uc.Detail(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, item)
}

// @Summary		Inventory item edit form
// @Tags			Inventory
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Param			itemId	path		string	true	"Inventory item ID"
// @Success		200				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/inventory/{itemId}/edit [GET]
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

// @Summary		Create inventory item
// @Tags			Inventory
// @Accept			json
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Success		201				{object}	response.Resp
// @Failure		400				{object}	response.Resp
// @Failure		422				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/inventory [POST]
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processWriteRequest(c, false)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	item, err := h.uc.Create(ctx, sc, req.toCreateInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	c.JSON(http.StatusCreated, response.NewOKResp(item))
}

// @Summary		Update inventory item
// @Tags			Inventory
// @Accept			json
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Param			itemId	path		string	true	"Inventory item ID"
// @Success		200				{object}	response.Resp
// @Failure		400				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/inventory/{itemId} [PUT]
func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processWriteRequest(c, true)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	item, err := h.uc.Update(ctx, sc, req.toUpdateInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, item)
}

// @Summary		Delete inventory item
// @Tags			Inventory
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Param			itemId	path		string	true	"Inventory item ID"
// @Success		200				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/inventory/{itemId} [DELETE]
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

// @Summary		Export inventory
// @Description	Download the current inventory page as a PDF
// @Tags			Inventory
// @Produce		application/pdf
// @Param			organizationId	path	string	true	"Organization ID"
// @Success		200
// @Router			/api/v1/{organizationId}/isp/inventory/export [GET]
func (h *Handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	var buf bytes.Buffer
	if err := h.uc.Export(ctx, sc, req.toInput(permission.AccessFromGin(c)), &buf); err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="inventory.pdf"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
