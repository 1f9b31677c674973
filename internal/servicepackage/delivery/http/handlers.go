package http

import (
	"net/http"

	"isp-dashboard/internal/permission"
	"isp-dashboard/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary		List packages
// @Description	Render one page of the organization's internet packages
// @Tags			Packages
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Param			page			query		int		false	"Page"
// @Param			page_size		query		int		false	"Page size"
// @Param			sort_by			query		string	false	"Sort field"
// @Param			sort_direction	query		string	false	"asc or desc"
// @Param			search			query		string	false	"Search"
// @Success		200				{object}	response.Resp
// @Failure		403				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/packages [GET]
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

// @Summary		Apply a table action
// @Description	Apply a page, page size, search or sort action and render the resulting page
// @Tags			Packages
// @Accept			json
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Success		200				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/packages/table [POST]
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

// @Summary		Package options
// @Description	Active packages for customer form dropdowns
// @Tags			Packages
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Success		200				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/packages/options [GET]
func (h *Handler) Options(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	pkgs, err := h.uc.Options(ctx, sc, req.OrganizationID)
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, pkgs)
}

// @Summary		Package detail
// @Tags			Packages
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Param			packageId		path		string	true	"Package ID"
// @Success		200				{object}	response.Resp
// @Failure		404				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/packages/{packageId} [GET]
func (h *Handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processDetailRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	pkg, err := h.uc.Detail(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, pkg)
}

// @Summary		Package edit form
// @Description	Form values derived from the stored package
// @Tags			Packages
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Param			packageId		path		string	true	"Package ID"
// @Success		200				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/packages/{packageId}/edit [GET]
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

// @Summary		Create package
// @Tags			Packages
// @Accept			json
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Success		201				{object}	response.Resp
// @Failure		400				{object}	response.Resp
// @Failure		422				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/packages [POST]
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	pkg, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	c.JSON(http.StatusCreated, response.NewOKResp(pkg))
}

// @Summary		Update package
// @Tags			Packages
// @Accept			json
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Param			packageId		path		string	true	"Package ID"
// @Success		200				{object}	response.Resp
// @Failure		400				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/packages/{packageId} [PUT]
func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUpdateRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	pkg, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, pkg)
}

// @Summary		Delete package
// @Tags			Packages
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Param			packageId		path		string	true	"Package ID"
// @Success		200				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/packages/{packageId} [DELETE]
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
