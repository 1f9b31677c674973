package http

import (
	"net/http"

	"isp-dashboard/internal/permission"
	"isp-dashboard/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary		List subscriptions
// @Tags			Billing
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Param			page			query		int		false	"Page"
// @Param			page_size		query		int		false	"Page size"
// @Param			sort_by			query		string	false	"Sort field"
// @Param			sort_direction	query		string	false	"asc or desc"
// @Success		200				{object}	response.Resp
// @Failure		403				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/subscriptions [GET]
func (h *Handler) Subscriptions(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	screen, err := h.uc.Subscriptions(ctx, sc, req.toInput(permission.AccessFromGin(c)))
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, screen)
}

// @Summary		Apply a table action to the subscription list
// @Tags			Billing
// @Accept			json
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Success		200				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/subscriptions/table [POST]
func (h *Handler) DispatchSubscriptions(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processDispatchRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	screen, err := h.uc.DispatchSubscriptions(ctx, sc, req.toInput(permission.AccessFromGin(c)))
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, screen)
}

// @Summary		Subscription detail
// @Tags			Billing
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Param			subscriptionId	path		string	true	"Subscription ID"
// @Success		200				{object}	response.Resp
// @Failure		404				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/subscriptions/{subscriptionId} [GET]
func (h *Handler) Subscription(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processDetailRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	sub, err := h.uc.Subscription(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, sub)
}

// @Summary		Subscribe to a plan
// @Tags			Billing
// @Accept			json
// @Produce		json
// @Param			organizationId	path		string			true	"Organization ID"
// @Param			body			body		billing.Input	true	"Plan"
// @Success		201				{object}	response.Resp
// @Failure		409				{object}	response.Resp
// @Failure		422				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/subscriptions [POST]
func (h *Handler) Subscribe(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processSubscribeRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	sub, err := h.uc.Subscribe(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	c.JSON(http.StatusCreated, response.NewOKResp(sub))
}

// @Summary		Cancel a subscription
// @Tags			Billing
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Param			subscriptionId	path		string	true	"Subscription ID"
// @Success		200				{object}	response.Resp
// @Failure		409				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/subscriptions/{subscriptionId}/cancel [POST]
func (h *Handler) Cancel(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processDetailRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	sub, err := h.uc.Cancel(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, sub)
}

// @Summary		List plans
// @Tags			Billing
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Param			search			query		string	false	"Search"
// @Success		200				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/plans [GET]
func (h *Handler) Plans(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	screen, err := h.uc.Plans(ctx, sc, req.toInput(permission.AccessFromGin(c)))
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, screen)
}

// @Summary		Apply a table action to the plan list
// @Tags			Billing
// @Accept			json
// @Produce		json
// @Param			organizationId	path		string	true	"Organization ID"
// @Success		200				{object}	response.Resp
// @Router			/api/v1/{organizationId}/isp/plans/table [POST]
func (h *Handler) DispatchPlans(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processDispatchRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	screen, err := h.uc.DispatchPlans(ctx, sc, req.toInput(permission.AccessFromGin(c)))
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, screen)
}
