package handler

import (
	"errors"
	"net/http"

	"github.com/VutaRaghu/ops-oasis-eats-app/internal/apierror"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/dto"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/service"

	"github.com/gin-gonic/gin"
)

type OrdersHandler struct{ svc service.OrderService }

func NewOrdersHandler(svc service.OrderService) *OrdersHandler { return &OrdersHandler{svc: svc} }

// Create godoc
// @Summary      Place a new order
// @Description  Creates an order with line items snapshotted at current catalogue
// @Description  prices. The total is computed server side and later menu edits
// @Description  never alter it.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateOrderRequest true "Order detail"
// @Success      201  {object} dto.OrderResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/orders [post]
func (h *OrdersHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Get godoc
// @Summary      Get one order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Business ID (ORDER-0001)"
// @Success      200 {object} dto.OrderResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/orders/{id} [get]
func (h *OrdersHandler) Get(c *gin.Context) {
	resp, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("failed to fetch order"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List godoc
// @Summary      List orders
// @Description  Returns a paginated list filtered by date and status.
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        date   query string false "Date YYYY-MM-DD (UTC)"
// @Param        status query string false "Draft | Completed | Cancelled | all"
// @Param        page   query int    false "Page (default 1)"
// @Param        limit  query int    false "Rows per page (default 50)"
// @Success      200    {object} dto.OrderListResponse
// @Failure      400    {object} apierror.APIError
// @Router       /v1/orders [get]
func (h *OrdersHandler) List(c *gin.Context) {
	var filter dto.OrderFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list orders"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Complete godoc
// @Summary      Complete a draft order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Business ID"
// @Success      200 {object} dto.OrderResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/orders/{id}/complete [patch]
func (h *OrdersHandler) Complete(c *gin.Context) {
	resp, err := h.svc.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Cancel godoc
// @Summary      Cancel an order
// @Description  Marks the order Cancelled. Cancelled orders are excluded from
// @Description  sales reports; cancelling twice is rejected.
// @Tags         orders
// @Security     BearerAuth
// @Param        id path string true "Business ID"
// @Success      204
// @Failure      400 {object} apierror.APIError
// @Router       /v1/orders/{id} [delete]
func (h *OrdersHandler) Cancel(c *gin.Context) {
	if err := h.svc.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		case errors.Is(err, service.ErrOrderNotCancelable):
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
		default:
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		}
		return
	}
	c.Status(http.StatusNoContent)
}
