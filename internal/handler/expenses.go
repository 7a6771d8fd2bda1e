package handler

import (
	"net/http"

	"github.com/VutaRaghu/ops-oasis-eats-app/internal/apierror"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/dto"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/service"

	"github.com/gin-gonic/gin"
)

type ExpensesHandler struct{ svc service.ExpenseService }

func NewExpensesHandler(svc service.ExpenseService) *ExpensesHandler {
	return &ExpensesHandler{svc: svc}
}

// Create godoc
// @Summary      Record an expense
// @Description  Expenses are append-only: there is no update or delete endpoint.
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateExpenseRequest true "Expense detail"
// @Success      201  {object} dto.ExpenseResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/expenses [post]
func (h *ExpensesHandler) Create(c *gin.Context) {
	var req dto.CreateExpenseRequest
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

// List godoc
// @Summary      List expenses
// @Tags         expenses
// @Produce      json
// @Security     BearerAuth
// @Param        category query string false "Top-level category filter"
// @Param        page     query int    false "Page (default 1)"
// @Param        limit    query int    false "Rows per page (default 50)"
// @Success      200      {object} dto.ExpenseListResponse
// @Failure      400      {object} apierror.APIError
// @Router       /v1/expenses [get]
func (h *ExpensesHandler) List(c *gin.Context) {
	var filter dto.ExpenseFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list expenses"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Categories godoc
// @Summary      Expense category taxonomy
// @Description  Returns the fixed category / sub-category tree used by the
// @Description  expense form.
// @Tags         expenses
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} model.ExpenseCategory
// @Router       /v1/expenses/categories [get]
func (h *ExpensesHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Categories())
}
