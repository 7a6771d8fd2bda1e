package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/VutaRaghu/ops-oasis-eats-app/internal/apierror"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/dto"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/service"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct{ svc service.MenuService }

func NewMenuHandler(svc service.MenuService) *MenuHandler { return &MenuHandler{svc: svc} }

// List godoc
// @Summary      List menu catalogue
// @Description  Returns every catalogue item ordered by catalogue number.
// @Tags         menu
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.MenuItemResponse
// @Router       /v1/menu [get]
func (h *MenuHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list menu items"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary      Get a menu item
// @Tags         menu
// @Produce      json
// @Security     BearerAuth
// @Param        number path int true "Catalogue number"
// @Success      200 {object} dto.MenuItemResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/menu/{number} [get]
func (h *MenuHandler) Get(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number < 1 {
		c.JSON(http.StatusBadRequest, apierror.New("invalid catalogue number"))
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), number)
	if err != nil {
		if errors.Is(err, service.ErrMenuItemNotFound) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("failed to fetch menu item"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Upsert godoc
// @Summary      Create or replace a menu item
// @Description  Writes the item under its catalogue number. Existing orders keep
// @Description  their captured prices; only future orders see the change.
// @Tags         menu
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.UpsertMenuItemRequest true "Menu item"
// @Success      200 {object} dto.MenuItemResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/menu [put]
func (h *MenuHandler) Upsert(c *gin.Context) {
	var req dto.UpsertMenuItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Upsert(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary      Delete a menu item
// @Tags         menu
// @Security     BearerAuth
// @Param        number path int true "Catalogue number"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/menu/{number} [delete]
func (h *MenuHandler) Delete(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number < 1 {
		c.JSON(http.StatusBadRequest, apierror.New("invalid catalogue number"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), number); err != nil {
		if errors.Is(err, service.ErrMenuItemNotFound) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("failed to delete menu item"))
		return
	}
	c.Status(http.StatusNoContent)
}
