package handler

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/VutaRaghu/ops-oasis-eats-app/internal/apierror"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/service"

	"github.com/gin-gonic/gin"
)

type ExportsHandler struct{ svc service.ExportService }

func NewExportsHandler(svc service.ExportService) *ExportsHandler {
	return &ExportsHandler{svc: svc}
}

func writeCSV(c *gin.Context, filename string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv", data)
}

// OrdersCSV godoc
// @Summary      Download orders as CSV
// @Tags         exports
// @Produce      text/csv
// @Security     BearerAuth
// @Success      200
// @Router       /v1/exports/orders.csv [get]
func (h *ExportsHandler) OrdersCSV(c *gin.Context) {
	data, err := h.svc.OrdersCSV(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to export orders"))
		return
	}
	writeCSV(c, "orders.csv", data)
}

// MenuCSV godoc
// @Summary      Download menu catalogue as CSV
// @Tags         exports
// @Produce      text/csv
// @Security     BearerAuth
// @Success      200
// @Router       /v1/exports/menu.csv [get]
func (h *ExportsHandler) MenuCSV(c *gin.Context) {
	data, err := h.svc.MenuCSV(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to export menu"))
		return
	}
	writeCSV(c, "menu.csv", data)
}

// StaffCSV godoc
// @Summary      Download staff roster as CSV
// @Tags         exports
// @Produce      text/csv
// @Security     BearerAuth
// @Success      200
// @Router       /v1/exports/staff.csv [get]
func (h *ExportsHandler) StaffCSV(c *gin.Context) {
	data, err := h.svc.StaffCSV(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to export staff"))
		return
	}
	writeCSV(c, "staff.csv", data)
}

// SalesPDF godoc
// @Summary      Download sales report as PDF
// @Description  Renders the summary, daily trend and category breakdown for
// @Description  the range into a PDF.
// @Tags         exports
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        from query string true  "From date YYYY-MM-DD"
// @Param        to   query string false "To date YYYY-MM-DD"
// @Success      200
// @Failure      400 {object} apierror.APIError
// @Router       /v1/exports/sales.pdf [get]
func (h *ExportsHandler) SalesPDF(c *gin.Context) {
	rng, ok := parseRange(c)
	if !ok {
		return
	}
	path, err := h.svc.SalesPDF(c.Request.Context(), rng)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to render sales PDF"))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filepath.Base(path)))
	c.File(path)
}
