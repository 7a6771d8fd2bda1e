package handler

import (
	"net/http"

	"github.com/VutaRaghu/ops-oasis-eats-app/internal/apierror"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct {
	svc    service.ReportService
	mailer *service.SummaryMailer
}

func NewReportsHandler(svc service.ReportService, mailer *service.SummaryMailer) *ReportsHandler {
	return &ReportsHandler{svc: svc, mailer: mailer}
}

// DailySales godoc
// @Summary      Daily sales trend
// @Description  Revenue and order count per UTC calendar day. Cancelled orders
// @Description  are excluded. Results are cached for five minutes.
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        from query string true  "From date YYYY-MM-DD"
// @Param        to   query string false "To date YYYY-MM-DD (default: from)"
// @Success      200  {array}  report.DailySales
// @Failure      400  {object} apierror.APIError
// @Router       /v1/reports/daily-sales [get]
func (h *ReportsHandler) DailySales(c *gin.Context) {
	rng, ok := parseRange(c)
	if !ok {
		return
	}
	resp, err := h.svc.DailySales(c.Request.Context(), rng)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to build daily sales report"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Sales godoc
// @Summary      Sales summary
// @Description  Totals, order count, average order value and payment-method
// @Description  split for the range.
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        from query string true  "From date YYYY-MM-DD"
// @Param        to   query string false "To date YYYY-MM-DD"
// @Success      200  {object} report.SalesSummary
// @Failure      400  {object} apierror.APIError
// @Router       /v1/reports/sales [get]
func (h *ReportsHandler) Sales(c *gin.Context) {
	rng, ok := parseRange(c)
	if !ok {
		return
	}
	resp, err := h.svc.Sales(c.Request.Context(), rng)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to build sales summary"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CategoryBreakdown godoc
// @Summary      Revenue share per menu category
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        from query string true  "From date YYYY-MM-DD"
// @Param        to   query string false "To date YYYY-MM-DD"
// @Success      200  {array}  report.CategoryShare
// @Failure      400  {object} apierror.APIError
// @Router       /v1/reports/category-breakdown [get]
func (h *ReportsHandler) CategoryBreakdown(c *gin.Context) {
	rng, ok := parseRange(c)
	if !ok {
		return
	}
	resp, err := h.svc.CategoryBreakdown(c.Request.Context(), rng)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to build category breakdown"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ItemSales godoc
// @Summary      Per-item sales ranking
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        from query string true  "From date YYYY-MM-DD"
// @Param        to   query string false "To date YYYY-MM-DD"
// @Success      200  {array}  report.ItemSale
// @Failure      400  {object} apierror.APIError
// @Router       /v1/reports/item-sales [get]
func (h *ReportsHandler) ItemSales(c *gin.Context) {
	rng, ok := parseRange(c)
	if !ok {
		return
	}
	resp, err := h.svc.ItemSales(c.Request.Context(), rng)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to build item sales report"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Attendance godoc
// @Summary      Attendance aggregation
// @Description  Per-staff present / absent / half-day counts over the range.
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        from query string true  "From date YYYY-MM-DD"
// @Param        to   query string false "To date YYYY-MM-DD"
// @Success      200  {array}  report.StaffAttendance
// @Failure      400  {object} apierror.APIError
// @Router       /v1/reports/attendance [get]
func (h *ReportsHandler) Attendance(c *gin.Context) {
	rng, ok := parseRange(c)
	if !ok {
		return
	}
	resp, err := h.svc.Attendance(c.Request.Context(), rng)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to build attendance report"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RoleDistribution godoc
// @Summary      Staff head count per role
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} report.RoleCount
// @Router       /v1/reports/role-distribution [get]
func (h *ReportsHandler) RoleDistribution(c *gin.Context) {
	resp, err := h.svc.RoleDistribution(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to build role distribution"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SendDailyEmail godoc
// @Summary      Email today's sales summary
// @Description  Renders the PDF for today and queues it to the configured
// @Description  report recipient. The send itself happens asynchronously.
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      202 {object} map[string]string
// @Failure      400 {object} apierror.APIError
// @Router       /v1/reports/daily-email [post]
func (h *ReportsHandler) SendDailyEmail(c *gin.Context) {
	if err := h.mailer.SendDaily(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
}
