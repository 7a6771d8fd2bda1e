package handler

import (
	"errors"
	"net/http"

	"github.com/VutaRaghu/ops-oasis-eats-app/internal/apierror"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/dto"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/service"

	"github.com/gin-gonic/gin"
)

type StaffHandler struct{ svc service.StaffService }

func NewStaffHandler(svc service.StaffService) *StaffHandler { return &StaffHandler{svc: svc} }

// List godoc
// @Summary      List staff roster
// @Tags         staff
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.StaffResponse
// @Router       /v1/staff [get]
func (h *StaffHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list staff"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create godoc
// @Summary      Add a staff member
// @Tags         staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateStaffRequest true "Staff member"
// @Success      201  {object} dto.StaffResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/staff [post]
func (h *StaffHandler) Create(c *gin.Context) {
	var req dto.CreateStaffRequest
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

// ClockIn godoc
// @Summary      Clock in a staff member
// @Description  Records today's attendance. A second clock-in on the same UTC
// @Description  day is rejected with 409.
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ClockInRequest true "Staff ID and optional status"
// @Success      201  {object} dto.AttendanceResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/attendance/clock-in [post]
func (h *StaffHandler) ClockIn(c *gin.Context) {
	var req dto.ClockInRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ClockIn(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStaffNotFound):
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		case errors.Is(err, service.ErrAlreadyClockedIn):
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
		default:
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		}
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ClockOut godoc
// @Summary      Clock out a staff member
// @Description  Stamps the clock-out time on today's attendance record.
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Param        staff_id path string true "Business ID (STAFF-001)"
// @Success      200 {object} dto.AttendanceResponse
// @Failure      409 {object} apierror.APIError
// @Router       /v1/attendance/{staff_id}/clock-out [patch]
func (h *StaffHandler) ClockOut(c *gin.Context) {
	resp, err := h.svc.ClockOut(c.Request.Context(), c.Param("staff_id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStaffNotFound):
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		case errors.Is(err, service.ErrNotClockedIn):
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
		default:
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListAttendance godoc
// @Summary      List attendance records
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Param        date query string false "Date YYYY-MM-DD; empty = all"
// @Success      200  {array} dto.AttendanceResponse
// @Router       /v1/attendance [get]
func (h *StaffHandler) ListAttendance(c *gin.Context) {
	var filter dto.AttendanceFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.ListAttendance(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list attendance"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
