package dto

import "github.com/shopspring/decimal"

type CreateStaffRequest struct {
	Name          string          `json:"name"           validate:"required,max=120"`
	Role          string          `json:"role"           validate:"required,max=100"`
	Salary        decimal.Decimal `json:"salary"         validate:"min=0"`
	ContactNumber *string         `json:"contact_number" validate:"omitempty,max=20"`
}

type StaffResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Role          string          `json:"role"`
	Salary        decimal.Decimal `json:"salary"`
	ContactNumber *string         `json:"contact_number,omitempty"`
}

// ClockInRequest records a staff member's attendance for today (UTC).
// Status defaults to Present; Absent records carry no clock-out.
type ClockInRequest struct {
	StaffID string `json:"staff_id" validate:"required"`
	Status  string `json:"status"   validate:"omitempty,oneof=Present Absent Half-day"`
}

type AttendanceFilter struct {
	Date string `form:"date"` // YYYY-MM-DD; empty = all
}

type AttendanceResponse struct {
	ID        string  `json:"id"`
	StaffID   string  `json:"staff_id"`
	StaffName string  `json:"staff_name"`
	ClockIn   string  `json:"clock_in"`
	ClockOut  *string `json:"clock_out,omitempty"`
	Date      string  `json:"date"`
	Status    string  `json:"status"`
}
