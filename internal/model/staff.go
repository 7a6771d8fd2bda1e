package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// StaffMember is a restaurant employee (not an application user).
type StaffMember struct {
	ID            string          `gorm:"primaryKey" json:"id"` // STAFF-001
	Name          string          `gorm:"not null" json:"name"`
	Role          string          `gorm:"index;not null" json:"role"`
	Salary        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"salary"`
	ContactNumber *string         `json:"contact_number,omitempty"`
	CreatedAt     time.Time       `json:"-"`
	UpdatedAt     time.Time       `json:"-"`
}

func (StaffMember) TableName() string { return "staff_members" }

// Attendance statuses.
const (
	AttendancePresent = "Present"
	AttendanceAbsent  = "Absent"
	AttendanceHalfDay = "Half-day"
)

// Attendance records one staff member's presence for one calendar day.
// The (staff_id, date) pair is unique: a second clock-in for the same day
// is rejected at the service layer and by the index.
type Attendance struct {
	ID        string     `gorm:"primaryKey" json:"id"`
	StaffID   string     `gorm:"uniqueIndex:idx_staff_day;not null" json:"staff_id"`
	StaffName string     `gorm:"not null" json:"staff_name"` // denormalized snapshot
	ClockIn   time.Time  `gorm:"not null" json:"clock_in"`
	ClockOut  *time.Time `json:"clock_out,omitempty"`
	Date      string     `gorm:"uniqueIndex:idx_staff_day;not null" json:"date"` // YYYY-MM-DD (UTC)
	Status    string     `gorm:"not null" json:"status"`
	CreatedAt time.Time  `json:"-"`
	UpdatedAt time.Time  `json:"-"`
}

func (Attendance) TableName() string { return "attendance_records" }
