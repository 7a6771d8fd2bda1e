package report

import (
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/model"
)

// StaffAttendance is one staff member's attendance metrics over a range.
type StaffAttendance struct {
	StaffID        string  `json:"staff_id"`
	Name           string  `json:"name"`
	Role           string  `json:"role"`
	TotalDays      int     `json:"total_days"`
	DaysPresent    int     `json:"days_present"`
	DaysAbsent     int     `json:"days_absent"`
	DaysHalfDay    int     `json:"days_half_day"`
	AttendanceRate float64 `json:"attendance_rate"` // percentage of days Present
}

// RoleCount is one role's headcount for the categorical breakdown.
type RoleCount struct {
	Role  string `json:"role"`
	Count int    `json:"count"`
}

// AttendanceStats computes per-staff attendance over the range's calendar
// days. TotalDays is the inclusive day count of the range (>= 1 by Range's
// invariant; NewRange rejects end-before-start with ErrInvalidRange). A staff
// member with no records in range gets rate 0 — never a division error.
func AttendanceStats(staff []model.StaffMember, records []model.Attendance, rng Range) []StaffAttendance {
	totalDays := rng.Days()

	inRange := make(map[string][]model.Attendance)
	for _, rec := range records {
		if rng.ContainsDay(rec.Date) {
			inRange[rec.StaffID] = append(inRange[rec.StaffID], rec)
		}
	}

	stats := make([]StaffAttendance, 0, len(staff))
	for _, member := range staff {
		stat := StaffAttendance{
			StaffID:   member.ID,
			Name:      member.Name,
			Role:      member.Role,
			TotalDays: totalDays,
		}
		for _, rec := range inRange[member.ID] {
			switch rec.Status {
			case model.AttendancePresent:
				stat.DaysPresent++
			case model.AttendanceAbsent:
				stat.DaysAbsent++
			case model.AttendanceHalfDay:
				stat.DaysHalfDay++
			}
		}
		stat.AttendanceRate = float64(stat.DaysPresent) / float64(totalDays) * 100
		stats = append(stats, stat)
	}
	return stats
}

// RoleDistribution counts staff members per role, in the order roles first
// appear in the staff list. Independent of attendance.
func RoleDistribution(staff []model.StaffMember) []RoleCount {
	index := make(map[string]int)
	var counts []RoleCount
	for _, member := range staff {
		i, ok := index[member.Role]
		if !ok {
			i = len(counts)
			index[member.Role] = i
			counts = append(counts, RoleCount{Role: member.Role})
		}
		counts[i].Count++
	}
	return counts
}
