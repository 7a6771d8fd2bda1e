package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VutaRaghu/ops-oasis-eats-app/internal/model"
)

func staffMember(id, name, role string) model.StaffMember {
	return model.StaffMember{ID: id, Name: name, Role: role, Salary: decimal.NewFromInt(10000)}
}

func attendance(staffID, date, status string) model.Attendance {
	return model.Attendance{
		ID:      "ATT-" + staffID + "-" + date,
		StaffID: staffID,
		Date:    date,
		Status:  status,
	}
}

func weekRange(t *testing.T) Range {
	return mustRange(t,
		time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 4, 7, 0, 0, 0, 0, time.UTC),
	)
}

func TestAttendanceStats_RatesAndCounts(t *testing.T) {
	staff := []model.StaffMember{staffMember("STAFF-001", "Rajesh Kumar", "Cook")}
	records := []model.Attendance{
		attendance("STAFF-001", "2024-04-01", model.AttendancePresent),
		attendance("STAFF-001", "2024-04-02", model.AttendancePresent),
		attendance("STAFF-001", "2024-04-03", model.AttendanceHalfDay),
		attendance("STAFF-001", "2024-04-04", model.AttendanceAbsent),
	}

	stats := AttendanceStats(staff, records, weekRange(t))

	require.Len(t, stats, 1)
	s := stats[0]
	assert.Equal(t, 7, s.TotalDays)
	assert.Equal(t, 2, s.DaysPresent)
	assert.Equal(t, 1, s.DaysAbsent)
	assert.Equal(t, 1, s.DaysHalfDay)
	assert.InDelta(t, 2.0/7.0*100, s.AttendanceRate, 1e-9)
}

func TestAttendanceStats_NoRecordsYieldsZeroRate(t *testing.T) {
	staff := []model.StaffMember{staffMember("STAFF-002", "Sunita Sharma", "Cook Assistant")}

	stats := AttendanceStats(staff, nil, weekRange(t))

	require.Len(t, stats, 1)
	assert.Equal(t, 7, stats[0].TotalDays)
	assert.Zero(t, stats[0].AttendanceRate)
}

func TestAttendanceStats_RecordsOutsideRangeIgnored(t *testing.T) {
	staff := []model.StaffMember{staffMember("STAFF-001", "Rajesh Kumar", "Cook")}
	records := []model.Attendance{
		attendance("STAFF-001", "2024-03-31", model.AttendancePresent),
		attendance("STAFF-001", "2024-04-08", model.AttendancePresent),
		attendance("STAFF-001", "2024-04-07", model.AttendancePresent),
	}

	stats := AttendanceStats(staff, records, weekRange(t))

	require.Len(t, stats, 1)
	assert.Equal(t, 1, stats[0].DaysPresent)
}

func TestRoleDistribution(t *testing.T) {
	staff := []model.StaffMember{
		staffMember("STAFF-001", "Rajesh Kumar", "Cook"),
		staffMember("STAFF-002", "Sunita Sharma", "Cook Assistant"),
		staffMember("STAFF-003", "Anand Singh", "Waiter"),
		staffMember("STAFF-004", "Priya Patel", "Cook"),
	}

	counts := RoleDistribution(staff)

	require.Len(t, counts, 3)
	assert.Equal(t, RoleCount{Role: "Cook", Count: 2}, counts[0])
	assert.Equal(t, RoleCount{Role: "Cook Assistant", Count: 1}, counts[1])
	assert.Equal(t, RoleCount{Role: "Waiter", Count: 1}, counts[2])
}

func TestRoleDistribution_EmptyStaff(t *testing.T) {
	assert.Empty(t, RoleDistribution(nil))
}
