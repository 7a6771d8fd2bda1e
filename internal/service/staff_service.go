package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/VutaRaghu/ops-oasis-eats-app/internal/dto"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/model"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/repository"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/worker"
)

var (
	ErrStaffNotFound    = errors.New("staff member not found")
	ErrAlreadyClockedIn = errors.New("attendance already recorded for today")
	ErrNotClockedIn     = errors.New("no attendance record for today")
)

type StaffService interface {
	List(ctx context.Context) ([]dto.StaffResponse, error)
	Create(ctx context.Context, req dto.CreateStaffRequest) (*dto.StaffResponse, error)

	// ClockIn records today's attendance for a staff member. A second
	// clock-in on the same UTC day is rejected.
	ClockIn(ctx context.Context, req dto.ClockInRequest) (*dto.AttendanceResponse, error)
	ClockOut(ctx context.Context, staffID string) (*dto.AttendanceResponse, error)
	ListAttendance(ctx context.Context, filter dto.AttendanceFilter) ([]dto.AttendanceResponse, error)
}

type staffService struct {
	repo           repository.StaffRepository
	attendanceRepo repository.AttendanceRepository
	outbox         *sheetsOutbox
	now            func() time.Time
}

func NewStaffService(repo repository.StaffRepository, attendanceRepo repository.AttendanceRepository, pushRepo repository.SheetPushRepository, dispatcher *worker.Dispatcher) StaffService {
	return &staffService{
		repo:           repo,
		attendanceRepo: attendanceRepo,
		outbox:         newSheetsOutbox(pushRepo, dispatcher),
		now:            time.Now,
	}
}

func (s *staffService) List(ctx context.Context) ([]dto.StaffResponse, error) {
	staff, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.StaffResponse, len(staff))
	for i := range staff {
		resp[i] = staffToResponse(&staff[i])
	}
	return resp, nil
}

func (s *staffService) Create(ctx context.Context, req dto.CreateStaffRequest) (*dto.StaffResponse, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	member := &model.StaffMember{
		ID:            fmt.Sprintf("STAFF-%03d", count+1),
		Name:          req.Name,
		Role:          req.Role,
		Salary:        req.Salary,
		ContactNumber: req.ContactNumber,
	}
	if err := s.repo.Create(ctx, member); err != nil {
		return nil, err
	}

	s.outbox.mirror(ctx, SheetStaff, "append", member.ID, []string{
		member.ID, member.Name, member.Role, member.Salary.StringFixed(2),
	})

	resp := staffToResponse(member)
	return &resp, nil
}

// ── Attendance ────────────────────────────────────────────────────────────────

func (s *staffService) ClockIn(ctx context.Context, req dto.ClockInRequest) (*dto.AttendanceResponse, error) {
	member, err := s.repo.FindByID(ctx, req.StaffID)
	if err != nil {
		return nil, ErrStaffNotFound
	}

	now := s.now().UTC()
	date := now.Format("2006-01-02")

	if _, err := s.attendanceRepo.FindByStaffAndDate(ctx, member.ID, date); err == nil {
		return nil, ErrAlreadyClockedIn
	}

	status := req.Status
	if status == "" {
		status = model.AttendancePresent
	}

	record := &model.Attendance{
		ID:        fmt.Sprintf("ATT-%s-%s", date, member.ID),
		StaffID:   member.ID,
		StaffName: member.Name,
		ClockIn:   now,
		Date:      date,
		Status:    status,
	}
	if err := s.attendanceRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	s.outbox.mirror(ctx, SheetAttendance, "append", record.ID, attendanceRow(record))

	resp := attendanceToResponse(record)
	return &resp, nil
}

func (s *staffService) ClockOut(ctx context.Context, staffID string) (*dto.AttendanceResponse, error) {
	now := s.now().UTC()
	date := now.Format("2006-01-02")

	record, err := s.attendanceRepo.FindByStaffAndDate(ctx, staffID, date)
	if err != nil {
		return nil, ErrNotClockedIn
	}

	record.ClockOut = &now
	if err := s.attendanceRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	s.outbox.mirror(ctx, SheetAttendance, "update", record.ID, attendanceRow(record))

	resp := attendanceToResponse(record)
	return &resp, nil
}

func (s *staffService) ListAttendance(ctx context.Context, filter dto.AttendanceFilter) ([]dto.AttendanceResponse, error) {
	var (
		records []model.Attendance
		err     error
	)
	if filter.Date != "" {
		records, err = s.attendanceRepo.ListByDate(ctx, filter.Date)
	} else {
		records, err = s.attendanceRepo.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	resp := make([]dto.AttendanceResponse, len(records))
	for i := range records {
		resp[i] = attendanceToResponse(&records[i])
	}
	return resp, nil
}

func attendanceRow(a *model.Attendance) []string {
	clockOut := ""
	if a.ClockOut != nil {
		clockOut = a.ClockOut.UTC().Format(time.RFC3339)
	}
	return []string{
		a.ID,
		a.Date,
		a.StaffID,
		a.StaffName,
		a.ClockIn.UTC().Format(time.RFC3339),
		clockOut,
		a.Status,
	}
}

func attendanceToResponse(a *model.Attendance) dto.AttendanceResponse {
	var clockOut *string
	if a.ClockOut != nil {
		formatted := a.ClockOut.UTC().Format(time.RFC3339)
		clockOut = &formatted
	}
	return dto.AttendanceResponse{
		ID:        a.ID,
		StaffID:   a.StaffID,
		StaffName: a.StaffName,
		ClockIn:   a.ClockIn.UTC().Format(time.RFC3339),
		ClockOut:  clockOut,
		Date:      a.Date,
		Status:    a.Status,
	}
}

func staffToResponse(m *model.StaffMember) dto.StaffResponse {
	return dto.StaffResponse{
		ID:            m.ID,
		Name:          m.Name,
		Role:          m.Role,
		Salary:        m.Salary,
		ContactNumber: m.ContactNumber,
	}
}
