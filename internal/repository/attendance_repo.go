package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/VutaRaghu/ops-oasis-eats-app/internal/model"
)

type AttendanceRepository interface {
	Create(ctx context.Context, a *model.Attendance) error
	Update(ctx context.Context, a *model.Attendance) error
	FindByID(ctx context.Context, id string) (*model.Attendance, error)
	// FindByStaffAndDate backs the one-record-per-staff-per-day rule.
	FindByStaffAndDate(ctx context.Context, staffID, date string) (*model.Attendance, error)
	ListByDate(ctx context.Context, date string) ([]model.Attendance, error)
	ListAll(ctx context.Context) ([]model.Attendance, error)
}

type attendanceRepo struct{ db *gorm.DB }

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository { return &attendanceRepo{db: db} }

func (r *attendanceRepo) Create(ctx context.Context, a *model.Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *attendanceRepo) Update(ctx context.Context, a *model.Attendance) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *attendanceRepo) FindByID(ctx context.Context, id string) (*model.Attendance, error) {
	var a model.Attendance
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	return &a, err
}

func (r *attendanceRepo) FindByStaffAndDate(ctx context.Context, staffID, date string) (*model.Attendance, error) {
	var a model.Attendance
	err := r.db.WithContext(ctx).
		Where("staff_id = ? AND date = ?", staffID, date).First(&a).Error
	return &a, err
}

func (r *attendanceRepo) ListByDate(ctx context.Context, date string) ([]model.Attendance, error) {
	var records []model.Attendance
	err := r.db.WithContext(ctx).Where("date = ?", date).Order("staff_id").Find(&records).Error
	return records, err
}

func (r *attendanceRepo) ListAll(ctx context.Context) ([]model.Attendance, error) {
	var records []model.Attendance
	err := r.db.WithContext(ctx).Order("date").Find(&records).Error
	return records, err
}
