package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/VutaRaghu/ops-oasis-eats-app/internal/model"
)

type StaffRepository interface {
	List(ctx context.Context) ([]model.StaffMember, error)
	FindByID(ctx context.Context, id string) (*model.StaffMember, error)
	Create(ctx context.Context, m *model.StaffMember) error
	Update(ctx context.Context, m *model.StaffMember) error
	Count(ctx context.Context) (int64, error)
}

type staffRepo struct{ db *gorm.DB }

func NewStaffRepository(db *gorm.DB) StaffRepository { return &staffRepo{db: db} }

func (r *staffRepo) List(ctx context.Context) ([]model.StaffMember, error) {
	var staff []model.StaffMember
	err := r.db.WithContext(ctx).Order("id").Find(&staff).Error
	return staff, err
}

func (r *staffRepo) FindByID(ctx context.Context, id string) (*model.StaffMember, error) {
	var m model.StaffMember
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	return &m, err
}

func (r *staffRepo) Create(ctx context.Context, m *model.StaffMember) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *staffRepo) Update(ctx context.Context, m *model.StaffMember) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *staffRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.StaffMember{}).Count(&n).Error
	return n, err
}
