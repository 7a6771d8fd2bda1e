package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/VutaRaghu/ops-oasis-eats-app/internal/model"
)

type SheetPushRepository interface {
	Create(ctx context.Context, p *model.SheetPush) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.SheetPush, error)
	Update(ctx context.Context, p *model.SheetPush) error
	// ListPendingRetries returns pending pushes whose next_retry_at has
	// passed, oldest first, capped at limit. The retry cron drains these.
	ListPendingRetries(ctx context.Context, now time.Time, limit int) ([]model.SheetPush, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type sheetPushRepo struct{ db *gorm.DB }

func NewSheetPushRepository(db *gorm.DB) SheetPushRepository { return &sheetPushRepo{db: db} }

func (r *sheetPushRepo) Create(ctx context.Context, p *model.SheetPush) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *sheetPushRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.SheetPush, error) {
	var p model.SheetPush
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *sheetPushRepo) Update(ctx context.Context, p *model.SheetPush) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *sheetPushRepo) ListPendingRetries(ctx context.Context, now time.Time, limit int) ([]model.SheetPush, error) {
	var pushes []model.SheetPush
	err := r.db.WithContext(ctx).
		Where("status = ? AND next_retry_at IS NOT NULL AND next_retry_at <= ?", model.PushPending, now).
		Order("next_retry_at").
		Limit(limit).
		Find(&pushes).Error
	return pushes, err
}

func (r *sheetPushRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.SheetPush{}).
		Where("status = ?", status).Count(&n).Error
	return n, err
}
