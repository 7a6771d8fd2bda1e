package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/VutaRaghu/ops-oasis-eats-app/internal/dto"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/model"
)

type OrderRepository interface {
	Create(ctx context.Context, o *model.Order) error
	FindByID(ctx context.Context, id string) (*model.Order, error)
	List(ctx context.Context, filter dto.OrderFilter) ([]model.Order, int64, error)
	// ListAll returns every order with items preloaded; the report service
	// feeds this straight into the aggregation functions.
	ListAll(ctx context.Context) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
	NextOrderNumber(ctx context.Context) (int, error)
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) OrderRepository { return &orderRepo{db: db} }

func (r *orderRepo) Create(ctx context.Context, o *model.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *orderRepo) FindByID(ctx context.Context, id string) (*model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).Preload("Items").First(&o, "id = ?", id).Error
	return &o, err
}

func (r *orderRepo) List(ctx context.Context, filter dto.OrderFilter) ([]model.Order, int64, error) {
	var orders []model.Order
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.Order{})

	if filter.Status != "" && filter.Status != "all" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Date != "" {
		q = q.Where("DATE(created_at AT TIME ZONE 'UTC') = ?", filter.Date)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Items").
		Order("created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&orders).Error

	return orders, total, err
}

func (r *orderRepo) ListAll(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).Preload("Items").Order("created_at").Find(&orders).Error
	return orders, err
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", id).Update("status", status).Error
}

func (r *orderRepo) NextOrderNumber(ctx context.Context) (int, error) {
	// PostgreSQL sequence for atomic, gap-tolerant order numbers.
	var num int
	err := r.db.WithContext(ctx).Raw("SELECT nextval('order_number_seq')").Scan(&num).Error
	return num, err
}
