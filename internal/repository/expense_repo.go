package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/VutaRaghu/ops-oasis-eats-app/internal/dto"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/model"
)

type ExpenseRepository interface {
	Create(ctx context.Context, e *model.Expense) error
	List(ctx context.Context, filter dto.ExpenseFilter) ([]model.Expense, int64, error)
	ListAll(ctx context.Context) ([]model.Expense, error)
	NextExpenseNumber(ctx context.Context) (int, error)
}

type expenseRepo struct{ db *gorm.DB }

func NewExpenseRepository(db *gorm.DB) ExpenseRepository { return &expenseRepo{db: db} }

func (r *expenseRepo) Create(ctx context.Context, e *model.Expense) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *expenseRepo) List(ctx context.Context, filter dto.ExpenseFilter) ([]model.Expense, int64, error) {
	var expenses []model.Expense
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.Expense{})
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("date DESC").Offset(offset).Limit(filter.Limit).Find(&expenses).Error
	return expenses, total, err
}

func (r *expenseRepo) ListAll(ctx context.Context) ([]model.Expense, error) {
	var expenses []model.Expense
	err := r.db.WithContext(ctx).Order("date").Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepo) NextExpenseNumber(ctx context.Context) (int, error) {
	var num int
	err := r.db.WithContext(ctx).Raw("SELECT nextval('expense_number_seq')").Scan(&num).Error
	return num, err
}
