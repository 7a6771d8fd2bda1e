package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/VutaRaghu/ops-oasis-eats-app/internal/model"
)

type MenuRepository interface {
	List(ctx context.Context) ([]model.MenuItem, error)
	FindByNumber(ctx context.Context, catalogueNumber int) (*model.MenuItem, error)
	Upsert(ctx context.Context, item *model.MenuItem) error
	Delete(ctx context.Context, catalogueNumber int) error
}

type menuRepo struct{ db *gorm.DB }

func NewMenuRepository(db *gorm.DB) MenuRepository { return &menuRepo{db: db} }

func (r *menuRepo) List(ctx context.Context) ([]model.MenuItem, error) {
	var items []model.MenuItem
	err := r.db.WithContext(ctx).Order("catalogue_number").Find(&items).Error
	return items, err
}

func (r *menuRepo) FindByNumber(ctx context.Context, catalogueNumber int) (*model.MenuItem, error) {
	var item model.MenuItem
	err := r.db.WithContext(ctx).First(&item, "catalogue_number = ?", catalogueNumber).Error
	return &item, err
}

// Upsert inserts the item or, when the catalogue number already exists,
// updates its name, price and category in place.
func (r *menuRepo) Upsert(ctx context.Context, item *model.MenuItem) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "catalogue_number"}},
		DoUpdates: clause.AssignmentColumns([]string{"item_name", "price", "category", "updated_at"}),
	}).Create(item).Error
}

func (r *menuRepo) Delete(ctx context.Context, catalogueNumber int) error {
	return r.db.WithContext(ctx).
		Delete(&model.MenuItem{}, "catalogue_number = ?", catalogueNumber).Error
}
