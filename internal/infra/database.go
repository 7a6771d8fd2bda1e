package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/VutaRaghu/ops-oasis-eats-app/internal/model"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate
// to create / update all tables, then applies the SQL objects AutoMigrate
// cannot express (sequences backing the human-readable order and expense
// numbers).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations applies the schema. Also used by integration tests against
// throwaway containers.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.MenuItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.Expense{},
		&model.StaffMember{},
		&model.Attendance{},
		&model.User{},
		&model.SheetPush{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot handle.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// sequences behind ORDER-%04d and EXP-%04d business IDs
		`CREATE SEQUENCE IF NOT EXISTS order_number_seq START 1`,
		`CREATE SEQUENCE IF NOT EXISTS expense_number_seq START 1`,
		// partial index for the sheet-push retry cron query
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_sheet_pushes_pending_retry') THEN
		    CREATE INDEX idx_sheet_pushes_pending_retry
		        ON sheet_pushes (next_retry_at)
		        WHERE status = 'pending' AND next_retry_at IS NOT NULL;
		  END IF;
		END $$`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}
