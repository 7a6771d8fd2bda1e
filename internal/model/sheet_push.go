package model

import (
	"time"

	"github.com/google/uuid"
)

// Sheet push states.
const (
	PushPending = "pending"
	PushDone    = "done"
	PushError   = "error"
)

// SheetPush is the outbox row for mirroring a record to the spreadsheet
// bridge. Every write to the store appends one; the worker pool drains them.
// Failed pushes carry retry bookkeeping for the retry cron.
type SheetPush struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SheetName   string    `gorm:"not null"` // Orders | MenuItems | Expenses | Attendance | Staff
	Operation   string    `gorm:"not null"` // append | update | delete
	EntityID    string    `gorm:"index;not null"`
	Payload     []byte    `gorm:"type:jsonb;not null"`
	Status      string    `gorm:"index;not null;default:'pending'"`
	RetryCount  int       `gorm:"not null;default:0"`
	NextRetryAt *time.Time
	LastError   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (SheetPush) TableName() string { return "sheet_pushes" }
