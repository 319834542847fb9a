package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Fee is a monetary obligation defined once and assigned to a set of members.
// MemberIDs must be non-empty at creation; each id fans out into one
// FeeAssignment row.
type Fee struct {
	ID        string          `json:"id" gorm:"primaryKey;type:uuid"`
	Name      string          `json:"name" gorm:"not null"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:numeric;not null"`
	DueDate   time.Time       `json:"due_date"`
	MemberIDs pq.StringArray  `json:"member_ids" gorm:"type:text[]"`
	OrgID     string          `json:"org_id" gorm:"not null;index"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (f *Fee) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
