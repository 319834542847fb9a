package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TypeRevenue = "Revenue"
	TypeExpense = "Expense"

	// SystemCreator marks transactions generated by the payment flow rather
	// than a signed-in user.
	SystemCreator = "system"

	// CategoryMembershipFees is the category stamped on transactions created
	// when a fee assignment is marked paid.
	CategoryMembershipFees = "Membership Fees"
)

// Transaction is an immutable ledger entry. There is no update or delete
// path; corrections are new entries.
type Transaction struct {
	ID          string          `json:"id" gorm:"primaryKey;type:uuid"`
	Type        string          `json:"type" gorm:"not null"` // Revenue or Expense
	Amount      decimal.Decimal `json:"amount" gorm:"type:numeric;not null"`
	Category    string          `json:"category" gorm:"not null"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
	CreatedBy   string          `json:"created_by" gorm:"not null"` // user id or SystemCreator
	OrgID       string          `json:"org_id" gorm:"not null;index"`
	ReceiptURL  string          `json:"receipt_url,omitempty"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
