package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PaymentCash       = "CASH"
	PaymentCheck      = "CHECK"
	PaymentVenmo      = "VENMO"
	PaymentZelle      = "ZELLE"
	PaymentCreditCard = "CREDIT_CARD"
	PaymentOther      = "OTHER"
)

// FeeAssignment is the per-member obligation derived from a fee. It is
// created UNPAID when the fee is created and moves to paid exactly once;
// there is no reversal operation.
type FeeAssignment struct {
	ID            string     `json:"id" gorm:"primaryKey;type:uuid"`
	FeeID         string     `json:"fee_id" gorm:"not null;index"`
	MemberID      string     `json:"member_id" gorm:"not null;index"`
	IsPaid        bool       `json:"is_paid" gorm:"not null;default:false"`
	PaidDate      *time.Time `json:"paid_date,omitempty"`
	PaymentMethod string     `json:"payment_method,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (a *FeeAssignment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
