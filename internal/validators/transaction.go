package validators

import (
	"strings"
	"time"

	"github.com/gookit/validate"
	"github.com/shopspring/decimal"

	"dues_tracker/internal/models"
)

type TransactionInput struct {
	Type        string `json:"type" validate:"required|in:Revenue,Expense"`
	Amount      Amount `json:"amount" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description"`
	Date        string `json:"date"`
	CreatedBy   string `json:"created_by" validate:"required"`
	OrgID       string `json:"org_id" validate:"required"`
	ReceiptURL  string `json:"receipt_url"`
}

func (in TransactionInput) Messages() map[string]string {
	return validate.MS{
		"Type.in": "type must be Revenue or Expense",
	}
}

func ValidateTransaction(in TransactionInput) (*models.Transaction, FieldErrors) {
	v := newValidation(&in)
	v.Validate()
	errs := collect(v)

	amount := decimal.Zero
	if strings.TrimSpace(string(in.Amount)) != "" {
		var msg string
		if amount, msg = parseAmount(in.Amount, MinTransactionAmount); msg != "" {
			errs = append(errs, FieldError{Field: "amount", Message: msg})
		}
	}

	date := time.Now().UTC()
	if strings.TrimSpace(in.Date) != "" {
		parsed, ok := parseDate(in.Date)
		if !ok {
			errs = append(errs, FieldError{Field: "date", Message: "date must be a valid date"})
		} else {
			date = parsed
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return &models.Transaction{
		Type:        in.Type,
		Amount:      amount,
		Category:    strings.TrimSpace(in.Category),
		Description: strings.TrimSpace(in.Description),
		Date:        date,
		CreatedBy:   in.CreatedBy,
		OrgID:       in.OrgID,
		ReceiptURL:  in.ReceiptURL,
	}, nil
}
