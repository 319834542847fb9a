package validators

import (
	"strings"

	"github.com/shopspring/decimal"

	"dues_tracker/internal/models"
)

type FeeInput struct {
	Name      string   `json:"name" validate:"required"`
	Amount    Amount   `json:"amount" validate:"required"`
	DueDate   string   `json:"due_date" validate:"required"`
	MemberIDs []string `json:"member_ids"`
	OrgID     string   `json:"org_id" validate:"required"`
}

func ValidateFee(in FeeInput) (*models.Fee, FieldErrors) {
	v := newValidation(&in)
	v.Validate()
	errs := collect(v)

	amount := decimal.Zero
	if strings.TrimSpace(string(in.Amount)) != "" {
		var msg string
		if amount, msg = parseAmount(in.Amount, decimal.Zero); msg != "" {
			errs = append(errs, FieldError{Field: "amount", Message: msg})
		}
	}

	dueDate, ok := parseDate(in.DueDate)
	if strings.TrimSpace(in.DueDate) != "" && !ok {
		errs = append(errs, FieldError{Field: "due_date", Message: "due date must be a valid date"})
	}

	if len(errs) > 0 {
		return nil, errs
	}

	// Record-level check, only once every field passed.
	if len(in.MemberIDs) == 0 {
		return nil, FieldErrors{{Field: "member_ids", Message: "fee must be assigned to at least one member"}}
	}

	return &models.Fee{
		Name:      strings.TrimSpace(in.Name),
		Amount:    amount,
		DueDate:   dueDate,
		MemberIDs: append([]string(nil), in.MemberIDs...),
		OrgID:     in.OrgID,
	}, nil
}
