package validators

import (
	"strings"

	"github.com/gookit/validate"

	"dues_tracker/internal/models"
	"dues_tracker/internal/phone"
)

type MemberInput struct {
	Name   string `json:"name" validate:"required|minLen:2"`
	Email  string `json:"email" validate:"required|email"`
	OrgID  string `json:"org_id" validate:"required"`
	Role   string `json:"role"`
	Phone  string `json:"phone_number"`
	Status string `json:"status"`
}

func (in MemberInput) Messages() map[string]string {
	return validate.MS{
		"Name.minLen": "name must be at least 2 characters",
		"Email.email": "invalid email address",
	}
}

func ValidateMember(in MemberInput) (*models.Member, FieldErrors) {
	v := newValidation(&in)
	v.Validate()
	errs := collect(v)

	role := strings.ToUpper(strings.TrimSpace(in.Role))
	switch role {
	case "":
		role = models.RoleMember
	case models.RoleAdmin, models.RoleMember:
	default:
		errs = append(errs, FieldError{Field: "role", Message: "role must be ADMIN or MEMBER"})
	}

	status := strings.ToUpper(strings.TrimSpace(in.Status))
	switch status {
	case "", models.StatusActive, models.StatusInactive:
	default:
		errs = append(errs, FieldError{Field: "status", Message: "status must be ACTIVE or INACTIVE"})
	}

	normalizedPhone, phoneErr := phone.Normalize(in.Phone)
	if phoneErr != nil {
		errs = append(errs, FieldError{Field: "phone_number", Message: "invalid phone number, include extension +1"})
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return &models.Member{
		Name:   strings.TrimSpace(in.Name),
		Email:  strings.TrimSpace(strings.ToLower(in.Email)),
		OrgID:  in.OrgID,
		Role:   role,
		Phone:  normalizedPhone,
		Status: status,
	}, nil
}
