package validators

import (
	"strings"

	"github.com/gookit/validate"

	"dues_tracker/internal/phone"
)

// UserInput is the raw sign-up payload. The organization name only seeds the
// owner's organization; it is not persisted on the user record.
type UserInput struct {
	Name             string `json:"name" validate:"required|minLen:2"`
	Email            string `json:"email" validate:"required|email"`
	Password         string `json:"password" validate:"required|minLen:8"`
	Phone            string `json:"phone_number"`
	OrganizationName string `json:"organization_name" validate:"required|minLen:2"`
}

func (in UserInput) Messages() map[string]string {
	return validate.MS{
		"Name.minLen":             "name must be at least 2 characters",
		"Email.email":             "invalid email address",
		"Password.minLen":         "password must be at least 8 characters",
		"OrganizationName.minLen": "organization name must be at least 2 characters",
	}
}

// NewUser is a validated, normalized sign-up candidate. The password is still
// plaintext here; hashing belongs to the identity layer.
type NewUser struct {
	Name             string
	Email            string
	Password         string
	Phone            string
	OrganizationName string
}

func ValidateUser(in UserInput) (*NewUser, FieldErrors) {
	v := newValidation(&in)
	v.Validate()
	errs := collect(v)

	normalizedPhone, phoneErr := phone.Normalize(in.Phone)
	if phoneErr != nil {
		errs = append(errs, FieldError{Field: "phone_number", Message: "invalid phone number, include extension +1"})
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return &NewUser{
		Name:             strings.TrimSpace(in.Name),
		Email:            strings.TrimSpace(strings.ToLower(in.Email)),
		Password:         in.Password,
		Phone:            normalizedPhone,
		OrganizationName: strings.TrimSpace(in.OrganizationName),
	}, nil
}
