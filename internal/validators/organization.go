package validators

import (
	"strings"

	"github.com/gookit/validate"

	"dues_tracker/internal/models"
)

type OrganizationInput struct {
	Name    string `json:"name" validate:"required|minLen:2"`
	OwnerID string `json:"owner_id" validate:"required"`
}

func (in OrganizationInput) Messages() map[string]string {
	return validate.MS{
		"Name.minLen": "organization name must be at least 2 characters",
	}
}

func ValidateOrganization(in OrganizationInput) (*models.Organization, FieldErrors) {
	v := newValidation(&in)
	if !v.Validate() {
		return nil, collect(v)
	}
	return &models.Organization{
		Name:    strings.TrimSpace(in.Name),
		OwnerID: in.OwnerID,
	}, nil
}
