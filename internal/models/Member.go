package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin  = "ADMIN"
	RoleMember = "MEMBER"

	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// Member is a person belonging to an organization. The (org_id, email) pair
// is unique; duplicate inserts are rejected before the write and the index
// backstops races.
type Member struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null;uniqueIndex:idx_members_org_email"`
	OrgID     string    `json:"org_id" gorm:"not null;uniqueIndex:idx_members_org_email;index"`
	Role      string    `json:"role" gorm:"not null;default:MEMBER"` // ADMIN or MEMBER
	Phone     string    `json:"phone,omitempty"`                     // E.164, empty when not provided
	Status    string    `json:"status,omitempty"`                    // ACTIVE or INACTIVE, empty when unset
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
