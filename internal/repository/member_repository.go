package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"dues_tracker/internal/models"
)

type MemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// AddMember rejects a duplicate (org_id, email) pair before writing. The
// unique index catches the race where two adds slip past the query.
func (r *MemberRepository) AddMember(ctx context.Context, member *models.Member) error {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Member{}).
		Where("org_id = ? AND email = ?", member.OrgID, member.Email).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("check duplicate member: %w", err)
	}
	if count > 0 {
		return ErrDuplicateMember
	}

	if err := r.db.WithContext(ctx).Create(member).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateMember
		}
		return fmt.Errorf("create member: %w", err)
	}
	return nil
}

func (r *MemberRepository) GetMember(ctx context.Context, id string) (*models.Member, error) {
	var member models.Member
	if err := r.db.WithContext(ctx).First(&member, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get member: %w", err)
	}
	return &member, nil
}

// GetMembers returns every member of the organization in store order.
func (r *MemberRepository) GetMembers(ctx context.Context, orgID string) ([]models.Member, error) {
	var members []models.Member
	if err := r.db.WithContext(ctx).Where("org_id = ?", orgID).Find(&members).Error; err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return members, nil
}

// UpdateMember patches only the provided fields.
func (r *MemberRepository) UpdateMember(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Model(&models.Member{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateMember
		}
		return fmt.Errorf("update member: %w", err)
	}
	return nil
}

// DeleteMember removes the member row. Historical fee assignments referencing
// the member are left in place.
func (r *MemberRepository) DeleteMember(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&models.Member{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	return nil
}
