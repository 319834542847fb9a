package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"dues_tracker/internal/models"
)

type FeeRepository struct {
	db           *gorm.DB
	transactions *TransactionRepository
}

func NewFeeRepository(db *gorm.DB, transactions *TransactionRepository) *FeeRepository {
	return &FeeRepository{db: db, transactions: transactions}
}

// AddFee writes the fee and fans out one UNPAID assignment per member id.
// The fee row and the assignment batch commit in a single database
// transaction, so a failed assignment write never leaves an orphaned fee.
func (r *FeeRepository) AddFee(ctx context.Context, fee *models.Fee) error {
	if len(fee.MemberIDs) == 0 {
		return ErrNoAssignees
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(fee).Error; err != nil {
			return fmt.Errorf("create fee: %w", err)
		}
		assignments := make([]models.FeeAssignment, 0, len(fee.MemberIDs))
		for _, memberID := range fee.MemberIDs {
			assignments = append(assignments, models.FeeAssignment{
				FeeID:    fee.ID,
				MemberID: memberID,
			})
		}
		if err := tx.Create(&assignments).Error; err != nil {
			return fmt.Errorf("create fee assignments: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"fee_id":      fee.ID,
		"org_id":      fee.OrgID,
		"assignments": len(fee.MemberIDs),
	}).Info("Fee created with assignments")
	return nil
}

func (r *FeeRepository) GetFee(ctx context.Context, id string) (*models.Fee, error) {
	var fee models.Fee
	if err := r.db.WithContext(ctx).First(&fee, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get fee: %w", err)
	}
	return &fee, nil
}

func (r *FeeRepository) GetFees(ctx context.Context, orgID string) ([]models.Fee, error) {
	var fees []models.Fee
	if err := r.db.WithContext(ctx).Where("org_id = ?", orgID).Find(&fees).Error; err != nil {
		return nil, fmt.Errorf("list fees: %w", err)
	}
	return fees, nil
}

// UpdateFee patches only the provided fields. The member id set is not
// re-validated here; assignments are fixed at creation time.
func (r *FeeRepository) UpdateFee(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Model(&models.Fee{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return fmt.Errorf("update fee: %w", err)
	}
	return nil
}

// DeleteFee removes the fee and every assignment referencing it in one
// database transaction.
func (r *FeeRepository) DeleteFee(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Fee{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("delete fee: %w", err)
		}
		if err := tx.Delete(&models.FeeAssignment{}, "fee_id = ?", id).Error; err != nil {
			return fmt.Errorf("delete fee assignments: %w", err)
		}
		return nil
	})
}

func (r *FeeRepository) GetFeeAssignments(ctx context.Context, feeID string) ([]models.FeeAssignment, error) {
	var assignments []models.FeeAssignment
	if err := r.db.WithContext(ctx).Where("fee_id = ?", feeID).Find(&assignments).Error; err != nil {
		return nil, fmt.Errorf("list fee assignments: %w", err)
	}
	return assignments, nil
}

// GetAssignmentsByOrg returns every assignment belonging to the
// organization's fees; the dashboard consumes this.
func (r *FeeRepository) GetAssignmentsByOrg(ctx context.Context, orgID string) ([]models.FeeAssignment, error) {
	var assignments []models.FeeAssignment
	err := r.db.WithContext(ctx).
		Joins("JOIN fees ON fees.id = fee_assignments.fee_id").
		Where("fees.org_id = ?", orgID).
		Find(&assignments).Error
	if err != nil {
		return nil, fmt.Errorf("list org fee assignments: %w", err)
	}
	return assignments, nil
}

// AssignmentPatch carries the optional fields of a fee assignment update.
// Nil fields are not written.
type AssignmentPatch struct {
	IsPaid        *bool      `json:"is_paid"`
	PaidDate      *time.Time `json:"paid_date"`
	PaymentMethod *string    `json:"payment_method"`
	Notes         *string    `json:"notes"`
}

// UpdateFeeAssignment patches the assignment. When IsPaid transitions to
// true the parent fee is re-read and a Revenue transaction for the fee
// amount is recorded, attributed to the system identity. The derived write
// happens after the patch and is not rolled into it: a reader may observe
// the paid assignment one round trip before the transaction appears.
func (r *FeeRepository) UpdateFeeAssignment(ctx context.Context, id string, patch AssignmentPatch) error {
	fields := map[string]interface{}{}
	if patch.IsPaid != nil {
		fields["is_paid"] = *patch.IsPaid
	}
	if patch.PaidDate != nil {
		fields["paid_date"] = *patch.PaidDate
	}
	if patch.PaymentMethod != nil {
		fields["payment_method"] = *patch.PaymentMethod
	}
	if patch.Notes != nil {
		fields["notes"] = *patch.Notes
	}
	if len(fields) == 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).Model(&models.FeeAssignment{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return fmt.Errorf("update fee assignment: %w", err)
	}

	if patch.IsPaid != nil && *patch.IsPaid {
		r.recordPayment(ctx, id)
	}
	return nil
}

// recordPayment creates the ledger entry for a paid assignment. Best effort:
// a failure here is logged and does not unwind the assignment patch.
func (r *FeeRepository) recordPayment(ctx context.Context, assignmentID string) {
	var assignment models.FeeAssignment
	if err := r.db.WithContext(ctx).First(&assignment, "id = ?", assignmentID).Error; err != nil {
		logrus.WithError(err).WithField("assignment_id", assignmentID).Error("Failed to re-read paid assignment")
		return
	}
	fee, err := r.GetFee(ctx, assignment.FeeID)
	if err != nil {
		logrus.WithError(err).WithField("fee_id", assignment.FeeID).Error("Failed to load fee for payment transaction")
		return
	}

	date := time.Now().UTC()
	if assignment.PaidDate != nil {
		date = *assignment.PaidDate
	}

	txn := models.Transaction{
		Type:        models.TypeRevenue,
		Amount:      fee.Amount,
		Category:    models.CategoryMembershipFees,
		Description: fmt.Sprintf("Fee payment: %s", fee.Name),
		Date:        date,
		CreatedBy:   models.SystemCreator,
		OrgID:       fee.OrgID,
	}
	if err := r.transactions.Create(ctx, &txn); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"assignment_id": assignmentID,
			"fee_id":        fee.ID,
		}).Error("Failed to record fee payment transaction")
		return
	}

	logrus.WithFields(logrus.Fields{
		"assignment_id":  assignmentID,
		"fee_id":         fee.ID,
		"transaction_id": txn.ID,
	}).Info("Fee payment recorded")
}
