package repository

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"dues_tracker/internal/models"
	"dues_tracker/internal/subscription"
)

type TransactionRepository struct {
	db  *gorm.DB
	hub *subscription.Hub
}

func NewTransactionRepository(db *gorm.DB, hub *subscription.Hub) *TransactionRepository {
	return &TransactionRepository{db: db, hub: hub}
}

// Create writes one immutable ledger entry and pushes a fresh full snapshot
// to live subscribers. There is no idempotency key; calling twice writes two
// entries.
func (r *TransactionRepository) Create(ctx context.Context, txn *models.Transaction) error {
	if err := r.db.WithContext(ctx).Create(txn).Error; err != nil {
		return fmt.Errorf("create transaction: %w", err)
	}
	r.publishSnapshot(ctx, txn.OrgID)
	return nil
}

// ListByOrg returns every transaction for the organization, newest first.
func (r *TransactionRepository) ListByOrg(ctx context.Context, orgID string) ([]models.Transaction, error) {
	var txns []models.Transaction
	err := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Order("date DESC, created_at DESC").
		Find(&txns).Error
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txns, nil
}

// Subscribe opens a live feed for orgID seeded with the current full set.
// The returned handle must be cancelled exactly once by the caller.
func (r *TransactionRepository) Subscribe(ctx context.Context, orgID string) (*subscription.Subscription, error) {
	snapshot, err := r.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return r.hub.Subscribe(orgID, snapshot), nil
}

func (r *TransactionRepository) publishSnapshot(ctx context.Context, orgID string) {
	snapshot, err := r.ListByOrg(ctx, orgID)
	if err != nil {
		logrus.WithError(err).WithField("org_id", orgID).Error("Failed to load transaction snapshot for subscribers")
		return
	}
	r.hub.Publish(orgID, snapshot)
}
