package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"dues_tracker/internal/config"
	"dues_tracker/internal/models"
	"dues_tracker/internal/subscription"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func newTestRepos(t *testing.T) (*MemberRepository, *FeeRepository, *TransactionRepository, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	hub := subscription.NewHub()
	transactions := NewTransactionRepository(db, hub)
	fees := NewFeeRepository(db, transactions)
	members := NewMemberRepository(db)
	return members, fees, transactions, db
}

func seedFee(t *testing.T, fees *FeeRepository, orgID string, memberIDs ...string) *models.Fee {
	t.Helper()
	fee := &models.Fee{
		Name:      "Annual Dues",
		Amount:    decimal.RequireFromString("50.00"),
		DueDate:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		MemberIDs: memberIDs,
		OrgID:     orgID,
	}
	require.NoError(t, fees.AddFee(context.Background(), fee))
	return fee
}

func TestAddMemberRejectsDuplicate(t *testing.T) {
	members, _, _, _ := newTestRepos(t)
	ctx := context.Background()

	first := &models.Member{Name: "Alice", Email: "alice@example.com", OrgID: "org-1", Role: models.RoleMember}
	require.NoError(t, members.AddMember(ctx, first))

	dup := &models.Member{Name: "Alice Again", Email: "alice@example.com", OrgID: "org-1", Role: models.RoleMember}
	assert.ErrorIs(t, members.AddMember(ctx, dup), ErrDuplicateMember)

	// Same email in a different organization is fine.
	other := &models.Member{Name: "Alice", Email: "alice@example.com", OrgID: "org-2", Role: models.RoleMember}
	assert.NoError(t, members.AddMember(ctx, other))
}

func TestAddFeeFansOutAssignments(t *testing.T) {
	_, fees, _, _ := newTestRepos(t)
	ctx := context.Background()

	fee := seedFee(t, fees, "org-1", "m1", "m2", "m3")

	assignments, err := fees.GetFeeAssignments(ctx, fee.ID)
	require.NoError(t, err)
	require.Len(t, assignments, 3)

	seen := map[string]bool{}
	for _, a := range assignments {
		assert.Equal(t, fee.ID, a.FeeID)
		assert.False(t, a.IsPaid)
		assert.Nil(t, a.PaidDate)
		seen[a.MemberID] = true
	}
	assert.Equal(t, map[string]bool{"m1": true, "m2": true, "m3": true}, seen)
}

func TestAddFeeRequiresAssignees(t *testing.T) {
	_, fees, _, db := newTestRepos(t)
	ctx := context.Background()

	fee := &models.Fee{Name: "Orphan", Amount: decimal.NewFromInt(10), OrgID: "org-1"}
	assert.ErrorIs(t, fees.AddFee(ctx, fee), ErrNoAssignees)

	var count int64
	require.NoError(t, db.Model(&models.Fee{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdateFeeAssignmentPaymentCreatesTransaction(t *testing.T) {
	_, fees, transactions, _ := newTestRepos(t)
	ctx := context.Background()

	fee := seedFee(t, fees, "org-1", "m1", "m2")
	assignments, err := fees.GetFeeAssignments(ctx, fee.ID)
	require.NoError(t, err)
	require.Len(t, assignments, 2)

	paid := true
	paidDate := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	method := models.PaymentVenmo
	err = fees.UpdateFeeAssignment(ctx, assignments[0].ID, AssignmentPatch{
		IsPaid:        &paid,
		PaidDate:      &paidDate,
		PaymentMethod: &method,
	})
	require.NoError(t, err)

	updated, err := fees.GetFeeAssignments(ctx, fee.ID)
	require.NoError(t, err)
	var paidCount int
	for _, a := range updated {
		if a.IsPaid {
			paidCount++
		}
	}
	assert.Equal(t, 1, paidCount)

	txns, err := transactions.ListByOrg(ctx, "org-1")
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, models.TypeRevenue, txns[0].Type)
	assert.True(t, txns[0].Amount.Equal(fee.Amount))
	assert.Equal(t, models.CategoryMembershipFees, txns[0].Category)
	assert.Equal(t, models.SystemCreator, txns[0].CreatedBy)
	assert.True(t, txns[0].Date.Equal(paidDate))

	// Paying the second assignment records its own entry; the first is not
	// duplicated.
	err = fees.UpdateFeeAssignment(ctx, assignments[1].ID, AssignmentPatch{IsPaid: &paid})
	require.NoError(t, err)

	txns, err = transactions.ListByOrg(ctx, "org-1")
	require.NoError(t, err)
	assert.Len(t, txns, 2)
}

func TestUpdateFeeAssignmentNotesOnly(t *testing.T) {
	_, fees, transactions, _ := newTestRepos(t)
	ctx := context.Background()

	fee := seedFee(t, fees, "org-1", "m1")
	assignments, err := fees.GetFeeAssignments(ctx, fee.ID)
	require.NoError(t, err)

	notes := "promised to pay next week"
	require.NoError(t, fees.UpdateFeeAssignment(ctx, assignments[0].ID, AssignmentPatch{Notes: &notes}))

	txns, err := transactions.ListByOrg(ctx, "org-1")
	require.NoError(t, err)
	assert.Empty(t, txns)

	updated, err := fees.GetFeeAssignments(ctx, fee.ID)
	require.NoError(t, err)
	assert.Equal(t, notes, updated[0].Notes)
	assert.False(t, updated[0].IsPaid)
}

func TestDeleteFeeRemovesAssignments(t *testing.T) {
	_, fees, _, _ := newTestRepos(t)
	ctx := context.Background()

	fee := seedFee(t, fees, "org-1", "m1", "m2")
	require.NoError(t, fees.DeleteFee(ctx, fee.ID))

	_, err := fees.GetFee(ctx, fee.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assignments, err := fees.GetFeeAssignments(ctx, fee.ID)
	require.NoError(t, err)
	assert.Empty(t, assignments)
}

func TestGetAssignmentsByOrg(t *testing.T) {
	_, fees, _, _ := newTestRepos(t)
	ctx := context.Background()

	seedFee(t, fees, "org-1", "m1", "m2")
	seedFee(t, fees, "org-2", "m3")

	assignments, err := fees.GetAssignmentsByOrg(ctx, "org-1")
	require.NoError(t, err)
	assert.Len(t, assignments, 2)
}

func TestTransactionListByOrgNewestFirst(t *testing.T) {
	_, _, transactions, _ := newTestRepos(t)
	ctx := context.Background()

	for _, day := range []int{10, 25, 5} {
		txn := &models.Transaction{
			Type:      models.TypeRevenue,
			Amount:    decimal.NewFromInt(1),
			Category:  "Donations",
			Date:      time.Date(2026, 1, day, 0, 0, 0, 0, time.UTC),
			CreatedBy: "user-1",
			OrgID:     "org-1",
		}
		require.NoError(t, transactions.Create(ctx, txn))
	}

	txns, err := transactions.ListByOrg(ctx, "org-1")
	require.NoError(t, err)
	require.Len(t, txns, 3)
	assert.Equal(t, 25, txns[0].Date.Day())
	assert.Equal(t, 10, txns[1].Date.Day())
	assert.Equal(t, 5, txns[2].Date.Day())
}

func TestSubscribeSeedsAndFollowsWrites(t *testing.T) {
	_, _, transactions, _ := newTestRepos(t)
	ctx := context.Background()

	first := &models.Transaction{
		Type:      models.TypeRevenue,
		Amount:    decimal.NewFromInt(5),
		Category:  "Donations",
		Date:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		CreatedBy: "user-1",
		OrgID:     "org-1",
	}
	require.NoError(t, transactions.Create(ctx, first))

	sub, err := transactions.Subscribe(ctx, "org-1")
	require.NoError(t, err)
	defer sub.Cancel()

	initial := <-sub.C
	require.Len(t, initial, 1)

	second := &models.Transaction{
		Type:      models.TypeExpense,
		Amount:    decimal.NewFromInt(3),
		Category:  "Supplies",
		Date:      time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
		CreatedBy: "user-1",
		OrgID:     "org-1",
	}
	require.NoError(t, transactions.Create(ctx, second))

	next := <-sub.C
	require.Len(t, next, 2)
	assert.Equal(t, second.ID, next[0].ID)
}
