package validators

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dues_tracker/internal/models"
)

// normalizeField folds casing and separators so assertions hold whether the
// library reports struct field names or json tag names.
func normalizeField(name string) string {
	name = strings.ToLower(name)
	return strings.ReplaceAll(name, "_", "")
}

func fieldNames(errs FieldErrors) []string {
	names := make([]string, 0, len(errs))
	for _, e := range errs {
		names = append(names, normalizeField(e.Field))
	}
	return names
}

func TestValidateUser(t *testing.T) {
	in := UserInput{
		Name:             "  Alice  ",
		Email:            "Alice@Example.COM",
		Password:         "hunter2hunter2",
		Phone:            "+14045551234",
		OrganizationName: "Chess Club",
	}

	user, errs := ValidateUser(in)
	require.Empty(t, errs)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "+14045551234", user.Phone)
	assert.Equal(t, "Chess Club", user.OrganizationName)
}

func TestValidateUserAccumulatesAllErrors(t *testing.T) {
	in := UserInput{
		Name:             "A",
		Email:            "not-an-email",
		Password:         "short",
		Phone:            "abc",
		OrganizationName: "X",
	}

	user, errs := ValidateUser(in)
	assert.Nil(t, user)
	names := fieldNames(errs)
	assert.Contains(t, names, "name")
	assert.Contains(t, names, "email")
	assert.Contains(t, names, "password")
	assert.Contains(t, names, "phonenumber")
	assert.Contains(t, names, "organizationname")
}

func TestValidateMemberDefaults(t *testing.T) {
	in := MemberInput{
		Name:  "Bob Smith",
		Email: "BOB@example.com",
		OrgID: "org-1",
	}

	member, errs := ValidateMember(in)
	require.Empty(t, errs)
	assert.Equal(t, models.RoleMember, member.Role)
	assert.Equal(t, "bob@example.com", member.Email)
	assert.Equal(t, "", member.Phone)
}

func TestValidateMemberRejectsUnknownRole(t *testing.T) {
	in := MemberInput{
		Name:  "Bob Smith",
		Email: "bob@example.com",
		OrgID: "org-1",
		Role:  "OVERLORD",
	}

	member, errs := ValidateMember(in)
	assert.Nil(t, member)
	assert.Contains(t, fieldNames(errs), "role")
}

func TestValidateMemberNormalizesRoleCasing(t *testing.T) {
	in := MemberInput{
		Name:  "Bob Smith",
		Email: "bob@example.com",
		OrgID: "org-1",
		Role:  "admin",
	}

	member, errs := ValidateMember(in)
	require.Empty(t, errs)
	assert.Equal(t, models.RoleAdmin, member.Role)
}

func TestValidateMemberInvalidPhone(t *testing.T) {
	in := MemberInput{
		Name:  "Bob Smith",
		Email: "bob@example.com",
		OrgID: "org-1",
		Phone: "not a number",
	}

	member, errs := ValidateMember(in)
	assert.Nil(t, member)
	assert.Contains(t, fieldNames(errs), "phonenumber")
}

func TestValidateFee(t *testing.T) {
	in := FeeInput{
		Name:      "Annual Dues",
		Amount:    "50.00",
		DueDate:   "2026-03-01",
		MemberIDs: []string{"m1", "m2"},
		OrgID:     "org-1",
	}

	fee, errs := ValidateFee(in)
	require.Empty(t, errs)
	assert.True(t, fee.Amount.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, time.March, fee.DueDate.Month())
	assert.Len(t, fee.MemberIDs, 2)
}

func TestValidateFeeRequiresAssignees(t *testing.T) {
	in := FeeInput{
		Name:    "Annual Dues",
		Amount:  "50",
		DueDate: "2026-03-01",
		OrgID:   "org-1",
	}

	fee, errs := ValidateFee(in)
	assert.Nil(t, fee)
	require.Len(t, errs, 1)
	assert.Equal(t, "member_ids", errs[0].Field)
}

func TestValidateFeeFieldErrorsBeforeRecordCheck(t *testing.T) {
	// With a field-level failure the record-level assignee check must not run.
	in := FeeInput{
		Name:    "Annual Dues",
		Amount:  "-5",
		DueDate: "2026-03-01",
		OrgID:   "org-1",
	}

	fee, errs := ValidateFee(in)
	assert.Nil(t, fee)
	names := fieldNames(errs)
	assert.Contains(t, names, "amount")
	assert.NotContains(t, names, "memberids")
}

func TestValidateTransaction(t *testing.T) {
	in := TransactionInput{
		Type:      models.TypeExpense,
		Amount:    "12.50",
		Category:  "Supplies",
		Date:      "2026-01-15",
		CreatedBy: "user-1",
		OrgID:     "org-1",
	}

	txn, errs := ValidateTransaction(in)
	require.Empty(t, errs)
	assert.True(t, txn.Amount.Equal(decimal.NewFromFloat(12.5)))
	assert.Equal(t, 2026, txn.Date.Year())
}

func TestValidateTransactionDateDefaultsToNow(t *testing.T) {
	in := TransactionInput{
		Type:      models.TypeRevenue,
		Amount:    "1",
		Category:  "Donations",
		CreatedBy: "user-1",
		OrgID:     "org-1",
	}

	before := time.Now().UTC()
	txn, errs := ValidateTransaction(in)
	require.Empty(t, errs)
	assert.False(t, txn.Date.Before(before))
}

func TestValidateTransactionRejections(t *testing.T) {
	tests := []struct {
		name  string
		in    TransactionInput
		field string
	}{
		{
			name:  "unknown type",
			in:    TransactionInput{Type: "Transfer", Amount: "5", Category: "c", CreatedBy: "u", OrgID: "o"},
			field: "type",
		},
		{
			name:  "amount below minimum",
			in:    TransactionInput{Type: models.TypeRevenue, Amount: "0", Category: "c", CreatedBy: "u", OrgID: "o"},
			field: "amount",
		},
		{
			name:  "non-numeric amount",
			in:    TransactionInput{Type: models.TypeRevenue, Amount: "abc", Category: "c", CreatedBy: "u", OrgID: "o"},
			field: "amount",
		},
		{
			name:  "garbage date",
			in:    TransactionInput{Type: models.TypeRevenue, Amount: "5", Category: "c", Date: "yesterday", CreatedBy: "u", OrgID: "o"},
			field: "date",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn, errs := ValidateTransaction(tt.in)
			assert.Nil(t, txn)
			assert.Contains(t, fieldNames(errs), tt.field)
		})
	}
}

func TestAmountUnmarshalJSON(t *testing.T) {
	var payload struct {
		Amount Amount `json:"amount"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"amount":"12.50"}`), &payload))
	assert.Equal(t, Amount("12.50"), payload.Amount)

	require.NoError(t, json.Unmarshal([]byte(`{"amount":12.5}`), &payload))
	assert.Equal(t, Amount("12.5"), payload.Amount)
}

func TestValidateOrganization(t *testing.T) {
	org, errs := ValidateOrganization(OrganizationInput{Name: "  Chess Club  ", OwnerID: "user-1"})
	require.Empty(t, errs)
	assert.Equal(t, "Chess Club", org.Name)

	org, errs = ValidateOrganization(OrganizationInput{Name: "X", OwnerID: "user-1"})
	assert.Nil(t, org)
	assert.NotEmpty(t, errs)
}
