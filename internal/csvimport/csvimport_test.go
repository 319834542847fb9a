package csvimport

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dues_tracker/internal/models"
)

func TestParse(t *testing.T) {
	input := strings.Join([]string{
		"email,name,role,phoneNumber",
		"alice@example.com,Alice,admin,+14045551234",
		"bob@example.com,Bob,,",
		",Nobody,member,",
		"carol@example.com,,member,",
	}, "\n")

	result, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, result.Rows, 2)
	assert.Equal(t, Row{Line: 2, Email: "alice@example.com", Name: "Alice", Role: models.RoleAdmin, Phone: "+14045551234"}, result.Rows[0])
	assert.Equal(t, Row{Line: 3, Email: "bob@example.com", Name: "Bob", Role: models.RoleMember}, result.Rows[1])

	require.Len(t, result.Skipped, 2)
	assert.Equal(t, SkippedRow{Line: 4, Reason: "missing email"}, result.Skipped[0])
	assert.Equal(t, SkippedRow{Line: 5, Reason: "missing name"}, result.Skipped[1])
}

func TestParseHeaderVariants(t *testing.T) {
	// Header matching ignores case, spaces and underscores; "phone" aliases
	// phoneNumber; column order does not matter.
	input := strings.Join([]string{
		"Name, EMAIL ,Phone,ROLE",
		"Alice,alice@example.com,+14045551234,ADMIN",
	}, "\n")

	result, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, "alice@example.com", result.Rows[0].Email)
	assert.Equal(t, "+14045551234", result.Rows[0].Phone)
	assert.Equal(t, models.RoleAdmin, result.Rows[0].Role)
}

func TestParseUnknownRoleImportsAsMember(t *testing.T) {
	input := "email,name,role\nalice@example.com,Alice,overlord\n"

	result, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, models.RoleMember, result.Rows[0].Role)
}

func TestParseMissingRequiredHeader(t *testing.T) {
	_, err := Parse(strings.NewReader("name,role\nAlice,admin\n"))
	assert.Error(t, err)
}

func TestParseEmptyFile(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	assert.Error(t, err)
}

func TestParseShortRecords(t *testing.T) {
	// A row shorter than the header still parses; absent cells read empty.
	input := "email,name,role,phoneNumber\nalice@example.com,Alice\n"

	result, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, models.RoleMember, result.Rows[0].Role)
	assert.Equal(t, "", result.Rows[0].Phone)
}
