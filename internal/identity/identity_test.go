package identity

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"dues_tracker/internal/config"
	"dues_tracker/internal/repository"
	"dues_tracker/internal/validators"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return NewService(db, repository.NewUserRepository(db), repository.NewOrganizationRepository(db))
}

func candidate() *validators.NewUser {
	return &validators.NewUser{
		Name:             "Alice",
		Email:            "alice@example.com",
		Password:         "correct horse battery",
		OrganizationName: "Chess Club",
	}
}

func TestSignUpSeedsOrganization(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	user, org, token, err := svc.SignUp(ctx, candidate())
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, user.ID, org.OwnerID)
	assert.Equal(t, "Chess Club", org.Name)
	assert.NotEqual(t, "correct horse battery", user.PasswordHash)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, _, _, err := svc.SignUp(ctx, candidate())
	require.NoError(t, err)

	_, _, _, err = svc.SignUp(ctx, candidate())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, _, _, err := svc.SignUp(ctx, candidate())
	require.NoError(t, err)

	user, token, err := svc.Login(ctx, "alice@example.com", "correct horse battery")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "alice@example.com", user.Email)

	_, _, err = svc.Login(ctx, "alice@example.com", "wrong password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "correct horse battery")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCurrentUser(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, _, token, err := svc.SignUp(ctx, candidate())
	require.NoError(t, err)

	user, err := svc.CurrentUser(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	_, err = svc.CurrentUser(ctx, "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
