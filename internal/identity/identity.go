// Package identity wraps the authentication boundary: account creation,
// credential checks and session tokens. The rest of the core treats the
// authenticated user as an opaque id.
package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"dues_tracker/internal/middleware"
	"dues_tracker/internal/models"
	"dues_tracker/internal/repository"
	"dues_tracker/internal/validators"
)

var (
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Service is the identity adapter. It is constructed with its database
// handle; nothing here reaches for global state.
type Service struct {
	db    *gorm.DB
	users *repository.UserRepository
	orgs  *repository.OrganizationRepository
}

func NewService(db *gorm.DB, users *repository.UserRepository, orgs *repository.OrganizationRepository) *Service {
	return &Service{db: db, users: users, orgs: orgs}
}

// SignUp creates the account and seeds the owner's organization in a single
// database transaction, then issues a session token.
func (s *Service) SignUp(ctx context.Context, candidate *validators.NewUser) (*models.User, *models.Organization, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(candidate.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Name:         candidate.Name,
		Email:        candidate.Email,
		PasswordHash: string(hash),
		Phone:        candidate.Phone,
	}
	org := &models.Organization{Name: candidate.OrganizationName}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrEmailTaken
			}
			return fmt.Errorf("create user: %w", err)
		}
		org.OwnerID = user.ID
		if err := tx.Create(org).Error; err != nil {
			return fmt.Errorf("create organization: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, "", err
	}

	token, err := middleware.GenerateToken(user.ID)
	if err != nil {
		return nil, nil, "", fmt.Errorf("generate token: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"org_id":  org.ID,
	}).Info("User signed up, organization seeded")
	return user, org, token, nil
}

// Login verifies credentials and issues a session token.
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}
	return user, token, nil
}

// Logout exists for contract parity: sessions are bearer tokens, so logout
// is the client discarding its token. Nothing is revoked server-side.
func (s *Service) Logout(ctx context.Context) error {
	return nil
}

// CurrentUser resolves a token to its account.
func (s *Service) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	userID, err := middleware.ValidateToken(token)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.users.Get(ctx, userID)
}
