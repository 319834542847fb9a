// Package repository holds the persistence layer. Every repository receives
// its *gorm.DB at construction; there is no package-level database handle.
package repository

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateMember is returned when a member with the same email
	// already exists in the organization. Surfaced as its own kind so
	// callers can report it distinctly from generic failures.
	ErrDuplicateMember = errors.New("member with this email already exists in the organization")

	// ErrNoAssignees rejects a fee with no assigned members before any write.
	ErrNoAssignees = errors.New("fee must be assigned to at least one member")
)

// isUniqueViolation backstops the pre-write duplicate query against races.
// Postgres reports 23505; gorm's error translation covers other drivers.
func isUniqueViolation(err error) bool {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
