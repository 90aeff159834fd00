// Package users contains the user directory contract and its Postgres
// implementation.
package users

import (
	"context"

	"github.com/mpetrenko/authcore/internal/server/models"
)

// Repository is the lookup/insert contract the authentication service
// depends on. Implementations must guarantee email uniqueness on Create.
type Repository interface {
	// Create inserts a new user. A uniqueness violation on email yields
	// common.ErrDuplicateEmail; other storage faults wrap common.ErrDirectory.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// FindByEmail returns the user with the given (normalized) email,
	// or common.ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// FindByID returns the user with the given id, or common.ErrNotFound.
	FindByID(ctx context.Context, id string) (*models.User, error)
}
