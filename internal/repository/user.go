package repository

import (
	"context"

	"docvault/internal/model"
)

// UserRepository defines data access for user accounts.
type UserRepository interface {
	// Create inserts a new user and returns the stored row.
	Create(ctx context.Context, user *model.User) (*model.User, error)

	// FindByUsername returns the user with the given username, sql.ErrNoRows if absent.
	FindByUsername(ctx context.Context, username string) (*model.User, error)

	// FindByID returns the user by ID, sql.ErrNoRows if absent.
	FindByID(ctx context.Context, id string) (*model.User, error)
}
