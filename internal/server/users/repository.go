package users

import (
	"context"
)

type Repository interface {
	// Create inserts the user and fills in the generated ID and admin flag.
	Create(ctx context.Context, user *User) (*User, error)

	// GetByCollegeID returns common.ErrNotFound when no such user exists.
	GetByCollegeID(ctx context.Context, collegeID string) (*User, error)

	// Exists reports whether a user with the given college id or email
	// is already registered.
	Exists(ctx context.Context, collegeID, email string) (bool, error)

	// ListAll returns the public projection of every user, ordered by id.
	ListAll(ctx context.Context) ([]Public, error)
}
