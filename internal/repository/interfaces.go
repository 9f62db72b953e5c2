package repository

import (
	"context"

	"bga-backend/internal/domain/contact"
	"bga-backend/internal/domain/user"
)

type UserRepository interface {
	// Create inserts u. A duplicate email returns ErrAlreadyExists.
	Create(ctx context.Context, u *user.User) error
	GetUserByEmail(ctx context.Context, email string) (user.User, error)
}

type ContactRepository interface {
	Create(ctx context.Context, m *contact.Message) error
	// List returns every message, newest first.
	List(ctx context.Context) ([]contact.Message, error)
}
