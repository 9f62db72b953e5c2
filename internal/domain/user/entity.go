package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents the users table
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string // unique, stored lower-cased
	PasswordHash string
	Role         string // user, admin
	CreatedAt    time.Time
}
