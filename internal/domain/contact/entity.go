package contact

import (
	"time"

	"github.com/google/uuid"
)

// Message represents the contact_messages table. Rows are never updated.
type Message struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Subject   string
	Message   string
	CreatedAt time.Time
}
