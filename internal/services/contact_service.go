package services

import (
	"context"
	"strings"
	"time"

	"bga-backend/internal/domain/contact"
	"bga-backend/internal/repository"
	bga_errors "bga-backend/pkg/errors"

	"github.com/google/uuid"
)

const requiredContactFields = "firstName, email and message are required"

type ContactService struct {
	repo repository.ContactRepository
	now  func() time.Time
}

func NewContactService(repo repository.ContactRepository) *ContactService {
	return &ContactService{repo: repo, now: time.Now}
}

type SubmitContactInput struct {
	FirstName string
	LastName  string
	Email     string
	Subject   string
	Message   string
}

// Submit stores a contact message with a server-assigned id and timestamp.
// Nothing is stored when firstName, email or message is blank.
func (s *ContactService) Submit(ctx context.Context, in SubmitContactInput) (contact.Message, error) {
	msg := contact.Message{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Email:     strings.TrimSpace(in.Email),
		Subject:   strings.TrimSpace(in.Subject),
		Message:   strings.TrimSpace(in.Message),
	}
	if msg.FirstName == "" || msg.Email == "" || msg.Message == "" {
		return contact.Message{}, bga_errors.NewValidationError(requiredContactFields, missingContactFields(msg)...)
	}

	msg.ID = uuid.New()
	msg.CreatedAt = s.now().UTC()
	if err := s.repo.Create(ctx, &msg); err != nil {
		return contact.Message{}, err
	}
	return msg, nil
}

// List returns every stored message, newest first.
func (s *ContactService) List(ctx context.Context) ([]contact.Message, error) {
	return s.repo.List(ctx)
}

func missingContactFields(msg contact.Message) []bga_errors.FieldError {
	var fields []bga_errors.FieldError
	if msg.FirstName == "" {
		fields = append(fields, bga_errors.FieldError{Field: "firstName", Message: "First name required"})
	}
	if msg.Email == "" {
		fields = append(fields, bga_errors.FieldError{Field: "email", Message: "Email required"})
	}
	if msg.Message == "" {
		fields = append(fields, bga_errors.FieldError{Field: "message", Message: "Message required"})
	}
	return fields
}
