package repository

import (
	"context"
	"fmt"

	"bga-backend/internal/domain/contact"
)

type PostgresContactRepository struct {
	db DBTX
}

func NewContactRepository(db DBTX) ContactRepository {
	return &PostgresContactRepository{db: db}
}

func (r *PostgresContactRepository) Create(ctx context.Context, m *contact.Message) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO contact_messages (id, first_name, last_name, email, subject, message, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.ID, m.FirstName, m.LastName, m.Email, m.Subject, m.Message, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}

func (r *PostgresContactRepository) List(ctx context.Context) ([]contact.Message, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, first_name, last_name, email, subject, message, created_at
		 FROM contact_messages
		 ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("select contact messages: %w", err)
	}
	defer rows.Close()

	messages := make([]contact.Message, 0)
	for rows.Next() {
		var m contact.Message
		if err := rows.Scan(&m.ID, &m.FirstName, &m.LastName, &m.Email, &m.Subject, &m.Message, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contact messages: %w", err)
	}
	return messages, nil
}
