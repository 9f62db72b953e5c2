package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"bga-backend/internal/domain/contact"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var contactColumns = []string{"id", "first_name", "last_name", "email", "subject", "message", "created_at"}

func TestContactRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewContactRepository(mock)
	m := &contact.Message{
		ID:        uuid.New(),
		FirstName: "Jane",
		Email:     "j@x.com",
		Message:   "hi",
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectExec(`INSERT INTO contact_messages`).
		WithArgs(m.ID, m.FirstName, m.LastName, m.Email, m.Subject, m.Message, m.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), m))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_List_NewestFirst(t *testing.T) {
	mock := newMockPool(t)
	repo := NewContactRepository(mock)
	newer := time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)
	older := newer.Add(-time.Hour)
	id1, id2 := uuid.New(), uuid.New()

	rows := pgxmock.NewRows(contactColumns).
		AddRow(id1, "Jane", "", "j@x.com", "", "hi", newer).
		AddRow(id2, "John", "Doe", "john@x.com", "Hello", "there", older)
	mock.ExpectQuery(`ORDER BY created_at DESC, id DESC`).WillReturnRows(rows)

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, id1, got[0].ID)
	assert.Equal(t, "Doe", got[1].LastName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_List_EmptyIsNotNil(t *testing.T) {
	mock := newMockPool(t)
	repo := NewContactRepository(mock)

	mock.ExpectQuery(`FROM contact_messages`).WillReturnRows(pgxmock.NewRows(contactColumns))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestContactRepository_List_QueryError(t *testing.T) {
	mock := newMockPool(t)
	repo := NewContactRepository(mock)

	mock.ExpectQuery(`FROM contact_messages`).WillReturnError(errors.New("connection reset"))

	_, err := repo.List(context.Background())
	assert.ErrorContains(t, err, "connection reset")
}
