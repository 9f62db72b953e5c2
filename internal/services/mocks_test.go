package services

import (
	"context"
	"sort"
	"sync"

	"bga-backend/internal/domain/contact"
	"bga-backend/internal/domain/user"
	bga_errors "bga-backend/pkg/errors"

	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(user.User), args.Error(1)
}

// memUserRepo enforces email uniqueness the way the users_email_key constraint does.
type memUserRepo struct {
	mu    sync.Mutex
	users map[string]user.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]user.User)}
}

func (r *memUserRepo) Create(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.Email]; ok {
		return bga_errors.ErrAlreadyExists
	}
	r.users[u.Email] = *u
	return nil
}

func (r *memUserRepo) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return user.User{}, bga_errors.ErrNotFound
	}
	return u, nil
}

type memContactRepo struct {
	mu        sync.Mutex
	messages  []contact.Message
	createErr error
}

func (r *memContactRepo) Create(_ context.Context, m *contact.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.messages = append(r.messages, *m)
	return nil
}

func (r *memContactRepo) List(_ context.Context) ([]contact.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]contact.Message(nil), r.messages...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
