package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"bga-backend/internal/auth"
	"bga-backend/internal/domain/user"
	"bga-backend/internal/repository"
	bga_errors "bga-backend/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 6
	// bcrypt rejects longer input with ErrPasswordTooLong
	maxPasswordBytes = 72
)

// validate caches struct and tag parsing; safe for concurrent use.
var validate = validator.New()

type AuthService struct {
	userRepo   repository.UserRepository
	tokens     *auth.TokenCodec
	bcryptCost int
	now        func() time.Time

	// compared against when the email is unknown so both login failures cost the same
	dummyHash []byte
}

func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenCodec, bcryptCost int) *AuthService {
	dummy, err := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcryptCost)
	if err != nil {
		dummy, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)
	}
	return &AuthService{
		userRepo:   userRepo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		now:        time.Now,
		dummyHash:  dummy,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      UserInfo
}

type UserInfo struct {
	Email string
	Name  string
	Role  string
}

// Register creates a regular user and returns its id.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (uuid.UUID, error) {
	u, err := s.CreateUser(ctx, in.Name, in.Email, in.Password, user.RoleUser)
	if err != nil {
		return uuid.Nil, err
	}
	return u.ID, nil
}

// CreateUser validates, hashes and stores a new user with the given role.
// An email that is already taken yields ErrAlreadyExists, including when a
// concurrent insert wins the unique constraint.
func (s *AuthService) CreateUser(ctx context.Context, name, email, password, role string) (user.User, error) {
	email = normalizeEmail(email)
	if err := validateRegister(email, password); err != nil {
		return user.User{}, err
	}

	if _, err := s.userRepo.GetUserByEmail(ctx, email); err == nil {
		return user.User{}, bga_errors.ErrAlreadyExists
	} else if !errors.Is(err, bga_errors.ErrNotFound) {
		return user.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return user.User{}, err
	}

	newUser := user.User{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.userRepo.Create(ctx, &newUser); err != nil {
		return user.User{}, err
	}
	return newUser, nil
}

// Login checks the credentials and issues a session token. Unknown email and
// wrong password both return ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (LoginResult, error) {
	email := normalizeEmail(in.Email)
	if err := validateLogin(email, in.Password); err != nil {
		return LoginResult{}, err
	}

	u, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, bga_errors.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(in.Password))
			return LoginResult{}, bga_errors.ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return LoginResult{}, bga_errors.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(auth.Claims{
		UserID: u.ID.String(),
		Email:  u.Email,
		Role:   u.Role,
	})
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      toUserInfo(u),
	}, nil
}

func validateRegister(email, password string) error {
	var fields []bga_errors.FieldError
	if !isEmail(email) {
		fields = append(fields, bga_errors.FieldError{Field: "email", Message: "Valid email required"})
	}
	switch {
	case len(password) < minPasswordLength:
		fields = append(fields, bga_errors.FieldError{Field: "password", Message: "Password min 6 chars"})
	case len(password) > maxPasswordBytes:
		fields = append(fields, bga_errors.FieldError{Field: "password", Message: "Password max 72 bytes"})
	}
	if len(fields) > 0 {
		return bga_errors.NewValidationError("Validation failed", fields...)
	}
	return nil
}

func validateLogin(email, password string) error {
	var fields []bga_errors.FieldError
	if !isEmail(email) {
		fields = append(fields, bga_errors.FieldError{Field: "email", Message: "Valid email required"})
	}
	if password == "" {
		fields = append(fields, bga_errors.FieldError{Field: "password", Message: "Password required"})
	}
	if len(fields) > 0 {
		return bga_errors.NewValidationError("Validation failed", fields...)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

func toUserInfo(u user.User) UserInfo {
	return UserInfo{
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}
}
