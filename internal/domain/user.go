package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UserRole distinguishes regular users from administrators.
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// Common validation errors for User.
var (
	ErrEmptyUserID         = errors.New("user ID cannot be empty")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrEmptyFullName       = errors.New("fullname cannot be empty")
	ErrInvalidUserRole     = errors.New("invalid user role")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// User represents a registered user of the blog.
// HashedPassword is never serialized; the plaintext password never
// reaches this type.
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	Role           UserRole  `json:"role"`
	FullName       string    `json:"fullname"`
	Avatar         *string   `json:"avatar,omitempty"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with a fresh UUID and timestamps.
// The email is lowercased before storage. The caller must supply an
// already-hashed password.
// Returns an error if validation fails.
func NewUser(email, fullName, hashedPassword string, role UserRole, avatar *string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:             uuid.New(),
		Email:          strings.ToLower(email),
		Role:           role,
		FullName:       fullName,
		Avatar:         avatar,
		HashedPassword: hashedPassword,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !strings.Contains(u.Email, "@") {
		return ErrInvalidEmail
	}

	if u.FullName == "" {
		return ErrEmptyFullName
	}

	if u.Role != RoleUser && u.Role != RoleAdmin {
		return ErrInvalidUserRole
	}

	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}

	return nil
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
