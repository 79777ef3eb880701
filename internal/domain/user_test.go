package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	user, err := NewUser("Mixed.Case@Example.COM", "Mixed Case", "hashed", RoleUser, nil)
	require.NoError(t, err)

	assert.Equal(t, "mixed.case@example.com", user.Email)
	assert.Equal(t, RoleUser, user.Role)
	assert.NotZero(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
	assert.Equal(t, user.CreatedAt, user.UpdatedAt)
}

func TestNewUserValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		email    string
		fullName string
		hashed   string
		role     UserRole
		wantErr  error
	}{
		{name: "empty email", fullName: "A B", hashed: "h", role: RoleUser, wantErr: ErrEmptyEmail},
		{name: "email without at sign", email: "nope", fullName: "A B", hashed: "h", role: RoleUser, wantErr: ErrInvalidEmail},
		{name: "empty fullname", email: "a@b.c", hashed: "h", role: RoleUser, wantErr: ErrEmptyFullName},
		{name: "unknown role", email: "a@b.c", fullName: "A B", hashed: "h", role: "owner", wantErr: ErrInvalidUserRole},
		{name: "missing password hash", email: "a@b.c", fullName: "A B", role: RoleUser, wantErr: ErrEmptyHashedPassword},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewUser(tt.email, tt.fullName, tt.hashed, tt.role, nil)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserIsAdmin(t *testing.T) {
	t.Parallel()

	admin, err := NewUser("root@example.com", "Root", "h", RoleAdmin, nil)
	require.NoError(t, err)
	regular, err := NewUser("user@example.com", "User", "h", RoleUser, nil)
	require.NoError(t, err)

	assert.True(t, admin.IsAdmin())
	assert.False(t, regular.IsAdmin())
}

func TestUserSerializationOmitsPassword(t *testing.T) {
	t.Parallel()

	user, err := NewUser("safe@example.com", "Safe User", "super-secret-hash", RoleUser, nil)
	require.NoError(t, err)

	body, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "super-secret-hash")
}
