package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillhq/quill-api/internal/domain"
	"github.com/quillhq/quill-api/internal/mocks"
	"github.com/quillhq/quill-api/internal/store"
)

func TestCreateUser(t *testing.T) {
	t.Parallel()

	users := &mocks.MockUserStore{}
	hasher := &mocks.MockPasswordHasher{}
	uc := NewCreateUser(users, hasher)

	req := NewCreateUserRequest(CreateUserInput{
		Email:    "Admin.Made@Example.com",
		FullName: "Admin Made",
		Password: "password123",
		Role:     domain.RoleAdmin,
	})
	resp := uc.Execute(context.Background(), req)

	require.True(t, resp.Ok())
	view := resp.Value().(UserView)
	assert.Equal(t, "admin.made@example.com", view.Email)
	assert.Equal(t, domain.RoleAdmin, view.Role)
	assert.Equal(t, 1, hasher.HashCalls)
	assert.Equal(t, 1, users.CreateCalls)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	t.Parallel()

	users := &mocks.MockUserStore{Err: store.ErrEmailExists}
	uc := NewCreateUser(users, &mocks.MockPasswordHasher{})

	req := NewCreateUserRequest(CreateUserInput{
		Email:    "taken@example.com",
		FullName: "Someone",
		Password: "password123",
	})
	resp := uc.Execute(context.Background(), req)

	require.False(t, resp.Ok())
	assert.Equal(t, SystemError, resp.Failure().Kind)
	assert.Equal(t, "This email existed already", resp.Failure().Message)
}

func TestGetUserNotFound(t *testing.T) {
	t.Parallel()

	users := &mocks.MockUserStore{Err: store.ErrUserNotFound}
	uc := NewGetUser(users)

	resp := uc.Execute(context.Background(), NewGetUserRequest(uuid.New()))

	require.False(t, resp.Ok())
	assert.Equal(t, ResourceNotFound, resp.Failure().Kind)
	assert.Equal(t, "User does not exist.", resp.Failure().Message)
}

func TestGetUserRequestRejectsNilID(t *testing.T) {
	t.Parallel()

	req := NewGetUserRequest(uuid.Nil)
	require.False(t, req.Ok())
	assert.Equal(t, "id", req.Violations()[0].Parameter)
}

func TestListUsers(t *testing.T) {
	t.Parallel()

	a := fixtureUser("Ada One")
	b := fixtureUser("Ben Two")
	users := &mocks.MockUserStore{Users: []*domain.User{a, b}, Total: 41}
	uc := NewListUsers(users)

	resp := uc.Execute(context.Background(), NewListUsersRequest(2, 20))

	require.True(t, resp.Ok())
	result := resp.Value().(ManyUsers)
	assert.Equal(t, 41, result.Pagination.Total)
	assert.Equal(t, 2, result.Pagination.PageIndex)
	assert.Equal(t, 3, result.Pagination.TotalPages)
	assert.Len(t, result.Data, 2)
}

func TestListUsersDegradesOnStoreError(t *testing.T) {
	t.Parallel()

	users := &mocks.MockUserStore{Err: errors.New("timeout")}
	uc := NewListUsers(users)

	resp := uc.Execute(context.Background(), NewListUsersRequest(1, 20))

	require.True(t, resp.Ok())
	result := resp.Value().(ManyUsers)
	assert.Zero(t, result.Pagination.Total)
	assert.Empty(t, result.Data)
}

func TestUpdateUserPartial(t *testing.T) {
	t.Parallel()

	user := fixtureUser("Old Name")
	users := &mocks.MockUserStore{User: user}
	uc := NewUpdateUser(users)

	newName := "New Name"
	newEmail := "NEW@Example.com"
	req := NewUpdateUserRequest(UpdateUserInput{
		UserID:   user.ID,
		FullName: &newName,
		Email:    &newEmail,
	})
	resp := uc.Execute(context.Background(), req)

	require.True(t, resp.Ok())
	view := resp.Value().(UserView)
	assert.Equal(t, "New Name", view.FullName)
	assert.Equal(t, "new@example.com", view.Email)
	assert.Equal(t, user.Role, view.Role, "unset fields keep their stored values")
	assert.Equal(t, 1, users.UpdateCalls)
}

func TestDeleteUser(t *testing.T) {
	t.Parallel()

	user := fixtureUser("Short Stay")
	users := &mocks.MockUserStore{User: user}
	uc := NewDeleteUser(users)

	resp := uc.Execute(context.Background(), NewDeleteUserRequest(user.ID))

	require.True(t, resp.Ok())
	assert.Equal(t, Deleted{Success: true}, resp.Value())
	assert.Equal(t, 1, users.DeleteCalls)
}
