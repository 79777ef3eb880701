package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/quillhq/quill-api/internal/domain"
	"github.com/quillhq/quill-api/internal/platform/logger"
	"github.com/quillhq/quill-api/internal/service/auth"
	"github.com/quillhq/quill-api/internal/store"
)

// CreateUserInput is the validated payload of the admin user-create operation.
type CreateUserInput struct {
	Email    string
	FullName string
	Password string
	Role     domain.UserRole
	Avatar   *string
}

// NewCreateUserRequest validates raw user-create parameters.
func NewCreateUserRequest(in CreateUserInput) Request[CreateUserInput] {
	var v Violations
	if in.Email == "" {
		v.Add("payload.email", "Invalid email")
	}
	if in.FullName == "" {
		v.Add("payload.fullname", "Invalid fullname")
	}
	if in.Password == "" {
		v.Add("payload.password", "Invalid password")
	}
	if in.Role == "" {
		in.Role = domain.RoleUser
	}
	if len(v) > 0 {
		return Invalid[CreateUserInput](v)
	}
	in.Email = strings.ToLower(in.Email)
	return Valid(in)
}

// CreateUser registers a user on behalf of an administrator.
type CreateUser struct {
	users  store.UserStore
	hasher auth.PasswordHasher
}

// NewCreateUser creates the user-create use case.
func NewCreateUser(users store.UserStore, hasher auth.PasswordHasher) *CreateUser {
	return &CreateUser{users: users, hasher: hasher}
}

// Execute runs the user-create operation.
func (uc *CreateUser) Execute(ctx context.Context, req Request[CreateUserInput]) Response {
	return Execute(ctx, req, uc.process)
}

func (uc *CreateUser) process(ctx context.Context, in CreateUserInput) Result {
	digest, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return Respond(FailErr(SystemError, err))
	}

	user, err := domain.NewUser(in.Email, in.FullName, digest, in.Role, in.Avatar)
	if err != nil {
		return Respond(FailErr(SystemError, err))
	}

	if err := uc.users.Create(ctx, user); err != nil {
		if store.IsDuplicateError(err) {
			return Respond(Fail(SystemError, "This email existed already"))
		}
		return Respond(FailErr(SystemError, err))
	}

	return Value(NewUserView(user))
}

// GetUserInput is the validated payload of the user-get operation.
type GetUserInput struct {
	UserID uuid.UUID
}

// NewGetUserRequest validates a raw user id.
func NewGetUserRequest(userID uuid.UUID) Request[GetUserInput] {
	var v Violations
	if userID == uuid.Nil {
		v.Add("id", "Invalid ID")
	}
	if len(v) > 0 {
		return Invalid[GetUserInput](v)
	}
	return Valid(GetUserInput{UserID: userID})
}

// GetUser fetches a single user by id.
type GetUser struct {
	users store.UserStore
}

// NewGetUser creates the user-get use case.
func NewGetUser(users store.UserStore) *GetUser {
	return &GetUser{users: users}
}

// Execute runs the user-get operation.
func (uc *GetUser) Execute(ctx context.Context, req Request[GetUserInput]) Response {
	return Execute(ctx, req, uc.process)
}

func (uc *GetUser) process(ctx context.Context, in GetUserInput) Result {
	user, err := uc.users.GetByID(ctx, in.UserID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return Respond(Fail(ResourceNotFound, "User does not exist."))
		}
		return Respond(FailErr(SystemError, err))
	}
	return Value(NewUserView(user))
}

// ListUsersInput is the validated payload of the user-list operation.
type ListUsersInput struct {
	Page store.ListPage
}

// NewListUsersRequest normalizes raw paging parameters. Out-of-range
// values fall back to defaults rather than failing, matching the
// listing endpoints' permissive behavior.
func NewListUsersRequest(pageIndex, pageSize int) Request[ListUsersInput] {
	if pageIndex < 1 {
		pageIndex = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	return Valid(ListUsersInput{Page: store.ListPage{Index: pageIndex, Size: pageSize}})
}

// ListUsers returns one page of users with pagination metadata.
type ListUsers struct {
	users store.UserStore
}

// NewListUsers creates the user-list use case.
func NewListUsers(users store.UserStore) *ListUsers {
	return &ListUsers{users: users}
}

// Execute runs the user-list operation.
func (uc *ListUsers) Execute(ctx context.Context, req Request[ListUsersInput]) Response {
	return Execute(ctx, req, uc.process)
}

func (uc *ListUsers) process(ctx context.Context, in ListUsersInput) Result {
	log := logger.FromContext(ctx)

	users, err := uc.users.List(ctx, in.Page)
	if err != nil {
		// Listing degrades to an empty page rather than failing the call.
		log.Error("user listing failed, degrading to empty page", "error", err)
		users = nil
	}

	total, err := uc.users.Count(ctx)
	if err != nil {
		log.Error("user count failed, degrading to zero", "error", err)
		total = 0
	}

	views := make([]UserView, 0, len(users))
	for _, u := range users {
		views = append(views, NewUserView(u))
	}

	return Value(ManyUsers{
		Pagination: NewPagination(total, in.Page.Index, in.Page.Size),
		Data:       views,
	})
}

// UpdateUserInput is the validated payload of the user-update operation.
// Nil fields are left untouched.
type UpdateUserInput struct {
	UserID   uuid.UUID
	Email    *string
	FullName *string
	Role     *domain.UserRole
	Avatar   *string
}

// NewUpdateUserRequest validates raw user-update parameters.
func NewUpdateUserRequest(in UpdateUserInput) Request[UpdateUserInput] {
	var v Violations
	if in.UserID == uuid.Nil {
		v.Add("id", "Invalid user id")
	}
	if len(v) > 0 {
		return Invalid[UpdateUserInput](v)
	}
	return Valid(in)
}

// UpdateUser applies a partial update to an existing user.
type UpdateUser struct {
	users store.UserStore
}

// NewUpdateUser creates the user-update use case.
func NewUpdateUser(users store.UserStore) *UpdateUser {
	return &UpdateUser{users: users}
}

// Execute runs the user-update operation.
func (uc *UpdateUser) Execute(ctx context.Context, req Request[UpdateUserInput]) Response {
	return Execute(ctx, req, uc.process)
}

func (uc *UpdateUser) process(ctx context.Context, in UpdateUserInput) Result {
	user, err := uc.users.GetByID(ctx, in.UserID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return Respond(Fail(ResourceNotFound, "User does not exist"))
		}
		return Respond(FailErr(SystemError, err))
	}

	if in.Email != nil {
		user.Email = strings.ToLower(*in.Email)
	}
	if in.FullName != nil {
		user.FullName = *in.FullName
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	if in.Avatar != nil {
		user.Avatar = in.Avatar
	}

	if err := uc.users.Update(ctx, user); err != nil {
		if store.IsDuplicateError(err) {
			return Respond(Fail(SystemError, "This email existed already"))
		}
		return Respond(FailErr(SystemError, err))
	}

	return Value(NewUserView(user))
}

// DeleteUserInput is the validated payload of the user-delete operation.
type DeleteUserInput struct {
	UserID uuid.UUID
}

// NewDeleteUserRequest validates a raw user id.
func NewDeleteUserRequest(userID uuid.UUID) Request[DeleteUserInput] {
	var v Violations
	if userID == uuid.Nil {
		v.Add("id", "Invalid ID")
	}
	if len(v) > 0 {
		return Invalid[DeleteUserInput](v)
	}
	return Valid(DeleteUserInput{UserID: userID})
}

// DeleteUser removes a user.
type DeleteUser struct {
	users store.UserStore
}

// NewDeleteUser creates the user-delete use case.
func NewDeleteUser(users store.UserStore) *DeleteUser {
	return &DeleteUser{users: users}
}

// Execute runs the user-delete operation.
func (uc *DeleteUser) Execute(ctx context.Context, req Request[DeleteUserInput]) Response {
	return Execute(ctx, req, uc.process)
}

func (uc *DeleteUser) process(ctx context.Context, in DeleteUserInput) Result {
	user, err := uc.users.GetByID(ctx, in.UserID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return Respond(Fail(ResourceNotFound, "User does not exist."))
		}
		return Respond(FailErr(SystemError, err))
	}

	if err := uc.users.Delete(ctx, user.ID); err != nil {
		if store.IsNotFoundError(err) {
			return Respond(Fail(ResourceNotFound, "User does not exist."))
		}
		return Respond(FailErr(SystemError, err))
	}

	return Value(Deleted{Success: true})
}
