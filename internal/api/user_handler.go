package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/quillhq/quill-api/internal/domain"
	"github.com/quillhq/quill-api/internal/platform/storage"
	"github.com/quillhq/quill-api/internal/usecase"
)

// UserHandler serves the user management endpoints.
type UserHandler struct {
	createUser *usecase.CreateUser
	getUser    *usecase.GetUser
	listUsers  *usecase.ListUsers
	updateUser *usecase.UpdateUser
	deleteUser *usecase.DeleteUser
	uploader   storage.FileUploader
	validate   *validator.Validate
}

// NewUserHandler creates a handler for the user endpoints.
func NewUserHandler(
	createUser *usecase.CreateUser,
	getUser *usecase.GetUser,
	listUsers *usecase.ListUsers,
	updateUser *usecase.UpdateUser,
	deleteUser *usecase.DeleteUser,
	uploader storage.FileUploader,
) *UserHandler {
	return &UserHandler{
		createUser: createUser,
		getUser:    getUser,
		listUsers:  listUsers,
		updateUser: updateUser,
		deleteUser: deleteUser,
		uploader:   uploader,
		validate:   validator.New(),
	}
}

// Create handles POST /api/users. Admin only. Accepts either a JSON
// body or a multipart form with a "payload" field and an optional
// "avatar" file part.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload createUserPayload
	avatarHeader, err := decodePayload(r, &payload, "avatar")
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		WriteResponse(w, r, usecase.Fail(usecase.ParametersError, "Validation error: "+err.Error()))
		return
	}

	var avatar *string
	if avatarHeader != nil {
		url, ok := uploadImage(w, r, h.uploader, avatarHeader)
		if !ok {
			return
		}
		avatar = &url
	}

	role := domain.RoleUser
	if payload.Role == string(domain.RoleAdmin) {
		role = domain.RoleAdmin
	}

	req := usecase.NewCreateUserRequest(usecase.CreateUserInput{
		Email:    payload.Email,
		FullName: payload.FullName,
		Password: payload.Password,
		Role:     role,
		Avatar:   avatar,
	})
	WriteResponse(w, r, h.createUser.Execute(r.Context(), req))
}

// List handles GET /api/users. Admin only.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	pageIndex := queryInt(r, "page_index", 1)
	pageSize := queryInt(r, "page_size", 0)

	req := usecase.NewListUsersRequest(pageIndex, pageSize)
	WriteResponse(w, r, h.listUsers.Execute(r.Context(), req))
}

// Me handles GET /api/users/me, returning the authenticated user.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFrom(r.Context())
	if !ok {
		RespondWithError(w, r, http.StatusUnauthorized, "Could not validate credentials")
		return
	}
	WriteResponse(w, r, usecase.Success(usecase.NewUserView(user)))
}

// UpdateMe handles PUT /api/users/me. Role changes are ignored here so
// users cannot elevate themselves.
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFrom(r.Context())
	if !ok {
		RespondWithError(w, r, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	var payload updateUserPayload
	avatarHeader, err := decodePayload(r, &payload, "avatar")
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		WriteResponse(w, r, usecase.Fail(usecase.ParametersError, "Validation error: "+err.Error()))
		return
	}

	var avatar *string
	if avatarHeader != nil {
		url, ok := uploadImage(w, r, h.uploader, avatarHeader)
		if !ok {
			return
		}
		avatar = &url
	}

	req := usecase.NewUpdateUserRequest(usecase.UpdateUserInput{
		UserID:   user.ID,
		Email:    payload.Email,
		FullName: payload.FullName,
		Avatar:   avatar,
	})
	WriteResponse(w, r, h.updateUser.Execute(r.Context(), req))
}

// Get handles GET /api/users/{id}. Admin only.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := pathUUID(r, "id")
	if id == nil {
		WriteResponse(w, r, usecase.Fail(usecase.ParametersError, "user_id: Invalid ID"))
		return
	}

	req := usecase.NewGetUserRequest(*id)
	WriteResponse(w, r, h.getUser.Execute(r.Context(), req))
}

// Update handles PUT /api/users/{id}. Admin only.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := pathUUID(r, "id")
	if id == nil {
		WriteResponse(w, r, usecase.Fail(usecase.ParametersError, "user_id: Invalid ID"))
		return
	}

	var payload updateUserPayload
	avatarHeader, err := decodePayload(r, &payload, "avatar")
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		WriteResponse(w, r, usecase.Fail(usecase.ParametersError, "Validation error: "+err.Error()))
		return
	}

	var avatar *string
	if avatarHeader != nil {
		url, ok := uploadImage(w, r, h.uploader, avatarHeader)
		if !ok {
			return
		}
		avatar = &url
	}

	var role *domain.UserRole
	if payload.Role != nil {
		parsed := domain.UserRole(*payload.Role)
		role = &parsed
	}

	req := usecase.NewUpdateUserRequest(usecase.UpdateUserInput{
		UserID:   *id,
		Email:    payload.Email,
		FullName: payload.FullName,
		Role:     role,
		Avatar:   avatar,
	})
	WriteResponse(w, r, h.updateUser.Execute(r.Context(), req))
}

// Delete handles DELETE /api/users/{id}. Admin only.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := pathUUID(r, "id")
	if id == nil {
		WriteResponse(w, r, usecase.Fail(usecase.ParametersError, "user_id: Invalid ID"))
		return
	}

	req := usecase.NewDeleteUserRequest(*id)
	WriteResponse(w, r, h.deleteUser.Execute(r.Context(), req))
}
