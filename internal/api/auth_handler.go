package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/quillhq/quill-api/internal/usecase"
)

// AuthHandler serves the login and signup endpoints.
type AuthHandler struct {
	login    *usecase.Login
	signup   *usecase.Signup
	validate *validator.Validate
}

// NewAuthHandler creates a handler for the auth endpoints.
func NewAuthHandler(login *usecase.Login, signup *usecase.Signup) *AuthHandler {
	return &AuthHandler{
		login:    login,
		signup:   signup,
		validate: validator.New(),
	}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload loginPayload
	if err := decodeJSON(r, &payload); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		WriteResponse(w, r, usecase.Fail(usecase.ParametersError, "Validation error: "+err.Error()))
		return
	}

	req := usecase.NewLoginRequest(payload.Email, payload.Password)
	WriteResponse(w, r, h.login.Execute(r.Context(), req))
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var payload signupPayload
	if err := decodeJSON(r, &payload); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		WriteResponse(w, r, usecase.Fail(usecase.ParametersError, "Validation error: "+err.Error()))
		return
	}

	req := usecase.NewSignupRequest(payload.Email, payload.FullName, payload.Password)
	WriteResponse(w, r, h.signup.Execute(r.Context(), req))
}
