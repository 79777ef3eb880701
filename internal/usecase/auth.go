package usecase

import (
	"context"
	"strings"

	"github.com/quillhq/quill-api/internal/domain"
	"github.com/quillhq/quill-api/internal/service/auth"
	"github.com/quillhq/quill-api/internal/store"
)

// LoginInput is the validated payload of the login operation.
type LoginInput struct {
	Email    string
	Password string
}

// NewLoginRequest validates raw login parameters.
func NewLoginRequest(email, password string) Request[LoginInput] {
	var v Violations
	if email == "" {
		v.Add("email", "Invalid email")
	}
	if password == "" {
		v.Add("password", "Invalid password")
	}
	if len(v) > 0 {
		return Invalid[LoginInput](v)
	}
	return Valid(LoginInput{Email: strings.ToLower(email), Password: password})
}

// Login authenticates a user by email and password and issues a token.
type Login struct {
	users  store.UserStore
	hasher auth.PasswordHasher
	tokens auth.JWTService
}

// NewLogin creates the login use case.
func NewLogin(users store.UserStore, hasher auth.PasswordHasher, tokens auth.JWTService) *Login {
	return &Login{users: users, hasher: hasher, tokens: tokens}
}

// Execute runs the login operation.
func (uc *Login) Execute(ctx context.Context, req Request[LoginInput]) Response {
	return Execute(ctx, req, uc.process)
}

func (uc *Login) process(ctx context.Context, in LoginInput) Result {
	user, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		if store.IsNotFoundError(err) {
			// Same answer as a bad password: no account probing.
			return Respond(Fail(ParametersError, "Incorrect email or password"))
		}
		return Respond(FailErr(SystemError, err))
	}

	if err := uc.hasher.Compare(user.HashedPassword, in.Password); err != nil {
		return Respond(Fail(ParametersError, "Incorrect email or password"))
	}

	token, err := uc.tokens.GenerateToken(ctx, user.ID, user.Email)
	if err != nil {
		return Respond(FailErr(SystemError, err))
	}

	return Value(AuthInfo{AccessToken: token, User: NewUserView(user)})
}

// SignupInput is the validated payload of the signup operation.
type SignupInput struct {
	Email    string
	FullName string
	Password string
}

// NewSignupRequest validates raw signup parameters.
func NewSignupRequest(email, fullName, password string) Request[SignupInput] {
	var v Violations
	if email == "" {
		v.Add("payload.email", "Invalid email")
	}
	if fullName == "" {
		v.Add("payload.fullname", "Invalid fullname")
	}
	if password == "" {
		v.Add("payload.password", "Invalid password")
	}
	if len(v) > 0 {
		return Invalid[SignupInput](v)
	}
	return Valid(SignupInput{Email: strings.ToLower(email), FullName: fullName, Password: password})
}

// Signup registers a new user and issues a token in one step.
type Signup struct {
	users  store.UserStore
	hasher auth.PasswordHasher
	tokens auth.JWTService
}

// NewSignup creates the signup use case.
func NewSignup(users store.UserStore, hasher auth.PasswordHasher, tokens auth.JWTService) *Signup {
	return &Signup{users: users, hasher: hasher, tokens: tokens}
}

// Execute runs the signup operation.
func (uc *Signup) Execute(ctx context.Context, req Request[SignupInput]) Response {
	return Execute(ctx, req, uc.process)
}

func (uc *Signup) process(ctx context.Context, in SignupInput) Result {
	digest, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return Respond(FailErr(SystemError, err))
	}

	user, err := domain.NewUser(in.Email, in.FullName, digest, domain.RoleUser, nil)
	if err != nil {
		return Respond(FailErr(SystemError, err))
	}

	if err := uc.users.Create(ctx, user); err != nil {
		if store.IsDuplicateError(err) {
			return Respond(Fail(SystemError, "This email existed already"))
		}
		return Respond(FailErr(SystemError, err))
	}

	token, err := uc.tokens.GenerateToken(ctx, user.ID, user.Email)
	if err != nil {
		return Respond(FailErr(SystemError, err))
	}

	return Value(AuthInfo{AccessToken: token, User: NewUserView(user)})
}
