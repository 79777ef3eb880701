package api

// loginPayload is the request body for POST /api/auth/login.
type loginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// signupPayload is the request body for POST /api/auth/signup.
type signupPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"fullname" validate:"required"`
}

// createUserPayload is the admin request body for POST /api/users.
type createUserPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"fullname" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
}

// updateUserPayload carries partial user updates. Absent fields keep
// their stored values.
type updateUserPayload struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	FullName *string `json:"fullname" validate:"omitempty,min=1"`
	Role     *string `json:"role" validate:"omitempty,oneof=user admin"`
}

// createPostPayload is the request body for POST /api/posts. It arrives
// as the "payload" field of a multipart form when a thumbnail is attached.
type createPostPayload struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// updatePostPayload carries partial post updates.
type updatePostPayload struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
}

// uploadResult is the response body for POST /api/upload/image.
type uploadResult struct {
	URL string `json:"url"`
}
