package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/quillhq/quill-api/internal/domain"
)

// UserView is the outward-facing shape of a user: no password material.
type UserView struct {
	ID       uuid.UUID       `json:"id"`
	Email    string          `json:"email"`
	Role     domain.UserRole `json:"role"`
	FullName string          `json:"fullname"`
	Avatar   *string         `json:"avatar,omitempty"`
}

// NewUserView projects a domain user into its response shape.
func NewUserView(u *domain.User) UserView {
	return UserView{
		ID:       u.ID,
		Email:    u.Email,
		Role:     u.Role,
		FullName: u.FullName,
		Avatar:   u.Avatar,
	}
}

// PostView is the outward-facing shape of a post, with the author
// reference resolved into a full user sub-record. The resolution happens
// only at response-assembly time; storage keeps the bare author id.
type PostView struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Slug        string      `json:"slug"`
	Description string      `json:"description"`
	Thumbnail   *string     `json:"thumbnail,omitempty"`
	Author      UserView    `json:"author"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   []time.Time `json:"updated_at"`
}

// NewPostView projects a domain post and its resolved author into the
// response shape.
func NewPostView(p *domain.Post, author *domain.User) PostView {
	return PostView{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Description: p.Description,
		Thumbnail:   p.Thumbnail,
		Author:      NewUserView(author),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ManyPosts is the paginated post listing response.
type ManyPosts struct {
	Pagination Pagination `json:"pagination"`
	Data       []PostView `json:"data"`
}

// ManyUsers is the paginated user listing response.
type ManyUsers struct {
	Pagination Pagination `json:"pagination"`
	Data       []UserView `json:"data"`
}

// AuthInfo is the response of login and signup: an access token and the
// authenticated user.
type AuthInfo struct {
	AccessToken string   `json:"access_token"`
	User        UserView `json:"user"`
}

// Deleted is the response of a successful delete.
type Deleted struct {
	Success bool `json:"success"`
}
