package domain

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// Common validation errors for Post.
var (
	ErrEmptyPostID     = errors.New("post ID cannot be empty")
	ErrEmptyPostTitle  = errors.New("post title cannot be empty")
	ErrEmptyPostBody   = errors.New("post description cannot be empty")
	ErrEmptyPostSlug   = errors.New("post slug cannot be empty")
	ErrEmptyPostAuthor = errors.New("post author cannot be empty")
	ErrNoUpdateHistory = errors.New("post must carry at least one update timestamp")
)

// Post represents a blog post. The author is kept as a reference id;
// the full user record is resolved only when assembling responses.
// UpdatedAt is a history: one entry per save, newest last.
type Post struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Slug        string      `json:"slug"`
	Description string      `json:"description"`
	Thumbnail   *string     `json:"thumbnail,omitempty"`
	AuthorID    uuid.UUID   `json:"author_id"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   []time.Time `json:"updated_at"`
}

// NewPost creates a new Post with a fresh UUID, a generated slug and
// timestamps. Returns an error if validation fails.
func NewPost(authorID uuid.UUID, title, description string, thumbnail *string) (*Post, error) {
	now := time.Now().UTC()
	post := &Post{
		ID:          uuid.New(),
		Title:       title,
		Slug:        NewSlug(title),
		Description: description,
		Thumbnail:   thumbnail,
		AuthorID:    authorID,
		CreatedAt:   now,
		UpdatedAt:   []time.Time{now},
	}

	if err := post.Validate(); err != nil {
		return nil, err
	}

	return post, nil
}

// NewSlug derives a URL slug from a title with a random numeric suffix
// so that identical titles do not collide.
func NewSlug(title string) string {
	return fmt.Sprintf("%s-%05d", slug.Make(title), rand.Intn(100000))
}

// Validate checks if the Post has valid data.
func (p *Post) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyPostID
	}

	if p.Title == "" {
		return ErrEmptyPostTitle
	}

	if p.Slug == "" {
		return ErrEmptyPostSlug
	}

	if p.Description == "" {
		return ErrEmptyPostBody
	}

	if p.AuthorID == uuid.Nil {
		return ErrEmptyPostAuthor
	}

	if len(p.UpdatedAt) == 0 {
		return ErrNoUpdateHistory
	}

	return nil
}

// Touch appends the current time to the post's update history.
func (p *Post) Touch() {
	p.UpdatedAt = append(p.UpdatedAt, time.Now().UTC())
}
