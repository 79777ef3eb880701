package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/quillhq/quill-api/internal/domain"
)

// PostFilter restricts which posts a listing or count sees.
//
// AuthorIDs carries set semantics: a nil slice means "no author
// restriction", while a non-nil (possibly empty) slice restricts the
// result to posts whose author is in the set. An empty set matches
// nothing. This distinction is what lets an author search that found no
// users produce an empty page rather than the full collection.
type PostFilter struct {
	// TitleContains filters by case-insensitive substring match on the title.
	TitleContains string

	// AuthorIDs restricts posts to the given author set (see above).
	AuthorIDs []uuid.UUID
}

// PostSort describes the ORDER BY of a post listing. Field must be a
// column name already vetted by the caller; stores tie-break on id so
// pagination is stable across pages of a static collection.
type PostSort struct {
	Field     string
	Direction SortDirection
}

// PostStore defines the interface for post data persistence.
type PostStore interface {
	// Create saves a new post to the store.
	// Returns ErrSlugExists if the slug is already taken.
	Create(ctx context.Context, post *domain.Post) error

	// GetByID retrieves a post by its unique ID.
	// Returns ErrPostNotFound if the post does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)

	// List retrieves one page of posts matching the filter, ordered by
	// the given sort.
	List(ctx context.Context, page ListPage, filter PostFilter, sort PostSort) ([]*domain.Post, error)

	// CountList returns the number of posts matching the filter,
	// independently of any page fetch.
	CountList(ctx context.Context, filter PostFilter) (int, error)

	// FindOne retrieves a post by ID, optionally scoped to an author.
	// When authorID is non-nil the post must belong to that author;
	// a post owned by someone else is reported as ErrPostNotFound, so
	// callers never learn whether a foreign post exists.
	FindOne(ctx context.Context, id uuid.UUID, authorID *uuid.UUID) (*domain.Post, error)

	// Update modifies an existing post.
	// Returns ErrPostNotFound if the post does not exist.
	Update(ctx context.Context, post *domain.Post) error

	// Delete removes a post from the store by its ID.
	// Returns ErrPostNotFound if the post does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
