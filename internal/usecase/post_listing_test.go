package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillhq/quill-api/internal/domain"
	"github.com/quillhq/quill-api/internal/mocks"
	"github.com/quillhq/quill-api/internal/store"
)

func fixtureUser(fullName string) *domain.User {
	return &domain.User{
		ID:             uuid.New(),
		Email:          fullName + "@example.com",
		Role:           domain.RoleUser,
		FullName:       fullName,
		HashedPassword: "hashed:pw",
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}
}

func fixturePost(title string, authorID uuid.UUID) *domain.Post {
	return &domain.Post{
		ID:          uuid.New(),
		Title:       title,
		Slug:        domain.NewSlug(title),
		Description: "about " + title,
		AuthorID:    authorID,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   []time.Time{time.Now().UTC()},
	}
}

func TestNewListPostsRequestDefaults(t *testing.T) {
	t.Parallel()

	req := NewListPostsRequest(0, 0, "", "", "", "")
	require.True(t, req.Ok())

	in := req.Payload()
	assert.Equal(t, store.ListPage{Index: 1, Size: 20}, in.Page)
	assert.Equal(t, SearchByTitle, in.SearchBy)
	assert.Equal(t, "created_at", in.SortColumn)
	assert.Equal(t, store.SortDesc, in.SortDir)
}

func TestNewListPostsRequestMapsAuthorSortToColumn(t *testing.T) {
	t.Parallel()

	req := NewListPostsRequest(1, 10, "", "", "author", "asc")
	require.True(t, req.Ok())

	in := req.Payload()
	assert.Equal(t, "author_id", in.SortColumn)
	assert.Equal(t, store.SortAsc, in.SortDir)
}

func TestNewListPostsRequestAcceptsAsceSpelling(t *testing.T) {
	t.Parallel()

	req := NewListPostsRequest(1, 10, "", "", "title", "asce")
	require.True(t, req.Ok())
	assert.Equal(t, store.SortAsc, req.Payload().SortDir)
}

func TestNewListPostsRequestRejectsUnknownParameters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		searchBy  string
		sortBy    string
		sortDir   string
		parameter string
	}{
		{name: "unknown search field", searchBy: "slug", parameter: "search_by"},
		{name: "unknown sort column", sortBy: "hashed_password", parameter: "sort_by"},
		{name: "unknown sort direction", sortDir: "sideways", parameter: "sort"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := NewListPostsRequest(1, 10, "x", tt.searchBy, tt.sortBy, tt.sortDir)
			require.False(t, req.Ok())
			require.Len(t, req.Violations(), 1)
			assert.Equal(t, tt.parameter, req.Violations()[0].Parameter)
		})
	}
}

func TestListPostsTitleSearch(t *testing.T) {
	t.Parallel()

	author := fixtureUser("Alice Writer")
	post := fixturePost("Go Generics", author.ID)

	posts := &mocks.MockPostStore{Posts: []*domain.Post{post}, Total: 1}
	users := &mocks.MockUserStore{User: author}
	uc := NewListPosts(posts, users)

	req := NewListPostsRequest(1, 10, "Generics", "title", "", "")
	resp := uc.Execute(context.Background(), req)

	require.True(t, resp.Ok())
	assert.Equal(t, "Generics", posts.LastFilter.TitleContains)
	assert.Nil(t, posts.LastFilter.AuthorIDs)
	assert.Equal(t, store.PostSort{Field: "created_at", Direction: store.SortDesc}, posts.LastSort)

	result := resp.Value().(ManyPosts)
	assert.Equal(t, 1, result.Pagination.Total)
	require.Len(t, result.Data, 1)
	assert.Equal(t, post.ID, result.Data[0].ID)
	assert.Equal(t, author.ID, result.Data[0].Author.ID)
}

func TestListPostsAuthorSearchFansOut(t *testing.T) {
	t.Parallel()

	author := fixtureUser("Bob Blogger")
	post := fixturePost("Weekend Project", author.ID)

	posts := &mocks.MockPostStore{Posts: []*domain.Post{post}, Total: 1}
	users := &mocks.MockUserStore{
		FindByFullNameFn: func(ctx context.Context, text string) ([]*domain.User, error) {
			assert.Equal(t, "Bob", text)
			return []*domain.User{author}, nil
		},
		User: author,
	}
	uc := NewListPosts(posts, users)

	req := NewListPostsRequest(1, 10, "Bob", "author", "", "")
	resp := uc.Execute(context.Background(), req)

	require.True(t, resp.Ok())
	assert.Equal(t, []uuid.UUID{author.ID}, posts.LastFilter.AuthorIDs)
	assert.Empty(t, posts.LastFilter.TitleContains)
}

func TestListPostsAuthorSearchNoMatchesShortCircuits(t *testing.T) {
	t.Parallel()

	posts := &mocks.MockPostStore{}
	users := &mocks.MockUserStore{Users: []*domain.User{}}
	uc := NewListPosts(posts, users)

	req := NewListPostsRequest(2, 10, "Nobody", "author", "", "")
	resp := uc.Execute(context.Background(), req)

	require.True(t, resp.Ok())
	result := resp.Value().(ManyPosts)
	assert.Equal(t, 0, result.Pagination.Total)
	assert.Equal(t, 2, result.Pagination.PageIndex)
	assert.Empty(t, result.Data)
	assert.Zero(t, posts.ListCalls, "post store must not be queried when no author matched")
}

func TestListPostsDegradesToEmptyPageOnStoreErrors(t *testing.T) {
	t.Parallel()

	posts := &mocks.MockPostStore{Err: errors.New("connection reset")}
	users := &mocks.MockUserStore{}
	uc := NewListPosts(posts, users)

	req := NewListPostsRequest(1, 10, "", "", "", "")
	resp := uc.Execute(context.Background(), req)

	require.True(t, resp.Ok(), "listing failures degrade, they do not fail the response")
	result := resp.Value().(ManyPosts)
	assert.Equal(t, 0, result.Pagination.Total)
	assert.Empty(t, result.Data)
}

func TestListPostsResolvesEachAuthorOnce(t *testing.T) {
	t.Parallel()

	author := fixtureUser("Carol Author")
	first := fixturePost("First", author.ID)
	second := fixturePost("Second", author.ID)

	posts := &mocks.MockPostStore{Posts: []*domain.Post{first, second}, Total: 2}
	users := &mocks.MockUserStore{User: author}
	uc := NewListPosts(posts, users)

	resp := uc.Execute(context.Background(), NewListPostsRequest(1, 10, "", "", "", ""))

	require.True(t, resp.Ok())
	assert.Equal(t, 1, users.GetByIDCalls)
	assert.Len(t, resp.Value().(ManyPosts).Data, 2)
}
