package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillhq/quill-api/internal/domain"
	"github.com/quillhq/quill-api/internal/mocks"
	"github.com/quillhq/quill-api/internal/store"
)

func TestCreatePost(t *testing.T) {
	t.Parallel()

	author := fixtureUser("Dana Writer")
	posts := &mocks.MockPostStore{}
	users := &mocks.MockUserStore{User: author}
	uc := NewCreatePost(posts, users)

	req := NewCreatePostRequest(CreatePostInput{
		AuthorID:    author.ID,
		Title:       "Hello World",
		Description: "a first post",
	})
	resp := uc.Execute(context.Background(), req)

	require.True(t, resp.Ok())
	view := resp.Value().(PostView)
	assert.Equal(t, "Hello World", view.Title)
	assert.Contains(t, view.Slug, "hello-world-")
	assert.Equal(t, author.ID, view.Author.ID)
	require.Len(t, view.UpdatedAt, 1, "creation counts as the first save")
	assert.False(t, view.CreatedAt.After(view.UpdatedAt[0]))
	assert.Equal(t, 1, posts.CreateCalls)
}

func TestCreatePostRequestRequiresFields(t *testing.T) {
	t.Parallel()

	req := NewCreatePostRequest(CreatePostInput{})

	require.False(t, req.Ok())
	params := make([]string, 0, len(req.Violations()))
	for _, v := range req.Violations() {
		params = append(params, v.Parameter)
	}
	assert.Equal(t, []string{"payload", "payload.title", "payload.description"}, params)
}

func TestGetPostNotFound(t *testing.T) {
	t.Parallel()

	posts := &mocks.MockPostStore{Err: store.ErrPostNotFound}
	uc := NewGetPost(posts, &mocks.MockUserStore{})

	resp := uc.Execute(context.Background(), NewGetPostRequest(uuid.New()))

	require.False(t, resp.Ok())
	assert.Equal(t, ResourceNotFound, resp.Failure().Kind)
	assert.Equal(t, "Post does not exist.", resp.Failure().Message)
}

func TestUpdatePostScopesToOwnerForNonAdmins(t *testing.T) {
	t.Parallel()

	actor := fixtureUser("Eve Editor")
	post := fixturePost("Mine", actor.ID)
	newTitle := "Mine, renamed"

	posts := &mocks.MockPostStore{
		FindOneFn: func(ctx context.Context, id uuid.UUID, authorID *uuid.UUID) (*domain.Post, error) {
			require.NotNil(t, authorID, "non-admin lookups must be owner scoped")
			assert.Equal(t, actor.ID, *authorID)
			return post, nil
		},
	}
	users := &mocks.MockUserStore{User: actor}
	uc := NewUpdatePost(posts, users)

	req := NewUpdatePostRequest(UpdatePostInput{
		PostID:  post.ID,
		ActorID: actor.ID,
		Title:   &newTitle,
	})
	resp := uc.Execute(context.Background(), req)

	require.True(t, resp.Ok())
	view := resp.Value().(PostView)
	assert.Equal(t, newTitle, view.Title)
	assert.Len(t, view.UpdatedAt, 2, "update must append an edit timestamp")
	assert.Equal(t, 1, posts.UpdateCalls)
}

func TestUpdatePostAdminSkipsOwnerScope(t *testing.T) {
	t.Parallel()

	admin := fixtureUser("Root Admin")
	admin.Role = domain.RoleAdmin
	post := fixturePost("Someone else's", uuid.New())

	posts := &mocks.MockPostStore{
		FindOneFn: func(ctx context.Context, id uuid.UUID, authorID *uuid.UUID) (*domain.Post, error) {
			assert.Nil(t, authorID, "admin lookups must not be owner scoped")
			return post, nil
		},
	}
	users := &mocks.MockUserStore{User: admin}
	uc := NewUpdatePost(posts, users)

	req := NewUpdatePostRequest(UpdatePostInput{
		PostID:  post.ID,
		ActorID: admin.ID,
		IsAdmin: true,
	})
	resp := uc.Execute(context.Background(), req)

	require.True(t, resp.Ok())
}

func TestUpdatePostForeignPostReadsAsNotFound(t *testing.T) {
	t.Parallel()

	posts := &mocks.MockPostStore{Err: store.ErrPostNotFound}
	uc := NewUpdatePost(posts, &mocks.MockUserStore{})

	req := NewUpdatePostRequest(UpdatePostInput{
		PostID:  uuid.New(),
		ActorID: uuid.New(),
	})
	resp := uc.Execute(context.Background(), req)

	require.False(t, resp.Ok())
	assert.Equal(t, ResourceNotFound, resp.Failure().Kind)
}

func TestUpdatePostDeletedBetweenReadAndWriteIsNotFound(t *testing.T) {
	t.Parallel()

	actor := fixtureUser("Gone Racer")
	post := fixturePost("Short Lived", actor.ID)
	newTitle := "Short Lived, renamed"

	posts := &mocks.MockPostStore{
		Post: post,
		UpdateFn: func(ctx context.Context, p *domain.Post) error {
			return store.ErrPostNotFound
		},
	}
	uc := NewUpdatePost(posts, &mocks.MockUserStore{User: actor})

	req := NewUpdatePostRequest(UpdatePostInput{
		PostID:  post.ID,
		ActorID: actor.ID,
		Title:   &newTitle,
	})
	resp := uc.Execute(context.Background(), req)

	require.False(t, resp.Ok())
	assert.Equal(t, ResourceNotFound, resp.Failure().Kind)
	assert.Equal(t, "Post does not exist.", resp.Failure().Message)
}

func TestUpdatePostRequestRejectsMissingActor(t *testing.T) {
	t.Parallel()

	req := NewUpdatePostRequest(UpdatePostInput{PostID: uuid.New()})

	require.False(t, req.Ok())
	require.Len(t, req.Violations(), 1)
	assert.Equal(t, "permission", req.Violations()[0].Parameter)
	assert.Equal(t, "Do not have permission to update", req.Violations()[0].Message)
}

func TestGetMyPosts(t *testing.T) {
	t.Parallel()

	author := fixtureUser("Own Er")
	post := fixturePost("Mine Alone", author.ID)

	posts := &mocks.MockPostStore{Posts: []*domain.Post{post}, Total: 1}
	users := &mocks.MockUserStore{User: author}
	uc := NewGetMyPosts(posts, users)

	resp := uc.Execute(context.Background(), NewGetMyPostsRequest(author.ID, 1, 10))

	require.True(t, resp.Ok())
	assert.Equal(t, []uuid.UUID{author.ID}, posts.LastFilter.AuthorIDs)
	assert.Equal(t, store.PostSort{Field: "created_at", Direction: store.SortDesc}, posts.LastSort)

	result := resp.Value().(ManyPosts)
	require.Len(t, result.Data, 1)
	assert.Equal(t, author.ID, result.Data[0].Author.ID)
}

func TestDeletePost(t *testing.T) {
	t.Parallel()

	actor := fixtureUser("Frank Owner")
	post := fixturePost("Ephemeral", actor.ID)

	posts := &mocks.MockPostStore{Post: post}
	uc := NewDeletePost(posts)

	req := NewDeletePostRequest(DeletePostInput{PostID: post.ID, ActorID: actor.ID})
	resp := uc.Execute(context.Background(), req)

	require.True(t, resp.Ok())
	assert.Equal(t, Deleted{Success: true}, resp.Value())
	assert.Equal(t, 1, posts.DeleteCalls)
}

func TestDeletePostAbsentPostIsNotFound(t *testing.T) {
	t.Parallel()

	posts := &mocks.MockPostStore{Err: store.ErrPostNotFound}
	uc := NewDeletePost(posts)

	req := NewDeletePostRequest(DeletePostInput{PostID: uuid.New(), ActorID: uuid.New()})
	resp := uc.Execute(context.Background(), req)

	require.False(t, resp.Ok())
	assert.Equal(t, ResourceNotFound, resp.Failure().Kind)
	assert.Equal(t, "Post does not exist.", resp.Failure().Message)
}
