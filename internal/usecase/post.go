package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/quillhq/quill-api/internal/domain"
	"github.com/quillhq/quill-api/internal/platform/logger"
	"github.com/quillhq/quill-api/internal/store"
)

// resolvePostView loads the post's author and assembles the response
// shape. The author record is denormalized into the view only here.
func resolvePostView(ctx context.Context, users store.UserStore, post *domain.Post) Result {
	author, err := users.GetByID(ctx, post.AuthorID)
	if err != nil {
		return Respond(FailErr(SystemError, err))
	}
	return Value(NewPostView(post, author))
}

// CreatePostInput is the validated payload of the post-create operation.
type CreatePostInput struct {
	AuthorID    uuid.UUID
	Title       string
	Description string
	Thumbnail   *string
}

// NewCreatePostRequest validates raw post-create parameters.
func NewCreatePostRequest(in CreatePostInput) Request[CreatePostInput] {
	var v Violations
	if in.AuthorID == uuid.Nil {
		v.Add("payload", "Invalid payload")
	}
	if in.Title == "" {
		v.Add("payload.title", "Invalid title")
	}
	if in.Description == "" {
		v.Add("payload.description", "Invalid description")
	}
	if len(v) > 0 {
		return Invalid[CreatePostInput](v)
	}
	return Valid(in)
}

// CreatePost writes a new post for the acting user.
type CreatePost struct {
	posts store.PostStore
	users store.UserStore
}

// NewCreatePost creates the post-create use case.
func NewCreatePost(posts store.PostStore, users store.UserStore) *CreatePost {
	return &CreatePost{posts: posts, users: users}
}

// Execute runs the post-create operation.
func (uc *CreatePost) Execute(ctx context.Context, req Request[CreatePostInput]) Response {
	return Execute(ctx, req, uc.process)
}

func (uc *CreatePost) process(ctx context.Context, in CreatePostInput) Result {
	post, err := domain.NewPost(in.AuthorID, in.Title, in.Description, in.Thumbnail)
	if err != nil {
		return Respond(FailErr(SystemError, err))
	}

	if err := uc.posts.Create(ctx, post); err != nil {
		return Respond(FailErr(SystemError, err))
	}

	return resolvePostView(ctx, uc.users, post)
}

// GetPostInput is the validated payload of the post-get operation.
type GetPostInput struct {
	PostID uuid.UUID
}

// NewGetPostRequest validates a raw post id.
func NewGetPostRequest(postID uuid.UUID) Request[GetPostInput] {
	var v Violations
	if postID == uuid.Nil {
		v.Add("id", "Invalid ID")
	}
	if len(v) > 0 {
		return Invalid[GetPostInput](v)
	}
	return Valid(GetPostInput{PostID: postID})
}

// GetPost fetches a single post by id with its author resolved.
type GetPost struct {
	posts store.PostStore
	users store.UserStore
}

// NewGetPost creates the post-get use case.
func NewGetPost(posts store.PostStore, users store.UserStore) *GetPost {
	return &GetPost{posts: posts, users: users}
}

// Execute runs the post-get operation.
func (uc *GetPost) Execute(ctx context.Context, req Request[GetPostInput]) Response {
	return Execute(ctx, req, uc.process)
}

func (uc *GetPost) process(ctx context.Context, in GetPostInput) Result {
	post, err := uc.posts.GetByID(ctx, in.PostID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return Respond(Fail(ResourceNotFound, "Post does not exist."))
		}
		return Respond(FailErr(SystemError, err))
	}
	return resolvePostView(ctx, uc.users, post)
}

// GetMyPostsInput is the validated payload of the own-posts listing.
type GetMyPostsInput struct {
	AuthorID uuid.UUID
	Page     store.ListPage
}

// NewGetMyPostsRequest validates the acting author id and normalizes paging.
func NewGetMyPostsRequest(authorID uuid.UUID, pageIndex, pageSize int) Request[GetMyPostsInput] {
	var v Violations
	if authorID == uuid.Nil {
		v.Add("author_id", "Invalid ID")
	}
	if len(v) > 0 {
		return Invalid[GetMyPostsInput](v)
	}
	if pageIndex < 1 {
		pageIndex = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	return Valid(GetMyPostsInput{
		AuthorID: authorID,
		Page:     store.ListPage{Index: pageIndex, Size: pageSize},
	})
}

// GetMyPosts lists the acting user's own posts, newest first.
type GetMyPosts struct {
	posts store.PostStore
	users store.UserStore
}

// NewGetMyPosts creates the own-posts listing use case.
func NewGetMyPosts(posts store.PostStore, users store.UserStore) *GetMyPosts {
	return &GetMyPosts{posts: posts, users: users}
}

// Execute runs the own-posts listing.
func (uc *GetMyPosts) Execute(ctx context.Context, req Request[GetMyPostsInput]) Response {
	return Execute(ctx, req, uc.process)
}

func (uc *GetMyPosts) process(ctx context.Context, in GetMyPostsInput) Result {
	log := logger.FromContext(ctx)

	filter := store.PostFilter{AuthorIDs: []uuid.UUID{in.AuthorID}}
	sort := store.PostSort{Field: "created_at", Direction: store.SortDesc}

	posts, err := uc.posts.List(ctx, in.Page, filter, sort)
	if err != nil {
		log.Error("own-posts listing failed, degrading to empty page", "error", err)
		posts = nil
	}

	total, err := uc.posts.CountList(ctx, filter)
	if err != nil {
		log.Error("own-posts count failed, degrading to zero", "error", err)
		total = 0
	}

	author, err := uc.users.GetByID(ctx, in.AuthorID)
	if err != nil {
		return Respond(FailErr(SystemError, err))
	}

	views := make([]PostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, NewPostView(p, author))
	}

	return Value(ManyPosts{
		Pagination: NewPagination(total, in.Page.Index, in.Page.Size),
		Data:       views,
	})
}

// UpdatePostInput is the validated payload of the post-update operation.
// Nil fields are left untouched.
type UpdatePostInput struct {
	PostID      uuid.UUID
	ActorID     uuid.UUID
	IsAdmin     bool
	Title       *string
	Description *string
	Thumbnail   *string
}

// NewUpdatePostRequest validates raw post-update parameters. A missing
// actor who is not an admin is rejected here as a validation failure,
// not by an auth layer; see the package's permission note.
func NewUpdatePostRequest(in UpdatePostInput) Request[UpdatePostInput] {
	var v Violations
	if in.PostID == uuid.Nil {
		v.Add("post_id", "Invalid ID")
	}
	if in.ActorID == uuid.Nil && !in.IsAdmin {
		v.Add("permission", "Do not have permission to update")
	}
	if len(v) > 0 {
		return Invalid[UpdatePostInput](v)
	}
	return Valid(in)
}

// UpdatePost applies a partial update to an existing post. Non-admin
// actors can only reach their own posts; anything else reads as absent.
type UpdatePost struct {
	posts store.PostStore
	users store.UserStore
}

// NewUpdatePost creates the post-update use case.
func NewUpdatePost(posts store.PostStore, users store.UserStore) *UpdatePost {
	return &UpdatePost{posts: posts, users: users}
}

// Execute runs the post-update operation.
func (uc *UpdatePost) Execute(ctx context.Context, req Request[UpdatePostInput]) Response {
	return Execute(ctx, req, uc.process)
}

func (uc *UpdatePost) process(ctx context.Context, in UpdatePostInput) Result {
	var owner *uuid.UUID
	if !in.IsAdmin {
		owner = &in.ActorID
	}

	post, err := uc.posts.FindOne(ctx, in.PostID, owner)
	if err != nil {
		if store.IsNotFoundError(err) {
			return Respond(Fail(ResourceNotFound, "Post does not exist."))
		}
		return Respond(FailErr(SystemError, err))
	}

	if in.Title != nil {
		post.Title = *in.Title
	}
	if in.Description != nil {
		post.Description = *in.Description
	}
	if in.Thumbnail != nil {
		post.Thumbnail = in.Thumbnail
	}
	post.Touch()

	if err := uc.posts.Update(ctx, post); err != nil {
		if store.IsNotFoundError(err) {
			return Respond(Fail(ResourceNotFound, "Post does not exist."))
		}
		return Respond(FailErr(SystemError, err))
	}

	return resolvePostView(ctx, uc.users, post)
}

// DeletePostInput is the validated payload of the post-delete operation.
type DeletePostInput struct {
	PostID  uuid.UUID
	ActorID uuid.UUID
	IsAdmin bool
}

// NewDeletePostRequest validates raw post-delete parameters.
func NewDeletePostRequest(in DeletePostInput) Request[DeletePostInput] {
	var v Violations
	if in.PostID == uuid.Nil {
		v.Add("post_id", "Invalid ID")
	}
	if in.ActorID == uuid.Nil && !in.IsAdmin {
		v.Add("permission", "Do not have permission to delete")
	}
	if len(v) > 0 {
		return Invalid[DeletePostInput](v)
	}
	return Valid(in)
}

// DeletePost removes a post. Non-admin actors can only delete their own
// posts; a foreign or absent post reads as not found, every time.
type DeletePost struct {
	posts store.PostStore
}

// NewDeletePost creates the post-delete use case.
func NewDeletePost(posts store.PostStore) *DeletePost {
	return &DeletePost{posts: posts}
}

// Execute runs the post-delete operation.
func (uc *DeletePost) Execute(ctx context.Context, req Request[DeletePostInput]) Response {
	return Execute(ctx, req, uc.process)
}

func (uc *DeletePost) process(ctx context.Context, in DeletePostInput) Result {
	var owner *uuid.UUID
	if !in.IsAdmin {
		owner = &in.ActorID
	}

	post, err := uc.posts.FindOne(ctx, in.PostID, owner)
	if err != nil {
		if store.IsNotFoundError(err) {
			return Respond(Fail(ResourceNotFound, "Post does not exist."))
		}
		return Respond(FailErr(SystemError, err))
	}

	if err := uc.posts.Delete(ctx, post.ID); err != nil {
		if store.IsNotFoundError(err) {
			return Respond(Fail(ResourceNotFound, "Post does not exist."))
		}
		return Respond(FailErr(SystemError, err))
	}

	return Value(Deleted{Success: true})
}
