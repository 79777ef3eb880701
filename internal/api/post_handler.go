package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/quillhq/quill-api/internal/platform/storage"
	"github.com/quillhq/quill-api/internal/usecase"
)

// PostHandler serves the post endpoints.
type PostHandler struct {
	createPost *usecase.CreatePost
	getPost    *usecase.GetPost
	getMine    *usecase.GetMyPosts
	listPosts  *usecase.ListPosts
	updatePost *usecase.UpdatePost
	deletePost *usecase.DeletePost
	uploader   storage.FileUploader
	validate   *validator.Validate
}

// NewPostHandler creates a handler for the post endpoints.
func NewPostHandler(
	createPost *usecase.CreatePost,
	getPost *usecase.GetPost,
	getMine *usecase.GetMyPosts,
	listPosts *usecase.ListPosts,
	updatePost *usecase.UpdatePost,
	deletePost *usecase.DeletePost,
	uploader storage.FileUploader,
) *PostHandler {
	return &PostHandler{
		createPost: createPost,
		getPost:    getPost,
		getMine:    getMine,
		listPosts:  listPosts,
		updatePost: updatePost,
		deletePost: deletePost,
		uploader:   uploader,
		validate:   validator.New(),
	}
}

// List handles GET /api/posts with pagination, search and sort
// parameters.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := usecase.NewListPostsRequest(
		queryInt(r, "page_index", 1),
		queryInt(r, "page_size", 0),
		q.Get("search"),
		q.Get("search_by"),
		q.Get("sort_by"),
		q.Get("sort"),
	)
	WriteResponse(w, r, h.listPosts.Execute(r.Context(), req))
}

// Mine handles GET /api/posts/me, listing the authenticated user's posts.
func (h *PostHandler) Mine(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFrom(r.Context())
	if !ok {
		RespondWithError(w, r, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	req := usecase.NewGetMyPostsRequest(user.ID,
		queryInt(r, "page_index", 1),
		queryInt(r, "page_size", 0))
	WriteResponse(w, r, h.getMine.Execute(r.Context(), req))
}

// Create handles POST /api/posts. Accepts either a JSON body or a
// multipart form with a "payload" field and an optional "thumbnail"
// file part.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFrom(r.Context())
	if !ok {
		RespondWithError(w, r, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	var payload createPostPayload
	thumbHeader, err := decodePayload(r, &payload, "thumbnail")
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		WriteResponse(w, r, usecase.Fail(usecase.ParametersError, "Validation error: "+err.Error()))
		return
	}

	var thumbnail *string
	if thumbHeader != nil {
		url, ok := uploadImage(w, r, h.uploader, thumbHeader)
		if !ok {
			return
		}
		thumbnail = &url
	}

	req := usecase.NewCreatePostRequest(usecase.CreatePostInput{
		AuthorID:    user.ID,
		Title:       payload.Title,
		Description: payload.Description,
		Thumbnail:   thumbnail,
	})
	WriteResponse(w, r, h.createPost.Execute(r.Context(), req))
}

// Get handles GET /api/posts/{id}.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := pathUUID(r, "id")
	if id == nil {
		WriteResponse(w, r, usecase.Fail(usecase.ParametersError, "post_id: Invalid ID"))
		return
	}

	req := usecase.NewGetPostRequest(*id)
	WriteResponse(w, r, h.getPost.Execute(r.Context(), req))
}

// Update handles PUT /api/posts/{id}. Owners may update their own
// posts; admins may update any post.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFrom(r.Context())
	if !ok {
		RespondWithError(w, r, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	var input usecase.UpdatePostInput
	if id := pathUUID(r, "id"); id != nil {
		input.PostID = *id
	}
	input.ActorID = user.ID
	input.IsAdmin = user.IsAdmin()

	var payload updatePostPayload
	thumbHeader, err := decodePayload(r, &payload, "thumbnail")
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		WriteResponse(w, r, usecase.Fail(usecase.ParametersError, "Validation error: "+err.Error()))
		return
	}
	input.Title = payload.Title
	input.Description = payload.Description

	if thumbHeader != nil {
		url, ok := uploadImage(w, r, h.uploader, thumbHeader)
		if !ok {
			return
		}
		input.Thumbnail = &url
	}

	req := usecase.NewUpdatePostRequest(input)
	WriteResponse(w, r, h.updatePost.Execute(r.Context(), req))
}

// Delete handles DELETE /api/posts/{id}.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFrom(r.Context())
	if !ok {
		RespondWithError(w, r, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	var input usecase.DeletePostInput
	if id := pathUUID(r, "id"); id != nil {
		input.PostID = *id
	}
	input.ActorID = user.ID
	input.IsAdmin = user.IsAdmin()

	req := usecase.NewDeletePostRequest(input)
	WriteResponse(w, r, h.deletePost.Execute(r.Context(), req))
}
