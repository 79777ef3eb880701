package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/quillhq/quill-api/internal/domain"
	"github.com/quillhq/quill-api/internal/platform/logger"
	"github.com/quillhq/quill-api/internal/store"
)

// SearchField selects which field a post search matches against.
type SearchField string

const (
	SearchByTitle  SearchField = "title"
	SearchByAuthor SearchField = "author"
)

// postSortColumns is the fixed set of sortable post fields, mapped to
// their storage columns. Checked in O(1); anything else is rejected at
// the request boundary.
var postSortColumns = map[string]string{
	"id":          "id",
	"title":       "title",
	"slug":        "slug",
	"description": "description",
	"created_at":  "created_at",
	"updated_at":  "updated_at",
	"author":      "author_id",
}

// ListPostsInput is the validated payload of the post listing.
type ListPostsInput struct {
	Page       store.ListPage
	Search     string
	SearchBy   SearchField
	SortColumn string
	SortDir    store.SortDirection
}

// NewListPostsRequest validates and normalizes raw listing parameters.
// Defaults: page 1 of 20, search by title, sort by created_at descending.
// The sort direction accepts "asce" alongside "asc" for compatibility
// with existing clients.
func NewListPostsRequest(pageIndex, pageSize int, search, searchBy, sortBy, sortDir string) Request[ListPostsInput] {
	var v Violations

	field := SearchByTitle
	switch searchBy {
	case "", string(SearchByTitle):
	case string(SearchByAuthor):
		field = SearchByAuthor
	default:
		v.Add("search_by", "Invalid search_by: "+searchBy)
	}

	if sortBy == "" {
		sortBy = "created_at"
	}
	column, ok := postSortColumns[sortBy]
	if !ok {
		v.Add("sort_by", "Invalid sort_by: "+sortBy)
	}

	direction := store.SortDesc
	switch sortDir {
	case "", "desc":
	case "asc", "asce":
		direction = store.SortAsc
	default:
		v.Add("sort", "Invalid sort: "+sortDir)
	}

	if len(v) > 0 {
		return Invalid[ListPostsInput](v)
	}

	if pageIndex < 1 {
		pageIndex = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	return Valid(ListPostsInput{
		Page:       store.ListPage{Index: pageIndex, Size: pageSize},
		Search:     search,
		SearchBy:   field,
		SortColumn: column,
		SortDir:    direction,
	})
}

// ListPosts is the searchable, sortable, paginated post listing. Author
// search fans out: a first round trip collects the ids of users whose
// full name matches, a second filters posts to that author set. The two
// trips compose a point-in-time result, not a snapshot.
type ListPosts struct {
	posts store.PostStore
	users store.UserStore
}

// NewListPosts creates the post listing use case.
func NewListPosts(posts store.PostStore, users store.UserStore) *ListPosts {
	return &ListPosts{posts: posts, users: users}
}

// Execute runs the post listing.
func (uc *ListPosts) Execute(ctx context.Context, req Request[ListPostsInput]) Response {
	return Execute(ctx, req, uc.process)
}

func (uc *ListPosts) process(ctx context.Context, in ListPostsInput) Result {
	log := logger.FromContext(ctx)

	var filter store.PostFilter
	if in.Search != "" {
		switch in.SearchBy {
		case SearchByAuthor:
			authors, err := uc.users.FindByFullName(ctx, in.Search)
			if err != nil {
				log.Error("author lookup failed, degrading to empty page", "error", err)
				return Value(emptyPage(in.Page))
			}
			if len(authors) == 0 {
				// No matching authors means no posts, not an error.
				return Value(emptyPage(in.Page))
			}
			ids := make([]uuid.UUID, len(authors))
			for i, a := range authors {
				ids[i] = a.ID
			}
			filter.AuthorIDs = ids
		default:
			filter.TitleContains = in.Search
		}
	}

	sort := store.PostSort{Field: in.SortColumn, Direction: in.SortDir}

	posts, err := uc.posts.List(ctx, in.Page, filter, sort)
	if err != nil {
		log.Error("post listing failed, degrading to empty page", "error", err)
		posts = nil
	}

	// The count runs the same filter without paging, independently of
	// the page fetch. Under concurrent writes the two may disagree; the
	// race is accepted.
	total, err := uc.posts.CountList(ctx, filter)
	if err != nil {
		log.Error("post count failed, degrading to zero", "error", err)
		total = 0
	}

	views, err := uc.assembleViews(ctx, posts)
	if err != nil {
		return Respond(FailErr(SystemError, err))
	}

	return Value(ManyPosts{
		Pagination: NewPagination(total, in.Page.Index, in.Page.Size),
		Data:       views,
	})
}

// assembleViews resolves each post's author into the denormalized output
// record, fetching every distinct author once.
func (uc *ListPosts) assembleViews(ctx context.Context, posts []*domain.Post) ([]PostView, error) {
	authors := make(map[uuid.UUID]*domain.User, len(posts))
	views := make([]PostView, 0, len(posts))

	for _, p := range posts {
		author, ok := authors[p.AuthorID]
		if !ok {
			var err error
			author, err = uc.users.GetByID(ctx, p.AuthorID)
			if err != nil {
				return nil, err
			}
			authors[p.AuthorID] = author
		}
		views = append(views, NewPostView(p, author))
	}

	return views, nil
}

func emptyPage(page store.ListPage) ManyPosts {
	return ManyPosts{
		Pagination: NewPagination(0, page.Index, page.Size),
		Data:       []PostView{},
	}
}
