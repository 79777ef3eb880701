package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/quillhq/quill-api/internal/domain"
	"github.com/quillhq/quill-api/internal/store"
)

// MockPostStore implements store.PostStore for testing.
type MockPostStore struct {
	CreateFn    func(ctx context.Context, post *domain.Post) error
	GetByIDFn   func(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	ListFn      func(ctx context.Context, page store.ListPage, filter store.PostFilter, sort store.PostSort) ([]*domain.Post, error)
	CountListFn func(ctx context.Context, filter store.PostFilter) (int, error)
	FindOneFn   func(ctx context.Context, id uuid.UUID, authorID *uuid.UUID) (*domain.Post, error)
	UpdateFn    func(ctx context.Context, post *domain.Post) error
	DeleteFn    func(ctx context.Context, id uuid.UUID) error

	// Default responses used when the corresponding Fn is nil.
	Post  *domain.Post
	Posts []*domain.Post
	Total int
	Err   error

	// Call counts for verification.
	CreateCalls    int
	GetByIDCalls   int
	ListCalls      int
	CountListCalls int
	FindOneCalls   int
	UpdateCalls    int
	DeleteCalls    int

	// Last observed arguments for assertion on query construction.
	LastPage   store.ListPage
	LastFilter store.PostFilter
	LastSort   store.PostSort
}

var _ store.PostStore = (*MockPostStore)(nil)

func (m *MockPostStore) Create(ctx context.Context, post *domain.Post) error {
	m.CreateCalls++
	if m.CreateFn != nil {
		return m.CreateFn(ctx, post)
	}
	return m.Err
}

func (m *MockPostStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	m.GetByIDCalls++
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.Post, m.Err
}

func (m *MockPostStore) List(ctx context.Context, page store.ListPage, filter store.PostFilter, sort store.PostSort) ([]*domain.Post, error) {
	m.ListCalls++
	m.LastPage = page
	m.LastFilter = filter
	m.LastSort = sort
	if m.ListFn != nil {
		return m.ListFn(ctx, page, filter, sort)
	}
	return m.Posts, m.Err
}

func (m *MockPostStore) CountList(ctx context.Context, filter store.PostFilter) (int, error) {
	m.CountListCalls++
	m.LastFilter = filter
	if m.CountListFn != nil {
		return m.CountListFn(ctx, filter)
	}
	return m.Total, m.Err
}

func (m *MockPostStore) FindOne(ctx context.Context, id uuid.UUID, authorID *uuid.UUID) (*domain.Post, error) {
	m.FindOneCalls++
	if m.FindOneFn != nil {
		return m.FindOneFn(ctx, id, authorID)
	}
	return m.Post, m.Err
}

func (m *MockPostStore) Update(ctx context.Context, post *domain.Post) error {
	m.UpdateCalls++
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, post)
	}
	return m.Err
}

func (m *MockPostStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.DeleteCalls++
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}
