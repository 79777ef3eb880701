package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/quillhq/quill-api/internal/domain"
	"github.com/quillhq/quill-api/internal/store"
)

// MockUserStore implements store.UserStore for testing.
type MockUserStore struct {
	CreateFn         func(ctx context.Context, user *domain.User) error
	GetByIDFn        func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFn     func(ctx context.Context, email string) (*domain.User, error)
	ListFn           func(ctx context.Context, page store.ListPage) ([]*domain.User, error)
	CountFn          func(ctx context.Context) (int, error)
	FindByFullNameFn func(ctx context.Context, text string) ([]*domain.User, error)
	UpdateFn         func(ctx context.Context, user *domain.User) error
	DeleteFn         func(ctx context.Context, id uuid.UUID) error

	// Default responses used when the corresponding Fn is nil.
	User  *domain.User
	Users []*domain.User
	Total int
	Err   error

	// Call counts for verification.
	CreateCalls         int
	GetByIDCalls        int
	GetByEmailCalls     int
	ListCalls           int
	CountCalls          int
	FindByFullNameCalls int
	UpdateCalls         int
	DeleteCalls         int
}

var _ store.UserStore = (*MockUserStore)(nil)

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	m.CreateCalls++
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	return m.Err
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	m.GetByIDCalls++
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.User, m.Err
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.GetByEmailCalls++
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return m.User, m.Err
}

func (m *MockUserStore) List(ctx context.Context, page store.ListPage) ([]*domain.User, error) {
	m.ListCalls++
	if m.ListFn != nil {
		return m.ListFn(ctx, page)
	}
	return m.Users, m.Err
}

func (m *MockUserStore) Count(ctx context.Context) (int, error) {
	m.CountCalls++
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return m.Total, m.Err
}

func (m *MockUserStore) FindByFullName(ctx context.Context, text string) ([]*domain.User, error) {
	m.FindByFullNameCalls++
	if m.FindByFullNameFn != nil {
		return m.FindByFullNameFn(ctx, text)
	}
	return m.Users, m.Err
}

func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	m.UpdateCalls++
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, user)
	}
	return m.Err
}

func (m *MockUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.DeleteCalls++
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}
