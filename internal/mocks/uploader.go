package mocks

import (
	"context"
	"io"

	"github.com/quillhq/quill-api/internal/platform/storage"
)

// MockFileUploader implements storage.FileUploader for testing.
type MockFileUploader struct {
	UploadFn func(ctx context.Context, name, contentType string, r io.Reader) (string, error)

	URL string
	Err error

	UploadCalls int
}

var _ storage.FileUploader = (*MockFileUploader)(nil)

func (m *MockFileUploader) Upload(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	m.UploadCalls++
	if m.UploadFn != nil {
		return m.UploadFn(ctx, name, contentType, r)
	}
	return m.URL, m.Err
}
