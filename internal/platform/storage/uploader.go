// Package storage provides image upload to an object store.
package storage

import (
	"context"
	"io"
)

// FileUploader uploads a file and returns its publicly reachable URL.
type FileUploader interface {
	Upload(ctx context.Context, name, contentType string, r io.Reader) (string, error)
}
