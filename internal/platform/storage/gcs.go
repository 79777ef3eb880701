package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"

	"github.com/quillhq/quill-api/internal/config"
)

// GCSUploader implements FileUploader on Google Cloud Storage. Objects
// are written under uploads/ with a UUID name; the bucket is expected to
// grant allUsers object-viewer access, so the returned URL is the plain
// public object URL.
type GCSUploader struct {
	client        *storage.Client
	bucket        string
	publicBaseURL string
	logger        *slog.Logger
}

// Ensure GCSUploader implements FileUploader
var _ FileUploader = (*GCSUploader)(nil)

// NewGCSUploader creates a GCS-backed uploader from the storage
// configuration. Credentials are resolved from the environment.
func NewGCSUploader(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (*GCSUploader, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	if logger == nil {
		logger = slog.Default()
	}

	base := strings.TrimSuffix(cfg.PublicBaseURL, "/")
	if base == "" {
		base = "https://storage.googleapis.com"
	}

	return &GCSUploader{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: base,
		logger:        logger.With(slog.String("component", "gcs_uploader")),
	}, nil
}

// Upload writes the file to the bucket and returns its public URL.
func (u *GCSUploader) Upload(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	ext := ""
	if i := strings.LastIndex(name, "."); i >= 0 {
		ext = name[i:]
	}
	key := fmt.Sprintf("uploads/%s/%s%s", time.Now().UTC().Format("20060102"), uuid.New().String(), ext)

	w := u.client.Bucket(u.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("failed to write object %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize object %s: %w", key, err)
	}

	url := fmt.Sprintf("%s/%s/%s", u.publicBaseURL, u.bucket, key)
	u.logger.Info("file uploaded",
		slog.String("object", key),
		slog.String("content_type", contentType))
	return url, nil
}

// Close releases the underlying client.
func (u *GCSUploader) Close() error {
	return u.client.Close()
}
