package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/quillhq/quill-api/internal/domain"
	"github.com/quillhq/quill-api/internal/platform/logger"
	"github.com/quillhq/quill-api/internal/store"
)

// PostgresPostStore implements the store.PostStore interface
// using a PostgreSQL database as the storage backend.
//
// The post's update history (a list of timestamps, one per save) is kept
// in a JSONB column.
type PostgresPostStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPostStore creates a new PostgreSQL implementation of the
// PostStore interface. The connection (or transaction) is managed by the
// caller. If logger is nil, a default logger is used.
func NewPostgresPostStore(db store.DBTX, logger *slog.Logger) *PostgresPostStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPostStore{
		db:     db,
		logger: logger.With(slog.String("component", "post_store")),
	}
}

// Ensure PostgresPostStore implements store.PostStore interface
var _ store.PostStore = (*PostgresPostStore)(nil)

func scanPost(row interface{ Scan(dest ...any) error }) (*domain.Post, error) {
	var post domain.Post
	var history []byte
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Slug,
		&post.Description,
		&post.Thumbnail,
		&post.AuthorID,
		&post.CreatedAt,
		&history,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(history, &post.UpdatedAt); err != nil {
		return nil, fmt.Errorf("decoding update history: %w", err)
	}
	return &post, nil
}

func marshalHistory(history []time.Time) ([]byte, error) {
	raw, err := json.Marshal(history)
	if err != nil {
		return nil, fmt.Errorf("encoding update history: %w", err)
	}
	return raw, nil
}

// Create implements store.PostStore.Create.
// Returns store.ErrSlugExists when the slug is already taken.
func (s *PostgresPostStore) Create(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := post.Validate(); err != nil {
		log.Warn("post validation failed during create",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID.String()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	history, err := marshalHistory(post.UpdatedAt)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO posts (id, title, slug, description, thumbnail, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		post.ID,
		post.Title,
		post.Slug,
		post.Description,
		post.Thumbnail,
		post.AuthorID,
		post.CreatedAt,
		history,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return store.ErrSlugExists
		}
		log.Error("failed to create post",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID.String()),
			slog.String("author_id", post.AuthorID.String()))
		return MapError(err)
	}

	log.Info("post created",
		slog.String("post_id", post.ID.String()),
		slog.String("slug", post.Slug))
	return nil
}

// GetByID implements store.PostStore.GetByID.
func (s *PostgresPostStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	return s.FindOne(ctx, id, nil)
}

// FindOne implements store.PostStore.FindOne. A non-nil authorID scopes
// the lookup to that author, so foreign posts read as absent.
func (s *PostgresPostStore) FindOne(ctx context.Context, id uuid.UUID, authorID *uuid.UUID) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := "SELECT " + postColumns + " FROM posts WHERE id = $1"
	args := []any{id}
	if authorID != nil {
		query += " AND author_id = $2"
		args = append(args, *authorID)
	}

	post, err := scanPost(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrPostNotFound
		}
		log.Error("failed to get post",
			slog.String("error", err.Error()),
			slog.String("post_id", id.String()))
		return nil, MapError(err)
	}
	return post, nil
}

// List implements store.PostStore.List.
func (s *PostgresPostStore) List(ctx context.Context, page store.ListPage, filter store.PostFilter, sort store.PostSort) ([]*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args := buildListPostsQuery(page, filter, sort)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list posts", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var posts []*domain.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, MapError(err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return posts, nil
}

// CountList implements store.PostStore.CountList.
func (s *PostgresPostStore) CountList(ctx context.Context, filter store.PostFilter) (int, error) {
	query, args := buildCountPostsQuery(filter)

	var total int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, MapError(err)
	}
	return total, nil
}

// Update implements store.PostStore.Update, persisting the full post
// including its update history.
func (s *PostgresPostStore) Update(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := post.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	history, err := marshalHistory(post.UpdatedAt)
	if err != nil {
		return err
	}

	query := `
		UPDATE posts
		SET title = $2, description = $3, thumbnail = $4, updated_at = $5
		WHERE id = $1
	`
	result, err := s.db.ExecContext(ctx, query, post.ID, post.Title, post.Description, post.Thumbnail, history)
	if err != nil {
		log.Error("failed to update post",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID.String()))
		return MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if affected == 0 {
		return store.ErrPostNotFound
	}

	return nil
}

// Delete implements store.PostStore.Delete.
func (s *PostgresPostStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete post",
			slog.String("error", err.Error()),
			slog.String("post_id", id.String()))
		return MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if affected == 0 {
		return store.ErrPostNotFound
	}

	log.Info("post deleted", slog.String("post_id", id.String()))
	return nil
}
