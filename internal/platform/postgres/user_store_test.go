package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillhq/quill-api/internal/domain"
)

type execResult struct {
	rows int64
}

func (r execResult) LastInsertId() (int64, error) { return 0, nil }
func (r execResult) RowsAffected() (int64, error) { return r.rows, nil }

// execRecorderDB records the last ExecContext call. The query paths are
// not exercised by these tests.
type execRecorderDB struct {
	query string
	args  []any
}

func (db *execRecorderDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	db.query = query
	db.args = args
	return execResult{rows: 1}, nil
}

func (db *execRecorderDB) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	return nil, nil
}

func (db *execRecorderDB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return nil, nil
}

func (db *execRecorderDB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return nil
}

func TestUserStoreUpdateRefreshesTimestamp(t *testing.T) {
	t.Parallel()

	db := &execRecorderDB{}
	s := NewPostgresUserStore(db, nil)

	stale := time.Now().UTC().Add(-time.Hour)
	user := &domain.User{
		ID:             uuid.New(),
		Email:          "grace@example.com",
		Role:           domain.RoleUser,
		FullName:       "Grace Hopper",
		HashedPassword: "hashed:pw",
		CreatedAt:      stale,
		UpdatedAt:      stale,
	}

	err := s.Update(context.Background(), user)
	require.NoError(t, err)

	assert.True(t, user.UpdatedAt.After(stale), "update must refresh the in-memory timestamp")
	require.Len(t, db.args, 7)
	assert.Equal(t, user.UpdatedAt, db.args[6], "bound updated_at must match the struct")
}
