package store

import (
	"context"
	"database/sql"
)

// DBTX is an interface that abstracts the database access layer.
// It is implemented by both *sql.DB and *sql.Tx, allowing our code
// to work with either a database connection or a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ListPage describes one page of a listing: a 1-based page index and
// the page size. Both are expected to be >= 1 by the time they reach a
// store; use-case builders enforce that.
type ListPage struct {
	Index int
	Size  int
}

// Offset returns the number of rows to skip for this page.
func (p ListPage) Offset() int {
	return (p.Index - 1) * p.Size
}

// SortDirection is the direction of an ORDER BY clause.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)
