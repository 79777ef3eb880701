package postgres

import (
	"fmt"
	"strings"

	"github.com/quillhq/quill-api/internal/store"
)

const postColumns = "id, title, slug, description, thumbnail, author_id, created_at, updated_at"

// postFilterClause renders the WHERE clause for a post filter, appending
// its arguments to args. Returns the (possibly empty) clause and the
// grown argument list.
//
// AuthorIDs keeps its set semantics: a non-nil empty set renders a
// clause that matches nothing.
func postFilterClause(filter store.PostFilter, args []any) (string, []any) {
	var conds []string

	if filter.TitleContains != "" {
		args = append(args, "%"+escapeLike(filter.TitleContains)+"%")
		conds = append(conds, fmt.Sprintf("title ILIKE $%d", len(args)))
	}

	if filter.AuthorIDs != nil {
		ids := make([]string, len(filter.AuthorIDs))
		for i, id := range filter.AuthorIDs {
			ids[i] = id.String()
		}
		args = append(args, ids)
		conds = append(conds, fmt.Sprintf("author_id = ANY($%d::uuid[])", len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// buildListPostsQuery constructs the page-fetch query for a post
// listing. The sort field must be a column name already vetted upstream;
// id is always appended as a tie-break so adjacent pages of a static
// collection never duplicate or skip rows.
func buildListPostsQuery(page store.ListPage, filter store.PostFilter, sort store.PostSort) (string, []any) {
	var args []any

	query := "SELECT " + postColumns + " FROM posts"
	clause, args := postFilterClause(filter, args)
	query += clause

	field := sort.Field
	if field == "" {
		field = "created_at"
	}
	dir := "DESC"
	if sort.Direction == store.SortAsc {
		dir = "ASC"
	}
	query += fmt.Sprintf(" ORDER BY %s %s, id ASC", field, dir)

	args = append(args, page.Size)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, page.Offset())
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	return query, args
}

// buildCountPostsQuery constructs the count query over the same filter
// as buildListPostsQuery, without paging.
func buildCountPostsQuery(filter store.PostFilter) (string, []any) {
	var args []any

	query := "SELECT COUNT(*) FROM posts"
	clause, args := postFilterClause(filter, args)
	query += clause

	return query, args
}

// escapeLike escapes the LIKE/ILIKE metacharacters in a user-supplied
// search string so it matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
