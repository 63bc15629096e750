package store

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-post-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (user_id, name, email, password)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, name, email, is_verified, created_at;`

	findUserByEmail = `SELECT user_id, name, email, password, is_verified, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, name, email, is_verified, created_at
    FROM users
    WHERE user_id = $1;`

	markUserVerified = `UPDATE users SET is_verified = TRUE WHERE user_id = $1;`

	updateUserPassword = `UPDATE users SET password = $2 WHERE user_id = $1;`

	createPost = `WITH inserted AS (
        INSERT INTO posts (post_id, title, content, author_id)
        VALUES ($1, $2, $3, $4)
        RETURNING post_id, title, content, author_id, created_at
    )
    SELECT i.post_id, i.title, i.content, i.author_id, i.created_at, u.name, u.email
    FROM inserted i
    JOIN users u ON u.user_id = i.author_id;`

	updatePost = `WITH updated AS (
        UPDATE posts SET title = $1, content = $2
        WHERE post_id = $3 AND author_id = $4
        RETURNING post_id, title, content, author_id, created_at
    )
    SELECT d.post_id, d.title, d.content, d.author_id, d.created_at, u.name, u.email
    FROM updated d
    JOIN users u ON u.user_id = d.author_id;`

	deletePost = `DELETE FROM posts WHERE post_id = $1 AND author_id = $2;`
)

// psql builds queries with PostgreSQL ($n) placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// postSortColumns maps the sortable API field names to table columns.
var postSortColumns = map[string]string{
	models.SortByCreatedAt: "p.created_at",
	models.SortByTitle:     "p.title",
	models.SortByContent:   "p.content",
}

// likeEscaper escapes LIKE wildcards so user input matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// selectPosts returns the base post projection joined with its author.
// The password column is never part of it.
func selectPosts() sq.SelectBuilder {
	return psql.
		Select("p.post_id", "p.title", "p.content", "p.author_id", "p.created_at", "u.name", "u.email").
		From("posts p").
		Join("users u ON u.user_id = p.author_id")
}

func buildGetPostQuery(postID string) (string, []any, error) {
	return selectPosts().Where(sq.Eq{"p.post_id": postID}).ToSql()
}

// buildListPostsQuery builds one page of the author's posts. post_id is a
// secondary key so that pages are stable for equal sort values.
func buildListPostsQuery(opts models.PostListOptions) (string, []any, error) {
	column, ok := postSortColumns[opts.SortColumn]
	if !ok {
		return "", nil, fmt.Errorf("%w: unsupported sort column %q", ErrBuildingSQLQuery, opts.SortColumn)
	}

	direction := "ASC"
	if opts.Descending {
		direction = "DESC"
	}

	return selectPosts().
		Where(sq.Eq{"p.author_id": opts.AuthorID}).
		OrderBy(column+" "+direction, "p.post_id "+direction).
		Limit(opts.Limit).
		Offset(opts.Offset).
		ToSql()
}

func buildCountPostsQuery(authorID string) (string, []any, error) {
	return psql.
		Select("COUNT(*)").
		From("posts").
		Where(sq.Eq{"author_id": authorID}).
		ToSql()
}

// buildSearchPostsQuery builds the filtered search. Empty filter fields are
// not applied.
func buildSearchPostsQuery(filter models.PostFilter) (string, []any, error) {
	query := selectPosts().Where(sq.Eq{"p.author_id": filter.AuthorID})

	if filter.Title != "" {
		query = query.Where(sq.ILike{"p.title": "%" + likeEscaper.Replace(filter.Title) + "%"})
	}

	if filter.CreatedFrom != nil {
		query = query.Where(sq.GtOrEq{"p.created_at": *filter.CreatedFrom})
	}

	return query.OrderBy("p.created_at ASC", "p.post_id ASC").ToSql()
}
