package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-post-keeper/internal/logger"
	"github.com/MKhiriev/go-post-keeper/models"
	"github.com/jackc/pgerrcode"
)

// postRepository is the PostgreSQL-backed implementation of [PostRepository].
// Reads join the "users" table to expand the author.
type postRepository struct {
	logger *logger.Logger
	db     *DB
	ids    IDGenerator
}

// NewPostRepository constructs a [PostRepository] backed by the provided
// database connection and logger.
func NewPostRepository(db *DB, ids IDGenerator, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		ids:    ids,
		logger: logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanPost reads one row of the post projection (see selectPosts).
func scanPost(row rowScanner) (models.Post, error) {
	var post models.Post
	err := row.Scan(&post.PostID, &post.Title, &post.Content, &post.AuthorID, &post.CreatedAt, &post.Author.Name, &post.Author.Email)
	if err != nil {
		return models.Post{}, err
	}
	post.Author.ID = post.AuthorID

	return post, nil
}

// CreatePost inserts the post and returns it with the author expanded.
func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createPost, r.ids.Generate(), post.Title, post.Content, post.AuthorID)
	created, err := scanPost(row)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error creating post")

		switch {
		case postgresError(err) == pgerrcode.ForeignKeyViolation, errors.Is(err, sql.ErrNoRows):
			return models.Post{}, ErrNoUserWasFound
		default:
			return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return created, nil
}

// GetPost retrieves a single post regardless of its owner.
func (r *postRepository) GetPost(ctx context.Context, postID string) (models.Post, error) {
	query, args, err := buildGetPostQuery(postID)
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var post models.Post
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		var scanErr error
		post, scanErr = scanPost(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		return models.Post{}, r.notFoundOr(ctx, "*postRepository.GetPost", err)
	}

	return post, nil
}

// ListPosts returns one page of the author's posts in the requested order.
func (r *postRepository) ListPosts(ctx context.Context, opts models.PostListOptions) ([]models.Post, error) {
	query, args, err := buildListPostsQuery(opts)
	if err != nil {
		return nil, err
	}

	return r.queryPosts(ctx, "*postRepository.ListPosts", query, args)
}

// CountPosts returns the total number of posts owned by authorID.
func (r *postRepository) CountPosts(ctx context.Context, authorID string) (int, error) {
	query, args, err := buildCountPostsQuery(authorID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&total)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*postRepository.CountPosts").Msg("error counting posts")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

// SearchPosts returns every post matching filter, oldest first.
func (r *postRepository) SearchPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	query, args, err := buildSearchPostsQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryPosts(ctx, "*postRepository.SearchPosts", query, args)
}

// UpdatePost replaces title and content of a post owned by post.AuthorID.
// A post owned by someone else is reported as [ErrPostNotFound].
func (r *postRepository) UpdatePost(ctx context.Context, post models.Post) (models.Post, error) {
	row := r.db.QueryRowContext(ctx, updatePost, post.Title, post.Content, post.PostID, post.AuthorID)
	updated, err := scanPost(row)
	if err != nil {
		return models.Post{}, r.notFoundOr(ctx, "*postRepository.UpdatePost", err)
	}

	return updated, nil
}

// DeletePost removes a post owned by authorID.
func (r *postRepository) DeletePost(ctx context.Context, postID, authorID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deletePost, postID, authorID)
	if err != nil {
		if postgresError(err) == pgerrcode.InvalidTextRepresentation {
			return ErrPostNotFound
		}
		log.Err(err).Str("func", "*postRepository.DeletePost").Msg("error deleting post")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPostNotFound
	}

	return nil
}

func (r *postRepository) queryPosts(ctx context.Context, funcName, query string, args []any) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	var posts []models.Post
	err := r.db.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		posts = make([]models.Post, 0)
		for rows.Next() {
			post, err := scanPost(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			posts = append(posts, post)
		}

		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error querying posts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return posts, nil
}

// notFoundOr maps missing rows and malformed ids to [ErrPostNotFound].
func (r *postRepository) notFoundOr(ctx context.Context, funcName string, err error) error {
	if errors.Is(err, sql.ErrNoRows) || postgresError(err) == pgerrcode.InvalidTextRepresentation {
		return ErrPostNotFound
	}

	logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error reading post")
	return fmt.Errorf("unexpected DB error: %w", err)
}
