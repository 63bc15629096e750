package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-post-keeper/internal/logger"
	"github.com/MKhiriev/go-post-keeper/internal/store"
	"github.com/MKhiriev/go-post-keeper/internal/utils"
	"github.com/MKhiriev/go-post-keeper/internal/validators"
	"github.com/MKhiriev/go-post-keeper/models"
)

// Listing defaults.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

const orderDescending = "desc"

type postService struct {
	postRepository store.PostRepository

	logger *logger.Logger
}

// NewPostService returns the PostService core. Input is expected to be
// normalized and validated by PostValidationService.
func NewPostService(postRepository store.PostRepository, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		logger:         logger,
	}
}

func (p *postService) Create(ctx context.Context, in models.PostInput) (models.Post, error) {
	principal, err := principalFromContext(ctx)
	if err != nil {
		return models.Post{}, err
	}

	post, err := p.postRepository.CreatePost(ctx, models.Post{
		Title:    in.Title,
		Content:  in.Content,
		AuthorID: principal.UserID,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("author_id", principal.UserID).Msg("post creation failed")
		return models.Post{}, fmt.Errorf("post creation failed: %w", err)
	}

	return post, nil
}

// List returns one page of the principal's posts. Out-of-range page and
// limit values fall back to the defaults; limit is capped at MaxPageSize.
func (p *postService) List(ctx context.Context, query models.ListPostsQuery) (models.PostPage, error) {
	principal, err := principalFromContext(ctx)
	if err != nil {
		return models.PostPage{}, err
	}
	log := logger.FromContext(ctx)

	opts, page, limit := resolveListQuery(query)
	opts.AuthorID = principal.UserID

	total, err := p.postRepository.CountPosts(ctx, principal.UserID)
	if err != nil {
		log.Err(err).Str("author_id", principal.UserID).Msg("counting posts failed")
		return models.PostPage{}, fmt.Errorf("counting posts failed: %w", err)
	}

	posts, err := p.postRepository.ListPosts(ctx, opts)
	if err != nil {
		log.Err(err).Str("author_id", principal.UserID).Msg("listing posts failed")
		return models.PostPage{}, fmt.Errorf("listing posts failed: %w", err)
	}

	return models.PostPage{
		Posts: posts,
		Pagination: models.Pagination{
			TotalPosts:  total,
			CurrentPage: page,
			TotalPages:  (total + limit - 1) / limit,
			PageSize:    limit,
		},
	}, nil
}

// GetOne returns any post by id; reading is not restricted to the owner.
func (p *postService) GetOne(ctx context.Context, postID string) (models.Post, error) {
	if _, err := principalFromContext(ctx); err != nil {
		return models.Post{}, err
	}

	post, err := p.postRepository.GetPost(ctx, postID)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("post_id", postID).Msg("getting post failed")
		return models.Post{}, fmt.Errorf("getting post failed: %w", err)
	}

	return post, nil
}

// Update changes title and content of a post owned by the principal. A post
// owned by someone else is reported as store.ErrPostNotFound.
func (p *postService) Update(ctx context.Context, postID string, in models.PostInput) (models.Post, error) {
	principal, err := principalFromContext(ctx)
	if err != nil {
		return models.Post{}, err
	}

	post, err := p.postRepository.UpdatePost(ctx, models.Post{
		PostID:   postID,
		Title:    in.Title,
		Content:  in.Content,
		AuthorID: principal.UserID,
	})
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("post_id", postID).Msg("updating post failed")
		return models.Post{}, fmt.Errorf("updating post failed: %w", err)
	}

	return post, nil
}

// Delete removes a post owned by the principal.
func (p *postService) Delete(ctx context.Context, postID string) error {
	principal, err := principalFromContext(ctx)
	if err != nil {
		return err
	}

	if err = p.postRepository.DeletePost(ctx, postID, principal.UserID); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("post_id", postID).Msg("deleting post failed")
		return fmt.Errorf("deleting post failed: %w", err)
	}

	return nil
}

// Search filters posts by title substring and creation date. The author
// defaults to the principal unless query.AuthorID is set.
func (p *postService) Search(ctx context.Context, query models.SearchPostsQuery) ([]models.Post, error) {
	principal, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	filter := models.PostFilter{
		AuthorID: principal.UserID,
		Title:    query.Title,
	}
	if query.AuthorID != "" {
		filter.AuthorID = query.AuthorID
	}
	if query.Date != "" {
		from, err := models.ParseSearchDate(query.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, &validators.ValidationError{Field: "date", Message: err.Error()})
		}
		filter.CreatedFrom = &from
	}

	posts, err := p.postRepository.SearchPosts(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Any("filter", filter).Msg("searching posts failed")
		return nil, fmt.Errorf("searching posts failed: %w", err)
	}

	return posts, nil
}

// resolveListQuery applies listing defaults and returns the store options
// together with the effective page number and page size.
func resolveListQuery(query models.ListPostsQuery) (models.PostListOptions, int, int) {
	page := query.Page
	if page < 1 {
		page = DefaultPage
	}

	limit := query.Limit
	switch {
	case limit < 1:
		limit = DefaultPageSize
	case limit > MaxPageSize:
		limit = MaxPageSize
	}

	sortBy := query.SortBy
	if sortBy == "" {
		sortBy = models.SortByCreatedAt
	}

	return models.PostListOptions{
		SortColumn: sortBy,
		Descending: query.Order == orderDescending,
		Offset:     uint64(page-1) * uint64(limit),
		Limit:      uint64(limit),
	}, page, limit
}

func principalFromContext(ctx context.Context) (models.User, error) {
	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		return models.User{}, ErrUnauthorized
	}
	return user, nil
}
