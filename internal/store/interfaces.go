package store

import (
	"context"

	"github.com/MKhiriev/go-post-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts a new unverified user. Password must already be hashed.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail is the only lookup that loads the password hash.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	MarkUserVerified(ctx context.Context, userID string) error
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}

// PostRepository persists posts. Every read returns posts with the author
// expanded.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	GetPost(ctx context.Context, postID string) (models.Post, error)
	ListPosts(ctx context.Context, opts models.PostListOptions) ([]models.Post, error)
	CountPosts(ctx context.Context, authorID string) (int, error)
	SearchPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error)
	// UpdatePost changes title and content of the post matching both
	// PostID and AuthorID.
	UpdatePost(ctx context.Context, post models.Post) (models.Post, error)
	DeletePost(ctx context.Context, postID, authorID string) error
}

// IDGenerator issues identifiers for new rows.
type IDGenerator interface {
	Generate() string
}
