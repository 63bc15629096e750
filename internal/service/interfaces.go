package service

import (
	"context"

	"github.com/MKhiriev/go-post-keeper/internal/mailer"
	"github.com/MKhiriev/go-post-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=PostServiceWrapper

// AuthService covers the account lifecycle: signup, email verification,
// login, password reset and session token checks.
type AuthService interface {
	Register(ctx context.Context, req models.SignupRequest) (models.User, error)
	VerifyEmail(ctx context.Context, token string) error
	Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token string, req models.ResetPasswordRequest) error
	// Authenticate resolves a session token to its user.
	Authenticate(ctx context.Context, token string) (models.User, error)
}

// PostService manages posts on behalf of the user stored in the context.
type PostService interface {
	Create(ctx context.Context, in models.PostInput) (models.Post, error)
	List(ctx context.Context, query models.ListPostsQuery) (models.PostPage, error)
	GetOne(ctx context.Context, postID string) (models.Post, error)
	Update(ctx context.Context, postID string, in models.PostInput) (models.Post, error)
	Delete(ctx context.Context, postID string) error
	Search(ctx context.Context, query models.SearchPostsQuery) ([]models.Post, error)
}

// PostServiceWrapper defines middleware composition for PostService.
// Implementations wrap an existing PostService to add behavior such as
// logging or validating.
type PostServiceWrapper interface {
	Wrap(PostService) PostService // returns a decorated PostService applying additional behavior
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}

// MailDispatcher hands emails over for asynchronous delivery. Enqueue must
// not block; it reports false when the message was dropped.
type MailDispatcher interface {
	Enqueue(ctx context.Context, msg mailer.Message) bool
}
