// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the post-keeper HTTP API.
//
// [NewHTTPAPIClient] decodes the JSON envelope returned by every endpoint and
// maps non-2xx statuses to the sentinel errors in errors.go so callers can
// use [errors.Is] (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-post-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// APIClient talks to the post-keeper server on behalf of one user.
type APIClient interface {
	// SetToken stores the session token attached to authenticated calls.
	SetToken(token string)

	// Token returns the stored session token or "".
	Token() string

	Signup(ctx context.Context, req models.SignupRequest) (models.User, error)

	// Login authenticates and stores the returned session token.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	ForgotPassword(ctx context.Context, email string) error

	CreatePost(ctx context.Context, in models.PostInput) (models.Post, error)
	ListPosts(ctx context.Context, query models.ListPostsQuery) (models.PostPage, error)
	GetPost(ctx context.Context, postID string) (models.Post, error)
	UpdatePost(ctx context.Context, postID string, in models.PostInput) (models.Post, error)
	DeletePost(ctx context.Context, postID string) error
	SearchPosts(ctx context.Context, query models.SearchPostsQuery) ([]models.Post, error)

	// Version returns the server build information.
	Version(ctx context.Context) (models.AppBuildInfo, error)
}
