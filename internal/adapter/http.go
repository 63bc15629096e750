package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-post-keeper/internal/config"
	"github.com/MKhiriev/go-post-keeper/internal/logger"
	"github.com/MKhiriev/go-post-keeper/internal/utils"
	"github.com/MKhiriev/go-post-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpAPIClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAPIClient builds an [APIClient] bound to cfg.ServerURL. A token in
// cfg is used for authenticated calls until Login replaces it.
func NewHTTPAPIClient(cfg config.Client, logger *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}

	c := &httpAPIClient{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	c.SetToken(cfg.Token)

	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", config.ErrEmptyServerURL
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Signup implements [APIClient]. POST /api/user/signup.
func (h *httpAPIClient) Signup(ctx context.Context, req models.SignupRequest) (models.User, error) {
	var envelope models.Envelope[models.UserData]

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&envelope).
		Post("/api/user/signup")
	if err != nil {
		return models.User{}, fmt.Errorf("signup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	data, err := payload(envelope)
	if err != nil {
		return models.User{}, fmt.Errorf("signup: %w", err)
	}
	return data.User, nil
}

// Login implements [APIClient]. POST /api/user/login. The token from the
// envelope is stored via SetToken.
func (h *httpAPIClient) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	var envelope models.Envelope[models.UserData]

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&envelope).
		Post("/api/user/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	data, err := payload(envelope)
	if err != nil {
		return models.User{}, fmt.Errorf("login: %w", err)
	}
	if envelope.Token == "" {
		return models.User{}, fmt.Errorf("login: %w: missing token", ErrMalformedResponse)
	}

	h.SetToken(envelope.Token)
	h.logger.Debug().Str("user_id", data.User.UserID).Msg("logged in")
	return data.User, nil
}

// ForgotPassword implements [APIClient]. POST /api/user/forgot-password.
func (h *httpAPIClient) ForgotPassword(ctx context.Context, email string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.ForgotPasswordRequest{Email: email}).
		Post("/api/user/forgot-password")
	if err != nil {
		return fmt.Errorf("forgot password request: %w", err)
	}
	return mapHTTPError(resp)
}

// CreatePost implements [APIClient]. POST /api/post/create-post.
func (h *httpAPIClient) CreatePost(ctx context.Context, in models.PostInput) (models.Post, error) {
	var envelope models.Envelope[models.PostData]

	resp, err := h.authedRequest(ctx).
		SetBody(in).
		SetResult(&envelope).
		Post("/api/post/create-post")
	if err != nil {
		return models.Post{}, fmt.Errorf("create post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	data, err := payload(envelope)
	if err != nil {
		return models.Post{}, fmt.Errorf("create post: %w", err)
	}
	return data.Post, nil
}

// ListPosts implements [APIClient]. GET /api/post/get-all-posts. Zero
// fields are left for the server to default.
func (h *httpAPIClient) ListPosts(ctx context.Context, query models.ListPostsQuery) (models.PostPage, error) {
	var envelope models.Envelope[models.PostPage]

	params := map[string]string{}
	setIfNotEmpty(params, "sortBy", query.SortBy)
	setIfNotEmpty(params, "order", query.Order)
	if query.Page > 0 {
		params["page"] = strconv.Itoa(query.Page)
	}
	if query.Limit > 0 {
		params["limit"] = strconv.Itoa(query.Limit)
	}

	resp, err := h.authedRequest(ctx).
		SetQueryParams(params).
		SetResult(&envelope).
		Get("/api/post/get-all-posts")
	if err != nil {
		return models.PostPage{}, fmt.Errorf("list posts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PostPage{}, err
	}

	data, err := payload(envelope)
	if err != nil {
		return models.PostPage{}, fmt.Errorf("list posts: %w", err)
	}
	return data, nil
}

// GetPost implements [APIClient]. GET /api/post/get-post/{id}.
func (h *httpAPIClient) GetPost(ctx context.Context, postID string) (models.Post, error) {
	var envelope models.Envelope[models.PostData]

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", postID).
		SetResult(&envelope).
		Get("/api/post/get-post/{id}")
	if err != nil {
		return models.Post{}, fmt.Errorf("get post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	data, err := payload(envelope)
	if err != nil {
		return models.Post{}, fmt.Errorf("get post: %w", err)
	}
	return data.Post, nil
}

// UpdatePost implements [APIClient]. PATCH /api/post/update-post/{id}.
func (h *httpAPIClient) UpdatePost(ctx context.Context, postID string, in models.PostInput) (models.Post, error) {
	var envelope models.Envelope[models.UpdatedPostData]

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", postID).
		SetBody(in).
		SetResult(&envelope).
		Patch("/api/post/update-post/{id}")
	if err != nil {
		return models.Post{}, fmt.Errorf("update post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	data, err := payload(envelope)
	if err != nil {
		return models.Post{}, fmt.Errorf("update post: %w", err)
	}
	return data.UpdatedPost, nil
}

// DeletePost implements [APIClient]. DELETE /api/post/delete-post/{id}.
func (h *httpAPIClient) DeletePost(ctx context.Context, postID string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", postID).
		Delete("/api/post/delete-post/{id}")
	if err != nil {
		return fmt.Errorf("delete post request: %w", err)
	}
	return mapHTTPError(resp)
}

// SearchPosts implements [APIClient]. GET /api/post/search-filter-post.
func (h *httpAPIClient) SearchPosts(ctx context.Context, query models.SearchPostsQuery) ([]models.Post, error) {
	var envelope models.Envelope[models.PostsData]

	params := map[string]string{}
	setIfNotEmpty(params, "title", query.Title)
	setIfNotEmpty(params, "author", query.AuthorID)
	setIfNotEmpty(params, "date", query.Date)

	resp, err := h.authedRequest(ctx).
		SetQueryParams(params).
		SetResult(&envelope).
		Get("/api/post/search-filter-post")
	if err != nil {
		return nil, fmt.Errorf("search posts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	data, err := payload(envelope)
	if err != nil {
		return nil, fmt.Errorf("search posts: %w", err)
	}
	return data.Posts, nil
}

// Version implements [APIClient]. GET /api/version/ with a JSON Accept
// header.
func (h *httpAPIClient) Version(ctx context.Context) (models.AppBuildInfo, error) {
	var envelope models.Envelope[models.AppBuildInfo]

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&envelope).
		Get("/api/version/")
	if err != nil {
		return models.AppBuildInfo{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppBuildInfo{}, err
	}

	return payload(envelope)
}

func (h *httpAPIClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func payload[T any](envelope models.Envelope[T]) (T, error) {
	if envelope.Data == nil {
		var zero T
		return zero, ErrMalformedResponse
	}
	return *envelope.Data, nil
}

func setIfNotEmpty(params map[string]string, key, value string) {
	if value != "" {
		params[key] = value
	}
}
