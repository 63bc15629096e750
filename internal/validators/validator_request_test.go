// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-post-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSignup() models.SignupRequest {
	return models.SignupRequest{
		Name:            "Ann",
		Email:           "ann@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
}

func TestRequestValidator_Signup(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(r *models.SignupRequest)
		wantField   string
		wantMessage string
	}{
		{
			name:   "valid",
			mutate: func(r *models.SignupRequest) {},
		},
		{
			name:        "missing name",
			mutate:      func(r *models.SignupRequest) { r.Name = "" },
			wantField:   "name",
			wantMessage: "name is required",
		},
		{
			name:        "malformed email",
			mutate:      func(r *models.SignupRequest) { r.Email = "not-an-email" },
			wantField:   "email",
			wantMessage: "email must be a valid email address",
		},
		{
			name: "short password",
			mutate: func(r *models.SignupRequest) {
				r.Password = "abc"
				r.ConfirmPassword = "abc"
			},
			wantField:   "password",
			wantMessage: "password must be at least 6 characters",
		},
		{
			name:        "missing confirmation",
			mutate:      func(r *models.SignupRequest) { r.ConfirmPassword = "" },
			wantField:   "confirmPassword",
			wantMessage: "confirmPassword is required",
		},
		{
			name:        "mismatch",
			mutate:      func(r *models.SignupRequest) { r.ConfirmPassword = "secret2" },
			wantField:   "confirmPassword",
			wantMessage: "password & confirmPassword do not match",
		},
	}

	v := NewRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSignup()
			tt.mutate(&req)

			err := v.Validate(context.Background(), req)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, tt.wantField, vErr.Field)
			assert.Equal(t, tt.wantMessage, vErr.Message)
		})
	}
}

func TestRequestValidator_PostInput(t *testing.T) {
	v := NewRequestValidator()

	assert.NoError(t, v.Validate(context.Background(), models.PostInput{Title: "t", Content: "c"}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.PostInput{Title: "t"}), ErrInvalidInput)
	assert.ErrorIs(t, v.Validate(context.Background(), &models.PostInput{Content: "c"}), ErrInvalidInput)
}

func TestRequestValidator_ListQuery(t *testing.T) {
	v := NewRequestValidator()

	for _, sortBy := range []string{"", "createdAt", "title", "content"} {
		assert.NoError(t, v.Validate(context.Background(), models.ListPostsQuery{SortBy: sortBy}), sortBy)
	}

	err := v.Validate(context.Background(), models.ListPostsQuery{SortBy: "password"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "sortBy must be one of: createdAt, title, content", vErr.Message)
}

func TestRequestValidator_SearchQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   models.SearchPostsQuery
		wantErr bool
	}{
		{name: "empty", query: models.SearchPostsQuery{}},
		{name: "date only", query: models.SearchPostsQuery{Date: "2024-03-01"}},
		{name: "rfc3339", query: models.SearchPostsQuery{Date: "2024-03-01T10:00:00Z"}},
		{name: "author uuid", query: models.SearchPostsQuery{AuthorID: "0192f0c4-7a3b-7c00-8000-000000000001"}},
		{name: "bad date", query: models.SearchPostsQuery{Date: "yesterday"}, wantErr: true},
		{name: "bad author", query: models.SearchPostsQuery{AuthorID: "42"}, wantErr: true},
	}

	v := NewRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.query)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRequestValidator_PartialFields(t *testing.T) {
	v := NewRequestValidator()

	req := validSignup()
	req.Email = "broken"

	assert.NoError(t, v.Validate(context.Background(), req, "Name", "Password"))
	assert.Error(t, v.Validate(context.Background(), req, "Email"))
}

func TestRequestValidator_UnsupportedType(t *testing.T) {
	err := NewRequestValidator().Validate(context.Background(), 42)
	assert.True(t, errors.Is(err, ErrUnsupportedType))
}
