// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-post-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_selectPosts_NeverSelectsPassword(t *testing.T) {
	query, _, err := selectPosts().ToSql()
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "from posts p")
	require.Contains(t, q, "join users u on u.user_id = p.author_id")
	require.Contains(t, q, "u.name")
	require.Contains(t, q, "u.email")
	require.NotContains(t, q, "password")
}

func Test_buildGetPostQuery(t *testing.T) {
	query, args, err := buildGetPostQuery("p1")
	require.NoError(t, err)

	assert.Contains(t, query, "WHERE p.post_id = $1")
	assert.Equal(t, []any{"p1"}, args)
}

func Test_buildListPostsQuery(t *testing.T) {
	tests := []struct {
		name      string
		opts      models.PostListOptions
		wantOrder string
		wantPage  string
	}{
		{
			name:      "default order",
			opts:      models.PostListOptions{AuthorID: "u1", SortColumn: models.SortByCreatedAt, Limit: 10},
			wantOrder: "ORDER BY p.created_at ASC, p.post_id ASC",
			wantPage:  "LIMIT 10 OFFSET 0",
		},
		{
			name:      "title descending",
			opts:      models.PostListOptions{AuthorID: "u1", SortColumn: models.SortByTitle, Descending: true, Limit: 5, Offset: 15},
			wantOrder: "ORDER BY p.title DESC, p.post_id DESC",
			wantPage:  "LIMIT 5 OFFSET 15",
		},
		{
			name:      "content",
			opts:      models.PostListOptions{AuthorID: "u1", SortColumn: models.SortByContent, Limit: 100},
			wantOrder: "ORDER BY p.content ASC",
			wantPage:  "LIMIT 100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListPostsQuery(tt.opts)
			require.NoError(t, err)

			assert.Contains(t, query, "WHERE p.author_id = $1")
			assert.Contains(t, query, tt.wantOrder)
			assert.Contains(t, query, tt.wantPage)
			assert.Equal(t, []any{"u1"}, args)
		})
	}
}

func Test_buildListPostsQuery_RejectsUnknownColumn(t *testing.T) {
	for _, column := range []string{"", "password", "p.title; DROP TABLE posts", "created_at"} {
		_, _, err := buildListPostsQuery(models.PostListOptions{SortColumn: column})
		assert.ErrorIs(t, err, ErrBuildingSQLQuery, column)
	}
}

func Test_buildCountPostsQuery(t *testing.T) {
	query, args, err := buildCountPostsQuery("u1")
	require.NoError(t, err)

	assert.Equal(t, "SELECT COUNT(*) FROM posts WHERE author_id = $1", query)
	assert.Equal(t, []any{"u1"}, args)
}

func Test_buildSearchPostsQuery(t *testing.T) {
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		filter      models.PostFilter
		contains    []string
		notContains []string
		wantArgs    []any
	}{
		{
			name:        "author only",
			filter:      models.PostFilter{AuthorID: "u1"},
			contains:    []string{"WHERE p.author_id = $1", "ORDER BY p.created_at ASC"},
			notContains: []string{"ILIKE", ">="},
			wantArgs:    []any{"u1"},
		},
		{
			name:     "title",
			filter:   models.PostFilter{AuthorID: "u1", Title: "Go"},
			contains: []string{"p.title ILIKE $2"},
			wantArgs: []any{"u1", "%Go%"},
		},
		{
			name:     "title wildcards are escaped",
			filter:   models.PostFilter{AuthorID: "u1", Title: `a_b%c\d`},
			contains: []string{"p.title ILIKE $2"},
			wantArgs: []any{"u1", `%a\_b\%c\\d%`},
		},
		{
			name:     "date",
			filter:   models.PostFilter{AuthorID: "u1", CreatedFrom: &from},
			contains: []string{"p.created_at >= $2"},
			wantArgs: []any{"u1", from},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSearchPostsQuery(tt.filter)
			require.NoError(t, err)

			for _, part := range tt.contains {
				assert.Contains(t, query, part)
			}
			for _, part := range tt.notContains {
				assert.NotContains(t, query, part)
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
