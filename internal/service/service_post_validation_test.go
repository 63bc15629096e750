package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-post-keeper/internal/mock"
	"github.com/MKhiriev/go-post-keeper/internal/validators"
	"github.com/MKhiriev/go-post-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestPostValidation(t *testing.T) (PostService, *mock.MockPostService) {
	t.Helper()
	inner := mock.NewMockPostService(gomock.NewController(t))
	return NewPostValidationService(validators.NewRequestValidator()).Wrap(inner), inner
}

func TestPostValidation_Create_NormalizesBeforeInner(t *testing.T) {
	svc, inner := newTestPostValidation(t)
	inner.EXPECT().Create(gomock.Any(), models.PostInput{Title: "Hello", Content: "World"}).
		Return(models.Post{PostID: "p-1"}, nil)

	post, err := svc.Create(context.Background(), models.PostInput{Title: "  Hello ", Content: "World\n"})

	require.NoError(t, err)
	assert.Equal(t, "p-1", post.PostID)
}

func TestPostValidation_Create_BlankTitle(t *testing.T) {
	svc, _ := newTestPostValidation(t)

	_, err := svc.Create(context.Background(), models.PostInput{Title: "   ", Content: "body"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidInput)
}

func TestPostValidation_Update_BlankContent(t *testing.T) {
	svc, _ := newTestPostValidation(t)

	_, err := svc.Update(context.Background(), "p-1", models.PostInput{Title: "t"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestPostValidation_List_SortField(t *testing.T) {
	tests := []struct {
		name    string
		sortBy  string
		wantErr bool
	}{
		{name: "empty", sortBy: ""},
		{name: "title", sortBy: models.SortByTitle},
		{name: "unknown", sortBy: "password", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, inner := newTestPostValidation(t)
			query := models.ListPostsQuery{SortBy: tt.sortBy}
			if !tt.wantErr {
				inner.EXPECT().List(gomock.Any(), query).Return(models.PostPage{}, nil)
			}

			_, err := svc.List(context.Background(), query)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDataProvided)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPostValidation_Search_InvalidAuthor(t *testing.T) {
	svc, _ := newTestPostValidation(t)

	_, err := svc.Search(context.Background(), models.SearchPostsQuery{AuthorID: "not-a-uuid"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestPostValidation_Search_InvalidDate(t *testing.T) {
	svc, _ := newTestPostValidation(t)

	_, err := svc.Search(context.Background(), models.SearchPostsQuery{Date: "yesterday"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestPostValidation_PassThrough(t *testing.T) {
	svc, inner := newTestPostValidation(t)
	inner.EXPECT().GetOne(gomock.Any(), "p-1").Return(models.Post{PostID: "p-1"}, nil)
	inner.EXPECT().Delete(gomock.Any(), "p-1").Return(nil)
	inner.EXPECT().Search(gomock.Any(), models.SearchPostsQuery{Title: "go", Date: "2026-01-02"}).Return(nil, nil)

	_, err := svc.GetOne(context.Background(), "p-1")
	require.NoError(t, err)
	require.NoError(t, svc.Delete(context.Background(), "p-1"))
	_, err = svc.Search(context.Background(), models.SearchPostsQuery{Title: "go", Date: "2026-01-02"})
	require.NoError(t, err)
}
