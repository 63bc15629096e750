package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-post-keeper/internal/validators"
	"github.com/MKhiriev/go-post-keeper/models"
)

// PostValidationService normalizes and validates input before it reaches
// the wrapped PostService.
type PostValidationService struct {
	inner     PostService
	validator validators.Validator
}

func NewPostValidationService(validator validators.Validator) PostServiceWrapper {
	return &PostValidationService{
		validator: validator,
	}
}

func (v *PostValidationService) Create(ctx context.Context, in models.PostInput) (models.Post, error) {
	in.Normalize()
	if err := v.validator.Validate(ctx, in); err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Create(ctx, in)
}

func (v *PostValidationService) List(ctx context.Context, query models.ListPostsQuery) (models.PostPage, error) {
	if err := v.validator.Validate(ctx, query); err != nil {
		return models.PostPage{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.List(ctx, query)
}

func (v *PostValidationService) GetOne(ctx context.Context, postID string) (models.Post, error) {
	return v.inner.GetOne(ctx, postID)
}

func (v *PostValidationService) Update(ctx context.Context, postID string, in models.PostInput) (models.Post, error) {
	in.Normalize()
	if err := v.validator.Validate(ctx, in); err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Update(ctx, postID, in)
}

func (v *PostValidationService) Delete(ctx context.Context, postID string) error {
	return v.inner.Delete(ctx, postID)
}

func (v *PostValidationService) Search(ctx context.Context, query models.SearchPostsQuery) ([]models.Post, error) {
	if err := v.validator.Validate(ctx, query); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Search(ctx, query)
}

func (v *PostValidationService) Wrap(wrapper PostService) PostService {
	v.inner = wrapper
	return v
}
