package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupRequest_Normalize(t *testing.T) {
	req := SignupRequest{
		Name:            "  Ann  ",
		Email:           "  Ann@Example.COM ",
		Password:        " pass word ",
		ConfirmPassword: " pass word ",
	}
	req.Normalize()

	assert.Equal(t, "Ann", req.Name)
	assert.Equal(t, "ann@example.com", req.Email)
	assert.Equal(t, " pass word ", req.Password, "passwords are kept verbatim")
}

func TestPostInput_Normalize(t *testing.T) {
	in := PostInput{Title: "  Hello ", Content: "\tBody\n"}
	in.Normalize()

	assert.Equal(t, "Hello", in.Title)
	assert.Equal(t, "Body", in.Content)
}

func TestParseSearchDate(t *testing.T) {
	got, err := ParseSearchDate("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseSearchDate("2024-03-01T10:30:00+02:00")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC)))

	_, err = ParseSearchDate("01/03/2024")
	assert.ErrorIs(t, err, ErrInvalidSearchDate)
}

func TestIsSortablePostField(t *testing.T) {
	assert.True(t, IsSortablePostField(SortByCreatedAt))
	assert.True(t, IsSortablePostField(SortByTitle))
	assert.True(t, IsSortablePostField(SortByContent))
	assert.False(t, IsSortablePostField("password"))
	assert.False(t, IsSortablePostField(""))
}

func TestEnvelope(t *testing.T) {
	ok := Success(PostData{Post: Post{Title: "t"}})
	assert.Equal(t, StatusSuccess, ok.Status)
	require.NotNil(t, ok.Data)
	assert.Equal(t, "t", ok.Data.Post.Title)

	msg := SuccessMessage("Post deleted!")
	assert.Equal(t, StatusSuccess, msg.Status)
	assert.Nil(t, msg.Data)

	fail := Failure("nope")
	assert.Equal(t, StatusFailed, fail.Status)
	assert.Equal(t, "nope", fail.Message)
}
