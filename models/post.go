package models

import "time"

// Post is a piece of content owned by exactly one user.
type Post struct {
	// PostID is the unique identifier assigned by the store (UUIDv7).
	PostID string `json:"_id"`

	Title   string `json:"title"`
	Content string `json:"content"`

	// AuthorID references the owning user. It is set on creation and never
	// changes afterwards.
	AuthorID string `json:"-"`

	// Author is the expanded owner reference (name and email only).
	Author PostAuthor `json:"author"`

	CreatedAt time.Time `json:"createdAt"`
}

// PostAuthor is the projection of a User embedded into post responses.
type PostAuthor struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}

// Pagination describes the page returned by a post listing.
type Pagination struct {
	TotalPosts  int `json:"totalPosts"`
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	PageSize    int `json:"pageSize"`
}

// PostPage is a single page of the owner's posts.
type PostPage struct {
	Posts      []Post     `json:"posts"`
	Pagination Pagination `json:"pagination"`
}
