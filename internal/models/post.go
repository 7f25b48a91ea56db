package models

import "time"

// Post represents a blog post owned by a user
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Published bool      `json:"published" gorm:"default:true"`
	OwnerID   uint      `json:"owner_id" gorm:"index"` // ID of the user who created the post
	CreatedAt time.Time `json:"created_at"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Title     string `json:"title" validate:"required,min=1,max=200"`
	Content   string `json:"content" validate:"required"`
	Published *bool  `json:"published,omitempty"`
}

// UpdatePostRequest defines the request body for updating an existing post.
// Updates are a full replace of title, content and published.
type UpdatePostRequest struct {
	Title     string `json:"title" validate:"required,min=1,max=200"`
	Content   string `json:"content" validate:"required"`
	Published *bool  `json:"published,omitempty"`
}
