package models

import "time"

// Vote represents a user's vote on a post. The composite primary key makes the
// one-vote-per-user-per-post invariant a storage-level constraint, so a second
// concurrent insert for the same pair fails instead of racing past a pre-check.
type Vote struct {
	UserID    uint      `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	PostID    uint      `json:"post_id" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time `json:"created_at"`
}

// CastVoteRequest defines the request body for casting or removing a vote.
// Dir is a pointer so that 0 (remove) survives the required check; any value
// other than 0 or 1 is rejected at the boundary.
type CastVoteRequest struct {
	PostID uint `json:"post_id" validate:"required"`
	Dir    *int `json:"dir" validate:"required,oneof=0 1"`
}
