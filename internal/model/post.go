package model

import (
	"context"
	"time"
)

// PostStore defines persistence operations for posts.
type PostStore interface {
	Create(ctx context.Context, userID int64, text string) (Post, error)
	GetByUserID(ctx context.Context, userID int64) ([]Post, error)
	GetByIDAndUserID(ctx context.Context, id int64, userID int64) (Post, error)
	Delete(ctx context.Context, id int64) error
}

// Post represents a text note owned by a user.
type Post struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
