package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/micropost/micropost-server/internal/model"
)

var _ model.PostStore = (*PostRepository)(nil)

type PostRepository struct {
	db *Connection
}

func NewPostRepository(db *Connection) *PostRepository {
	return &PostRepository{
		db: db,
	}
}

func (r *PostRepository) Create(ctx context.Context, userID int64, text string) (model.Post, error) {
	query := `INSERT INTO posts (user_id, text)
			  VALUES ($1, $2)
			  RETURNING id, user_id, text, created_at`

	var post model.Post
	err := r.db.QueryRow(ctx, query, userID, text).Scan(
		&post.ID, &post.UserID, &post.Text, &post.CreatedAt,
	)
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

func (r *PostRepository) GetByUserID(ctx context.Context, userID int64) ([]model.Post, error) {
	query := `SELECT id, user_id, text, created_at
			  FROM posts
			  WHERE user_id = $1
			  ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get posts by user id: %w", err)
	}
	defer rows.Close()

	var posts []model.Post
	for rows.Next() {
		var post model.Post
		if err := rows.Scan(&post.ID, &post.UserID, &post.Text, &post.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read posts: %w", err)
	}

	return posts, nil
}

// GetByIDAndUserID returns the post only when it is owned by userID. A post
// owned by someone else is reported as not found, same as a missing one.
func (r *PostRepository) GetByIDAndUserID(ctx context.Context, id int64, userID int64) (model.Post, error) {
	query := `SELECT id, user_id, text, created_at
			  FROM posts
			  WHERE id = $1 AND user_id = $2`

	var post model.Post
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&post.ID, &post.UserID, &post.Text, &post.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Post{}, model.ErrNotFound
		}
		return model.Post{}, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM posts WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
