package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/micropost/micropost-server/internal/logger"
	"github.com/micropost/micropost-server/internal/model"
)

// PostCache is a short-TTL cache of per-user post lists.
type PostCache interface {
	Get(userID int64) ([]model.Post, bool)
	Put(userID int64, posts []model.Post)
	Invalidate(userID int64)
}

type Post struct {
	postStore model.PostStore
	cache     PostCache
	logger    *logger.Logger
}

func NewPost(
	postStore model.PostStore,
	cache PostCache,
	logger *logger.Logger,
) *Post {
	return &Post{
		postStore: postStore,
		cache:     cache,
		logger:    logger,
	}
}

// Create persists a post for the user. The cached list for the user is
// dropped so a subsequent list reflects the write.
func (s *Post) Create(ctx context.Context, userID int64, text string) (int64, error) {
	post, err := s.postStore.Create(ctx, userID, text)
	if err != nil {
		s.logger.Error("Post service: failed to create post",
			"user_id", userID,
			"error", err.Error())
		return 0, fmt.Errorf("failed to create post: %w", err)
	}

	s.cache.Invalidate(userID)

	s.logger.Info("Post service: post created",
		"user_id", userID,
		"post_id", post.ID)

	return post.ID, nil
}

// List returns the user's posts, serving from the cache within its TTL and
// repopulating it from the store on a miss.
func (s *Post) List(ctx context.Context, userID int64) ([]model.Post, error) {
	if posts, ok := s.cache.Get(userID); ok {
		s.logger.Debug("Post service: cache hit",
			"user_id", userID)
		return posts, nil
	}

	posts, err := s.postStore.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get posts by user id: %w", err)
	}
	if posts == nil {
		posts = []model.Post{}
	}

	s.cache.Put(userID, posts)

	return posts, nil
}

// Delete removes the user's post. A post that does not exist and a post
// owned by a different user fail identically with model.ErrNotFound.
func (s *Post) Delete(ctx context.Context, userID int64, postID int64) error {
	post, err := s.postStore.GetByIDAndUserID(ctx, postID, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get post: %w", err)
	}

	if err := s.postStore.Delete(ctx, post.ID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to delete post: %w", err)
	}

	s.cache.Invalidate(userID)

	s.logger.Info("Post service: post deleted",
		"user_id", userID,
		"post_id", postID)

	return nil
}
