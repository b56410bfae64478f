package cache

import (
	"sync"
	"time"

	"github.com/micropost/micropost-server/internal/model"
)

// entry holds a materialized post list with its capture time.
type entry struct {
	posts      []model.Post
	capturedAt time.Time
}

// Posts is a thread-safe in-memory cache of per-user post lists with TTL.
// Expiry is checked lazily on read; a put always overwrites.
type Posts struct {
	mu      sync.RWMutex
	entries map[int64]entry
	ttl     time.Duration
	now     func() time.Time
}

// Option configures a Posts cache.
type Option func(*Posts)

// WithClock overrides the time source used for capture and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(c *Posts) {
		c.now = now
	}
}

// NewPosts creates a post list cache with the specified TTL.
func NewPosts(ttl time.Duration, opts ...Option) *Posts {
	c := &Posts{
		entries: make(map[int64]entry),
		ttl:     ttl,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached post list for a user. A hit requires the entry to
// exist and be younger than the TTL.
func (c *Posts) Get(userID int64) ([]model.Post, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, found := c.entries[userID]
	if !found || c.now().Sub(e.capturedAt) >= c.ttl {
		return nil, false
	}
	return e.posts, true
}

// Put stores a fresh snapshot for a user, replacing any existing entry.
func (c *Posts) Put(userID int64, posts []model.Post) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[userID] = entry{
		posts:      posts,
		capturedAt: c.now(),
	}
}

// Invalidate drops the entry for a user, if any.
func (c *Posts) Invalidate(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, userID)
}
