package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"gopherblog/internal/model"
)

// AuthorPostsCache keeps the per-author post listing in Redis. A short
// dirty marker set on every mutation keeps a concurrent reader from
// re-filling the cache with a stale listing.
type AuthorPostsCache struct {
	client         *redisv9.Client
	listTTL        time.Duration
	dirtyMarkerTTL time.Duration
}

func NewAuthorPostsCache(client *redisv9.Client, listTTL, dirtyMarkerTTL time.Duration) *AuthorPostsCache {
	if listTTL <= 0 {
		listTTL = 60 * time.Second
	}
	if dirtyMarkerTTL <= 0 {
		dirtyMarkerTTL = 5 * time.Second
	}
	return &AuthorPostsCache{
		client:         client,
		listTTL:        listTTL,
		dirtyMarkerTTL: dirtyMarkerTTL,
	}
}

func (c *AuthorPostsCache) Get(ctx context.Context, authorID uint) ([]model.Post, bool, error) {
	raw, err := c.client.Get(ctx, c.listKey(authorID)).Result()
	if err == redisv9.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get author posts failed: %w", err)
	}

	var posts []model.Post
	if err := json.Unmarshal([]byte(raw), &posts); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached posts failed: %w", err)
	}
	if posts == nil {
		posts = []model.Post{}
	}
	return posts, true, nil
}

func (c *AuthorPostsCache) Set(ctx context.Context, authorID uint, posts []model.Post) error {
	payload, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("marshal posts cache failed: %w", err)
	}
	if err := c.client.Set(ctx, c.listKey(authorID), payload, c.listTTL).Err(); err != nil {
		return fmt.Errorf("redis set author posts failed: %w", err)
	}
	return nil
}

func (c *AuthorPostsCache) Delete(ctx context.Context, authorID uint) error {
	if err := c.client.Del(ctx, c.listKey(authorID)).Err(); err != nil {
		return fmt.Errorf("redis delete author posts failed: %w", err)
	}
	return nil
}

func (c *AuthorPostsCache) MarkDirty(ctx context.Context, authorID uint) error {
	if err := c.client.Set(ctx, c.dirtyKey(authorID), "1", c.dirtyMarkerTTL).Err(); err != nil {
		return fmt.Errorf("redis set dirty marker failed: %w", err)
	}
	return nil
}

func (c *AuthorPostsCache) IsDirty(ctx context.Context, authorID uint) (bool, error) {
	exists, err := c.client.Exists(ctx, c.dirtyKey(authorID)).Result()
	if err != nil {
		return false, fmt.Errorf("redis check dirty marker failed: %w", err)
	}
	return exists > 0, nil
}

func (c *AuthorPostsCache) listKey(authorID uint) string {
	return fmt.Sprintf("posts:author:%d", authorID)
}

func (c *AuthorPostsCache) dirtyKey(authorID uint) string {
	return fmt.Sprintf("posts:author:dirty:%d", authorID)
}
