package memory

import (
	"context"
	"sync"
	"time"

	"github.com/oksasatya/skatetube/internal/domain/entity"
	"github.com/oksasatya/skatetube/internal/domain/repository"
)

type feedEntry struct {
	videos  []entity.Video
	expires time.Time
}

// FeedCache is a TTL map; it backs the feed when Redis is absent.
type FeedCache struct {
	mu      sync.RWMutex
	entries map[string]feedEntry
	now     func() time.Time
}

func NewFeedCache() *FeedCache {
	return &FeedCache{entries: make(map[string]feedEntry), now: time.Now}
}

func (c *FeedCache) Get(_ context.Context, key string) ([]entity.Video, bool, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !c.now().Before(e.expires) {
		c.mu.Lock()
		if cur, ok := c.entries[key]; ok && !c.now().Before(cur.expires) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false, nil
	}
	return cloneVideos(e.videos), true, nil
}

func (c *FeedCache) Set(_ context.Context, key string, videos []entity.Video, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for k, e := range c.entries {
		if !now.Before(e.expires) {
			delete(c.entries, k)
		}
	}
	c.entries[key] = feedEntry{videos: cloneVideos(videos), expires: now.Add(ttl)}
	return nil
}

func cloneVideos(in []entity.Video) []entity.Video {
	out := make([]entity.Video, len(in))
	for i, v := range in {
		v.Tags = append([]string(nil), v.Tags...)
		out[i] = v
	}
	return out
}

var _ repository.FeedCache = (*FeedCache)(nil)
