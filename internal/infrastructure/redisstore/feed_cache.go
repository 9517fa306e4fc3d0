package redisstore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/skatetube/internal/domain/entity"
	"github.com/oksasatya/skatetube/internal/domain/repository"
	"github.com/oksasatya/skatetube/pkg/helpers"
)

// FeedCache stores feeds as JSON strings under feed:<key>.
type FeedCache struct {
	rdb *redis.Client
}

func NewFeedCache(rdb *redis.Client) *FeedCache {
	return &FeedCache{rdb: rdb}
}

func (c *FeedCache) Get(ctx context.Context, key string) ([]entity.Video, bool, error) {
	var videos []entity.Video
	ok, err := helpers.RedisGetJSON(ctx, c.rdb, "feed:"+key, &videos)
	if err != nil || !ok {
		return nil, false, err
	}
	return videos, true, nil
}

func (c *FeedCache) Set(ctx context.Context, key string, videos []entity.Video, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return helpers.RedisSetJSON(ctx, c.rdb, "feed:"+key, videos, ttl)
}

var _ repository.FeedCache = (*FeedCache)(nil)
