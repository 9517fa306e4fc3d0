package repository

import (
	"context"
	"time"

	"github.com/oksasatya/skatetube/internal/domain/entity"
)

// FeedCache stores category feeds. Get reports a miss with ok=false.
type FeedCache interface {
	Get(ctx context.Context, key string) (videos []entity.Video, ok bool, err error)
	Set(ctx context.Context, key string, videos []entity.Video, ttl time.Duration) error
}
