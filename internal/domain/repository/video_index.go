package repository

import (
	"context"

	"github.com/oksasatya/skatetube/internal/domain/entity"
)

// VideoIndex is a full-text index over the local catalog.
type VideoIndex interface {
	IndexVideo(ctx context.Context, v entity.Video) error
	SearchIDs(ctx context.Context, query string, size int) ([]string, error)
}
