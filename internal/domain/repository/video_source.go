package repository

import (
	"context"
	"fmt"

	"github.com/oksasatya/skatetube/internal/domain/entity"
)

// SearchParams describes one upstream search.list call.
// Zero values are left out of the request.
type SearchParams struct {
	Query          string
	Type           string // video or channel
	ChannelID      string
	MaxResults     int64
	Order          string
	SafeSearch     string
	RegionCode     string
	Language       string
	EmbeddableOnly bool
}

// VideoSource is the upstream video catalog.
type VideoSource interface {
	// Configured reports whether credentials are present.
	Configured() bool
	SearchVideos(ctx context.Context, p SearchParams) (*entity.SearchPage, error)
	SearchChannels(ctx context.Context, p SearchParams) ([]entity.ChannelRef, error)
	ListVideos(ctx context.Context, ids []string, parts ...string) ([]entity.VideoDetails, error)
}

// UpstreamError carries the HTTP status and message reported by the upstream.
// Status is 0 when the call failed before a response arrived.
type UpstreamError struct {
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("upstream %s: %d %s", e.Op, e.Status, e.Message)
	}
	return fmt.Sprintf("upstream %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
