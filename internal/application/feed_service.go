package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/skatetube/internal/domain/entity"
	repo "github.com/oksasatya/skatetube/internal/domain/repository"
	"github.com/oksasatya/skatetube/internal/fixtures"
	"github.com/oksasatya/skatetube/internal/infrastructure/youtube"
	"github.com/oksasatya/skatetube/pkg/helpers"
)

const (
	DefaultFeedCategory = "skateboarding"
	FallbackNotice      = "YouTube API unavailable - showing fallback data"
)

var categoryQueries = map[string]string{
	"all":            `skateboarding OR bmx OR "mountain biking" OR longboarding OR scooter`,
	"skateboarding":  "skateboarding tricks OR street skating OR skate park",
	"biking":         "mountain biking OR MTB OR trail riding",
	"bmx":            "BMX tricks OR BMX freestyle OR BMX park",
	"longboarding":   "longboarding OR longboard dancing OR downhill longboard",
	"scooter":        "scooter tricks OR pro scooter OR scooter park",
	"other":          "extreme sports OR action sports",
	"trending":       "trending skateboarding OR viral skateboarding OR popular skateboarding",
	"music":          "skateboarding music OR skateboarding songs OR skateboarding soundtrack",
	"gaming":         "skateboarding game OR skateboarding gaming OR skateboarding video game",
	"sports":         "skateboarding competition OR skateboarding tournament OR skateboarding sports",
	"shorts":         "skateboarding shorts OR short skateboarding OR skateboarding clips",
	"kickflips":      "kickflip OR kickflip tricks OR kickflip tutorial OR kickflip compilation",
	"compilations":   "skateboarding compilation OR skateboarding montage OR best skateboarding tricks",
	"street-skating": "street skating OR street skateboarding OR urban skating OR city skating",
	"skate-park":     "skate park OR skatepark OR skate park tricks OR bowl riding OR ramp skating",
}

// CategoryQuery returns the upstream query for label; unknown labels get the
// skateboarding query.
func CategoryQuery(label string) string {
	if q, ok := categoryQueries[label]; ok {
		return q
	}
	return categoryQueries[DefaultFeedCategory]
}

// FeedResult carries either live videos or a canned list; Error is the
// advisory notice set only for the latter.
type FeedResult struct {
	Category string
	Videos   []entity.Video
	Fallback bool
	Error    string
}

type FeedService struct {
	Source   repo.VideoSource
	Cache    repo.FeedCache
	CacheTTL time.Duration
	Logger   *logrus.Logger
}

func NewFeedService(source repo.VideoSource, cache repo.FeedCache, ttl time.Duration, logger *logrus.Logger) *FeedService {
	return &FeedService{Source: source, Cache: cache, CacheTTL: ttl, Logger: logger}
}

// Feed returns up to max videos for category. A missing API key is an
// error; every other upstream failure degrades to the canned list.
func (s *FeedService) Feed(ctx context.Context, category string, max int) (*FeedResult, error) {
	if category == "" {
		category = DefaultFeedCategory
	}
	if !s.Source.Configured() {
		return nil, ErrUpstreamNotConfigured
	}

	// unknown labels share the default query; caching them per label would let
	// callers grow the cache at will
	_, known := categoryQueries[category]
	key := fmt.Sprintf("%s:%d", category, max)
	if s.Cache != nil && known {
		videos, ok, err := s.Cache.Get(ctx, key)
		if err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("key", key).Warn("feed cache read failed")
		}
		if ok {
			helpers.CountFeedCacheHit()
			return &FeedResult{Category: category, Videos: videos}, nil
		}
	}

	videos, err := s.live(ctx, category, max)
	if err != nil {
		if errors.Is(err, youtube.ErrMissingAPIKey) {
			return nil, ErrUpstreamNotConfigured
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("category", category).Warn("feed upstream failed, serving fallback")
		}
		helpers.CountFeedFallback(category)
		return &FeedResult{
			Category: category,
			Videos:   fixtures.Fallback(category),
			Fallback: true,
			Error:    FallbackNotice,
		}, nil
	}

	if s.Cache != nil && known && len(videos) > 0 {
		if err := s.Cache.Set(ctx, key, videos, s.CacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("key", key).Warn("feed cache write failed")
		}
	}
	return &FeedResult{Category: category, Videos: videos}, nil
}

func (s *FeedService) live(ctx context.Context, category string, max int) ([]entity.Video, error) {
	page, err := s.Source.SearchVideos(ctx, repo.SearchParams{
		Query:          CategoryQuery(category),
		Type:           "video",
		MaxResults:     int64(max),
		Order:          "relevance",
		SafeSearch:     "strict",
		EmbeddableOnly: true,
	})
	if err != nil {
		return nil, err
	}
	if len(page.Items) == 0 {
		return []entity.Video{}, nil
	}

	ids := make([]string, 0, len(page.Items))
	for _, it := range page.Items {
		ids = append(ids, it.ID)
	}
	details, err := s.Source.ListVideos(ctx, ids, "contentDetails", "statistics")
	if err != nil {
		return nil, err
	}
	byID := make(map[string]entity.VideoDetails, len(details))
	for _, d := range details {
		byID[d.ID] = d
	}

	videos := make([]entity.Video, 0, len(page.Items))
	for _, ref := range page.Items {
		videos = append(videos, feedVideo(ref, byID[ref.ID], category))
	}
	return videos, nil
}

// feedVideo joins a search result with its details. A zero d leaves the
// duration and counters at 0.
func feedVideo(ref entity.VideoRef, d entity.VideoDetails, category string) entity.Video {
	ownerID := channelOwnerID(ref.ChannelTitle)
	now := time.Now()
	return entity.Video{
		ID:          ref.ID,
		Title:       ref.Title,
		Description: ref.Description,
		Thumbnail:   firstNonEmpty(ref.Thumbnails.High, ref.Thumbnails.Medium),
		VideoURL:    youtube.WatchURL(ref.ID),
		Duration:    youtube.ParseDuration(d.Duration),
		ViewCount:   d.ViewCount,
		LikeCount:   d.LikeCount,
		Category:    category,
		Tags:        []string{category, "youtube"},
		UserID:      ownerID,
		User: entity.User{
			ID:              ownerID,
			Username:        ref.ChannelTitle,
			Email:           ownerID + "@youtube.com",
			SubscriberCount: mockSubscribers(ownerID),
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		CreatedAt: ref.PublishedAt,
		UpdatedAt: ref.PublishedAt,
	}
}
