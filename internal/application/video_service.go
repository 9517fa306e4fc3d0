package application

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/skatetube/internal/domain/entity"
	repo "github.com/oksasatya/skatetube/internal/domain/repository"
	"github.com/oksasatya/skatetube/internal/fixtures"
)

const (
	DefaultThumbnail  = "/api/placeholder/400/225"
	uploadedVideoURL  = "/videos/uploaded-video.mp4"
	relatedFeedSize   = 8
	relatedMaxResults = 6
)

type ListQuery struct {
	Category string
	Search   string
	Limit    int
	Offset   int
}

type ListResult struct {
	Videos  []entity.Video
	Total   int
	HasMore bool
}

type SubmitInput struct {
	Title       string
	Description string
	Category    string
	Tags        []string
	Thumbnail   string
}

// Reaction is the counter after a like, dislike or view.
type Reaction struct {
	Action string
	Count  int64
}

// VideoService serves the local demo catalog and the single-video page.
type VideoService struct {
	Source repo.VideoSource
	Feed   *FeedService
	Index  repo.VideoIndex // optional
	Logger *logrus.Logger

	now func() time.Time
}

func NewVideoService(source repo.VideoSource, feed *FeedService, index repo.VideoIndex, logger *logrus.Logger) *VideoService {
	return &VideoService{Source: source, Feed: feed, Index: index, Logger: logger, now: time.Now}
}

// List filters the catalog by category ("all" or empty means any) and by a
// case-insensitive match on title, description or tags, then pages.
func (s *VideoService) List(ctx context.Context, q ListQuery) ListResult {
	videos := fixtures.Catalog()
	if q.Category != "" && q.Category != "all" {
		videos = filter(videos, func(v entity.Video) bool { return v.Category == q.Category })
	}
	if q.Search != "" {
		videos = s.search(ctx, videos, q.Search)
	}

	total := len(videos)
	start := min(max(q.Offset, 0), total)
	end := start + min(max(q.Limit, 0), total-start)
	return ListResult{
		Videos:  videos[start:end],
		Total:   total,
		HasMore: end < total,
	}
}

// search asks the index when one is configured and falls back to substring
// matching when it is not or when it fails.
func (s *VideoService) search(ctx context.Context, videos []entity.Video, term string) []entity.Video {
	if s.Index != nil {
		ids, err := s.Index.SearchIDs(ctx, term, len(videos))
		if err == nil {
			byID := make(map[string]entity.Video, len(videos))
			for _, v := range videos {
				byID[v.ID] = v
			}
			out := make([]entity.Video, 0, len(ids))
			for _, id := range ids {
				if v, ok := byID[id]; ok {
					out = append(out, v)
				}
			}
			return out
		}
		if s.Logger != nil {
			s.Logger.WithError(err).Warn("video index search failed, filtering in memory")
		}
	}
	needle := strings.ToLower(term)
	return filter(videos, func(v entity.Video) bool {
		if strings.Contains(strings.ToLower(v.Title), needle) ||
			strings.Contains(strings.ToLower(v.Description), needle) {
			return true
		}
		for _, t := range v.Tags {
			if strings.Contains(strings.ToLower(t), needle) {
				return true
			}
		}
		return false
	})
}

// Get returns one video with its view count bumped by one. Catalog ids win;
// other ids go to the upstream, and the detail template stands in when the
// upstream is unavailable.
func (s *VideoService) Get(ctx context.Context, id string) (entity.Video, error) {
	if v, ok := fixtures.CatalogVideo(id); ok {
		v.ViewCount++
		return v, nil
	}

	if s.Source != nil && s.Source.Configured() {
		details, err := s.Source.ListVideos(ctx, []string{id})
		switch {
		case err == nil && len(details) == 0:
			return entity.Video{}, ErrVideoNotFound
		case err == nil:
			d := details[0]
			v := videoFromDetails(d, "other", firstNonEmpty(d.Thumbnails.High, d.Thumbnails.Medium, d.Thumbnails.Default))
			v.ViewCount++
			return v, nil
		default:
			if s.Logger != nil {
				s.Logger.WithError(err).WithField("video_id", id).Warn("upstream video lookup failed, serving template")
			}
		}
	}

	v := fixtures.DetailTemplate()
	v.ID = id
	v.ViewCount++
	return v, nil
}

// Submit builds the video a real upload would create. Nothing is stored.
func (s *VideoService) Submit(_ context.Context, in SubmitInput, owner *entity.User) entity.Video {
	now := s.now()
	thumb := in.Thumbnail
	if thumb == "" {
		thumb = DefaultThumbnail
	}
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	user := entity.User{
		ID:        "current-user-id",
		Username:  "current-user",
		Email:     "user@example.com",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if owner != nil {
		user = *owner
		user.Password = ""
	}
	return entity.Video{
		ID:          strconv.FormatInt(now.UnixMilli(), 10),
		Title:       in.Title,
		Description: in.Description,
		Thumbnail:   thumb,
		VideoURL:    uploadedVideoURL,
		Category:    in.Category,
		Tags:        tags,
		UserID:      user.ID,
		User:        user,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// React applies a like, dislike or view to the stored counters and returns
// the resulting count. value toggles likes and dislikes on or off.
func (s *VideoService) React(_ context.Context, id, action string, value bool) (Reaction, error) {
	base, ok := fixtures.CatalogVideo(id)
	if !ok {
		base = fixtures.DetailTemplate()
	}
	delta := int64(-1)
	if value {
		delta = 1
	}
	switch action {
	case "like":
		return Reaction{Action: action, Count: base.LikeCount + delta}, nil
	case "dislike":
		return Reaction{Action: action, Count: base.DislikeCount + delta}, nil
	case "view":
		return Reaction{Action: action, Count: base.ViewCount + 1}, nil
	default:
		return Reaction{}, ErrInvalidAction
	}
}

func (s *VideoService) Comments(_ context.Context, id string) []entity.Comment {
	return fixtures.Comments(id)
}

// Related returns skateboarding videos other than id. Without upstream
// credentials the canned skateboarding list is used.
func (s *VideoService) Related(ctx context.Context, id string) ([]entity.Video, error) {
	var videos []entity.Video
	res, err := s.Feed.Feed(ctx, DefaultFeedCategory, relatedFeedSize)
	switch {
	case errors.Is(err, ErrUpstreamNotConfigured):
		videos = fixtures.Fallback(DefaultFeedCategory)
	case err != nil:
		return nil, err
	default:
		videos = res.Videos
	}

	out := make([]entity.Video, 0, relatedMaxResults)
	for _, v := range videos {
		if v.ID == id {
			continue
		}
		out = append(out, v)
		if len(out) == relatedMaxResults {
			break
		}
	}
	return out, nil
}

func filter(in []entity.Video, keep func(entity.Video) bool) []entity.Video {
	out := make([]entity.Video, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
