package application

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/skatetube/internal/domain/entity"
	repo "github.com/oksasatya/skatetube/internal/domain/repository"
)

const (
	searchTopicSuffix     = ` skateboarding OR bmx OR longboarding OR scooter OR "action sports"`
	searchChannelLimit    = 5
	searchChannelsToVisit = 3
	searchPerChannel      = 3
)

// SearchResult is the aggregated answer to a free-text search.
// TotalResults adds the primary query's reported total to the number of
// channel-sourced references, so it may count a video twice.
type SearchResult struct {
	Videos         []entity.Video
	Query          string
	TotalResults   int64
	ChannelMatches int
}

type SearchService struct {
	Source repo.VideoSource
	Logger *logrus.Logger
}

func NewSearchService(source repo.VideoSource, logger *logrus.Logger) *SearchService {
	return &SearchService{Source: source, Logger: logger}
}

// Search merges a topic-biased video search with the videos of the best
// matching channels, de-duplicates by id and fetches full details.
func (s *SearchService) Search(ctx context.Context, query string, max int) (*SearchResult, error) {
	if !s.Source.Configured() {
		return nil, ErrUpstreamNotConfigured
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrQueryRequired
	}
	if max < 1 {
		max = 1
	}

	primary, err := s.Source.SearchVideos(ctx, repo.SearchParams{
		Query:      query + searchTopicSuffix,
		Type:       "video",
		MaxResults: int64((max + 1) / 2),
		RegionCode: "US",
		Language:   "en",
		SafeSearch: "moderate",
		Order:      "relevance",
	})
	if err != nil {
		return nil, err
	}

	channels, err := s.Source.SearchChannels(ctx, repo.SearchParams{
		Query:      query + " skateboarding",
		MaxResults: searchChannelLimit,
		RegionCode: "US",
		Language:   "en",
		Order:      "relevance",
	})
	if err != nil {
		return nil, err
	}

	var channelRefs []entity.VideoRef
	for i, ch := range channels {
		if i == searchChannelsToVisit {
			break
		}
		page, err := s.Source.SearchVideos(ctx, repo.SearchParams{
			ChannelID:  ch.ID,
			Type:       "video",
			MaxResults: searchPerChannel,
			Order:      "relevance",
			SafeSearch: "moderate",
		})
		if err != nil {
			if s.Logger != nil {
				s.Logger.WithError(err).WithField("channel", ch.Title).Warn("channel video lookup failed")
			}
			continue
		}
		channelRefs = append(channelRefs, page.Items...)
	}

	ids := dedupeIDs(max, primary.Items, channelRefs)
	if len(ids) == 0 {
		return &SearchResult{Videos: []entity.Video{}, Query: query}, nil
	}

	details, err := s.Source.ListVideos(ctx, ids, "snippet", "contentDetails", "statistics")
	if err != nil {
		return nil, err
	}
	videos := make([]entity.Video, 0, len(details))
	for _, d := range details {
		videos = append(videos, videoFromDetails(d, "other", firstNonEmpty(d.Thumbnails.Medium, d.Thumbnails.Default)))
	}

	return &SearchResult{
		Videos:         videos,
		Query:          query,
		TotalResults:   primary.TotalResults + int64(len(channelRefs)),
		ChannelMatches: len(channels),
	}, nil
}

// dedupeIDs keeps the first occurrence of each id across groups, in order,
// and stops at max.
func dedupeIDs(max int, groups ...[]entity.VideoRef) []string {
	seen := make(map[string]struct{})
	ids := make([]string, 0, max)
	for _, g := range groups {
		for _, ref := range g {
			if len(ids) == max {
				return ids
			}
			if _, ok := seen[ref.ID]; ok || ref.ID == "" {
				continue
			}
			seen[ref.ID] = struct{}{}
			ids = append(ids, ref.ID)
		}
	}
	return ids
}
