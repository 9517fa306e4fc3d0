package application

import (
	"hash/fnv"
	"strings"
	"unicode"

	"github.com/oksasatya/skatetube/internal/domain/entity"
	"github.com/oksasatya/skatetube/internal/infrastructure/youtube"
)

// firstNonEmpty returns the first non-empty url.
func firstNonEmpty(urls ...string) string {
	for _, u := range urls {
		if u != "" {
			return u
		}
	}
	return ""
}

// channelOwnerID turns a channel title into a user id: whitespace removed, lower-cased.
func channelOwnerID(title string) string {
	return strings.ToLower(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, title))
}

// mockSubscribers derives a stable count in [0, 100000) from id.
func mockSubscribers(id string) int64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return int64(h.Sum32() % 100000)
}

// videoFromDetails maps a videos.list item. The owner is the channel, keyed
// by channel id.
func videoFromDetails(d entity.VideoDetails, category, thumbnail string) entity.Video {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return entity.Video{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Thumbnail:   thumbnail,
		VideoURL:    youtube.WatchURL(d.ID),
		Duration:    youtube.ParseDuration(d.Duration),
		ViewCount:   d.ViewCount,
		LikeCount:   d.LikeCount,
		Category:    category,
		Tags:        tags,
		UserID:      d.ChannelID,
		User: entity.User{
			ID:        d.ChannelID,
			Username:  d.ChannelTitle,
			CreatedAt: d.PublishedAt,
			UpdatedAt: d.PublishedAt,
		},
		CreatedAt: d.PublishedAt,
		UpdatedAt: d.PublishedAt,
	}
}
