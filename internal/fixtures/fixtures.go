// Package fixtures serves the canned catalog, fallback feed, detail template
// and comment thread embedded in fixtures.json.
package fixtures

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/oksasatya/skatetube/internal/domain/entity"
)

// DefaultCategory is the fallback list served for unknown categories.
const DefaultCategory = "all"

//go:embed fixtures.json
var raw []byte

type user struct {
	ID              string `json:"id"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Avatar          string `json:"avatar"`
	Bio             string `json:"bio"`
	SubscriberCount int64  `json:"subscriberCount"`
}

type video struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Thumbnail    string   `json:"thumbnail"`
	VideoURL     string   `json:"videoUrl"`
	Duration     int      `json:"duration"`
	ViewCount    int64    `json:"viewCount"`
	LikeCount    int64    `json:"likeCount"`
	DislikeCount int64    `json:"dislikeCount"`
	Category     string   `json:"category"`
	Tags         []string `json:"tags"`
	User         user     `json:"user"`
}

type comment struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	User      user   `json:"user"`
	LikeCount int64  `json:"likeCount"`
}

type document struct {
	Fallback struct {
		Videos     []video             `json:"videos"`
		Categories map[string][]string `json:"categories"`
	} `json:"fallback"`
	Catalog  []video   `json:"catalog"`
	Detail   video     `json:"detail"`
	Comments []comment `json:"comments"`
}

type store struct {
	byID       map[string]video
	categories map[string][]string
	catalog    []video
	detail     video
	comments   []comment
}

var (
	once    sync.Once
	loaded  *store
	errLoad error
)

func parse(b []byte) (*store, error) {
	var doc document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	s := &store{
		byID:       make(map[string]video, len(doc.Fallback.Videos)),
		categories: doc.Fallback.Categories,
		catalog:    doc.Catalog,
		detail:     doc.Detail,
		comments:   doc.Comments,
	}
	for _, v := range doc.Fallback.Videos {
		s.byID[v.ID] = v
	}
	for cat, ids := range s.categories {
		for _, id := range ids {
			if _, ok := s.byID[id]; !ok {
				return nil, fmt.Errorf("fixtures: category %q references unknown video %q", cat, id)
			}
		}
	}
	if _, ok := s.categories[DefaultCategory]; !ok {
		return nil, fmt.Errorf("fixtures: missing %q category", DefaultCategory)
	}
	return s, nil
}

// get returns the parsed fixtures. The file is part of the binary, so a
// decode failure is a build defect and panics.
func get() *store {
	once.Do(func() { loaded, errLoad = parse(raw) })
	if errLoad != nil {
		panic(errLoad)
	}
	return loaded
}

// Load parses the embedded fixtures eagerly so startup fails fast.
func Load() error {
	once.Do(func() { loaded, errLoad = parse(raw) })
	return errLoad
}

// Fallback returns the canned list for category; unknown categories get the
// DefaultCategory list. Timestamps are set to now.
func Fallback(category string) []entity.Video {
	s := get()
	ids, ok := s.categories[category]
	if !ok {
		ids = s.categories[DefaultCategory]
	}
	now := time.Now()
	out := make([]entity.Video, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.byID[id].toEntity(now))
	}
	return out
}

// Catalog returns the local demo catalog.
func Catalog() []entity.Video {
	s := get()
	now := time.Now()
	out := make([]entity.Video, 0, len(s.catalog))
	for _, v := range s.catalog {
		out = append(out, v.toEntity(now))
	}
	return out
}

// CatalogVideo looks a catalog entry up by id.
func CatalogVideo(id string) (entity.Video, bool) {
	for _, v := range get().catalog {
		if v.ID == id {
			return v.toEntity(time.Now()), true
		}
	}
	return entity.Video{}, false
}

// DetailTemplate returns the long-form video used when no real detail exists.
func DetailTemplate() entity.Video {
	return get().detail.toEntity(time.Now())
}

// Comments returns the mock thread attached to videoID.
func Comments(videoID string) []entity.Comment {
	s := get()
	now := time.Now()
	out := make([]entity.Comment, 0, len(s.comments))
	for _, c := range s.comments {
		out = append(out, entity.Comment{
			ID:        c.ID,
			Content:   c.Content,
			VideoID:   videoID,
			UserID:    c.User.ID,
			User:      c.User.toEntity(now),
			LikeCount: c.LikeCount,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return out
}

func (u user) toEntity(now time.Time) entity.User {
	return entity.User{
		ID:              u.ID,
		Username:        u.Username,
		Email:           u.Email,
		Avatar:          u.Avatar,
		Bio:             u.Bio,
		SubscriberCount: u.SubscriberCount,
		Role:            entity.RoleUser,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (v video) toEntity(now time.Time) entity.Video {
	return entity.Video{
		ID:           v.ID,
		Title:        v.Title,
		Description:  v.Description,
		Thumbnail:    v.Thumbnail,
		VideoURL:     v.VideoURL,
		Duration:     v.Duration,
		ViewCount:    v.ViewCount,
		LikeCount:    v.LikeCount,
		DislikeCount: v.DislikeCount,
		Category:     v.Category,
		Tags:         append([]string(nil), v.Tags...),
		UserID:       v.User.ID,
		User:         v.User.toEntity(now),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
