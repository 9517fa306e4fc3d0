package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	es "github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/oksasatya/skatetube/internal/domain/entity"
	"github.com/oksasatya/skatetube/internal/domain/repository"
)

const requestTimeout = 3 * time.Second

// VideoIndex is a full-text index of catalog videos.
type VideoIndex struct {
	client *es.Client
	index  string
}

func NewVideoIndex(client *es.Client, index string) *VideoIndex {
	return &VideoIndex{client: client, index: index}
}

type videoDoc struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
}

// IndexVideo upserts v under its id.
func (x *VideoIndex) IndexVideo(ctx context.Context, v entity.Video) error {
	b, err := json.Marshal(videoDoc{
		ID:          v.ID,
		Title:       v.Title,
		Description: v.Description,
		Category:    v.Category,
		Tags:        v.Tags,
		CreatedAt:   v.CreatedAt,
	})
	if err != nil {
		return err
	}
	req := esapi.IndexRequest{Index: x.index, DocumentID: v.ID, Body: bytes.NewReader(b), Refresh: "true"}

	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := req.Do(c, x.client)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("index video %s: %s", v.ID, res.Status())
	}
	return nil
}

// SearchIDs matches whole words and word prefixes over title, description
// and tags, so "skate" finds "skateboarding". Ids come back in score order.
func (x *VideoIndex) SearchIDs(ctx context.Context, query string, size int) ([]string, error) {
	if size <= 0 {
		size = 10
	}
	fields := []string{"title^2", "description", "tags"}
	body := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"should": []any{
					map[string]any{"multi_match": map[string]any{
						"query":  query,
						"fields": fields,
					}},
					map[string]any{"multi_match": map[string]any{
						"query":  query,
						"type":   "phrase_prefix",
						"fields": fields,
					}},
				},
				"minimum_should_match": 1,
			},
		},
		"size":    size,
		"_source": false,
	}
	b, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := x.client.Search(
		x.client.Search.WithContext(c),
		x.client.Search.WithIndex(x.index),
		x.client.Search.WithBody(bytes.NewReader(b)),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, fmt.Errorf("search videos: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.ID)
	}
	return out, nil
}

var _ repository.VideoIndex = (*VideoIndex)(nil)
