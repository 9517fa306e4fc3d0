package youtube

import (
	"context"
	"errors"
	"time"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"

	"github.com/oksasatya/skatetube/internal/domain/entity"
	"github.com/oksasatya/skatetube/internal/domain/repository"
	"github.com/oksasatya/skatetube/pkg/helpers"
)

// ErrMissingAPIKey is returned by every call of a client built without a key.
var ErrMissingAPIKey = errors.New("youtube api key not configured")

// maxIDsPerCall is the videos.list limit on the id parameter.
const maxIDsPerCall = 50

// WatchURL returns the public watch page of a video
func WatchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}

// Client wraps the YouTube Data API v3 service and narrows its responses to
// domain types.
type Client struct {
	svc     *ytapi.Service
	timeout time.Duration
}

// NewClient builds a client authenticated with apiKey. An empty key yields a
// client whose Configured reports false; extra options (endpoint, http
// client) are appended after the key.
func NewClient(ctx context.Context, apiKey string, timeout time.Duration, opts ...option.ClientOption) (*Client, error) {
	c := &Client{timeout: timeout}
	if apiKey == "" {
		return c, nil
	}
	all := append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	svc, err := ytapi.NewService(ctx, all...)
	if err != nil {
		return nil, err
	}
	c.svc = svc
	return c, nil
}

func (c *Client) Configured() bool { return c != nil && c.svc != nil }

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}

func (c *Client) search(ctx context.Context, op string, p repository.SearchParams) (*ytapi.SearchListResponse, error) {
	if !c.Configured() {
		return nil, ErrMissingAPIKey
	}
	call := c.svc.Search.List([]string{"snippet"})
	if p.Query != "" {
		call = call.Q(p.Query)
	}
	if p.Type != "" {
		call = call.Type(p.Type)
	}
	if p.ChannelID != "" {
		call = call.ChannelId(p.ChannelID)
	}
	if p.MaxResults > 0 {
		call = call.MaxResults(p.MaxResults)
	}
	if p.Order != "" {
		call = call.Order(p.Order)
	}
	if p.SafeSearch != "" {
		call = call.SafeSearch(p.SafeSearch)
	}
	if p.RegionCode != "" {
		call = call.RegionCode(p.RegionCode)
	}
	if p.Language != "" {
		call = call.RelevanceLanguage(p.Language)
	}
	if p.EmbeddableOnly {
		call = call.VideoEmbeddable("true").VideoDefinition("any").VideoDuration("any")
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	helpers.CountUpstreamCall(op)
	resp, err := call.Context(ctx).Do()
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return resp, nil
}

// SearchVideos runs a video search and keeps only items carrying a video id.
func (c *Client) SearchVideos(ctx context.Context, p repository.SearchParams) (*entity.SearchPage, error) {
	if p.Type == "" {
		p.Type = "video"
	}
	resp, err := c.search(ctx, "search.videos", p)
	if err != nil {
		return nil, err
	}
	page := &entity.SearchPage{Items: make([]entity.VideoRef, 0, len(resp.Items))}
	if resp.PageInfo != nil {
		page.TotalResults = resp.PageInfo.TotalResults
	}
	for _, it := range resp.Items {
		if it == nil || it.Id == nil || it.Id.VideoId == "" {
			continue
		}
		ref := entity.VideoRef{ID: it.Id.VideoId}
		if s := it.Snippet; s != nil {
			ref.Title = s.Title
			ref.Description = s.Description
			ref.ChannelID = s.ChannelId
			ref.ChannelTitle = s.ChannelTitle
			ref.Thumbnails = thumbnails(s.Thumbnails)
			ref.PublishedAt = parseTime(s.PublishedAt)
		}
		page.Items = append(page.Items, ref)
	}
	return page, nil
}

// SearchChannels runs a channel search.
func (c *Client) SearchChannels(ctx context.Context, p repository.SearchParams) ([]entity.ChannelRef, error) {
	p.Type = "channel"
	resp, err := c.search(ctx, "search.channels", p)
	if err != nil {
		return nil, err
	}
	out := make([]entity.ChannelRef, 0, len(resp.Items))
	for _, it := range resp.Items {
		if it == nil || it.Id == nil || it.Id.ChannelId == "" {
			continue
		}
		ch := entity.ChannelRef{ID: it.Id.ChannelId}
		if it.Snippet != nil {
			ch.Title = it.Snippet.Title
			if ch.Title == "" {
				ch.Title = it.Snippet.ChannelTitle
			}
		}
		out = append(out, ch)
	}
	return out, nil
}

// ListVideos fetches details for ids, 50 at a time. parts defaults to
// snippet, contentDetails and statistics.
func (c *Client) ListVideos(ctx context.Context, ids []string, parts ...string) ([]entity.VideoDetails, error) {
	if !c.Configured() {
		return nil, ErrMissingAPIKey
	}
	if len(ids) == 0 {
		return nil, nil
	}
	if len(parts) == 0 {
		parts = []string{"snippet", "contentDetails", "statistics"}
	}

	out := make([]entity.VideoDetails, 0, len(ids))
	for i := 0; i < len(ids); i += maxIDsPerCall {
		j := min(i+maxIDsPerCall, len(ids))
		items, err := c.listBatch(ctx, ids[i:j], parts)
		if err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}

func (c *Client) listBatch(ctx context.Context, ids, parts []string) ([]entity.VideoDetails, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	helpers.CountUpstreamCall("videos.list")
	resp, err := c.svc.Videos.List(parts).Id(ids...).Context(ctx).Do()
	if err != nil {
		return nil, wrapErr("videos.list", err)
	}
	out := make([]entity.VideoDetails, 0, len(resp.Items))
	for _, it := range resp.Items {
		if it == nil || it.Id == "" {
			continue
		}
		d := entity.VideoDetails{ID: it.Id}
		if s := it.Snippet; s != nil {
			d.Title = s.Title
			d.Description = s.Description
			d.ChannelID = s.ChannelId
			d.ChannelTitle = s.ChannelTitle
			d.Thumbnails = thumbnails(s.Thumbnails)
			d.Tags = s.Tags
			d.PublishedAt = parseTime(s.PublishedAt)
		}
		if it.ContentDetails != nil {
			d.Duration = it.ContentDetails.Duration
		}
		if st := it.Statistics; st != nil {
			d.ViewCount = int64(st.ViewCount)
			d.LikeCount = int64(st.LikeCount)
		}
		out = append(out, d)
	}
	return out, nil
}

func thumbnails(t *ytapi.ThumbnailDetails) entity.Thumbnails {
	var out entity.Thumbnails
	if t == nil {
		return out
	}
	if t.Default != nil {
		out.Default = t.Default.Url
	}
	if t.Medium != nil {
		out.Medium = t.Medium.Url
	}
	if t.High != nil {
		out.High = t.High.Url
	}
	return out
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func wrapErr(op string, err error) error {
	helpers.CountUpstreamError(op)
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return &repository.UpstreamError{Op: op, Status: gerr.Code, Message: gerr.Message, Err: err}
	}
	return &repository.UpstreamError{Op: op, Err: err}
}

var _ repository.VideoSource = (*Client)(nil)
