package application

import (
	"context"
	"sync"

	"github.com/oksasatya/skatetube/internal/domain/entity"
	repo "github.com/oksasatya/skatetube/internal/domain/repository"
)

// fakeSource is a scripted VideoSource. Channel video searches are keyed by
// channel id; everything else comes from the primary fields.
type fakeSource struct {
	mu sync.Mutex

	configured  bool
	primary     *entity.SearchPage
	primaryErr  error
	channels    []entity.ChannelRef
	channelErr  error
	byChannel   map[string][]entity.VideoRef
	channelFail map[string]error
	details     map[string]entity.VideoDetails
	detailsErr  error
	reverse     bool

	searches []repo.SearchParams
	listed   [][]string
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		configured:  true,
		primary:     &entity.SearchPage{},
		byChannel:   map[string][]entity.VideoRef{},
		channelFail: map[string]error{},
		details:     map[string]entity.VideoDetails{},
	}
}

func (f *fakeSource) Configured() bool { return f.configured }

func (f *fakeSource) SearchVideos(_ context.Context, p repo.SearchParams) (*entity.SearchPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searches = append(f.searches, p)
	if p.ChannelID != "" {
		if err := f.channelFail[p.ChannelID]; err != nil {
			return nil, err
		}
		return &entity.SearchPage{Items: f.byChannel[p.ChannelID]}, nil
	}
	if f.primaryErr != nil {
		return nil, f.primaryErr
	}
	return f.primary, nil
}

func (f *fakeSource) SearchChannels(_ context.Context, p repo.SearchParams) ([]entity.ChannelRef, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searches = append(f.searches, p)
	return f.channels, f.channelErr
}

func (f *fakeSource) ListVideos(_ context.Context, ids []string, _ ...string) ([]entity.VideoDetails, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listed = append(f.listed, append([]string(nil), ids...))
	if f.detailsErr != nil {
		return nil, f.detailsErr
	}
	out := make([]entity.VideoDetails, 0, len(ids))
	for _, id := range ids {
		if d, ok := f.details[id]; ok {
			out = append(out, d)
		}
	}
	if f.reverse {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out, nil
}

func refs(ids ...string) []entity.VideoRef {
	out := make([]entity.VideoRef, 0, len(ids))
	for _, id := range ids {
		out = append(out, entity.VideoRef{ID: id, Title: "t-" + id, ChannelTitle: "Skate Crew"})
	}
	return out
}

func (f *fakeSource) withDetails(ids ...string) *fakeSource {
	for _, id := range ids {
		f.details[id] = entity.VideoDetails{ID: id, Title: "t-" + id, Duration: "PT1M", ViewCount: 10, LikeCount: 2}
	}
	return f
}
