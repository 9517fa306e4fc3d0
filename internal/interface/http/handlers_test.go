package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/skatetube/internal/application"
	"github.com/oksasatya/skatetube/internal/domain/entity"
	repo "github.com/oksasatya/skatetube/internal/domain/repository"
	"github.com/oksasatya/skatetube/internal/fixtures"
	"github.com/oksasatya/skatetube/internal/infrastructure/memory"
	"github.com/oksasatya/skatetube/internal/interface/middleware"
	"github.com/oksasatya/skatetube/pkg/helpers"
	"github.com/oksasatya/skatetube/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	validation.Init()
}

type stubSource struct {
	configured bool
	err        error
	refs       []entity.VideoRef
	details    []entity.VideoDetails
}

func (s *stubSource) Configured() bool { return s.configured }

func (s *stubSource) SearchVideos(_ context.Context, p repo.SearchParams) (*entity.SearchPage, error) {
	if s.err != nil {
		return nil, s.err
	}
	if p.ChannelID != "" {
		return &entity.SearchPage{}, nil
	}
	return &entity.SearchPage{Items: s.refs, TotalResults: int64(len(s.refs))}, nil
}

func (s *stubSource) SearchChannels(context.Context, repo.SearchParams) ([]entity.ChannelRef, error) {
	return nil, s.err
}

func (s *stubSource) ListVideos(_ context.Context, ids []string, _ ...string) ([]entity.VideoDetails, error) {
	if s.err != nil {
		return nil, s.err
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []entity.VideoDetails
	for _, d := range s.details {
		if want[d.ID] {
			out = append(out, d)
		}
	}
	return out, nil
}

type testAPI struct {
	engine   *gin.Engine
	auth     *application.AuthService
	sessions *memory.SessionStore
}

func newTestAPI(t *testing.T, src *stubSource) *testAPI {
	t.Helper()
	logger := helpers.NewNopLogger()
	hash, err := helpers.HashPasswordCost("admin123", bcrypt.MinCost)
	require.NoError(t, err)

	sessions := memory.NewSessionStore()
	auth := application.NewAuthService(memory.NewUserRepository(memory.DemoUsers(hash)...), sessions, logger, time.Hour)
	auth.HashCost = bcrypt.MinCost
	feed := application.NewFeedService(src, memory.NewFeedCache(), time.Minute, logger)
	videos := application.NewVideoService(src, feed, nil, logger)

	ah := NewAuthHandler(auth, logger, "", false)
	vh := NewVideoHandler(videos, logger)
	sh := NewSearchHandler(application.NewSearchService(src, logger), logger)
	fh := NewFeedHandler(feed, logger)
	ph := NewPlaceholderHandler(logger)

	r := gin.New()
	api := r.Group("/api", middleware.Session(auth))
	api.POST("/auth/register", ah.Register)
	api.POST("/auth/login", ah.Login)
	api.POST("/auth/logout", ah.Logout)
	api.GET("/auth/me", ah.Me)
	api.GET("/videos", vh.List)
	api.POST("/videos", vh.Create)
	api.GET("/videos/:id", vh.Get)
	api.PUT("/videos/:id", vh.React)
	api.GET("/videos/:id/comments", vh.Comments)
	api.GET("/videos/:id/related", vh.Related)
	api.GET("/search", sh.Search)
	api.GET("/feed", fh.Feed)
	api.GET("/placeholder/:width/:height", ph.Image)

	return &testAPI{engine: r, auth: auth, sessions: sessions}
}

func (a *testAPI) do(method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

type envelope[T any] struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    T                 `json:"data"`
	Error   map[string]string `json:"error"`
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var env envelope[T]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == helpers.SessionCookie {
			return c
		}
	}
	t.Fatalf("no %s cookie set", helpers.SessionCookie)
	return nil
}

type userData struct {
	User application.UserResponse `json:"user"`
}

func TestRegisterAndMe(t *testing.T) {
	api := newTestAPI(t, &stubSource{})

	w := api.do(http.MethodPost, "/api/auth/register", map[string]string{
		"username": "newbie", "email": "newbie@example.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotContains(t, strings.ToLower(w.Body.String()), "password")
	cookie := sessionCookie(t, w)
	assert.True(t, strings.HasPrefix(cookie.Value, "session_3_"))
	assert.True(t, cookie.HttpOnly)

	env := decode[userData](t, w)
	assert.Equal(t, "newbie", env.Data.User.Username)
	assert.Equal(t, entity.RoleUser, env.Data.User.Role)

	w = api.do(http.MethodGet, "/api/auth/me", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, strings.ToLower(w.Body.String()), "password")
	assert.Equal(t, "3", decode[userData](t, w).Data.User.ID)
}

func TestRegisterRejections(t *testing.T) {
	api := newTestAPI(t, &stubSource{})

	w := api.do(http.MethodPost, "/api/auth/register", map[string]string{
		"username": "someone", "email": "ADMIN@skatetube.com", "password": "secret1",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = api.do(http.MethodPost, "/api/auth/register", map[string]string{
		"username": "skater_pro", "email": "other@example.com", "password": "secret1",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = api.do(http.MethodPost, "/api/auth/register", map[string]string{
		"username": "shorty", "email": "shorty@example.com", "password": "12345",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[any](t, w).Error, "password")

	w = api.do(http.MethodPost, "/api/auth/register", map[string]string{"username": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginLogout(t *testing.T) {
	api := newTestAPI(t, &stubSource{})

	w := api.do(http.MethodPost, "/api/auth/login", map[string]string{"email": "admin@skatetube.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())

	w = api.do(http.MethodPost, "/api/auth/login", map[string]string{"email": "admin", "password": "admin123"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.do(http.MethodPost, "/api/auth/login", map[string]string{"email": "pro@skatetube.com", "password": "anything"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.do(http.MethodPost, "/api/auth/login", map[string]string{"email": "admin@skatetube.com", "password": "admin123"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, strings.ToLower(w.Body.String()), "password")
	assert.Equal(t, entity.RoleAdmin, decode[userData](t, w).Data.User.Role)
	cookie := sessionCookie(t, w)

	w = api.do(http.MethodPost, "/api/auth/logout", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, -1, sessionCookie(t, w).MaxAge)

	w = api.do(http.MethodGet, "/api/auth/me", nil, cookie)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeStatuses(t *testing.T) {
	api := newTestAPI(t, &stubSource{})

	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodGet, "/api/auth/me", nil).Code)

	require.NoError(t, api.sessions.Create(context.Background(), "session_99_1", "99", time.Hour))
	w := api.do(http.MethodGet, "/api/auth/me", nil, &http.Cookie{Name: helpers.SessionCookie, Value: "session_99_1"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

type listData struct {
	Videos  []application.VideoResponse `json:"videos"`
	Total   int                         `json:"total"`
	HasMore bool                        `json:"hasMore"`
}

func TestVideoList(t *testing.T) {
	api := newTestAPI(t, &stubSource{})

	env := decode[listData](t, api.do(http.MethodGet, "/api/videos", nil))
	assert.Equal(t, 2, env.Data.Total)
	assert.False(t, env.Data.HasMore)

	env = decode[listData](t, api.do(http.MethodGet, "/api/videos?category=biking", nil))
	require.Len(t, env.Data.Videos, 1)
	assert.Equal(t, "2", env.Data.Videos[0].ID)

	env = decode[listData](t, api.do(http.MethodGet, "/api/videos?search=VENICE", nil))
	require.Len(t, env.Data.Videos, 1)
	assert.Equal(t, "1", env.Data.Videos[0].ID)

	env = decode[listData](t, api.do(http.MethodGet, "/api/videos?limit=1&offset=0", nil))
	assert.Len(t, env.Data.Videos, 1)
	assert.True(t, env.Data.HasMore)

	env = decode[listData](t, api.do(http.MethodGet, "/api/videos?limit=oops", nil))
	assert.Len(t, env.Data.Videos, 2)
}

type videoData struct {
	Video application.VideoResponse `json:"video"`
}

func TestVideoCreate(t *testing.T) {
	api := newTestAPI(t, &stubSource{})

	w := api.do(http.MethodPost, "/api/videos", map[string]any{"description": "no title"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodPost, "/api/videos", map[string]any{"title": "My line", "category": "bmx", "tags": []string{"street"}})
	require.Equal(t, http.StatusCreated, w.Code)
	v := decode[videoData](t, w).Data.Video
	assert.Equal(t, "bmx", v.Category)
	assert.Equal(t, application.DefaultThumbnail, v.Thumbnail)
	assert.Equal(t, "current-user-id", v.UserID)

	w = api.do(http.MethodPost, "/api/auth/login", map[string]string{"email": "admin@skatetube.com", "password": "admin123"})
	cookie := sessionCookie(t, w)
	w = api.do(http.MethodPost, "/api/videos", map[string]any{"title": "Mine", "category": "bmx"}, cookie)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "1", decode[videoData](t, w).Data.Video.UserID)
	assert.NotContains(t, strings.ToLower(w.Body.String()), "password")
}

func TestVideoGet(t *testing.T) {
	api := newTestAPI(t, &stubSource{})
	stored, ok := fixtures.CatalogVideo("1")
	require.True(t, ok)

	w := api.do(http.MethodGet, "/api/videos/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, stored.ViewCount+1, decode[videoData](t, w).Data.Video.ViewCount)

	w = api.do(http.MethodGet, "/api/videos/abc", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc", decode[videoData](t, w).Data.Video.ID)
}

func TestVideoGetUpstreamMissing(t *testing.T) {
	api := newTestAPI(t, &stubSource{configured: true})
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/api/videos/nope", nil).Code)
}

func TestVideoReact(t *testing.T) {
	api := newTestAPI(t, &stubSource{})
	stored, _ := fixtures.CatalogVideo("2")

	w := api.do(http.MethodPut, "/api/videos/2", map[string]any{"action": "like", "value": true})
	require.Equal(t, http.StatusOK, w.Code)
	env := decode[reactionPayload](t, w)
	assert.Equal(t, stored.LikeCount+1, env.Data.Count)

	w = api.do(http.MethodPut, "/api/videos/2", map[string]any{"action": "dislike", "value": false})
	assert.Equal(t, stored.DislikeCount-1, decode[reactionPayload](t, w).Data.Count)

	w = api.do(http.MethodPut, "/api/videos/2", map[string]any{"action": "share"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVideoCommentsAndRelated(t *testing.T) {
	api := newTestAPI(t, &stubSource{})

	w := api.do(http.MethodGet, "/api/videos/1/comments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	comments := decode[map[string][]application.CommentResponse](t, w).Data["comments"]
	assert.Len(t, comments, 2)

	w = api.do(http.MethodGet, "/api/videos/fallback-skate-1/related", nil)
	require.Equal(t, http.StatusOK, w.Code)
	related := decode[map[string][]application.VideoResponse](t, w).Data["videos"]
	assert.LessOrEqual(t, len(related), 6)
	for _, v := range related {
		assert.NotEqual(t, "fallback-skate-1", v.ID)
	}
}

type searchData struct {
	Videos         []application.VideoResponse `json:"videos"`
	Query          string                      `json:"query"`
	TotalResults   int64                       `json:"totalResults"`
	ChannelMatches int                         `json:"channelMatches"`
}

func TestSearchWithoutKey(t *testing.T) {
	api := newTestAPI(t, &stubSource{})

	w := api.do(http.MethodGet, "/api/search", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "YouTube API key not configured", decode[any](t, w).Message)
}

func TestSearchRequiresQuery(t *testing.T) {
	api := newTestAPI(t, &stubSource{configured: true})

	w := api.do(http.MethodGet, "/api/search?q=%20", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Search query is required", decode[any](t, w).Message)
}

func TestSearchUpstreamErrors(t *testing.T) {
	api := newTestAPI(t, &stubSource{configured: true, err: &repo.UpstreamError{Op: "search", Status: http.StatusForbidden, Message: "quotaExceeded"}})
	w := api.do(http.MethodGet, "/api/search?q=kickflip", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "quotaExceeded", decode[any](t, w).Message)

	api = newTestAPI(t, &stubSource{configured: true, err: &repo.UpstreamError{Op: "search", Err: errors.New("dial tcp: refused")}})
	w = api.do(http.MethodGet, "/api/search?q=kickflip", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestSearchSuccess(t *testing.T) {
	src := &stubSource{
		configured: true,
		refs:       []entity.VideoRef{{ID: "a"}, {ID: "b"}},
		details: []entity.VideoDetails{
			{ID: "a", Title: "A", ChannelTitle: "Skate Crew", Duration: "PT1M"},
			{ID: "b", Title: "B", ChannelTitle: "Skate Crew", Duration: "PT2S"},
		},
	}
	api := newTestAPI(t, src)

	w := api.do(http.MethodGet, "/api/search?q=kickflip&maxResults=999", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	env := decode[searchData](t, w)
	assert.Equal(t, "kickflip", env.Data.Query)
	require.Len(t, env.Data.Videos, 2)
	assert.Equal(t, 60, env.Data.Videos[0].Duration)
	assert.Equal(t, int64(2), env.Data.TotalResults)
	assert.Equal(t, 0, env.Data.ChannelMatches)
}

type feedData struct {
	Videos   []application.VideoResponse `json:"videos"`
	Category string                      `json:"category"`
	Error    string                      `json:"error"`
}

func TestFeedStatuses(t *testing.T) {
	w := newTestAPI(t, &stubSource{}).do(http.MethodGet, "/api/feed", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = newTestAPI(t, &stubSource{configured: true, err: errors.New("boom")}).do(http.MethodGet, "/api/feed?category=bmx", nil)
	require.Equal(t, http.StatusOK, w.Code)
	env := decode[feedData](t, w)
	assert.Equal(t, application.FallbackNotice, env.Data.Error)
	assert.NotEmpty(t, env.Data.Videos)

	src := &stubSource{
		configured: true,
		refs:       []entity.VideoRef{{ID: "x", Title: "X", ChannelTitle: "Big Air"}},
		details:    []entity.VideoDetails{{ID: "x", Duration: "PT10S", ViewCount: 5}},
	}
	w = newTestAPI(t, src).do(http.MethodGet, "/api/feed?maxResults=abc", nil)
	require.Equal(t, http.StatusOK, w.Code)
	env = decode[feedData](t, w)
	assert.Empty(t, env.Data.Error)
	assert.Equal(t, application.DefaultFeedCategory, env.Data.Category)
	require.Len(t, env.Data.Videos, 1)
	assert.Equal(t, "bigair", env.Data.Videos[0].UserID)
}

func TestPlaceholder(t *testing.T) {
	api := newTestAPI(t, &stubSource{})

	w := api.do(http.MethodGet, "/api/placeholder/320/180", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=31536000, immutable", w.Header().Get("Cache-Control"))
	assert.Contains(t, w.Body.String(), `width="320"`)
}

func TestMaxResultsClamp(t *testing.T) {
	cases := map[string]int{"": 12, "0": 1, "7": 7, "51": 50, "x": 12, "-3": 1}
	for raw, want := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/?maxResults="+raw, nil)
		assert.Equal(t, want, maxResults(c), raw)
	}
}
