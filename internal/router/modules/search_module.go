package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/skatetube/internal/container"
	handlers "github.com/oksasatya/skatetube/internal/interface/http"
	"github.com/oksasatya/skatetube/internal/interface/middleware"
)

// SearchModule exposes GET /search. Each search costs several upstream calls,
// so it gets the tightest per-IP limit.
type SearchModule struct {
	Handler *handlers.SearchHandler
}

func NewSearchModule(h *handlers.SearchHandler) *SearchModule {
	return &SearchModule{Handler: h}
}

func (m *SearchModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), nil)
	rg.GET("/search", rl, m.Handler.Search)
}
