package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/skatetube/internal/container"
	handlers "github.com/oksasatya/skatetube/internal/interface/http"
	"github.com/oksasatya/skatetube/internal/interface/middleware"
)

// FeedModule serves the category feed on /feed and on the legacy /youtube path.
type FeedModule struct {
	Handler *handlers.FeedHandler
}

func NewFeedModule(h *handlers.FeedHandler) *FeedModule {
	return &FeedModule{Handler: h}
}

func (m *FeedModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), nil)
	rg.GET("/feed", rl, m.Handler.Feed)
	rg.GET("/youtube", rl, m.Handler.Feed)
}
