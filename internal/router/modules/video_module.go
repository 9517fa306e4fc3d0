package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/skatetube/internal/container"
	handlers "github.com/oksasatya/skatetube/internal/interface/http"
	"github.com/oksasatya/skatetube/internal/interface/middleware"
)

type VideoModule struct {
	Handler *handlers.VideoHandler
}

func NewVideoModule(h *handlers.VideoHandler) *VideoModule {
	return &VideoModule{Handler: h}
}

func (m *VideoModule) Register(rg *gin.RouterGroup) {
	writeLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil)

	g := rg.Group("/videos")
	g.GET("", m.Handler.List)
	g.POST("", writeLimiter, m.Handler.Create)
	g.GET("/:id", m.Handler.Get)
	g.PUT("/:id", writeLimiter, m.Handler.React)
	g.GET("/:id/comments", m.Handler.Comments)
	g.GET("/:id/related", m.Handler.Related)
}
