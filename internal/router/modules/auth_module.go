package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/skatetube/internal/container"
	handlers "github.com/oksasatya/skatetube/internal/interface/http"
	"github.com/oksasatya/skatetube/internal/interface/middleware"
)

// AuthModule wires the cookie session endpoints under /auth.
// Public: POST /auth/register, POST /auth/login, POST /auth/logout, GET /auth/me
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil) // 10 req/min per IP

	g := rg.Group("/auth")
	g.POST("/register", loginLimiter, m.Handler.Register)
	g.POST("/login", loginLimiter, m.Handler.Login)
	g.POST("/logout", m.Handler.Logout)
	g.GET("/me", m.Handler.Me)
}
