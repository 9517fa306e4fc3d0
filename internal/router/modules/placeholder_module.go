package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/skatetube/internal/interface/http"
)

type PlaceholderModule struct {
	Handler *handlers.PlaceholderHandler
}

func NewPlaceholderModule(h *handlers.PlaceholderHandler) *PlaceholderModule {
	return &PlaceholderModule{Handler: h}
}

func (m *PlaceholderModule) Register(rg *gin.RouterGroup) {
	rg.GET("/placeholder/:width/:height", m.Handler.Image)
}
