package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/skatetube/pkg/placeholder"
	"github.com/oksasatya/skatetube/pkg/response"
)

type PlaceholderHandler struct {
	Logger *logrus.Logger
}

func NewPlaceholderHandler(logger *logrus.Logger) *PlaceholderHandler {
	return &PlaceholderHandler{Logger: logger}
}

// Image GET /api/placeholder/:width/:height
func (h *PlaceholderHandler) Image(c *gin.Context) {
	w, ht := placeholder.Size(c.Param("width"), c.Param("height"))
	svg, err := placeholder.Render(w, ht)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("render placeholder")
		}
		response.Error[any](c, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	c.Header("Cache-Control", "public, max-age=31536000, immutable")
	c.Data(http.StatusOK, "image/svg+xml", svg)
}
