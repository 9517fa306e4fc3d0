package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/skatetube/internal/application"
	"github.com/oksasatya/skatetube/pkg/response"
)

type FeedHandler struct {
	Svc    *application.FeedService
	Logger *logrus.Logger
}

func NewFeedHandler(svc *application.FeedService, logger *logrus.Logger) *FeedHandler {
	return &FeedHandler{Svc: svc, Logger: logger}
}

// feedPayload carries the advisory Error only when Videos is the canned list.
type feedPayload struct {
	Videos   []application.VideoResponse `json:"videos"`
	Category string                      `json:"category"`
	Fallback bool                        `json:"fallback,omitempty"`
	Error    string                      `json:"error,omitempty"`
}

// Feed GET /api/feed?category=&maxResults=
func (h *FeedHandler) Feed(c *gin.Context) {
	res, err := h.Svc.Feed(c.Request.Context(), c.Query("category"), maxResults(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	msg := "ok"
	if res.Fallback {
		msg = res.Error
	}
	response.Success(c, http.StatusOK, feedPayload{
		Videos:   application.ToVideoResponses(res.Videos),
		Category: res.Category,
		Fallback: res.Fallback,
		Error:    res.Error,
	}, msg, nil)
}
