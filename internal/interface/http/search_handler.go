package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/skatetube/internal/application"
	"github.com/oksasatya/skatetube/pkg/response"
)

type SearchHandler struct {
	Svc    *application.SearchService
	Logger *logrus.Logger
}

func NewSearchHandler(svc *application.SearchService, logger *logrus.Logger) *SearchHandler {
	return &SearchHandler{Svc: svc, Logger: logger}
}

type searchPayload struct {
	Videos         []application.VideoResponse `json:"videos"`
	Query          string                      `json:"query"`
	TotalResults   int64                       `json:"totalResults"`
	ChannelMatches int                         `json:"channelMatches"`
}

// Search GET /api/search?q=&maxResults=
func (h *SearchHandler) Search(c *gin.Context) {
	res, err := h.Svc.Search(c.Request.Context(), c.Query("q"), maxResults(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, searchPayload{
		Videos:         application.ToVideoResponses(res.Videos),
		Query:          res.Query,
		TotalResults:   res.TotalResults,
		ChannelMatches: res.ChannelMatches,
	}, "ok", nil)
}
