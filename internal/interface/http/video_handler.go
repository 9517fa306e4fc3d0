package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/skatetube/internal/application"
	"github.com/oksasatya/skatetube/internal/interface/middleware"
	"github.com/oksasatya/skatetube/pkg/response"
	"github.com/oksasatya/skatetube/pkg/validation"
)

type VideoHandler struct {
	Svc    *application.VideoService
	Logger *logrus.Logger
}

func NewVideoHandler(svc *application.VideoService, logger *logrus.Logger) *VideoHandler {
	return &VideoHandler{Svc: svc, Logger: logger}
}

type createVideoRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category" binding:"required"`
	Tags        []string `json:"tags"`
	Thumbnail   string   `json:"thumbnail"`
}

type reactionRequest struct {
	Action string `json:"action" binding:"required,reaction"`
	Value  bool   `json:"value"`
}

type videoListPayload struct {
	Videos  []application.VideoResponse `json:"videos"`
	Total   int                         `json:"total"`
	HasMore bool                        `json:"hasMore"`
}

type videoPayload struct {
	Video application.VideoResponse `json:"video"`
}

type reactionPayload struct {
	Action string `json:"action"`
	Value  bool   `json:"value"`
	Count  int64  `json:"count"`
}

// List GET /api/videos?category=&search=&limit=&offset=
func (h *VideoHandler) List(c *gin.Context) {
	res := h.Svc.List(c.Request.Context(), application.ListQuery{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Limit:    max(intQuery(c, "limit", defaultPageSize), 0),
		Offset:   max(intQuery(c, "offset", 0), 0),
	})
	response.Success(c, http.StatusOK, videoListPayload{
		Videos:  application.ToVideoResponses(res.Videos),
		Total:   res.Total,
		HasMore: res.HasMore,
	}, "ok", nil)
}

// Create POST /api/videos
func (h *VideoHandler) Create(c *gin.Context) {
	var req createVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "Title and category are required", validation.ToDetails(err))
		return
	}
	v := h.Svc.Submit(c.Request.Context(), application.SubmitInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Tags:        req.Tags,
		Thumbnail:   req.Thumbnail,
	}, middleware.CurrentUser(c))
	response.Success(c, http.StatusCreated, videoPayload{Video: application.ToVideoResponse(v)}, "video created", nil)
}

// Get GET /api/videos/:id
func (h *VideoHandler) Get(c *gin.Context) {
	v, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, videoPayload{Video: application.ToVideoResponse(v)}, "ok", nil)
}

// React PUT /api/videos/:id
func (h *VideoHandler) React(c *gin.Context) {
	var req reactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "Invalid action", validation.ToDetails(err))
		return
	}
	r, err := h.Svc.React(c.Request.Context(), c.Param("id"), req.Action, req.Value)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, reactionPayload{Action: r.Action, Value: req.Value, Count: r.Count}, "ok", nil)
}

// Comments GET /api/videos/:id/comments
func (h *VideoHandler) Comments(c *gin.Context) {
	comments := h.Svc.Comments(c.Request.Context(), c.Param("id"))
	response.Success(c, http.StatusOK, gin.H{"comments": application.ToCommentResponses(comments)}, "ok", nil)
}

// Related GET /api/videos/:id/related
func (h *VideoHandler) Related(c *gin.Context) {
	videos, err := h.Svc.Related(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"videos": application.ToVideoResponses(videos)}, "ok", nil)
}
