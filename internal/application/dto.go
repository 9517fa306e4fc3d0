package application

import (
	"time"

	"github.com/oksasatya/skatetube/internal/domain/entity"
)

// UserResponse is the public view of a user. It has no password field.
type UserResponse struct {
	ID              string    `json:"id"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	Bio             string    `json:"bio,omitempty"`
	Avatar          string    `json:"avatar,omitempty"`
	SubscriberCount int64     `json:"subscriberCount"`
	Role            string    `json:"role,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type VideoResponse struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Thumbnail    string       `json:"thumbnail"`
	VideoURL     string       `json:"videoUrl"`
	Duration     int          `json:"duration"`
	ViewCount    int64        `json:"viewCount"`
	LikeCount    int64        `json:"likeCount"`
	DislikeCount int64        `json:"dislikeCount"`
	Category     string       `json:"category"`
	Tags         []string     `json:"tags"`
	UserID       string       `json:"userId"`
	User         UserResponse `json:"user"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

type CommentResponse struct {
	ID        string            `json:"id"`
	Content   string            `json:"content"`
	VideoID   string            `json:"videoId"`
	UserID    string            `json:"userId"`
	User      UserResponse      `json:"user"`
	ParentID  string            `json:"parentId,omitempty"`
	Replies   []CommentResponse `json:"replies,omitempty"`
	LikeCount int64             `json:"likeCount"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

func ToUserResponse(u entity.User) UserResponse {
	return UserResponse{
		ID:              u.ID,
		Username:        u.Username,
		Email:           u.Email,
		Bio:             u.Bio,
		Avatar:          u.Avatar,
		SubscriberCount: u.SubscriberCount,
		Role:            u.Role,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func ToVideoResponse(v entity.Video) VideoResponse {
	tags := v.Tags
	if tags == nil {
		tags = []string{}
	}
	return VideoResponse{
		ID:           v.ID,
		Title:        v.Title,
		Description:  v.Description,
		Thumbnail:    v.Thumbnail,
		VideoURL:     v.VideoURL,
		Duration:     v.Duration,
		ViewCount:    v.ViewCount,
		LikeCount:    v.LikeCount,
		DislikeCount: v.DislikeCount,
		Category:     v.Category,
		Tags:         tags,
		UserID:       v.UserID,
		User:         ToUserResponse(v.User),
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

// ToVideoResponses never returns nil so empty lists encode as [].
func ToVideoResponses(vs []entity.Video) []VideoResponse {
	out := make([]VideoResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, ToVideoResponse(v))
	}
	return out
}

func ToCommentResponse(c entity.Comment) CommentResponse {
	res := CommentResponse{
		ID:        c.ID,
		Content:   c.Content,
		VideoID:   c.VideoID,
		UserID:    c.UserID,
		User:      ToUserResponse(c.User),
		ParentID:  c.ParentID,
		LikeCount: c.LikeCount,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	for _, r := range c.Replies {
		res.Replies = append(res.Replies, ToCommentResponse(r))
	}
	return res
}

func ToCommentResponses(cs []entity.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, ToCommentResponse(c))
	}
	return out
}
