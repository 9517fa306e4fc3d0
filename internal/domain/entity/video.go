package entity

import "time"

// Video is a catalog entry, either mapped from the upstream API or loaded
// from static fixtures. Duration is in whole seconds.
type Video struct {
	ID           string
	Title        string
	Description  string
	Thumbnail    string
	VideoURL     string
	Duration     int
	ViewCount    int64
	LikeCount    int64
	DislikeCount int64
	Category     string
	Tags         []string
	UserID       string
	User         User
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Comment belongs to a video; replies nest one level in practice.
type Comment struct {
	ID        string
	Content   string
	VideoID   string
	UserID    string
	User      User
	ParentID  string
	Replies   []Comment
	LikeCount int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
