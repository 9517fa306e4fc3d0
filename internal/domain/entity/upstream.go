package entity

import "time"

// Thumbnails keeps the sizes the catalog picks from.
type Thumbnails struct {
	Default string
	Medium  string
	High    string
}

// VideoRef is a video reference returned by an upstream search.
type VideoRef struct {
	ID           string
	Title        string
	Description  string
	ChannelID    string
	ChannelTitle string
	Thumbnails   Thumbnails
	PublishedAt  time.Time
}

// ChannelRef is a channel returned by an upstream channel search.
type ChannelRef struct {
	ID    string
	Title string
}

// SearchPage is one page of upstream video references.
type SearchPage struct {
	Items        []VideoRef
	TotalResults int64
}

// VideoDetails is the narrowed form of an upstream videos.list item.
// Duration is kept in its ISO-8601 form; snippet fields are empty when the
// snippet part was not requested.
type VideoDetails struct {
	ID           string
	Title        string
	Description  string
	ChannelID    string
	ChannelTitle string
	Thumbnails   Thumbnails
	Tags         []string
	Duration     string
	ViewCount    int64
	LikeCount    int64
	PublishedAt  time.Time
}
