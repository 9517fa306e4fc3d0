package entity

import (
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an account of the demo user store or the owner of a video.
// For upstream videos the owner is the publishing channel.
//
// Password holds a bcrypt hash and is never exposed by the HTTP layer.
type User struct {
	ID              string
	Username        string
	Email           string
	Password        string
	Bio             string
	Avatar          string
	SubscriberCount int64
	Role            string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
