package application

import "errors"

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrUserNotFound          = errors.New("user not found")
	ErrUserExists            = errors.New("user already exists")
	ErrPasswordTooShort      = errors.New("password must be at least 6 characters long")
	ErrNotAuthenticated      = errors.New("not authenticated")
	ErrUpstreamNotConfigured = errors.New("YouTube API key not configured")
	ErrQueryRequired         = errors.New("search query is required")
	ErrVideoNotFound         = errors.New("video not found")
	ErrInvalidAction         = errors.New("invalid action")
)
