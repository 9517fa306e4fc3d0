package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/skatetube/internal/application"
	repo "github.com/oksasatya/skatetube/internal/domain/repository"
	"github.com/oksasatya/skatetube/pkg/response"
)

// statusFor maps application and upstream errors to an HTTP status and the
// message shown to the caller.
func statusFor(err error) (int, string) {
	var upErr *repo.UpstreamError
	switch {
	case errors.Is(err, application.ErrUpstreamNotConfigured):
		return http.StatusInternalServerError, err.Error()
	case errors.Is(err, application.ErrQueryRequired):
		return http.StatusBadRequest, "Search query is required"
	case errors.Is(err, application.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, application.ErrNotAuthenticated):
		return http.StatusUnauthorized, "Not authenticated"
	case errors.Is(err, application.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, application.ErrVideoNotFound):
		return http.StatusNotFound, "Video not found"
	case errors.Is(err, application.ErrUserExists):
		return http.StatusConflict, "User already exists"
	case errors.Is(err, application.ErrPasswordTooShort):
		return http.StatusBadRequest, "Password must be at least 6 characters long"
	case errors.Is(err, application.ErrInvalidAction):
		return http.StatusBadRequest, "Invalid action"
	case errors.As(err, &upErr):
		if upErr.Status != 0 {
			msg := upErr.Message
			if msg == "" {
				msg = http.StatusText(upErr.Status)
			}
			return upErr.Status, msg
		}
		return http.StatusBadGateway, "Upstream request failed"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	status, msg := statusFor(err)
	if status >= http.StatusInternalServerError && logger != nil {
		logger.WithError(err).WithField("path", c.FullPath()).Error("request failed")
	}
	response.Error[any](c, status, msg, nil)
}
