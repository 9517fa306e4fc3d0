package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/skatetube/internal/application"
	"github.com/oksasatya/skatetube/internal/domain/entity"
	"github.com/oksasatya/skatetube/pkg/helpers"
	"github.com/oksasatya/skatetube/pkg/response"
)

// Context keys set by Session.
const (
	ContextUserID = "userID"
	ContextUser   = "user"
)

// Session resolves the auth-token cookie when one is sent and stores the user
// in the context. Anonymous requests pass through untouched.
func Session(auth *application.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := helpers.SessionToken(c)
		if token == "" {
			c.Next()
			return
		}
		u, err := auth.CurrentUser(c.Request.Context(), token)
		switch {
		case err == nil:
			c.Set(ContextUserID, u.ID)
			c.Set(ContextUser, u)
		case errors.Is(err, application.ErrNotAuthenticated), errors.Is(err, application.ErrUserNotFound):
		default:
			if auth.Logger != nil {
				auth.Logger.WithError(err).Warn("session lookup failed")
			}
		}
		c.Next()
	}
}

// RequireSession aborts with 401 unless Session resolved a user.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			response.Abort(c, http.StatusUnauthorized, "Not authenticated", nil)
			return
		}
		c.Next()
	}
}

// CurrentUser returns the session user or nil.
func CurrentUser(c *gin.Context) *entity.User {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}
