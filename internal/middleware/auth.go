package middleware

import (
	"net/http"

	"ballotbox/internal/db"
	"ballotbox/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const CheckUserKey = "user"

// LoadUser resolves the session user_id to a user row and sets it on the
// request context. A stale session pointing at a deleted user simply loads
// nothing and falls through to AuthRequired.
func LoadUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get("user_id")

		if userID != nil {
			var user models.User
			if err := db.DB.First(&user, userID).Error; err == nil {
				c.Set(CheckUserKey, &user)
			}
		}
		c.Next()
	}
}

// AuthRequired redirects unauthenticated requests to the login page.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(CheckUserKey); !exists {
			c.Redirect(http.StatusFound, "/auth/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RoleRequired gates a route group to the given roles. Runs after
// AuthRequired, so a missing user means a broken middleware chain rather
// than an anonymous visitor.
func RoleRequired(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, exists := c.Get(CheckUserKey)
		if !exists {
			c.Redirect(http.StatusFound, "/auth/login")
			c.Abort()
			return
		}
		user := u.(*models.User)
		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		c.Redirect(http.StatusFound, "/dashboard")
		c.Abort()
	}
}

// CurrentUser returns the loaded user for the request, or nil.
func CurrentUser(c *gin.Context) *models.User {
	if u, exists := c.Get(CheckUserKey); exists {
		return u.(*models.User)
	}
	return nil
}
