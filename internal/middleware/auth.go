package middleware

import (
	"net/http"
	"yatube/internal/db"
	"yatube/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const CheckUserKey = "user"

// AuthRequired ensures a user is logged in. Anonymous requests are sent to
// the login page with the original path in the next parameter. It runs after
// LoadUser and also checks that the session's user was actually resolved: a
// cookie for a since-deleted user is treated as anonymous, and the dead
// session is dropped.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get("user_id") == nil {
			c.Redirect(http.StatusFound, "/auth/login/?next="+c.Request.URL.Path)
			c.Abort()
			return
		}
		if _, exists := c.Get(CheckUserKey); !exists {
			session.Clear()
			session.Save()
			c.Redirect(http.StatusFound, "/auth/login/?next="+c.Request.URL.Path)
			c.Abort()
			return
		}
		c.Next()
	}
}

// LoadUser retrieves the user from the session and sets it on the context.
func LoadUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get("user_id")

		if userID != nil {
			var user models.User
			if result := db.DB.First(&user, userID); result.Error == nil {
				c.Set(CheckUserKey, &user)
			}
		}
		c.Next()
	}
}
