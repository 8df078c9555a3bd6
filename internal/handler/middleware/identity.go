package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxUserIDKey = "user_id"

// RequireUser resolves the acting user from the X-User-ID header. The
// gateway in front of this service authenticates requests and forwards
// the verified identity; here we only validate its shape.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-User-ID")
		if raw == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "X-User-ID header required",
			})
			c.Abort()
			return
		}

		userID, err := uuid.Parse(raw)
		if err != nil {
			slog.Warn("Rejected malformed user id", "value", raw)
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "X-User-ID must be a valid UUID",
			})
			c.Abort()
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Next()
	}
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}
