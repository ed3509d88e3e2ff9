package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codehire/codehire-api/internal/dto"
	"github.com/codehire/codehire-api/internal/service"
)

const contextUserID = "user_id"

// SessionMiddleware validates the session cookie and adds the subject user
// id to the request context. Requests without a valid session are rejected.
func SessionMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Please log in first"})
			c.Abort()
			return
		}

		userID, err := authService.VerifySession(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Please log in first"})
			c.Abort()
			return
		}

		c.Set(contextUserID, userID)
		c.Next()
	}
}

// currentUserID returns the session subject set by SessionMiddleware
func currentUserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(contextUserID)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
