package middleware

import (
	"log"
	"strings"

	"blogapi/apperrors"

	"github.com/gin-gonic/gin"
)

const userIDKey = "user_id"

// TokenValidator resolves a bearer token to a user id.
type TokenValidator interface {
	ValidateJWT(token string) (uint, error)
}

func AuthRequired(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			abortWithError(c, apperrors.Unauthenticated("No token provided"))
			return
		}

		userID, err := tokens.ValidateJWT(token)
		if err != nil {
			log.Printf("Token validation failed: %v", err)
			abortWithError(c, apperrors.Unauthenticated("Invalid token"))
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// OptionalAuth resolves the caller when a valid token is present and lets anonymous requests through.
func OptionalAuth(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			token = c.Query("token")
		}
		if token != "" {
			if userID, err := tokens.ValidateJWT(token); err == nil {
				c.Set(userIDKey, userID)
			}
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated caller, if any.
func CurrentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(userIDKey)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok && id != 0
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
