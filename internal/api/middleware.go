package api

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shoply/server/internal/auth"
	"github.com/shoply/server/internal/models"
)

const identityKey = "user"

// Auth validates the bearer token and attaches the decoded identity to the
// request context. A missing or malformed header is a 400; a token that
// fails signature or expiry checks is a 401. No session store is consulted.
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"message": "Authorization header is missing or invalid",
				"error":   true,
			})
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"message": "Authorization header is missing or invalid",
				"error":   true,
			})
			return
		}

		claims, err := auth.ParseToken(secret, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Invalid or expired token",
				"error":   true,
			})
			return
		}

		c.Set(identityKey, &claims.User)
		c.Next()
	}
}

// currentUser returns the identity attached by Auth.
func currentUser(c *gin.Context) (*models.PublicUser, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.PublicUser)
	return user, ok
}

// CORS mirrors the permissive policy of the original deployment.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		c.Header("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}

// RequestLogger logs method, path, status and duration for every request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		log.Printf(
			"%s %s %d %s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
		)
	}
}
