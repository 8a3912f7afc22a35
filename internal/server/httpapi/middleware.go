package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/bookmarkd/internal/server/auth"
)

const (
	identityKey  = "identity"
	requestIDKey = "request_id"
)

// requestID tags every request with a fresh id, echoed back in the
// X-Request-ID header and attached to log lines.
func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set(requestIDKey, id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// requestLogger writes one structured access-log line per request.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.logger.Info(c.Request.Context(), "request",
			"request_id", c.GetString(requestIDKey),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

// requireToken verifies the bearer token and resolves the caller's Identity
// for downstream handlers. Missing, malformed, expired, or tampered tokens
// all abort with 401.
func (s *Server) requireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing token"})
			return
		}

		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid authorization header"})
			return
		}

		identity, err := auth.GetIdentityFromToken(token, s.jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid or expired token"})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// mustIdentity returns the Identity placed by requireToken. Reaching a
// protected handler without one is a programming error.
func mustIdentity(c *gin.Context) *auth.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		panic("identity missing from request context")
	}
	return v.(*auth.Identity)
}
