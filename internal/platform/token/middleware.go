package token

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"dashboard_backend/internal/feature/access/domain/entity"
)

// ContextSession is the gin context key holding the parsed *entity.Session.
const ContextSession = "session"

// SessionRequired returns a middleware that validates the bearer token and
// stores the parsed session in the request context. Expiry is enforced here
// as well: token validity and session validity are the same predicate.
func SessionRequired(issuer *Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		session, err := issuer.Parse(strings.TrimPrefix(auth, "Bearer "))
		if err != nil || !session.IsValid() {
			// Expiry is an expected state transition, not a server error.
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired or invalid"})
			return
		}

		c.Set(ContextSession, session)
		c.Next()
	}
}

// AdminRequired restricts a route group to admin sessions. It must run after
// SessionRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := FromContext(c)
		if session == nil || !session.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

// FromContext returns the session stored by SessionRequired, or nil.
func FromContext(c *gin.Context) *entity.Session {
	v, ok := c.Get(ContextSession)
	if !ok {
		return nil
	}
	session, ok := v.(*entity.Session)
	if !ok {
		return nil
	}
	return session
}
