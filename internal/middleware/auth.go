package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ContextAccessLevel = "access_level"

	// AccessLevelDirector gates the analytics and reports surfaces.
	AccessLevelDirector = "director"
)

// AuthMiddleware verifies bearer tokens issued by the authentication
// collaborator. Token issuance lives outside this service.
type AuthMiddleware struct {
	secret []byte
}

func NewAuthMiddleware(secret string) *AuthMiddleware {
	return &AuthMiddleware{secret: []byte(secret)}
}

type claims struct {
	AccessLevel string `json:"accessLevel"`
	jwt.RegisteredClaims
}

// Authenticate verifies the bearer token and stores its access level in the
// request context.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "missing authorization header"})
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		parsed, err := jwt.ParseWithClaims(tokenString, &claims{}, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return m.secret, nil
		})
		if err != nil || !parsed.Valid {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"status": "error", "message": "invalid token"})
			return
		}

		if cl, ok := parsed.Claims.(*claims); ok {
			c.Set(ContextAccessLevel, cl.AccessLevel)
		}
		c.Next()
	}
}

// RequireAccessLevel gates a route group to one access level.
func (m *AuthMiddleware) RequireAccessLevel(level string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextAccessLevel) != level {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"status": "error", "message": "insufficient access level"})
			return
		}
		c.Next()
	}
}
