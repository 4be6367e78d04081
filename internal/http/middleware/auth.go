package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain"
)

const requestUserKey = "request_user"

// RequireAuth rejects requests without a valid Bearer token. An expired
// or malformed token is a plain 401 so the front end redirects to login.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		rc := domain.RequestContext{}
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if v, ok := claims["user_id"].(float64); ok {
				rc.UserID = domain.ID(v)
			}
			if v, ok := claims["role"].(string); ok {
				rc.Role = v
			}
		}
		c.Set(requestUserKey, rc)
		c.Next()
	}
}

// GetRequestUser returns the authenticated user info, when present.
func GetRequestUser(c *gin.Context) (domain.RequestContext, bool) {
	if v, ok := c.Get(requestUserKey); ok {
		if rc, ok := v.(domain.RequestContext); ok {
			return rc, true
		}
	}
	return domain.RequestContext{}, false
}
