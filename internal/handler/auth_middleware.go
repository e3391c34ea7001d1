package handler

import (
	"net/http"
	"strings"

	"eventhub/internal/model"

	"github.com/gin-gonic/gin"
)

const userContextKey = "user"

type TokenVerifier interface {
	Verify(token string) (*model.User, error)
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// RequireAuth 沒有合法 Bearer token 時回應 401
func RequireAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthenticated."})
			return
		}
		user, err := verifier.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthenticated."})
			return
		}
		c.Set(userContextKey, user)
		c.Next()
	}
}

// OptionalAuth 有 token 就解析，無效或沒有時當作訪客
func OptionalAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if user, err := verifier.Verify(token); err == nil {
				c.Set(userContextKey, user)
			}
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) *model.User {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, _ := v.(*model.User)
	return user
}
