package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduplat/courses/internal/app/models/dto"
	"github.com/eduplat/courses/internal/pkg/auth"
)

// Context keys set by RequireAuth for downstream handlers.
const (
	ContextUserID       = "userID"
	ContextIsInstructor = "isInstructor"
)

// AuthMiddleware gates routes behind tokens issued by the user service.
type AuthMiddleware struct {
	verifier *auth.TokenVerifier
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(verifier *auth.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// RequireAuth validates the bearer token and stores the caller's identity
// in the request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewDetailResponse("Authentication required"))
			return
		}

		claims, err := m.verifier.ParseClaims(tokenString)
		if err != nil {
			detail := "Invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				detail = "Token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewDetailResponse(detail))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextIsInstructor, claims.IsInstructor)

		c.Next()
	}
}

// RequireInstructor rejects callers whose token does not carry the
// instructor flag. It must run after RequireAuth.
func (m *AuthMiddleware) RequireInstructor() gin.HandlerFunc {
	return func(c *gin.Context) {
		isInstructor, exists := c.Get(ContextIsInstructor)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewDetailResponse("Authentication required"))
			return
		}

		if flag, ok := isInstructor.(bool); !ok || !flag {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewDetailResponse("Unauthorized"))
			return
		}

		c.Next()
	}
}

// UserID returns the authenticated caller's id from the request context.
func UserID(c *gin.Context) int64 {
	return c.GetInt64(ContextUserID)
}
