package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"bookloop/internal/handler/httperr"
	"bookloop/internal/pkg/cookie"
	"bookloop/internal/pkg/errs"
	"bookloop/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	identity usecase.IdentityProvider
}

const ctxUserIDKey = "user_id"

func NewAuthMiddleware(identity usecase.IdentityProvider) *AuthMiddleware {
	return &AuthMiddleware{
		identity: identity,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, httperr.CodeUnauthorized,
				errs.ErrUnauthenticated, "Access token required", nil)
			return
		}

		userID, err := m.identity.Authenticate(token)
		if err != nil {
			slog.WarnContext(c.Request.Context(), "token validation failed in auth middleware",
				"error", err.Error(), "request_id", GetRequestID(c))
			httperr.AbortWithError(c, http.StatusUnauthorized, httperr.CodeUnauthorized,
				errs.Classify(err, errs.ErrUnauthenticated), "Invalid or expired token", nil)
			return
		}

		SetUserID(c, userID)
		c.Next()
	}
}

// cookie set by the identity service wins over the Authorization header
func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

func SetUserID(c *gin.Context, userID uuid.UUID) {
	c.Set(ctxUserIDKey, userID)
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}
