package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"campus-reserve/internal/domain/user"
	"campus-reserve/internal/handler/httperr"
	"campus-reserve/internal/pkg/errs"
	"campus-reserve/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxRequesterKey = "requester"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Access token required", nil)
			return
		}

		requester, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.Mark(err, errs.ErrUnauthenticated), "Invalid or expired token", nil)
			return
		}

		c.Set(ctxRequesterKey, requester)
		c.Next()
	}
}

// RequireRoleAtLeast must be chained after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		requester, ok := GetRequester(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, errs.ErrUnauthenticated.Error(), nil)
			return
		}

		if !requester.Role().AtLeast(minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, errs.ErrForbidden, "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

// OptionalAuth identifies the caller when a valid token is present and never aborts.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		requester, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}

		c.Set(ctxRequesterKey, requester)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

// GetRequester returns the authenticated caller. Handlers fall back to
// user.Anonymous() and let the usecase reject it.
func GetRequester(c *gin.Context) (user.Requester, bool) {
	value, exists := c.Get(ctxRequesterKey)
	if !exists {
		return user.Anonymous(), false
	}

	requester, ok := value.(user.Requester)
	if !ok || requester.IsAnonymous() {
		return user.Anonymous(), false
	}
	return requester, true
}

// SetRequester is used by handler tests to bypass token parsing.
func SetRequester(c *gin.Context, requester user.Requester) {
	c.Set(ctxRequesterKey, requester)
}
