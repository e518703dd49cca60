package auth

import (
	"net/http"
	"strings"

	"product-relations-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Context keys set by the middleware
const (
	ClaimsKey = "auth_claims"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates the bearer token and sets the subject on the context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			logger.FromGinContext(c).WithError(err).Warn("Rejected bearer token")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		c.Set(logger.SubjectKey, claims.Subject)
		c.Set(ClaimsKey, claims)

		c.Next()
	}
}

// RequireRole rejects authenticated requests whose token lacks role
func (m *AuthMiddleware) RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetAdminClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		if claims.Role != role {
			c.JSON(http.StatusForbidden, gin.H{"error": "Role not allowed for this resource"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireAdmin chains RequireAuth and RequireRole(RoleAdmin)
func (m *AuthMiddleware) RequireAdmin() []gin.HandlerFunc {
	return []gin.HandlerFunc{m.RequireAuth(), m.RequireRole(RoleAdmin)}
}

// GetSubject is a helper function to extract the token subject from context
func GetSubject(c *gin.Context) (string, bool) {
	subject, exists := c.Get(logger.SubjectKey)
	if !exists {
		return "", false
	}

	subjectStr, ok := subject.(string)
	return subjectStr, ok
}

// GetAdminClaims is a helper function to extract full claims from context
func GetAdminClaims(c *gin.Context) (*AdminClaims, bool) {
	claims, exists := c.Get(ClaimsKey)
	if !exists {
		return nil, false
	}

	adminClaims, ok := claims.(*AdminClaims)
	return adminClaims, ok
}
