package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "product-relations-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-key-for-jwt-operations"

func TestAuthConfig(t *testing.T) {
	t.Run("valid config structure", func(t *testing.T) {
		config := NewAuthConfig(testSecret)

		err := config.ValidateConfig()
		assert.NoError(t, err)
		assert.Equal(t, DefaultTokenTTL, config.TokenTTL)
		assert.NotEmpty(t, config.Issuer)
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		err := NewAuthConfig("").ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("short jwt secret", func(t *testing.T) {
		err := NewAuthConfig("short").ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "at least 16 characters")
	})

	t.Run("service refuses invalid config", func(t *testing.T) {
		_, err := NewAuthService(NewAuthConfig(""))
		assert.Error(t, err)

		_, err = NewAuthService(nil)
		assert.Error(t, err)
	})
}

func TestJWTOperations(t *testing.T) {
	service, err := NewAuthService(NewAuthConfig(testSecret))
	require.NoError(t, err)

	token, err := service.GenerateToken("catalog-admin", RoleAdmin, 0)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateJWT(token)
	assert.NoError(t, err)
	assert.Equal(t, "catalog-admin", claims.Subject)
	assert.Equal(t, RoleAdmin, claims.Role)

	_, err = service.ValidateJWT("invalid-token")
	assert.Error(t, err)
	assert.True(t, apperrors.IsAuthentication(err))

	_, err = service.GenerateToken("", RoleAdmin, 0)
	assert.Error(t, err)
}

func TestJWTExpiration(t *testing.T) {
	service, err := NewAuthService(NewAuthConfig(testSecret))
	require.NoError(t, err)

	issued := time.Now().Add(-2 * time.Hour)
	service.now = func() time.Time { return issued }
	token, err := service.GenerateToken("catalog-admin", RoleAdmin, time.Hour)
	require.NoError(t, err)

	service.now = time.Now
	_, err = service.ValidateJWT(token)
	assert.Error(t, err)
}

func TestJWTWrongSecret(t *testing.T) {
	issuer, err := NewAuthService(NewAuthConfig("another-signing-key-entirely"))
	require.NoError(t, err)
	verifier, err := NewAuthService(NewAuthConfig(testSecret))
	require.NoError(t, err)

	token, err := issuer.GenerateToken("catalog-admin", RoleAdmin, 0)
	require.NoError(t, err)

	_, err = verifier.ValidateJWT(token)
	assert.Error(t, err)
}

func TestJWTRejectsNoneAlgorithm(t *testing.T) {
	service, err := NewAuthService(NewAuthConfig(testSecret))
	require.NoError(t, err)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &AdminClaims{
		Role:             RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "mallory", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = service.ValidateJWT(token)
	assert.Error(t, err)
}

func TestRequireAdminMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service, err := NewAuthService(NewAuthConfig(testSecret))
	require.NoError(t, err)
	middleware := NewAuthMiddleware(service)

	router := gin.New()
	router.GET("/admin", append(middleware.RequireAdmin(), func(c *gin.Context) {
		subject, _ := GetSubject(c)
		c.JSON(http.StatusOK, gin.H{"subject": subject})
	})...)

	adminToken, err := service.GenerateToken("catalog-admin", RoleAdmin, 0)
	require.NoError(t, err)
	editorToken, err := service.GenerateToken("editor", "editor", 0)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
		{name: "non admin role", header: "Bearer " + editorToken, wantStatus: http.StatusForbidden},
		{name: "admin", header: "Bearer " + adminToken, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), "catalog-admin")
			}
		})
	}
}
