package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"product-relations-backend/internal/auth"
	"product-relations-backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "routes-test-secret-0123456789"

func newTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	// Requests below are rejected before any handler reaches the database.
	router, err := SetupRoutes(nil, &config.Config{
		JWTSecret:        testSecret,
		AllowedOrigins:   []string{"http://localhost:3000"},
		PriceHistoryDays: 30,
	})
	require.NoError(t, err)
	return router
}

func adminToken(t *testing.T, role string) string {
	service, err := auth.NewAuthService(auth.NewAuthConfig(testSecret))
	require.NoError(t, err)
	token, err := service.GenerateToken("ops@example.com", role, time.Hour)
	require.NoError(t, err)
	return token
}

func TestSetupRoutesRejectsShortSecret(t *testing.T) {
	_, err := SetupRoutes(nil, &config.Config{JWTSecret: "short"})
	assert.Error(t, err)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/relations"},
		{http.MethodDelete, "/api/v1/relations"},
		{http.MethodPut, "/api/v1/relations/settings"},
		{http.MethodPut, "/api/v1/settings/1"},
		{http.MethodPut, "/api/v1/products/1/groups/2/order"},
		{http.MethodGet, "/api/v1/relation-groups"},
		{http.MethodDelete, "/api/v1/relation-groups/1"},
		{http.MethodPut, "/api/v1/products/1"},
		{http.MethodPost, "/api/v1/products/1/prices"},
		{http.MethodDelete, "/api/v1/prices"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/relation-groups/abc", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, "editor"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminRouteReachesHandler(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/relation-groups/abc", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, auth.RoleAdmin))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid id")
}

func TestPublicRoutesSkipAuth(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/products/1/groups?context=cart", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestLiveness(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"alive":true`)
}
