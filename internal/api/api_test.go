package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRouter_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestNewRouter_NoServicesNoAnalyticsRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/customers?store_id=s1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNormalizeAllowedOrigins(t *testing.T) {
	parsed, allowAll := normalizeAllowedOrigins([]string{"https://a.example, https://b.example", " "})
	assert.False(t, allowAll)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, parsed)

	parsed, allowAll = normalizeAllowedOrigins([]string{"*"})
	assert.True(t, allowAll)
	assert.Empty(t, parsed)

	parsed, allowAll = normalizeAllowedOrigins([]string{"https://a.example,*"})
	assert.True(t, allowAll)
	assert.Equal(t, []string{"https://a.example"}, parsed)
}
