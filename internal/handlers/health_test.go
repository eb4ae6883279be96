package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/financecrm/ai-service/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newHealthRouter(t *testing.T, variant models.Variant) *gin.Engine {
	t.Helper()

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.NoRoute(NotFoundHandler)
	router.NoMethod(MethodNotAllowedHandler)
	require.NoError(t, RegisterHealthRoutes(router, variant))

	return router
}

func serve(router http.Handler, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

// TestHealthRoutes tests each variant's health endpoint
func TestHealthRoutes(t *testing.T) {
	tests := []struct {
		name     string
		variant  models.Variant
		target   string
		wantBody string
	}{
		{"ping", models.VariantPing, "/ping", `{"message":"AI Service up!"}`},
		{"ping with query", models.VariantPing, "/ping?verbose=1&x=y", `{"message":"AI Service up!"}`},
		{"root", models.VariantRoot, "/", `{"message":"AI Service is running"}`},
		{"root with query", models.VariantRoot, "/?source=k8s", `{"message":"AI Service is running"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(newHealthRouter(t, tt.variant), http.MethodGet, tt.target)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.wantBody, w.Body.String())
			assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
		})
	}
}

// TestPingHandler_IgnoresHeaders tests that request headers do not change the response
func TestPingHandler_IgnoresHeaders(t *testing.T) {
	router := newHealthRouter(t, models.VariantPing)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Accept", "text/plain")
	req.Header.Set("Authorization", "Bearer whatever")
	req.Header.Set("X-Custom", "1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"message":"AI Service up!"}`, w.Body.String())
}

// TestHealthRoutes_Idempotent tests that repeated requests produce identical bodies
func TestHealthRoutes_Idempotent(t *testing.T) {
	router := newHealthRouter(t, models.VariantPing)

	first := serve(router, http.MethodGet, "/ping").Body.String()
	for i := 0; i < 10; i++ {
		if got := serve(router, http.MethodGet, "/ping").Body.String(); got != first {
			t.Fatalf("request %d body = %q, want %q", i+2, got, first)
		}
	}
}

// TestHealthRoutes_Unmatched tests that other paths and methods are not 200
func TestHealthRoutes_Unmatched(t *testing.T) {
	tests := []struct {
		name     string
		variant  models.Variant
		method   string
		target   string
		wantCode int
	}{
		{"ping variant root path", models.VariantPing, http.MethodGet, "/", http.StatusNotFound},
		{"ping variant unknown path", models.VariantPing, http.MethodGet, "/health", http.StatusNotFound},
		{"ping variant POST", models.VariantPing, http.MethodPost, "/ping", http.StatusMethodNotAllowed},
		{"ping variant DELETE", models.VariantPing, http.MethodDelete, "/ping", http.StatusMethodNotAllowed},
		{"root variant ping path", models.VariantRoot, http.MethodGet, "/ping", http.StatusNotFound},
		{"root variant PUT", models.VariantRoot, http.MethodPut, "/", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(newHealthRouter(t, tt.variant), tt.method, tt.target)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestNotFoundHandler_Body(t *testing.T) {
	w := serve(newHealthRouter(t, models.VariantPing), http.MethodGet, "/missing")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not Found","message":"No route matches GET /missing"}`, w.Body.String())
}

func TestMethodNotAllowedHandler_Body(t *testing.T) {
	w := serve(newHealthRouter(t, models.VariantPing), http.MethodPost, "/ping")

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.JSONEq(t, `{"error":"Method Not Allowed","message":"Method POST is not allowed on /ping"}`, w.Body.String())
}

func TestRegisterHealthRoutes_UnknownVariant(t *testing.T) {
	err := RegisterHealthRoutes(gin.New(), models.Variant("other"))
	assert.Error(t, err)
}
