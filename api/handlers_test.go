package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lenslink/lenslink/internal/analytics"
	"github.com/lenslink/lenslink/internal/auth"
	"github.com/lenslink/lenslink/internal/store/sqlite"
	"github.com/lenslink/lenslink/model"
)

type testEnv struct {
	router   *gin.Engine
	store    *sqlite.Store
	verifier *auth.JWTVerifier
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := sqlite.Open(":memory:")
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	logger := zap.NewNop()
	tracker := analytics.NewService(store, filepath.Join(t.TempDir(), "analytics.json"), logger)
	verifier := auth.NewJWTVerifier("test-secret", time.Hour)

	router := gin.New()
	SetupRoutes(router, NewAPI(store, tracker, logger), verifier)

	return &testEnv{router: router, store: store, verifier: verifier}
}

func (e *testEnv) token(t *testing.T, userID string, role auth.Role) string {
	t.Helper()
	token, err := e.verifier.Mint(userID, role)
	if err != nil {
		t.Fatalf("Failed to mint token: %v", err)
	}
	return token
}

// do performs a request with an optional JSON body and bearer token.
func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewBuffer(raw)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), target); err != nil {
		t.Fatalf("Failed to decode response body %q: %v", w.Body.String(), err)
	}
}

func TestHealthCheckHandler(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, "GET", "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	var body map[string]interface{}
	decodeBody(t, w, &body)
	if body["status"] != "healthy" {
		t.Errorf("Expected healthy status, got %v", body["status"])
	}
}

func TestAuthMiddleware(t *testing.T) {
	env := setupTestEnv(t)

	tests := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{
			name:           "missing header",
			header:         "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong scheme",
			header:         "Basic abc123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "garbage token",
			header:         "Bearer not-a-jwt",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "valid token",
			header:         "Bearer " + env.token(t, "user-1", auth.RoleClient),
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest("GET", "/creators", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			w := httptest.NewRecorder()
			env.router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	env := setupTestEnv(t)

	expired := auth.NewJWTVerifier("test-secret", -time.Hour)
	token, err := expired.Mint("user-1", auth.RoleClient)
	if err != nil {
		t.Fatalf("Failed to mint token: %v", err)
	}

	w := env.do(t, "GET", "/creators", token, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestGetAnalyticsHandler(t *testing.T) {
	env := setupTestEnv(t)
	token := env.token(t, "client-1", auth.RoleClient)

	// One match query so the dashboard has traffic to report.
	w := env.do(t, "POST", "/creators/_match", token, MatchRequest{})
	if w.Code != http.StatusOK {
		t.Fatalf("Match request failed with status %d: %s", w.Code, w.Body.String())
	}

	w = env.do(t, "GET", "/analytics", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	var dashboard model.AnalyticsDashboard
	decodeBody(t, w, &dashboard)
	if dashboard.TotalMatches24h < 1 {
		t.Errorf("Expected at least one tracked match, got %d", dashboard.TotalMatches24h)
	}
}
