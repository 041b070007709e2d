package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/keyshred/internal/config"
	keysHTTP "github.com/allisson/keyshred/internal/keys/http"
	"github.com/allisson/keyshred/internal/keys/repository"
	keysUseCase "github.com/allisson/keyshred/internal/keys/usecase"
	"github.com/allisson/keyshred/internal/metrics"
)

const testRegion = "QUEBEC-BHS-SECURE"

// TestMain sets Gin to test mode for all tests in this package.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// createTestServer creates a test server without an audit store.
func createTestServer() *Server {
	return NewServer(nil, "localhost", 8080, newDiscardLogger())
}

// newTestConfig returns the settings the router reads, with rate limiting off.
func newTestConfig() *config.Config {
	return &config.Config{
		MetricsNamespace: "keyshred_test",
		RateLimitBurst:   20,
	}
}

// setupFullRouter wires a real node behind the router.
func setupFullRouter(t *testing.T, cfg *config.Config) (*Server, keysUseCase.NodeUseCase) {
	t.Helper()
	logger := newDiscardLogger()

	registry := repository.NewMemoryKeyRegistry(repository.RegistryConfig{Region: testRegion})
	coordinator := keysUseCase.NewShredCoordinator(time.Hour, keysUseCase.NewLogReporter(logger), logger)
	node, err := keysUseCase.NewNode(registry, coordinator, 4, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = node.Close(context.Background()) })

	server := createTestServer()
	server.SetupRouter(t.Context(), cfg, keysHTTP.NewKeyHandler(node, nil, 0, logger), nil, nil)
	return server, node
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealthHandler(t *testing.T) {
	server := createTestServer()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	server.healthHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
}

func TestReadinessHandler(t *testing.T) {
	t.Run("Ready_AuditDisabled", func(t *testing.T) {
		server := createTestServer()

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)

		server.readinessHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ready","components":{"database":"disabled"}}`, w.Body.String())
	})

	t.Run("Ready_DatabaseReachable", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer func() { _ = db.Close() }()
		mock.ExpectPing()

		server := NewServer(db, "localhost", 8080, newDiscardLogger())
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)

		server.readinessHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ready","components":{"database":"ok"}}`, w.Body.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotReady_DatabaseDown", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer func() { _ = db.Close() }()
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		server := NewServer(db, "localhost", 8080, newDiscardLogger())
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)

		server.readinessHandler(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.JSONEq(t, `{"status":"not_ready","components":{"database":"error"}}`, w.Body.String())
	})

	t.Run("NotReady_ShuttingDown", func(t *testing.T) {
		server := createTestServer()
		server.shuttingDown.Store(true)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)

		server.readinessHandler(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

// TestCustomLoggerMiddleware tests the custom logging middleware.
func TestCustomLoggerMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(logger))
	router.GET("/v1/node", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"region": testRegion})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/node", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "http request", entry["msg"])
	assert.Equal(t, "/v1/node", entry["path"])
	assert.Equal(t, float64(http.StatusOK), entry["status"])
	assert.Equal(t, w.Header().Get("X-Request-Id"), entry["request_id"])
}

// TestRecoveryMiddleware tests Gin's built-in recovery middleware.
func TestRecoveryMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(CustomLoggerMiddleware(newDiscardLogger()))
	router.GET("/panic", func(c *gin.Context) {
		panic("test panic")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAPITokenMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(APITokenMiddleware("s3cret", newDiscardLogger()))
	router.GET("/v1/node", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "valid token", header: "Bearer s3cret", want: http.StatusOK},
		{name: "missing header", header: "", want: http.StatusUnauthorized},
		{name: "wrong token", header: "Bearer nope", want: http.StatusUnauthorized},
		{name: "token prefix only", header: "Bearer s3cre", want: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic s3cret", want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/node", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(RateLimitMiddleware(t.Context(), 1, 2, newDiscardLogger()))
	router.POST("/v1/keys", func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	send := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/keys", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusCreated, send("10.0.0.1").Code)
	assert.Equal(t, http.StatusCreated, send("10.0.0.1").Code)

	w := send("10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	// Other clients have their own bucket.
	assert.Equal(t, http.StatusCreated, send("10.0.0.2").Code)
}

func TestRateLimiterStore_RemoveIdle(t *testing.T) {
	store := &rateLimiterStore{rps: 1, burst: 1}
	store.getLimiter("10.0.0.1")
	store.getLimiter("10.0.0.2")

	store.removeIdle(time.Now().Add(-time.Hour))
	_, ok := store.limiters.Load("10.0.0.1")
	assert.True(t, ok)

	store.removeIdle(time.Now().Add(time.Minute))
	_, ok = store.limiters.Load("10.0.0.1")
	assert.False(t, ok)
	_, ok = store.limiters.Load("10.0.0.2")
	assert.False(t, ok)
}

func TestRouter_ProvisionAndShred(t *testing.T) {
	server, node := setupFullRouter(t, newTestConfig())
	h := server.GetHandler()

	material := bytes.Repeat([]byte{0xDE, 0xAD, 0xBE, 0xEF}, 8)
	w := doJSON(t, h, http.MethodPost, "/v1/keys", "", map[string]any{"id": "k1", "material": material})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "material")

	w = doJSON(t, h, http.MethodGet, "/v1/keys/k1", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, h, http.MethodGet, "/v1/node", "", nil)
	assert.JSONEq(t, `{"region":"QUEBEC-BHS-SECURE","key_count":1}`, w.Body.String())

	w = doJSON(t, h, http.MethodPost, "/v1/keys", "", map[string]any{"id": "k1", "material": material})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, h, http.MethodPost, "/v1/alerts", "", map[string]any{"key_id": "k1"})
	require.Equal(t, http.StatusOK, w.Code)
	var outcome map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &outcome))
	assert.Equal(t, "success", outcome["classification"])
	assert.Equal(t, true, outcome["found"])
	assert.Equal(t, true, outcome["verified"])

	w = doJSON(t, h, http.MethodPost, "/v1/alerts", "", map[string]any{"key_id": "k1"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &outcome))
	assert.Equal(t, "not_found", outcome["classification"])

	w = doJSON(t, h, http.MethodGet, "/v1/keys/k1", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 0, node.Len(context.Background()))
}

func TestRouter_ShredAll(t *testing.T) {
	server, node := setupFullRouter(t, newTestConfig())
	h := server.GetHandler()

	for _, id := range []string{"a", "b", "c"} {
		w := doJSON(t, h, http.MethodPost, "/v1/keys", "", map[string]any{"id": id, "material": []byte{1, 2, 3}})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, h, http.MethodPost, "/v1/alerts/all", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 3, response.Count)
	assert.Equal(t, 0, node.Len(context.Background()))
}

func TestRouter_RequiresAPIToken(t *testing.T) {
	cfg := newTestConfig()
	cfg.APIToken = "s3cret"
	server, _ := setupFullRouter(t, cfg)
	h := server.GetHandler()

	assert.Equal(t, http.StatusUnauthorized, doJSON(t, h, http.MethodGet, "/v1/node", "", nil).Code)
	assert.Equal(t, http.StatusOK, doJSON(t, h, http.MethodGet, "/v1/node", "s3cret", nil).Code)

	// Health probes stay open.
	assert.Equal(t, http.StatusOK, doJSON(t, h, http.MethodGet, "/health", "", nil).Code)
}

func TestRouter_RateLimitsProvisioningOnly(t *testing.T) {
	cfg := newTestConfig()
	cfg.RateLimitEnabled = true
	cfg.RateLimitRequestsPerSec = 0.001
	cfg.RateLimitBurst = 1
	server, _ := setupFullRouter(t, cfg)
	h := server.GetHandler()

	w := doJSON(t, h, http.MethodPost, "/v1/keys", "", map[string]any{"id": "k1", "material": []byte{1}})
	assert.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, h, http.MethodPost, "/v1/keys", "", map[string]any{"id": "k2", "material": []byte{1}})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	for range 5 {
		w = doJSON(t, h, http.MethodPost, "/v1/alerts", "", map[string]any{"key_id": "k1"})
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRouter_AuditRoutesAbsentWhenDisabled(t *testing.T) {
	server, _ := setupFullRouter(t, newTestConfig())

	w := doJSON(t, server.GetHandler(), http.MethodGet, "/v1/audit/records", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestServer_ShutdownGracefully tests graceful server shutdown.
func TestServer_ShutdownGracefully(t *testing.T) {
	server, _ := setupFullRouter(t, newTestConfig())
	server.server.Addr = "127.0.0.1:0"

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start(context.Background())
	}()

	time.Sleep(100 * time.Millisecond)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	assert.NoError(t, server.Shutdown(shutdownCtx))
	assert.NoError(t, <-errChan)
	assert.True(t, server.shuttingDown.Load())
}

// TestMetricsServer_Endpoints tests the metrics server endpoints.
func TestMetricsServer_Endpoints(t *testing.T) {
	provider, err := metrics.NewProvider("test_app", testRegion)
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	metricsServer := NewMetricsServer("localhost", 8081, newDiscardLogger(), provider)
	require.NotNil(t, metricsServer)

	w := httptest.NewRecorder()
	metricsServer.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
}

func TestMetricsServer_NilProvider(t *testing.T) {
	metricsServer := NewMetricsServer("localhost", 8081, newDiscardLogger(), nil)

	w := httptest.NewRecorder()
	metricsServer.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestServer_NoMetricsEndpoint verifies the API server does not expose /metrics.
func TestServer_NoMetricsEndpoint(t *testing.T) {
	server, _ := setupFullRouter(t, newTestConfig())

	w := doJSON(t, server.GetHandler(), http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
