package middleware

import (
	"context"
	"errors"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lizet96/financial-data-backend/apperrors"
	"github.com/lizet96/financial-data-backend/models"
)

type memoryStore struct {
	mu      sync.Mutex
	entries []models.RequestLog
	err     error
}

func (m *memoryStore) Insert(ctx context.Context, entry models.RequestLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
	return m.err
}

func (m *memoryStore) snapshot() []models.RequestLog {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.RequestLog(nil), m.entries...)
}

func newLoggedApp(store LogStore) *fiber.App {
	app := fiber.New()
	app.Use(LoggingMiddleware(store, models.EnvironmentTesting, zap.NewNop()))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/bad-sort", func(c *fiber.Ctx) error { return apperrors.NewInvalidFilterKeyError("Foo") })
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("boom") })
	return app
}

func waitForEntries(t *testing.T, store *memoryStore, n int) []models.RequestLog {
	t.Helper()
	require.Eventually(t, func() bool { return len(store.snapshot()) >= n }, time.Second, 10*time.Millisecond)
	return store.snapshot()
}

func TestLoggingMiddleware_RecordsRequest(t *testing.T) {
	store := &memoryStore{}
	app := newLoggedApp(store)

	req := httptest.NewRequest("GET", "/ok?sort_by=Revenue&descending=true", nil)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	entries := waitForEntries(t, store, 1)
	e := entries[0]
	assert.Equal(t, "GET", e.Method)
	assert.Equal(t, "/ok", e.Path)
	assert.Equal(t, 200, e.StatusCode)
	assert.Equal(t, "203.0.113.7", e.IP)
	require.NotNil(t, e.UserAgent)
	assert.Equal(t, "test-agent", *e.UserAgent)
	require.NotNil(t, e.Query)
	assert.Equal(t, "sort_by=Revenue&descending=true", *e.Query)
	assert.Equal(t, models.LogLevelSuccess, e.LogLevel)
	assert.Equal(t, models.EnvironmentTesting, e.Environment)
	assert.Equal(t, "/ok?sort_by=Revenue&descending=true", e.URL)
}

func TestLoggingMiddleware_StatusFromErrors(t *testing.T) {
	tests := []struct {
		path   string
		status int
		level  string
	}{
		{"/bad-sort", 400, models.LogLevelWarning},
		{"/boom", 500, models.LogLevelError},
		{"/missing", 404, models.LogLevelWarning},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			store := &memoryStore{}
			app := newLoggedApp(store)

			_, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)

			entries := waitForEntries(t, store, 1)
			assert.Equal(t, tt.status, entries[0].StatusCode)
			assert.Equal(t, tt.level, entries[0].LogLevel)
			assert.Nil(t, entries[0].Query)
		})
	}
}

func TestLoggingMiddleware_StoreFailureDoesNotAffectResponse(t *testing.T) {
	store := &memoryStore{err: errors.New("db down")}
	app := newLoggedApp(store)

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	waitForEntries(t, store, 1)
}

func TestDetermineLogLevel(t *testing.T) {
	assert.Equal(t, models.LogLevelSuccess, determineLogLevel(204))
	assert.Equal(t, models.LogLevelInfo, determineLogLevel(304))
	assert.Equal(t, models.LogLevelWarning, determineLogLevel(429))
	assert.Equal(t, models.LogLevelError, determineLogLevel(502))
	assert.Equal(t, models.LogLevelInfo, determineLogLevel(100))
}

func TestCreateRateLimiter(t *testing.T) {
	app := fiber.New()
	app.Use(CreateRateLimiter(RateLimitConfig{Max: 2, Expiration: time.Minute}))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}

func TestSecurityHeaders(t *testing.T) {
	app := fiber.New()
	app.Use(SecurityHeaders())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
}
