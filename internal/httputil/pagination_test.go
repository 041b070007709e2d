package httputil_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/keyshred/internal/errors"
	"github.com/allisson/keyshred/internal/httputil"
)

func newTestContext(url string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, url, nil)
	return c
}

func TestParsePagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		url            string
		expectedOffset int
		expectedLimit  int
		expectError    bool
	}{
		{name: "default values", url: "/", expectedOffset: 0, expectedLimit: 50},
		{name: "valid custom values", url: "/?offset=10&limit=20", expectedOffset: 10, expectedLimit: 20},
		{name: "max limit", url: "/?limit=100", expectedOffset: 0, expectedLimit: 100},
		{name: "offset negative", url: "/?offset=-1", expectError: true},
		{name: "offset not an integer", url: "/?offset=abc", expectError: true},
		{name: "limit zero", url: "/?limit=0", expectError: true},
		{name: "limit exceeds max", url: "/?limit=101", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit, err := httputil.ParsePagination(newTestContext(tt.url))

			if tt.expectError {
				assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
				assert.Zero(t, offset)
				assert.Zero(t, limit)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedOffset, offset)
			assert.Equal(t, tt.expectedLimit, limit)
		})
	}
}

func TestParseTimeRange(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success_NoBounds", func(t *testing.T) {
		from, to, err := httputil.ParseTimeRange(newTestContext("/"))
		require.NoError(t, err)
		assert.Nil(t, from)
		assert.Nil(t, to)
	})

	t.Run("Success_BothBounds", func(t *testing.T) {
		from, to, err := httputil.ParseTimeRange(
			newTestContext("/?created_at_from=2026-01-02T03:04:05Z&created_at_to=2026-01-03T00:00:00%2B02:00"),
		)
		require.NoError(t, err)
		require.NotNil(t, from)
		require.NotNil(t, to)
		assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), *from)
		assert.Equal(t, time.Date(2026, 1, 2, 22, 0, 0, 0, time.UTC), *to)
	})

	t.Run("Error_InvalidFormat", func(t *testing.T) {
		_, _, err := httputil.ParseTimeRange(newTestContext("/?created_at_from=yesterday"))
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Error_InvertedRange", func(t *testing.T) {
		_, _, err := httputil.ParseTimeRange(
			newTestContext("/?created_at_from=2026-01-02T00:00:00Z&created_at_to=2026-01-01T00:00:00Z"),
		)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}
