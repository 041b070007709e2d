package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/keyshred/internal/errors"
)

func TestHandleErrorGin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedError  string
	}{
		{"NotFound", apperrors.Wrap(apperrors.ErrNotFound, "key not found"), http.StatusNotFound, "not_found"},
		{"Conflict", apperrors.Wrap(apperrors.ErrConflict, "duplicate key id"), http.StatusConflict, "conflict"},
		{"InvalidInput", apperrors.Wrap(apperrors.ErrInvalidInput, "empty"), http.StatusUnprocessableEntity, "invalid_input"},
		{"Unauthorized", apperrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
		{"Unavailable", apperrors.Wrap(apperrors.ErrUnavailable, "mlock"), http.StatusServiceUnavailable, "unavailable"},
		{"Invariant", apperrors.Wrap(apperrors.ErrInvariant, "double wipe"), http.StatusInternalServerError, "internal_error"},
		{"Unknown", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleErrorGin(c, tt.err, logger)

			assert.Equal(t, tt.expectedStatus, w.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedError, resp.Error)
		})
	}

	t.Run("InternalDetailsHidden", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		HandleErrorGin(c, errors.New("pq: password authentication failed"), logger)

		assert.NotContains(t, w.Body.String(), "pq:")
	})

	t.Run("NilError", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		HandleErrorGin(c, nil, logger)
		assert.Empty(t, w.Body.String())
	})
}

func TestHandleBadRequestGin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleBadRequestGin(c, errors.New("unexpected EOF"), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"bad_request","message":"unexpected EOF"}`, w.Body.String())
}

func TestHandleBadRequestGin_BodyTooLarge(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	err := fmt.Errorf("decode: %w", &http.MaxBytesError{Limit: 1024})
	HandleBadRequestGin(c, err, nil)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.JSONEq(t, `{"error":"payload_too_large","message":"request body exceeds 1024 bytes"}`, w.Body.String())
}

func TestHandleValidationErrorGin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleValidationErrorGin(c, errors.New("id: cannot be blank."), nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"error":"validation_error","message":"id: cannot be blank."}`, w.Body.String())
}

func TestMapError_MessageExposure(t *testing.T) {
	status, resp := mapError(apperrors.Wrap(apperrors.ErrConflict, "duplicate key"))
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "duplicate key: conflict", resp.Message)

	status, resp = mapError(apperrors.Wrap(apperrors.ErrNotFound, "key tenant-42 not found"))
	assert.Equal(t, http.StatusNotFound, status)
	assert.NotContains(t, resp.Message, "tenant-42")
}
