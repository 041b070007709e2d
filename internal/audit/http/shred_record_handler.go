// Package http provides HTTP handlers for reading the shred audit trail.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/keyshred/internal/audit/http/dto"
	auditUseCase "github.com/allisson/keyshred/internal/audit/usecase"
	"github.com/allisson/keyshred/internal/httputil"
)

// ShredRecordHandler handles HTTP requests for shred audit records.
type ShredRecordHandler struct {
	auditUseCase auditUseCase.AuditUseCase
	logger       *slog.Logger
}

// NewShredRecordHandler creates a new shred record handler.
func NewShredRecordHandler(auditUseCase auditUseCase.AuditUseCase, logger *slog.Logger) *ShredRecordHandler {
	return &ShredRecordHandler{
		auditUseCase: auditUseCase,
		logger:       logger,
	}
}

// ListHandler retrieves shred records newest first.
// GET /v1/audit/records?offset=0&limit=50&created_at_from=2026-02-01T00:00:00Z&created_at_to=2026-02-14T23:59:59Z
// Both time bounds are optional, RFC3339 and inclusive.
func (h *ShredRecordHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	createdAtFrom, createdAtTo, err := httputil.ParseTimeRange(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	records, err := h.auditUseCase.List(c.Request.Context(), offset, limit, createdAtFrom, createdAtTo)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapShredRecordsToListResponse(records))
}
