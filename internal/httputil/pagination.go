package httputil

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/keyshred/internal/errors"
)

const (
	defaultLimit = 50
	maxLimit     = 100
)

// ParsePagination parses the offset and limit query parameters.
// offset defaults to 0, limit defaults to 50 and cannot exceed 100.
func ParsePagination(c *gin.Context) (offset, limit int, err error) {
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		return 0, 0, apperrors.Wrap(apperrors.ErrInvalidInput, "offset must be a non-negative integer")
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 || limit > maxLimit {
		return 0, 0, apperrors.Wrapf(apperrors.ErrInvalidInput, "limit must be between 1 and %d", maxLimit)
	}

	return offset, limit, nil
}

// ParseTimeRange parses the optional RFC 3339 created_at_from and created_at_to
// query parameters. Missing bounds are returned as nil.
func ParseTimeRange(c *gin.Context) (from, to *time.Time, err error) {
	from, err = parseOptionalTime(c, "created_at_from")
	if err != nil {
		return nil, nil, err
	}
	to, err = parseOptionalTime(c, "created_at_to")
	if err != nil {
		return nil, nil, err
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, nil, apperrors.Wrap(apperrors.ErrInvalidInput, "created_at_to must not be before created_at_from")
	}
	return from, to, nil
}

func parseOptionalTime(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidInput, "%s must be an RFC 3339 timestamp", name)
	}
	t = t.UTC()
	return &t, nil
}
