// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	auditDomain "github.com/allisson/keyshred/internal/audit/domain"
)

// ShredRecordResponse represents a stored shred record in API responses.
type ShredRecordResponse struct {
	ID             string    `json:"id"`
	KeyID          string    `json:"key_id"`
	Region         string    `json:"region"`
	Classification string    `json:"classification"`
	Found          bool      `json:"found"`
	Verified       bool      `json:"verified"`
	ElapsedMicros  int64     `json:"elapsed_us"`
	Signed         bool      `json:"signed"`
	RequestedAt    time.Time `json:"requested_at"`
	CreatedAt      time.Time `json:"created_at"`
}

// ListShredRecordsResponse represents a page of shred records.
type ListShredRecordsResponse struct {
	Data []ShredRecordResponse `json:"data"`
}

// MapShredRecordToResponse converts a domain record to an API response.
// The signature bytes are not exposed; only whether one is present.
func MapShredRecordToResponse(record *auditDomain.ShredRecord) ShredRecordResponse {
	return ShredRecordResponse{
		ID:             record.ID.String(),
		KeyID:          record.KeyID,
		Region:         record.Region,
		Classification: record.Classification,
		Found:          record.Found,
		Verified:       record.Verified,
		ElapsedMicros:  record.ElapsedMicros,
		Signed:         record.IsSigned(),
		RequestedAt:    record.RequestedAt,
		CreatedAt:      record.CreatedAt,
	}
}

// MapShredRecordsToListResponse converts domain records to a list response.
func MapShredRecordsToListResponse(records []*auditDomain.ShredRecord) ListShredRecordsResponse {
	data := make([]ShredRecordResponse, 0, len(records))
	for _, record := range records {
		data = append(data, MapShredRecordToResponse(record))
	}
	return ListShredRecordsResponse{Data: data}
}
