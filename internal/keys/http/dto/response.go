package dto

import (
	"time"

	keysDomain "github.com/allisson/keyshred/internal/keys/domain"
)

// KeyResponse represents a registered key in API responses. It never carries material.
type KeyResponse struct {
	ID        string    `json:"id"`
	Region    string    `json:"region"`
	Length    int       `json:"length"`
	Locked    bool      `json:"locked"`
	CreatedAt time.Time `json:"created_at"`
}

// MapKeyInfoToResponse converts key metadata to an API response.
func MapKeyInfoToResponse(region string, info keysDomain.KeyInfo) KeyResponse {
	return KeyResponse{
		ID:        info.ID,
		Region:    region,
		Length:    info.Length,
		Locked:    info.Locked,
		CreatedAt: info.CreatedAt,
	}
}

// ShredOutcomeResponse represents the result of one shred request.
type ShredOutcomeResponse struct {
	KeyID          string    `json:"key_id"`
	Region         string    `json:"region"`
	Found          bool      `json:"found"`
	Verified       bool      `json:"verified"`
	ElapsedMicros  int64     `json:"elapsed_us"`
	Classification string    `json:"classification"`
	RequestedAt    time.Time `json:"requested_at"`
}

// MapOutcomeToResponse converts a shred outcome to an API response.
func MapOutcomeToResponse(outcome keysDomain.ShredOutcome) ShredOutcomeResponse {
	return ShredOutcomeResponse{
		KeyID:          outcome.KeyID,
		Region:         outcome.Region,
		Found:          outcome.Found,
		Verified:       outcome.Verified,
		ElapsedMicros:  outcome.ElapsedMicros(),
		Classification: string(outcome.Classification),
		RequestedAt:    outcome.RequestedAt,
	}
}

// ShredAllResponse represents the outcomes of a shred-all request.
type ShredAllResponse struct {
	Data  []ShredOutcomeResponse `json:"data"`
	Count int                    `json:"count"`
}

// MapOutcomesToShredAllResponse converts shred-all outcomes to an API response.
func MapOutcomesToShredAllResponse(outcomes []keysDomain.ShredOutcome) ShredAllResponse {
	data := make([]ShredOutcomeResponse, 0, len(outcomes))
	for _, outcome := range outcomes {
		data = append(data, MapOutcomeToResponse(outcome))
	}
	return ShredAllResponse{Data: data, Count: len(data)}
}

// NodeResponse describes the node and how many keys it currently holds.
type NodeResponse struct {
	Region   string `json:"region"`
	KeyCount int    `json:"key_count"`
}
