// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/keyshred/internal/validation"
)

// ProvisionKeyRequest contains the parameters for loading a key into the node.
// Material is base64 in JSON and arrives here already decoded.
type ProvisionKeyRequest struct {
	ID       string `json:"id"`
	Material []byte `json:"material"`
	// Wrapped marks Material as ciphertext from the configured KMS keeper.
	Wrapped bool `json:"wrapped"`
}

// Validate checks if the provision key request is valid.
func (r *ProvisionKeyRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ID, keyIDRules()...),
		validation.Field(&r.Material,
			validation.Required,
			validation.Length(1, 0),
		),
	)
}

// TriggerShredRequest contains the key id named by an alert.
type TriggerShredRequest struct {
	KeyID string `json:"key_id"`
}

// Validate checks if the trigger shred request is valid.
func (r *TriggerShredRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.KeyID, keyIDRules()...),
	)
}

func keyIDRules() []validation.Rule {
	return []validation.Rule{
		validation.Required,
		validation.Length(1, customValidation.MaxKeyIDLength),
		customValidation.NoWhitespace,
		customValidation.KeyID,
	}
}
