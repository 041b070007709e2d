package commands

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	keysService "github.com/allisson/keyshred/internal/keys/service"
)

// RunWrapKey encrypts key material with the KMS behind wrapper and prints a
// provisioning request body with wrapped set. When materialB64 is empty, size
// random bytes are generated. Plaintext material is zeroed before returning.
func RunWrapKey(
	ctx context.Context,
	wrapper keysService.KeyWrapper,
	writer io.Writer,
	keyID string,
	materialB64 string,
	size int,
	format string,
) error {
	if keyID == "" {
		return fmt.Errorf("key id is required")
	}

	var material []byte
	if materialB64 != "" {
		decoded, err := base64.StdEncoding.DecodeString(materialB64)
		if err != nil {
			return fmt.Errorf("invalid material (expected standard base64): %w", err)
		}
		material = decoded
	} else {
		if size <= 0 {
			return fmt.Errorf("size must be a positive number, got: %d", size)
		}
		material = make([]byte, size)
		if _, err := rand.Read(material); err != nil {
			return fmt.Errorf("failed to generate key material: %w", err)
		}
	}
	defer zero(material)

	wrapped, err := wrapper.Wrap(ctx, material)
	if err != nil {
		return fmt.Errorf("failed to wrap key material: %w", err)
	}

	if format == "json" {
		body := map[string]interface{}{
			"id":       keyID,
			"material": base64.StdEncoding.EncodeToString(wrapped),
			"wrapped":  true,
		}
		jsonBytes, err := json.MarshalIndent(body, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, _ = fmt.Fprintln(writer, string(jsonBytes))
		return nil
	}

	_, _ = fmt.Fprintf(writer, "# Wrapped key material for %q (%d plaintext bytes)\n", keyID, len(material))
	_, _ = fmt.Fprintf(writer, "# Provision with: POST /v1/keys {\"id\": %q, \"material\": \"<below>\", \"wrapped\": true}\n", keyID)
	_, _ = fmt.Fprintln(writer, base64.StdEncoding.EncodeToString(wrapped))
	return nil
}
