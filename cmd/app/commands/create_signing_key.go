package commands

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	auditDomain "github.com/allisson/keyshred/internal/audit/domain"
)

// RunCreateSigningKey prints a fresh AUDIT_SIGNING_KEY value.
func RunCreateSigningKey(writer io.Writer) error {
	key := make([]byte, auditDomain.SigningKeySize)
	if _, err := rand.Read(key); err != nil {
		return fmt.Errorf("failed to generate signing key: %w", err)
	}
	defer zero(key)

	_, _ = fmt.Fprintln(writer, "# Shred record signing key. Store it in a secret manager.")
	_, _ = fmt.Fprintf(writer, "AUDIT_SIGNING_KEY=\"%s\"\n", base64.StdEncoding.EncodeToString(key))
	return nil
}
