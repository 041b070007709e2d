// Package service provides the HMAC signer that protects audit records against tampering.
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"io"

	"golang.org/x/crypto/hkdf"

	auditDomain "github.com/allisson/keyshred/internal/audit/domain"
	"github.com/allisson/keyshred/internal/errors"
	keysDomain "github.com/allisson/keyshred/internal/keys/domain"
)

// signingInfo is the HKDF info parameter, versioned for future algorithm changes.
var signingInfo = []byte("shred-record-signing-v1")

// RecordSigner signs and verifies shred records.
type RecordSigner interface {
	Sign(record *auditDomain.ShredRecord) ([]byte, error)
	// Verify returns nil if the signature is valid, ErrSignatureInvalid otherwise.
	Verify(record *auditDomain.ShredRecord) error
	// Close wipes the root key.
	Close() error
}

// recordSigner derives an HMAC-SHA256 key from a root key held in a SecureBuffer.
type recordSigner struct {
	rootKey *keysDomain.SecureBuffer
}

// NewRecordSigner moves rootKey into protected memory and zeroes the caller's
// slice. rootKey must be exactly 32 bytes.
func NewRecordSigner(rootKey []byte) (RecordSigner, error) {
	if len(rootKey) != auditDomain.SigningKeySize {
		return nil, auditDomain.ErrSigningKeyInvalid
	}

	buf, err := keysDomain.NewSecureBuffer(auditDomain.SigningKeyID, rootKey, false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to protect audit signing key")
	}
	keysDomain.Zero(rootKey)

	return &recordSigner{rootKey: buf}, nil
}

// Sign returns the 32-byte HMAC-SHA256 signature of the record's canonical form.
func (s *recordSigner) Sign(record *auditDomain.ShredRecord) ([]byte, error) {
	var signature []byte
	err := s.rootKey.Use(func(root []byte) error {
		signingKey, err := deriveSigningKey(root)
		if err != nil {
			return err
		}
		defer keysDomain.Zero(signingKey)

		mac := hmac.New(sha256.New, signingKey)
		mac.Write(canonicalize(record))
		signature = mac.Sum(nil)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign shred record")
	}
	return signature, nil
}

// Verify recomputes the signature and compares it in constant time.
func (s *recordSigner) Verify(record *auditDomain.ShredRecord) error {
	expected, err := s.Sign(record)
	if err != nil {
		return err
	}
	if !hmac.Equal(record.Signature, expected) {
		return auditDomain.ErrSignatureInvalid
	}
	return nil
}

func (s *recordSigner) Close() error {
	return s.rootKey.Close()
}

// deriveSigningKey uses HKDF-SHA256 to derive a 32-byte signing key from the root key.
func deriveSigningKey(root []byte) ([]byte, error) {
	r := hkdf.New(sha256.New, root, nil, signingInfo)

	signingKey := make([]byte, 32)
	if _, err := io.ReadFull(r, signingKey); err != nil {
		return nil, err
	}
	return signingKey, nil
}

// canonicalize encodes the signed fields of a record:
// id || key_id || region || classification || found || verified || elapsed_us || requested_at || created_at
// Timestamps are encoded in microseconds, the precision of the audit store.
// Strings are length-prefixed so field boundaries are unambiguous.
func canonicalize(record *auditDomain.ShredRecord) []byte {
	buf := make([]byte, 0, 128)
	buf = append(buf, record.ID[:]...)
	buf = appendLengthPrefixed(buf, []byte(record.KeyID))
	buf = appendLengthPrefixed(buf, []byte(record.Region))
	buf = appendLengthPrefixed(buf, []byte(record.Classification))
	buf = append(buf, boolByte(record.Found), boolByte(record.Verified))
	buf = binary.BigEndian.AppendUint64(buf, uint64(record.ElapsedMicros))
	buf = binary.BigEndian.AppendUint64(buf, uint64(record.RequestedAt.UnixMicro()))
	buf = binary.BigEndian.AppendUint64(buf, uint64(record.CreatedAt.UnixMicro()))
	return buf
}

func appendLengthPrefixed(buf, data []byte) []byte {
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(data)))
	return append(buf, data...)
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
