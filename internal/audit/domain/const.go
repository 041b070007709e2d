package domain

// SigningKeySize is the required length of the audit root signing key in bytes.
const SigningKeySize = 32

// SigningKeyID identifies the signing key buffer in logs.
const SigningKeyID = "audit-signing-key"
