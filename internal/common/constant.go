// Package common contains shared constants and sentinel errors used across
// derivepass components.
package common

// VerificationRecordKey is the well-known metadata key under which the
// passphrase verification record is persisted.
const VerificationRecordKey = "pass"

// DefaultAlphabet is the character set offered when none is configured.
const DefaultAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%^&*()"

// DefaultLength is the password length offered when none is configured.
const DefaultLength = 40

// MaxLength is the longest password that will be derived. Longer requests
// are rejected with ErrInvalidLength.
const MaxLength = 4096
