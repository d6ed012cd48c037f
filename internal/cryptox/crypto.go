// Package cryptox wraps the SHA-256 digest used throughout derivepass.
//
// Every function here is pure: the same input always produces the same
// output and no state is shared between calls, so they are safe to call
// from any number of goroutines.
package cryptox

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/dmitrijs2005/derivepass/internal/canon"
)

// DigestSize is the number of bytes produced by Digest.
const DigestSize = sha256.Size

// Digest returns the SHA-256 digest of b.
func Digest(b []byte) [DigestSize]byte {
	return sha256.Sum256(b)
}

// DigestHex returns the lower-case hex encoding of Digest(b).
func DigestHex(b []byte) string {
	sum := Digest(b)
	return hex.EncodeToString(sum[:])
}

// MakeVerifier computes the verification hash stored next to a salt:
//
//	hex(SHA256(canonical([passphrase, salt])))
//
// The passphrase is hashed exactly as given; no whitespace is stripped.
func MakeVerifier(passphrase, salt string) string {
	l := canon.NewList(len(passphrase) + len(salt) + 8)
	l.AppendString(passphrase).AppendString(salt)
	return DigestHex(l.Bytes())
}
