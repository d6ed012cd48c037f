// Package common defines shared constants and sentinel errors used across
// the derivation core, the verification store and the CLI. Callers should
// use errors.Is to match these values.
package common

import "errors"

var (
	// Derivation errors (caller bugs, validate before calling).
	ErrInvalidAlphabet = errors.New("invalid alphabet: must contain at least one character")
	ErrInvalidLength   = errors.New("invalid length: out of range")

	// Canonical encoding errors.
	ErrUnsupportedValue = errors.New("unsupported canonical value")

	// Verification errors.
	ErrCorruptRecord      = errors.New("corrupt verification record")
	ErrPassphraseMismatch = errors.New("passphrase does not match the stored hash")

	// Setup flow errors.
	ErrPassphraseRequired = errors.New("passphrase is required")
	ErrPassphraseConfirm  = errors.New("passphrases do not match")

	// Clipboard errors.
	ErrNothingToReveal = errors.New("nothing to reveal: password is empty")
)
