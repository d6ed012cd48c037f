// Package verify implements the local passphrase verification record: a
// salted SHA-256 of the master passphrase that lets the CLI catch a mistyped
// passphrase before it silently derives the wrong password.
//
// The record is a convenience, not a vault: a single hash iteration, stored
// unencrypted, with no attempt at rate limiting.
package verify

import (
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/derivepass/internal/common"
	"github.com/dmitrijs2005/derivepass/internal/cryptox"
)

// SaltSize is the number of random bytes in a salt (hex-encoded on disk).
const SaltSize = 64

// Record is the persisted {salt, hash} pair.
type Record struct {
	Salt string `json:"salt"`
	Hash string `json:"hash"`
}

// Outcome is the result of checking a passphrase against a record.
type Outcome int

const (
	// NoRecord means no usable record exists; any passphrase is accepted.
	NoRecord Outcome = iota
	Match
	Mismatch
)

func (o Outcome) String() string {
	switch o {
	case NoRecord:
		return "no_record"
	case Match:
		return "match"
	case Mismatch:
		return "mismatch"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// makeSalt is a test seam for the random salt source.
var makeSalt = func() (string, error) {
	return common.MakeRandHexString(SaltSize)
}

// NewRecord salts and hashes passphrase into a fresh record.
func NewRecord(passphrase string) (Record, error) {
	salt, err := makeSalt()
	if err != nil {
		return Record{}, fmt.Errorf("failed to generate salt: %w", err)
	}
	return Record{Salt: salt, Hash: cryptox.MakeVerifier(passphrase, salt)}, nil
}

// Check compares passphrase against rec. A nil rec yields NoRecord.
// The comparison is exact and does not short-circuit on the first
// differing byte.
func Check(passphrase string, rec *Record) Outcome {
	if rec == nil {
		return NoRecord
	}
	candidate := cryptox.MakeVerifier(passphrase, rec.Salt)
	if subtle.ConstantTimeCompare([]byte(candidate), []byte(rec.Hash)) == 1 {
		return Match
	}
	return Mismatch
}

// Validate reports whether rec has the shape written by NewRecord: a salt
// of SaltSize bytes and a SHA-256 hash, both as lowercase hex. Anything else
// could never match and would lock the user out.
func (rec Record) Validate() error {
	if len(rec.Salt) != hex.EncodedLen(SaltSize) {
		return fmt.Errorf("%w: salt has %d characters", common.ErrCorruptRecord, len(rec.Salt))
	}
	if !isLowerHex(rec.Salt) {
		return fmt.Errorf("%w: salt is not lowercase hex", common.ErrCorruptRecord)
	}
	if len(rec.Hash) != hex.EncodedLen(cryptox.DigestSize) {
		return fmt.Errorf("%w: hash has %d characters", common.ErrCorruptRecord, len(rec.Hash))
	}
	if !isLowerHex(rec.Hash) {
		return fmt.Errorf("%w: hash is not lowercase hex", common.ErrCorruptRecord)
	}
	return nil
}

func isLowerHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

// ParseRecord decodes a persisted record. Anything that does not decode
// into a valid Record returns an error wrapping common.ErrCorruptRecord.
func ParseRecord(data []byte) (*Record, error) {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCorruptRecord, err)
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Marshal encodes rec in its persisted form, {"salt":...,"hash":...}.
func (rec Record) Marshal() ([]byte, error) {
	return json.Marshal(rec)
}
