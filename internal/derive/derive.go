// Package derive turns a master passphrase and an application identity into
// a reproducible password.
//
// The password is a pure function of (passphrase, application, increment,
// length, alphabet): each output character is alphabet[b mod len(alphabet)]
// for the next keystream byte b. The modulo mapping is slightly biased when
// len(alphabet) does not divide 256; changing it would change every password
// ever derived, so it stays.
package derive

import (
	"strconv"
	"strings"

	"github.com/dmitrijs2005/derivepass/internal/common"
	"github.com/dmitrijs2005/derivepass/internal/keystream"
)

// Seed is the identity a password is derived from.
type Seed struct {
	// Primary is the passphrase with every ' ' removed.
	Primary string
	// Application is the application identifier as typed.
	Application string
	// Increment is the rotation counter for Application.
	Increment uint64
}

// NewSeed builds a Seed from raw user input.
func NewSeed(passphrase, application string, increment uint64) Seed {
	return Seed{
		Primary:     strings.ReplaceAll(passphrase, " ", ""),
		Application: application,
		Increment:   increment,
	}
}

// Secondary is the application identifier followed by the decimal increment.
func (s Seed) Secondary() string {
	return s.Application + strconv.FormatUint(s.Increment, 10)
}

// Complete reports whether both halves of the identity are present.
func (s Seed) Complete() bool {
	return s.Primary != "" && s.Application != ""
}

// Encode draws length bytes from the keystream of seed and maps each onto
// alphabet, which is indexed by code point.
//
// An incomplete seed yields "" with no error. An empty alphabet returns
// common.ErrInvalidAlphabet, a length outside [0, common.MaxLength]
// common.ErrInvalidLength.
func Encode(seed Seed, length int, alphabet string) (string, error) {
	if !seed.Complete() {
		return "", nil
	}
	if length < 0 || length > common.MaxLength {
		return "", common.ErrInvalidLength
	}
	chars := []rune(alphabet)
	if len(chars) == 0 {
		return "", common.ErrInvalidAlphabet
	}

	g := keystream.New(seed.Primary, seed.Secondary())
	n := len(chars)

	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		sb.WriteRune(chars[int(g.Next())%n])
	}
	return sb.String(), nil
}

// Request carries the raw field values of one derivation.
type Request struct {
	Passphrase  string
	Application string
	Increment   uint64
	Length      int
	Alphabet    string
}

// Seed returns the derivation identity of r.
func (r Request) Seed() Seed {
	return NewSeed(r.Passphrase, r.Application, r.Increment)
}

// Generate derives the password for r.
func Generate(r Request) (string, error) {
	return Encode(r.Seed(), r.Length, r.Alphabet)
}
