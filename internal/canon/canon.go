// Package canon produces the canonical byte serialization of small tuples of
// strings and non-negative integers that is fed into SHA-256 by the
// keystream and the verification record.
//
// The format is a compact JSON array, byte-for-byte identical to what
// ECMAScript's JSON.stringify emits for the same values:
//
//	["hello world","app",3]
//
// Strings escape only '"', '\\' and control characters below U+0020
// (\b \t \n \f \r use their short forms, the rest \u00xx with lower-case hex).
// Everything else, including '<', '>', '&', U+007F, U+2028 and U+2029, is
// written verbatim as UTF-8. Integers use their minimal decimal form.
//
// Any deviation here silently changes every derived password, so the rules
// are pinned by conformance tests.
package canon

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/dmitrijs2005/derivepass/internal/common"
)

const hexDigits = "0123456789abcdef"

// List accumulates values into a canonical JSON array.
// The zero value is an empty list ready for use.
type List struct {
	buf []byte
	n   int
}

// NewList returns a List whose buffer is pre-sized for roughly size bytes.
func NewList(size int) *List {
	return &List{buf: make([]byte, 0, size)}
}

func (l *List) sep() {
	if l.n == 0 {
		l.buf = append(l.buf, '[')
	} else {
		l.buf = append(l.buf, ',')
	}
	l.n++
}

// AppendString adds s as a JSON string element.
func (l *List) AppendString(s string) *List {
	l.sep()
	l.buf = appendString(l.buf, s)
	return l
}

// AppendUint adds n as a JSON number element.
func (l *List) AppendUint(n uint64) *List {
	l.sep()
	l.buf = strconv.AppendUint(l.buf, n, 10)
	return l
}

// Bytes returns the closed array. The List may keep being appended to
// afterwards; each call returns a fresh slice.
func (l *List) Bytes() []byte {
	out := make([]byte, 0, len(l.buf)+2)
	if l.n == 0 {
		return append(out, '[', ']')
	}
	out = append(out, l.buf...)
	return append(out, ']')
}

// Encode serializes values, in order, as a canonical JSON array.
//
// Supported element types are string and the integer kinds. Negative
// integers and any other type return common.ErrUnsupportedValue.
func Encode(values ...any) ([]byte, error) {
	l := NewList(64)
	for i, v := range values {
		switch x := v.(type) {
		case string:
			l.AppendString(x)
		case uint:
			l.AppendUint(uint64(x))
		case uint8:
			l.AppendUint(uint64(x))
		case uint16:
			l.AppendUint(uint64(x))
		case uint32:
			l.AppendUint(uint64(x))
		case uint64:
			l.AppendUint(x)
		case int:
			if x < 0 {
				return nil, fmt.Errorf("element %d (%d): %w", i, x, common.ErrUnsupportedValue)
			}
			l.AppendUint(uint64(x))
		case int32:
			if x < 0 {
				return nil, fmt.Errorf("element %d (%d): %w", i, x, common.ErrUnsupportedValue)
			}
			l.AppendUint(uint64(x))
		case int64:
			if x < 0 {
				return nil, fmt.Errorf("element %d (%d): %w", i, x, common.ErrUnsupportedValue)
			}
			l.AppendUint(uint64(x))
		default:
			return nil, fmt.Errorf("element %d (%T): %w", i, v, common.ErrUnsupportedValue)
		}
	}
	return l.Bytes(), nil
}

// appendString writes s as a JSON string literal. Invalid UTF-8 sequences
// are replaced with U+FFFD so the output is always valid UTF-8.
func appendString(dst []byte, s string) []byte {
	dst = append(dst, '"')
	start := 0
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			if c >= 0x20 && c != '"' && c != '\\' {
				i++
				continue
			}
			dst = append(dst, s[start:i]...)
			switch c {
			case '"', '\\':
				dst = append(dst, '\\', c)
			case '\b':
				dst = append(dst, '\\', 'b')
			case '\t':
				dst = append(dst, '\\', 't')
			case '\n':
				dst = append(dst, '\\', 'n')
			case '\f':
				dst = append(dst, '\\', 'f')
			case '\r':
				dst = append(dst, '\\', 'r')
			default:
				dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xF])
			}
			i++
			start = i
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			dst = append(dst, s[start:i]...)
			dst = utf8.AppendRune(dst, utf8.RuneError)
			i += size
			start = i
			continue
		}
		i += size
	}
	dst = append(dst, s[start:]...)
	return append(dst, '"')
}
