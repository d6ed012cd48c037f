// Package metadata is the local key-value store behind the verification
// record. Values are opaque bytes keyed by a string.
package metadata

import (
	"context"
)

// Repository stores opaque values under string keys.
//
// Get returns (nil, nil) when the key is absent; absence is a normal state,
// not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
