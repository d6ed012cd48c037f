package cryptox

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigestHex_StandardVectors(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{"abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", "248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1"},
	}

	for _, tt := range tests {
		if got := DigestHex([]byte(tt.in)); got != tt.want {
			t.Errorf("DigestHex(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestDigest_SeedVector(t *testing.T) {
	// SHA-256 of the canonical seed tuple ["abc","xyz",0].
	sum := Digest([]byte(`["abc","xyz",0]`))
	assert.Equal(t, "748a91adfb865044c994f5944bb9bccc3dac55be5472862981a528f1686702f5", hex.EncodeToString(sum[:]))
}

func TestMakeVerifier_Deterministic(t *testing.T) {
	v1 := MakeVerifier("correct horse battery staple", "00ff")
	v2 := MakeVerifier("correct horse battery staple", "00ff")

	// одинаковые входы -> одинаковый вывод
	assert.Equal(t, v1, v2)

	// snapshot of hex(sha256(["correct horse battery staple","00ff"]))
	assert.Equal(t, "b4e7f1baf9b1ca8b2d0e9f2b2e4c04f18b024f566f7d01a3eacaafb486be20b9", v1)
	assert.Len(t, v1, 64)
}

func TestMakeVerifier_DifferentInputs(t *testing.T) {
	base := MakeVerifier("secret", "salt-1")

	assert.NotEqual(t, base, MakeVerifier("secret", "salt-2"), "different salts must give different hashes")
	assert.NotEqual(t, base, MakeVerifier("secret ", "salt-1"), "spaces are significant for verification")
	assert.NotEqual(t, base, MakeVerifier("secretsalt-1", ""), "tuple boundaries must not collide")
}
