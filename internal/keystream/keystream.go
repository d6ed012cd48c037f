// Package keystream generates the infinite deterministic byte sequence that
// passwords are drawn from.
//
// Block i of the stream is SHA256(canonical([primary, secondary, i])); the
// 32 bytes of each block are yielded in order before block i+1 is computed.
// A Generator holds only its seeds, the current block and a cursor, so
// restarting with the same seeds reproduces the sequence from the first byte.
package keystream

import (
	"github.com/dmitrijs2005/derivepass/internal/canon"
	"github.com/dmitrijs2005/derivepass/internal/cryptox"
)

// BlockSize is the number of keystream bytes produced per digest.
const BlockSize = cryptox.DigestSize

// Generator is a restartable keystream cursor.
//
// A Generator is not safe for concurrent use; independent Generators share
// nothing and may run in parallel freely.
type Generator struct {
	primary   string
	secondary string

	// index is the block number held in block.
	index  uint64
	block  [BlockSize]byte
	cursor int
	primed bool
}

// New returns a Generator positioned at the first byte of the stream for
// the given seeds.
func New(primary, secondary string) *Generator {
	return &Generator{primary: primary, secondary: secondary}
}

// Reset rewinds g to the start of its stream.
func (g *Generator) Reset() {
	g.index = 0
	g.cursor = 0
	g.primed = false
	g.block = [BlockSize]byte{}
}

// Index reports the number of the block the next byte comes from.
func (g *Generator) Index() uint64 {
	if g.primed && g.cursor == BlockSize {
		return g.index + 1
	}
	return g.index
}

// Next returns the next byte of the stream. It never runs out.
func (g *Generator) Next() byte {
	switch {
	case !g.primed:
		g.fill()
		g.primed = true
	case g.cursor == BlockSize:
		g.index++
		g.fill()
	}
	b := g.block[g.cursor]
	g.cursor++
	return b
}

// Read fills p with the next len(p) bytes of the stream. It always returns
// len(p), nil so a Generator can be handed to anything taking an io.Reader.
func (g *Generator) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = g.Next()
	}
	return len(p), nil
}

func (g *Generator) fill() {
	l := canon.NewList(len(g.primary) + len(g.secondary) + 32)
	l.AppendString(g.primary).AppendString(g.secondary).AppendUint(g.index)
	g.block = cryptox.Digest(l.Bytes())
	g.cursor = 0
}

// Block computes block index of the stream for the given seeds directly,
// without walking the preceding blocks.
func Block(primary, secondary string, index uint64) [BlockSize]byte {
	g := &Generator{primary: primary, secondary: secondary, index: index}
	g.fill()
	return g.block
}
