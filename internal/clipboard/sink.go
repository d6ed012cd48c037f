package clipboard

import (
	"sync"

	"github.com/atotto/clipboard"
)

// SystemClipboard writes to the OS clipboard (pbcopy, xclip/xsel/wl-copy,
// or the Windows clipboard API, depending on the platform).
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// MemorySink is an in-process clipboard used when no system clipboard is
// available, and in tests.
type MemorySink struct {
	mu     sync.Mutex
	text   string
	writes int
}

func (m *MemorySink) WriteAll(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	m.writes++
	return nil
}

// Text returns the last value written.
func (m *MemorySink) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// Writes returns how many times WriteAll was called.
func (m *MemorySink) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
