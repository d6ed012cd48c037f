package clipboard

import (
	"errors"
	"testing"

	"github.com/dmitrijs2005/derivepass/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct{ events []Event }

func (r *recorder) notify(e Event) { r.events = append(r.events, e) }

type failingSink struct{ err error }

func (f failingSink) WriteAll(string) error { return f.err }

func TestSession_RevealThenDismiss(t *testing.T) {
	sink := &MemorySink{}
	rec := &recorder{}
	s := NewSession(sink, rec.notify)
	require.Equal(t, Idle, s.State())

	require.NoError(t, s.Reveal("s3cret!"))
	assert.Equal(t, Revealed, s.State())
	assert.Equal(t, "s3cret!", sink.Text())

	wiped, err := s.Dismiss()
	require.NoError(t, err)
	assert.True(t, wiped)
	assert.Equal(t, Wiped, s.State())
	assert.Equal(t, "", sink.Text())

	assert.Equal(t, []Event{Copied, Cleared}, rec.events)
}

func TestSession_RevealIsReentrantAfterWipe(t *testing.T) {
	sink := &MemorySink{}
	s := NewSession(sink, nil)

	require.NoError(t, s.Reveal("one"))
	_, err := s.Dismiss()
	require.NoError(t, err)

	require.NoError(t, s.Reveal("two"))
	assert.Equal(t, Revealed, s.State())
	assert.Equal(t, "two", sink.Text())
}

func TestSession_RevealWhileRevealedReplacesContent(t *testing.T) {
	sink := &MemorySink{}
	s := NewSession(sink, nil)

	require.NoError(t, s.Reveal("old"))
	require.NoError(t, s.Reveal("new"))
	assert.Equal(t, Revealed, s.State())
	assert.Equal(t, "new", sink.Text())
}

func TestSession_DismissOutsideRevealedIsNoop(t *testing.T) {
	sink := &MemorySink{}
	rec := &recorder{}
	s := NewSession(sink, rec.notify)

	wiped, err := s.Dismiss()
	require.NoError(t, err)
	assert.False(t, wiped)
	assert.Equal(t, Idle, s.State())
	assert.Equal(t, 0, sink.Writes())

	require.NoError(t, s.Reveal("x"))
	_, err = s.Dismiss()
	require.NoError(t, err)

	wiped, err = s.Dismiss()
	require.NoError(t, err)
	assert.False(t, wiped)
	assert.Equal(t, 2, sink.Writes())
	assert.Equal(t, []Event{Copied, Cleared}, rec.events)
}

func TestSession_EmptyPasswordNotRevealed(t *testing.T) {
	sink := &MemorySink{}
	s := NewSession(sink, nil)

	err := s.Reveal("")
	require.ErrorIs(t, err, common.ErrNothingToReveal)
	assert.Equal(t, Idle, s.State())
	assert.Equal(t, 0, sink.Writes())
}

func TestSession_SinkFailureKeepsState(t *testing.T) {
	boom := errors.New("no display")
	rec := &recorder{}
	s := NewSession(failingSink{err: boom}, rec.notify)

	err := s.Reveal("pw")
	require.ErrorIs(t, err, boom)
	assert.Equal(t, Idle, s.State())
	assert.Empty(t, rec.events)
}

func TestSession_WipeFailureStaysRevealed(t *testing.T) {
	sink := &switchSink{}
	s := NewSession(sink, nil)
	require.NoError(t, s.Reveal("pw"))

	sink.err = errors.New("gone")
	wiped, err := s.Dismiss()
	require.Error(t, err)
	assert.False(t, wiped)
	assert.Equal(t, Revealed, s.State())
}

type switchSink struct{ err error }

func (s *switchSink) WriteAll(string) error { return s.err }

func TestEvent_Message(t *testing.T) {
	assert.Equal(t, "Password copied to clipboard", Copied.Message())
	assert.Equal(t, "Clipboard wiped", Cleared.Message())
	assert.Equal(t, "wiped", Wiped.String())
}
