// Package clipboard governs how a derived password is exposed on the system
// clipboard and wiped from it.
//
// A Session is a three-state machine:
//
//	Idle --Reveal--> Revealed --Dismiss--> Wiped --Reveal--> Revealed
//
// Wiping only happens on an explicit Dismiss; there is no timer. If Dismiss
// never runs, the password stays on the clipboard.
package clipboard

import (
	"fmt"
	"sync"

	"github.com/dmitrijs2005/derivepass/internal/common"
)

// State is the clipboard lifecycle state of a Session.
type State int

const (
	Idle State = iota
	Revealed
	Wiped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Revealed:
		return "revealed"
	case Wiped:
		return "wiped"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Event is emitted after a successful transition.
type Event int

const (
	Copied Event = iota
	Cleared
)

// Message is the user-facing notification text for e.
func (e Event) Message() string {
	switch e {
	case Copied:
		return "Password copied to clipboard"
	case Cleared:
		return "Clipboard wiped"
	default:
		return ""
	}
}

// Writer is a write-only clipboard sink. The session never reads back
// from it.
type Writer interface {
	WriteAll(text string) error
}

// Notifier receives an Event after each successful transition.
type Notifier func(Event)

// Session tracks what the clipboard holds on behalf of one user.
// It is safe for concurrent use.
type Session struct {
	mu     sync.Mutex
	state  State
	sink   Writer
	notify Notifier
}

// NewSession returns an Idle session writing to sink. notify may be nil.
func NewSession(sink Writer, notify Notifier) *Session {
	if notify == nil {
		notify = func(Event) {}
	}
	return &Session{sink: sink, notify: notify}
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Reveal places password on the clipboard and moves to Revealed. It is
// valid from any state. An empty password returns common.ErrNothingToReveal.
// If the sink fails, the state is unchanged.
func (s *Session) Reveal(password string) error {
	if password == "" {
		return common.ErrNothingToReveal
	}

	s.mu.Lock()
	if err := s.sink.WriteAll(password); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	s.state = Revealed
	s.mu.Unlock()

	s.notify(Copied)
	return nil
}

// Dismiss overwrites the clipboard with "" and moves Revealed to Wiped.
// It reports whether a wipe happened; outside Revealed it does nothing.
// If the sink fails, the state stays Revealed.
func (s *Session) Dismiss() (bool, error) {
	s.mu.Lock()
	if s.state != Revealed {
		s.mu.Unlock()
		return false, nil
	}
	if err := s.sink.WriteAll(""); err != nil {
		s.mu.Unlock()
		return false, fmt.Errorf("failed to wipe clipboard: %w", err)
	}
	s.state = Wiped
	s.mu.Unlock()

	s.notify(Cleared)
	return true, nil
}
