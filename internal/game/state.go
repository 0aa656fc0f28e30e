// Package game runs one player's session: it owns the world store, the
// singletons and the ordered list of systems executed every frame.
package game

import (
	"errors"
	"fmt"
)

// Mode is the session's gameplay state.
type Mode int

const (
	ModePlaying Mode = iota
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game over"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ErrIllegalTransition is returned when a session tries to leave GameOver.
var ErrIllegalTransition = errors.New("game: illegal state transition")

// StateHolder holds the current mode. The zero value is Playing.
type StateHolder struct {
	mode Mode
}

// Get returns the current mode.
func (s *StateHolder) Get() Mode {
	return s.mode
}

// Set moves to next. Setting the current mode again is a no-op.
// GameOver is terminal.
func (s *StateHolder) Set(next Mode) error {
	if next == s.mode {
		return nil
	}
	if s.mode == ModeGameOver || (next != ModePlaying && next != ModeGameOver) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, s.mode, next)
	}
	s.mode = next
	return nil
}
