// Package input turns a raw terminal byte stream into per-frame key state.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key counts as held after its last byte.
// Terminals only report repeats, so this bridges the gap between them.
const keyHoldDuration = 60 * time.Millisecond

// Input is the current frame's key state.
type Input struct {
	Quit   bool
	Left   bool
	Right  bool
	Up     bool
	Space  bool
	Enter  bool
	Closed bool // the reader hit EOF or an error
	// Pressed holds the raw bytes received this frame; any key press
	// counts as activity.
	Pressed []byte
}

type keyState struct {
	quit  time.Time
	left  time.Time
	right time.Time
	up    time.Time
	space time.Time
	enter time.Time
}

// Stream delivers input bytes over a channel and remembers when each key
// was last seen so held and combined keys can be detected.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

// StartStream spawns a goroutine that reads from r until it fails.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains the stream without blocking and reports the keys held
// right now.
func ReadInput(s *Stream) Input {
	return readInputAt(s, time.Now())
}

func readInputAt(s *Stream, now time.Time) Input {
	var buf []byte
drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	for i := 0; i < len(buf); i++ {
		b := buf[i]
		// Arrow keys arrive as ESC [ A..D.
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.up = now
			case 'C':
				s.state.right = now
			case 'D':
				s.state.left = now
			}
			i += 2
			continue
		}
		applyByteToState(&s.state, b, now)
	}

	held := func(t time.Time) bool { return now.Sub(t) < keyHoldDuration }
	return Input{
		Quit:    held(s.state.quit),
		Left:    held(s.state.left),
		Right:   held(s.state.right),
		Up:      held(s.state.up),
		Space:   held(s.state.space),
		Enter:   held(s.state.enter),
		Closed:  s.closed,
		Pressed: buf,
	}
}

func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', 0x03: // ctrl-c
		state.quit = now
	case 'a', 'A', 'j', 'J':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'i', 'I':
		state.up = now
	case ' ':
		state.space = now
	case '\n', '\r':
		state.enter = now
	}
}
