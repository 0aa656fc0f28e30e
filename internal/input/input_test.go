package input

import (
	"bufio"
	"strings"
	"testing"
	"time"
)

func streamOf(bytes ...byte) *Stream {
	s := &Stream{ch: make(chan byte, len(bytes))}
	for _, b := range bytes {
		s.ch <- b
	}
	return s
}

func TestReadInputKeys(t *testing.T) {
	tests := []struct {
		name  string
		bytes string
		check func(Input) bool
	}{
		{"left letter", "a", func(in Input) bool { return in.Left && !in.Right }},
		{"right arrow", "\x1b[C", func(in Input) bool { return in.Right && !in.Left }},
		{"up arrow", "\x1b[A", func(in Input) bool { return in.Up }},
		{"thrust and fire", "w ", func(in Input) bool { return in.Up && in.Space }},
		{"enter", "\r", func(in Input) bool { return in.Enter }},
		{"ctrl-c quits", "\x03", func(in Input) bool { return in.Quit }},
		{"unknown key", "z", func(in Input) bool { return !in.Left && !in.Right && !in.Up && len(in.Pressed) == 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := streamOf([]byte(tt.bytes)...)
			if in := readInputAt(s, time.Now()); !tt.check(in) {
				t.Fatalf("unexpected input %+v", in)
			}
		})
	}
}

func TestKeysReleaseAfterHoldDuration(t *testing.T) {
	s := streamOf('a')
	now := time.Now()
	if !readInputAt(s, now).Left {
		t.Fatal("key not pressed")
	}
	if !readInputAt(s, now.Add(keyHoldDuration/2)).Left {
		t.Fatal("key released within hold duration")
	}
	if readInputAt(s, now.Add(keyHoldDuration)).Left {
		t.Fatal("key still held after hold duration")
	}
}

func TestStreamReportsClosed(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("d")))

	deadline := time.Now().Add(time.Second)
	var sawRight bool
	for time.Now().Before(deadline) {
		in := ReadInput(s)
		sawRight = sawRight || in.Right
		if in.Closed {
			break
		}
		time.Sleep(time.Millisecond)
	}
	if !sawRight {
		t.Fatal("never saw the key")
	}
	if !ReadInput(s).Closed {
		t.Fatal("stream not closed after EOF")
	}
}
