package draw

import (
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/term"
)

const (
	seqClearScreen = "\033[H\033[2J"
	seqHideCursor  = "\033[?25l"
	seqShowCursor  = "\033[?25h"
)

// maxChunkSize is the most bytes written at once; it keeps SSH frames
// under a typical MTU.
const maxChunkSize = 1400

// Frame is one frame of terminal output. Positions are 1-based and
// relative to the render area: the frame adds the area's offset, so
// (0, 0) is the cell diagonally above-left of it. Nothing reaches the
// terminal until Flush.
type Frame struct {
	out    io.Writer
	buf    strings.Builder
	numBuf [20]byte
	offCol int
	offRow int
}

// NewFrame creates a frame writing to out.
func NewFrame(out io.Writer) *Frame {
	return &Frame{out: out}
}

// SetOffset sets the 0-based terminal position of the render area.
func (f *Frame) SetOffset(col, row int) {
	f.offCol = col
	f.offRow = row
}

// Offset returns the 0-based terminal position of the render area.
func (f *Frame) Offset() (col, row int) {
	return f.offCol, f.offRow
}

// MoveTo queues a cursor move.
func (f *Frame) MoveTo(col, row int) {
	f.buf.WriteString("\033[")
	f.buf.Write(strconv.AppendInt(f.numBuf[:0], int64(row+f.offRow), 10))
	f.buf.WriteByte(';')
	f.buf.Write(strconv.AppendInt(f.numBuf[:0], int64(col+f.offCol), 10))
	f.buf.WriteByte('H')
}

// WriteAt queues s at (col, row).
func (f *Frame) WriteAt(col, row int, s string) {
	f.MoveTo(col, row)
	f.buf.WriteString(s)
}

// put queues a rune at the cursor.
func (f *Frame) put(r rune) {
	f.buf.WriteRune(r)
}

// ClearScreen queues a full terminal clear.
func (f *Frame) ClearScreen() { f.buf.WriteString(seqClearScreen) }

// HideCursor queues hiding the cursor.
func (f *Frame) HideCursor() { f.buf.WriteString(seqHideCursor) }

// ShowCursor queues showing the cursor.
func (f *Frame) ShowCursor() { f.buf.WriteString(seqShowCursor) }

// Len returns the number of queued bytes.
func (f *Frame) Len() int {
	return f.buf.Len()
}

// Flush writes the queued output in chunks and starts a new frame.
func (f *Frame) Flush() error {
	data := f.buf.String()
	f.buf.Reset()
	for len(data) > 0 {
		n := min(len(data), maxChunkSize)
		if _, err := io.WriteString(f.out, data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// TermSizeFunc reports the terminal dimensions in cells.
type TermSizeFunc func() (width, height int, err error)

// StdoutSize reports the size of the local terminal.
func StdoutSize() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// WindowSize is a terminal size fed by window-change events, as SSH
// sessions deliver them. Size satisfies TermSizeFunc.
type WindowSize struct {
	mu            sync.RWMutex
	width, height int
}

// NewWindowSize starts with the size reported at connect time.
func NewWindowSize(width, height int) *WindowSize {
	return &WindowSize{width: width, height: height}
}

// Update records a window change.
func (s *WindowSize) Update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width, s.height = width, height
}

// Size returns the latest dimensions.
func (s *WindowSize) Size() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

var _ TermSizeFunc = (*WindowSize)(nil).Size
