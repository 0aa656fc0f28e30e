// Package loop runs the terminal frontend: the per-player frame loop with
// its screens, and the hub that tracks sessions on a shared server.
package loop

import (
	"bufio"
	"io"
)

// Run plays until the player quits, reading keys from r and drawing to w.
// It blocks for the whole session.
func Run(r io.Reader, w io.Writer, opts Options) error {
	return NewClient(bufio.NewReader(r), w, opts).Run()
}
