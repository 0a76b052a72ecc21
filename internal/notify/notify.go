// Package notify surfaces blocking alerts, the terminal stand-in for a
// modal dialog.
package notify

import (
	"bufio"
	"fmt"
	"io"
	"sync"
)

// Terminal writes alerts to w. With a non-nil in it blocks until the user
// presses enter, so a message cannot scroll away unacknowledged.
type Terminal struct {
	mu sync.Mutex
	w  io.Writer
	in *bufio.Reader
}

// NewTerminal builds a notifier over w. Pass the reader the rest of the
// program reads user input from, or nil for a non-blocking notifier.
func NewTerminal(w io.Writer, in io.Reader) *Terminal {
	t := &Terminal{w: w}
	if in != nil {
		t.in = bufio.NewReader(in)
	}

	return t
}

func (t *Terminal) Alert(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.w, "\n%s\n", message)

	if t.in == nil {
		return
	}

	fmt.Fprint(t.w, "[press enter to continue] ")
	_, _ = t.in.ReadString('\n')
}
