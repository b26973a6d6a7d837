package main

import (
	"bytes"
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// announcer is the win line writer
// When stdout is the terminal the screen draws on, lines are held until the screen is finalized
// Flush may run from the crash handler on another goroutine
type announcer struct {
	mu      sync.Mutex
	out     io.Writer
	pending bytes.Buffer
	hold    bool
}

func newAnnouncer(out io.Writer, hold bool) *announcer {
	return &announcer{out: out, hold: hold}
}

// newStdoutAnnouncer holds output only when stdout is a terminal
func newStdoutAnnouncer() *announcer {
	return newAnnouncer(os.Stdout, term.IsTerminal(int(os.Stdout.Fd())))
}

func (a *announcer) Write(p []byte) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.hold {
		return a.pending.Write(p)
	}
	return a.out.Write(p)
}

// Flush writes held lines; call after the screen is finalized
func (a *announcer) Flush() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.pending.Len() == 0 {
		return nil
	}
	_, err := a.pending.WriteTo(a.out)
	return err
}
