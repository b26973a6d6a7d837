package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestAnnouncerPassThrough(t *testing.T) {
	var out bytes.Buffer
	a := newAnnouncer(&out, false)

	if _, err := a.Write([]byte("Player 0 wins!\n")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if out.String() != "Player 0 wins!\n" {
		t.Errorf("Output = %q", out.String())
	}
	if err := a.Flush(); err != nil || out.Len() != len("Player 0 wins!\n") {
		t.Errorf("Flush should not duplicate, got %q err=%v", out.String(), err)
	}
}

func TestAnnouncerHoldsUntilFlush(t *testing.T) {
	var out bytes.Buffer
	a := newAnnouncer(&out, true)

	a.Write([]byte("Player 1 wins!\n"))
	if out.Len() != 0 {
		t.Fatalf("Held output leaked: %q", out.String())
	}

	if err := a.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if out.String() != "Player 1 wins!\n" {
		t.Errorf("Output after flush = %q", out.String())
	}
}

func TestCrashCleanupFlushesHeldWin(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("Screen init failed: %v", err)
	}

	var out bytes.Buffer
	a := newAnnouncer(&out, true)
	a.Write([]byte("Player 0 wins!\n"))

	logFile, err := os.CreateTemp(t.TempDir(), "rolling-*.log")
	if err != nil {
		t.Fatalf("CreateTemp failed: %v", err)
	}

	crashCleanup(screen, a, logFile)()

	if out.String() != "Player 0 wins!\n" {
		t.Errorf("Held line not flushed on crash, got %q", out.String())
	}
	if _, err := logFile.WriteString("x"); err == nil {
		t.Error("Log file should be closed by crash cleanup")
	}
}
