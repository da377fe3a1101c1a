package cli

import (
	"context"
	"io"
	"testing"
	"time"
)

func TestSpinnerStartStop(t *testing.T) {
	s := newSpinner(context.Background(), "working...")
	s.Start()
	time.Sleep(10 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return")
	}
}

func TestSpinnerContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := newSpinner(ctx, "working...")
	s.Start()
	cancel()
	s.Stop()

	if !s.Cancelled() {
		t.Error("Cancelled() = false after context cancellation")
	}
}

func TestProgressDone(t *testing.T) {
	prog := newProgress(newLogger(io.Discard, LogInfo))
	if prog == nil {
		t.Fatal("newProgress returned nil")
	}
	prog.done("finished")
}
