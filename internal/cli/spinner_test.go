package cli

import (
	"context"
	"testing"
	"time"
)

func TestSpinnerStartStop(t *testing.T) {
	s := newSpinner(context.Background(), "working...")
	s.Start()
	time.Sleep(10 * time.Millisecond)
	s.Stop() // must not deadlock
}

func TestSpinnerStopWithoutStartedFrames(t *testing.T) {
	s := newSpinner(context.Background(), "quick")
	s.Start()
	s.Stop()
}

func TestSpinnerContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := newSpinner(ctx, "cancellable")
	s.Start()
	cancel()

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop should return after context cancellation")
	}
}
