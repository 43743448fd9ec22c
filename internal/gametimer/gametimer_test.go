package gametimer

import (
	"testing"
	"time"
)

// helper: wait for a signal with a deadline so tests never hang
func recvFired(t *testing.T, ch <-chan struct{}, within time.Duration) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(within):
		t.Fatalf("timed out waiting for timer to fire")
	}
}

func recvNothing(t *testing.T, ch <-chan struct{}, within time.Duration) {
	t.Helper()
	select {
	case <-ch:
		t.Fatalf("timer fired but should have been cancelled")
	case <-time.After(within):
	}
}

func TestSchedule_Fires(t *testing.T) {
	r := NewRegistry()
	fired := make(chan struct{}, 1)

	r.Schedule("g1", 10*time.Millisecond, func() { fired <- struct{}{} })
	recvFired(t, fired, time.Second)

	if r.Pending("g1") {
		t.Fatalf("fired timer should no longer be pending")
	}
}

func TestCancel_StopsPendingTimer(t *testing.T) {
	r := NewRegistry()
	fired := make(chan struct{}, 1)

	r.Schedule("g1", 50*time.Millisecond, func() { fired <- struct{}{} })
	r.Cancel("g1")

	recvNothing(t, fired, 150*time.Millisecond)
	if r.Pending("g1") {
		t.Fatalf("cancelled timer still pending")
	}
}

func TestSchedule_ReplacesPriorTimer(t *testing.T) {
	r := NewRegistry()
	first := make(chan struct{}, 1)
	second := make(chan struct{}, 1)

	r.Schedule("g1", 50*time.Millisecond, func() { first <- struct{}{} })
	r.Schedule("g1", 10*time.Millisecond, func() { second <- struct{}{} })

	recvFired(t, second, time.Second)
	recvNothing(t, first, 150*time.Millisecond)
}

func TestTimers_ArePerGame(t *testing.T) {
	r := NewRegistry()
	g2 := make(chan struct{}, 1)

	r.Schedule("g1", time.Hour, func() {})
	r.Schedule("g2", 10*time.Millisecond, func() { g2 <- struct{}{} })
	defer r.Cancel("g1")

	recvFired(t, g2, time.Second)
	if !r.Pending("g1") {
		t.Fatalf("g1 timer should still be pending")
	}
}

func TestCancel_WithoutScheduleIsNoop(t *testing.T) {
	r := NewRegistry()
	r.Cancel("never-scheduled")
}
