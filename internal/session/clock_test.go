package session

import (
	"sync"
	"testing"
	"time"
)

const testInterval = 5 * time.Millisecond

func TestClock_CountsDownToExpiry(t *testing.T) {
	c := NewClock(testInterval)

	var mu sync.Mutex
	var ticks []int
	expired := make(chan struct{})

	err := c.Start(3,
		func(remaining int) {
			mu.Lock()
			ticks = append(ticks, remaining)
			mu.Unlock()
		},
		func() { close(expired) },
	)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	select {
	case <-expired:
	case <-time.After(time.Second):
		t.Fatal("clock never expired")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(ticks) != 3 {
		t.Fatalf("ticks = %v, want 3 ticks", ticks)
	}
	for i, r := range ticks {
		want := 3 - i - 1
		if r != want {
			t.Errorf("tick %d remaining = %d, want %d", i, r, want)
		}
	}
	if ticks[len(ticks)-1] != 0 {
		t.Errorf("final tick remaining = %d, want 0", ticks[len(ticks)-1])
	}
}

func TestClock_ExpireFiresOnce(t *testing.T) {
	c := NewClock(testInterval)

	var mu sync.Mutex
	expires := 0
	done := make(chan struct{})

	err := c.Start(1, nil, func() {
		mu.Lock()
		expires++
		if expires == 1 {
			close(done)
		}
		mu.Unlock()
	})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	<-done
	// Give a misbehaving clock time to fire again.
	time.Sleep(5 * testInterval)

	mu.Lock()
	defer mu.Unlock()
	if expires != 1 {
		t.Errorf("expire fired %d times, want exactly 1", expires)
	}
}

func TestClock_CancelStopsCallbacks(t *testing.T) {
	c := NewClock(testInterval)

	var mu sync.Mutex
	ticks := 0
	expired := false

	err := c.Start(1000,
		func(int) {
			mu.Lock()
			ticks++
			mu.Unlock()
		},
		func() {
			mu.Lock()
			expired = true
			mu.Unlock()
		},
	)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	time.Sleep(3 * testInterval)
	c.Cancel()

	mu.Lock()
	after := ticks
	mu.Unlock()

	// No callback may fire once Cancel has returned.
	time.Sleep(5 * testInterval)

	mu.Lock()
	defer mu.Unlock()
	if ticks != after {
		t.Errorf("ticks advanced after Cancel: %d -> %d", after, ticks)
	}
	if expired {
		t.Error("expire fired after Cancel")
	}
	if c.Running() {
		t.Error("clock still running after Cancel")
	}
}

func TestClock_CancelIdempotent(t *testing.T) {
	c := NewClock(testInterval)
	if err := c.Start(1, nil, nil); err != nil {
		t.Fatalf("start: %v", err)
	}
	c.Cancel()
	c.Cancel() // second cancel must not panic or block
}

func TestClock_StartWhileRunning(t *testing.T) {
	c := NewClock(testInterval)
	if err := c.Start(1000, nil, nil); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer c.Cancel()

	if err := c.Start(10, nil, nil); err != ErrClockRunning {
		t.Errorf("second Start err = %v, want ErrClockRunning", err)
	}
}

func TestClock_RestartAfterCancel(t *testing.T) {
	c := NewClock(testInterval)
	if err := c.Start(1000, nil, nil); err != nil {
		t.Fatalf("start: %v", err)
	}
	c.Cancel()

	expired := make(chan struct{})
	if err := c.Start(1, nil, func() { close(expired) }); err != nil {
		t.Fatalf("restart: %v", err)
	}
	select {
	case <-expired:
	case <-time.After(time.Second):
		t.Fatal("restarted clock never expired")
	}
}
