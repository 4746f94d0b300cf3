package session

import (
	"sync"
	"time"
)

// Clock is a cancellable countdown. It fires onTick(remaining) once per
// interval and onExpire() exactly once when the countdown reaches zero,
// then stops itself. Callbacks are delivered serially from a single
// goroutine; a new tick is never scheduled until the previous callback
// returns.
type Clock struct {
	interval time.Duration

	mu      sync.Mutex
	running bool
	cancel  chan struct{}
	stopped chan struct{}
}

// NewClock creates a clock with the given tick interval. Production code
// uses one second; tests inject shorter intervals.
func NewClock(interval time.Duration) *Clock {
	if interval <= 0 {
		interval = time.Second
	}
	return &Clock{interval: interval}
}

// Start begins the countdown from totalTicks. It returns ErrClockRunning
// if the clock is already ticking.
func (c *Clock) Start(totalTicks int, onTick func(remaining int), onExpire func()) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return ErrClockRunning
	}
	c.running = true
	c.cancel = make(chan struct{})
	c.stopped = make(chan struct{})
	go c.run(totalTicks, onTick, onExpire)
	return nil
}

func (c *Clock) run(remaining int, onTick func(int), onExpire func()) {
	defer func() {
		c.mu.Lock()
		c.running = false
		c.mu.Unlock()
		close(c.stopped)
	}()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for remaining > 0 {
		select {
		case <-c.cancel:
			return
		case <-ticker.C:
		}
		// A cancel may have raced the tick; it wins.
		select {
		case <-c.cancel:
			return
		default:
		}

		remaining--
		if onTick != nil {
			onTick(remaining)
		}
	}

	if onExpire != nil {
		onExpire()
	}
}

// Cancel stops the countdown. When Cancel returns, no further callbacks
// will fire. Calling Cancel on a stopped or expired clock is a no-op.
// Cancel must not be called from within a tick or expiry callback.
func (c *Clock) Cancel() {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return
	}
	select {
	case <-c.cancel:
		// Already cancelled; just wait for the goroutine below.
	default:
		close(c.cancel)
	}
	stopped := c.stopped
	c.mu.Unlock()

	// Wait out any in-flight callback.
	<-stopped
}

// Running reports whether the countdown goroutine is active.
func (c *Clock) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}
