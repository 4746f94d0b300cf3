package session

import "github.com/upskill-labs/upskill/internal/scoring"

// Event is a notification delivered to the controller's observer. Events
// fire outside the controller lock, from the goroutine that caused the
// transition (clock goroutine for ticks/expiry, submitting goroutine for
// terminal states).
type Event interface {
	isEvent()
}

// TickEvent reports the remaining time after a clock tick.
type TickEvent struct {
	Remaining int
}

// ExpiredEvent reports that the countdown reached zero and a forced
// submission has begun.
type ExpiredEvent struct{}

// CompletedEvent reports a successful submission with the projected result.
type CompletedEvent struct {
	Result *scoring.Result
}

// FailedEvent reports a failed submission. The session keeps its answers
// and may be retried.
type FailedEvent struct {
	Err error
}

func (TickEvent) isEvent()      {}
func (ExpiredEvent) isEvent()   {}
func (CompletedEvent) isEvent() {}
func (FailedEvent) isEvent()    {}
