// Package session implements the timed assessment session: a countdown
// clock, an in-memory answer record, and the controller state machine
// that ties them to the scoring gateway.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/upskill-labs/upskill/internal/assessment"
	"github.com/upskill-labs/upskill/internal/scoring"
)

// Controller orchestrates one live assessment session: question
// navigation, answer capture, the countdown clock, and submission.
// Exactly one session is active per controller. All operations are safe
// for concurrent use; the status field under one mutex is the single
// submission guard, so whichever path reaches StatusSubmitting first
// wins and every later attempt is rejected.
type Controller struct {
	gateway      scoring.Gateway
	pathsBySkill map[string][]string
	tickInterval time.Duration
	observer     func(Event)

	mu         sync.Mutex
	def        *assessment.Definition
	answers    *AnswerStore
	clock      *Clock
	status     Status
	cursor     int
	remaining  int
	attemptID  string
	snapshot   map[string]int // answers frozen at first submit, reused on retry
	result     *scoring.Result
	lastErr    error
	generation uint64 // bumped by Start/Reset; stale submissions are dropped
}

// Option configures a Controller.
type Option func(*Controller)

// WithTickInterval overrides the one-second clock interval. Tests use
// millisecond intervals to exercise expiry quickly.
func WithTickInterval(d time.Duration) Option {
	return func(c *Controller) { c.tickInterval = d }
}

// WithObserver registers a callback for session events. The callback is
// invoked outside the controller lock and must not call back into
// mutating controller operations synchronously from tick delivery.
func WithObserver(fn func(Event)) Option {
	return func(c *Controller) { c.observer = fn }
}

// NewController creates a controller bound to a scoring gateway and a
// skill → learning-path recommendation table.
func NewController(gateway scoring.Gateway, pathsBySkill map[string][]string, opts ...Option) *Controller {
	c := &Controller{
		gateway:      gateway,
		pathsBySkill: pathsBySkill,
		tickInterval: time.Second,
		status:       StatusNotStarted,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start begins a new session for the given definition: empty answers,
// cursor at the first question, full time remaining, clock running.
// Valid from NotStarted or a terminal state; ErrAlreadyActive otherwise.
func (c *Controller) Start(def *assessment.Definition) error {
	c.mu.Lock()
	if c.status == StatusInProgress || c.status == StatusSubmitting {
		c.mu.Unlock()
		return ErrAlreadyActive
	}

	c.def = def
	c.answers = NewAnswerStore()
	c.cursor = 0
	c.remaining = def.DurationSecs
	c.attemptID = uuid.New().String()
	c.snapshot = nil
	c.result = nil
	c.lastErr = nil
	c.generation++
	c.status = StatusInProgress
	c.clock = NewClock(c.tickInterval)
	clock := c.clock
	c.mu.Unlock()

	return clock.Start(def.DurationSecs, c.onTick, c.onExpire)
}

// Answer records the selected option for a question. Last write wins.
func (c *Controller) Answer(questionID string, optionIndex int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireInProgressLocked(); err != nil {
		return err
	}
	q := c.def.QuestionByID(questionID)
	if q == nil {
		return ErrUnknownQuestion
	}
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return ErrInvalidOption
	}
	c.answers.Set(questionID, optionIndex)
	return nil
}

// Next advances the question cursor by one, clamped to the last
// question. Hitting the boundary is a no-op, not an error.
func (c *Controller) Next() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireInProgressLocked(); err != nil {
		return err
	}
	if c.cursor < len(c.def.Questions)-1 {
		c.cursor++
	}
	return nil
}

// Previous moves the question cursor back by one, clamped to zero.
func (c *Controller) Previous() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireInProgressLocked(); err != nil {
		return err
	}
	if c.cursor > 0 {
		c.cursor--
	}
	return nil
}

// Submit sends the current answers for scoring. It blocks until the
// gateway responds; callers wanting async behavior run it in a
// goroutine. A second Submit while one is pending returns
// ErrSubmissionInProgress without touching the gateway.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.status == StatusSubmitting {
		c.mu.Unlock()
		return ErrSubmissionInProgress
	}
	if c.status != StatusInProgress {
		c.mu.Unlock()
		return ErrNotActive
	}
	req, gen := c.beginSubmitLocked()
	clock := c.clock
	c.mu.Unlock()

	if clock != nil {
		clock.Cancel()
	}
	return c.finishSubmit(ctx, gen, req)
}

// RetrySubmit re-sends the snapshot from the failed attempt, byte for
// byte, under the same attempt id. Valid only from StatusFailed.
func (c *Controller) RetrySubmit(ctx context.Context) error {
	c.mu.Lock()
	if c.status == StatusSubmitting {
		c.mu.Unlock()
		return ErrSubmissionInProgress
	}
	if c.status != StatusFailed {
		c.mu.Unlock()
		return ErrNotFailed
	}
	req, gen := c.beginSubmitLocked()
	c.mu.Unlock()

	// No clock to stop: it was cancelled (or expired) on the first attempt.
	return c.finishSubmit(ctx, gen, req)
}

// Reset discards the session from any state. The clock is cancelled
// before return and a submission response still in flight is dropped
// rather than applied to the cleared session.
func (c *Controller) Reset() {
	c.mu.Lock()
	clock := c.clock
	c.clock = nil
	c.def = nil
	c.answers = nil
	c.snapshot = nil
	c.result = nil
	c.lastErr = nil
	c.cursor = 0
	c.remaining = 0
	c.attemptID = ""
	c.generation++
	c.status = StatusNotStarted
	c.mu.Unlock()

	if clock != nil {
		clock.Cancel()
	}
}

// onTick is the clock callback: updates remaining time while the
// session is open. Ticks landing after a submission began are ignored.
func (c *Controller) onTick(remaining int) {
	c.mu.Lock()
	if c.status != StatusInProgress {
		c.mu.Unlock()
		return
	}
	c.remaining = remaining
	observer := c.observer
	c.mu.Unlock()

	if observer != nil {
		observer(TickEvent{Remaining: remaining})
	}
}

// onExpire is the clock's forced-submission path. The status check makes
// it fire a submission at most once: if a manual Submit already reached
// StatusSubmitting, expiry is a no-op.
func (c *Controller) onExpire() {
	c.mu.Lock()
	if c.status != StatusInProgress {
		c.mu.Unlock()
		return
	}
	c.remaining = 0
	req, gen := c.beginSubmitLocked()
	observer := c.observer
	c.mu.Unlock()

	if observer != nil {
		observer(ExpiredEvent{})
	}
	// The clock stops itself on expiry. Submit from a fresh goroutine so
	// Cancel never has to wait out a gateway call.
	go func() {
		_ = c.finishSubmit(context.Background(), gen, req)
	}()
}

// beginSubmitLocked freezes the answer snapshot (first attempt only) and
// moves to StatusSubmitting. Callers must hold c.mu.
func (c *Controller) beginSubmitLocked() (scoring.SubmissionRequest, uint64) {
	if c.snapshot == nil {
		c.snapshot = c.answers.Snapshot()
	}
	c.status = StatusSubmitting
	return scoring.SubmissionRequest{
		AssessmentID: c.def.ID,
		AttemptID:    c.attemptID,
		Answers:      c.snapshot,
	}, c.generation
}

// finishSubmit performs the gateway call and applies the outcome, unless
// the session was reset (or restarted) while the call was in flight.
func (c *Controller) finishSubmit(ctx context.Context, gen uint64, req scoring.SubmissionRequest) error {
	report, err := c.gateway.Submit(ctx, req)

	var result *scoring.Result
	if err == nil {
		result, err = scoring.Project(report, c.pathsBySkill)
	}

	c.mu.Lock()
	if c.generation != gen || c.status != StatusSubmitting {
		// Stale response for a session that no longer exists.
		c.mu.Unlock()
		return err
	}

	observer := c.observer
	if err != nil {
		c.status = StatusFailed
		c.lastErr = err
		c.mu.Unlock()
		if observer != nil {
			observer(FailedEvent{Err: err})
		}
		return err
	}

	c.status = StatusCompleted
	c.result = result
	c.lastErr = nil
	c.mu.Unlock()
	if observer != nil {
		observer(CompletedEvent{Result: result})
	}
	return nil
}

func (c *Controller) requireInProgressLocked() error {
	switch c.status {
	case StatusInProgress:
		return nil
	case StatusSubmitting:
		return ErrSessionBusy
	default:
		return ErrNotActive
	}
}

// Status returns the current lifecycle state.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// TimeRemaining returns the seconds left on the clock.
func (c *Controller) TimeRemaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Definition returns the active assessment definition, or nil.
func (c *Controller) Definition() *assessment.Definition {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.def
}

// CurrentIndex returns the question cursor position.
func (c *Controller) CurrentIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cursor
}

// CurrentQuestion returns the question under the cursor, or nil when no
// session is active.
func (c *Controller) CurrentQuestion() *assessment.Question {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.def == nil || c.cursor < 0 || c.cursor >= len(c.def.Questions) {
		return nil
	}
	return &c.def.Questions[c.cursor]
}

// SelectedOption returns the recorded answer for a question.
func (c *Controller) SelectedOption(questionID string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.answers == nil {
		return 0, false
	}
	return c.answers.Get(questionID)
}

// AnsweredCount returns how many questions have recorded answers.
func (c *Controller) AnsweredCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.answers == nil {
		return 0
	}
	return c.answers.Len()
}

// AttemptID returns the idempotency key for this session.
func (c *Controller) AttemptID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.attemptID
}

// Result returns the projected result once the session is Completed.
func (c *Controller) Result() *scoring.Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}

// Err returns the gateway error from the last failed submission.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}
