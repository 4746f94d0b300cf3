package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/upskill-labs/upskill/internal/assessment"
	"github.com/upskill-labs/upskill/internal/scoring"
)

func testDefinition() *assessment.Definition {
	return &assessment.Definition{
		ID:           "test-assessment",
		Title:        "Test Assessment",
		Category:     "backend",
		DurationSecs: 60,
		Questions: []assessment.Question{
			{ID: "q1", Skill: "x", Prompt: "first?", Options: []string{"a", "b", "c"}, AnswerIndex: 1},
			{ID: "q2", Skill: "y", Prompt: "second?", Options: []string{"a", "b"}, AnswerIndex: 0},
		},
	}
}

func testPaths() map[string][]string {
	return map[string][]string{
		"x": {"path-x"},
		"y": {"path-y"},
	}
}

func perfectReport() *scoring.ScoreReport {
	return &scoring.ScoreReport{
		Score:          100,
		CorrectAnswers: 2,
		TotalQuestions: 2,
		SkillBreakdown: map[string]float64{"X": 100},
	}
}

// waitStatus polls for an expected status; forced-expiry submissions land
// from a background goroutine.
func waitStatus(t *testing.T, c *Controller, want Status) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if c.Status() == want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("status = %v, want %v", c.Status(), want)
}

func TestStart_InitializesSession(t *testing.T) {
	gw := scoring.NewMockGateway()
	c := NewController(gw, testPaths())
	defer c.Reset()

	if err := c.Start(testDefinition()); err != nil {
		t.Fatalf("start: %v", err)
	}

	if c.Status() != StatusInProgress {
		t.Errorf("status = %v, want InProgress", c.Status())
	}
	if c.TimeRemaining() != 60 {
		t.Errorf("remaining = %d, want 60", c.TimeRemaining())
	}
	if c.CurrentIndex() != 0 {
		t.Errorf("cursor = %d, want 0", c.CurrentIndex())
	}
	if c.AttemptID() == "" {
		t.Error("expected non-empty attempt id")
	}
	if c.AnsweredCount() != 0 {
		t.Errorf("answered = %d, want 0", c.AnsweredCount())
	}
}

func TestStart_WhileActive(t *testing.T) {
	c := NewController(scoring.NewMockGateway(), testPaths())
	defer c.Reset()

	if err := c.Start(testDefinition()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := c.Start(testDefinition()); !errors.Is(err, ErrAlreadyActive) {
		t.Errorf("second start err = %v, want ErrAlreadyActive", err)
	}
}

func TestAnswer_Validation(t *testing.T) {
	c := NewController(scoring.NewMockGateway(), testPaths())
	defer c.Reset()

	if err := c.Answer("q1", 0); !errors.Is(err, ErrNotActive) {
		t.Errorf("answer before start err = %v, want ErrNotActive", err)
	}

	if err := c.Start(testDefinition()); err != nil {
		t.Fatalf("start: %v", err)
	}

	if err := c.Answer("q1", 3); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("out-of-range err = %v, want ErrInvalidOption", err)
	}
	if err := c.Answer("q1", -1); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("negative index err = %v, want ErrInvalidOption", err)
	}
	if err := c.Answer("ghost", 0); !errors.Is(err, ErrUnknownQuestion) {
		t.Errorf("unknown question err = %v, want ErrUnknownQuestion", err)
	}
	if c.AnsweredCount() != 0 {
		t.Errorf("rejected answers mutated the store: count = %d", c.AnsweredCount())
	}
}

func TestAnswer_LastWriteWins(t *testing.T) {
	c := NewController(scoring.NewMockGateway(), testPaths())
	defer c.Reset()

	if err := c.Start(testDefinition()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := c.Answer("q1", 2); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if err := c.Answer("q1", 1); err != nil {
		t.Fatalf("re-answer: %v", err)
	}

	v, ok := c.SelectedOption("q1")
	if !ok || v != 1 {
		t.Errorf("selected = %d,%v, want 1,true", v, ok)
	}
}

func TestNavigation_ClampsAtBoundaries(t *testing.T) {
	c := NewController(scoring.NewMockGateway(), testPaths())
	defer c.Reset()

	if err := c.Start(testDefinition()); err != nil {
		t.Fatalf("start: %v", err)
	}

	// Previous at the first question is a no-op.
	if err := c.Previous(); err != nil {
		t.Fatalf("previous at start: %v", err)
	}
	if c.CurrentIndex() != 0 {
		t.Errorf("cursor = %d, want 0", c.CurrentIndex())
	}

	if err := c.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}
	if c.CurrentIndex() != 1 {
		t.Errorf("cursor = %d, want 1", c.CurrentIndex())
	}

	// Next at the last question is a no-op.
	if err := c.Next(); err != nil {
		t.Fatalf("next at end: %v", err)
	}
	if c.CurrentIndex() != 1 {
		t.Errorf("cursor = %d, want 1 (clamped)", c.CurrentIndex())
	}

	if q := c.CurrentQuestion(); q == nil || q.ID != "q2" {
		t.Errorf("current question = %v, want q2", q)
	}
}

// Scenario A: answer both questions, manual submit, gateway scores 100.
func TestSubmit_ManualSuccess(t *testing.T) {
	gw := scoring.NewMockGateway(scoring.MockResponse{Report: perfectReport()})
	c := NewController(gw, testPaths())
	defer c.Reset()

	if err := c.Start(testDefinition()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := c.Answer("q1", 1); err != nil {
		t.Fatalf("answer q1: %v", err)
	}
	if err := c.Answer("q2", 0); err != nil {
		t.Fatalf("answer q2: %v", err)
	}

	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if c.Status() != StatusCompleted {
		t.Fatalf("status = %v, want Completed", c.Status())
	}
	result := c.Result()
	if result == nil {
		t.Fatal("expected result")
	}
	if result.Score != 100 {
		t.Errorf("score = %d, want 100", result.Score)
	}
	if result.SkillBreakdown["x"] != 100 {
		t.Errorf("skill x = %v, want 100 (normalized from X)", result.SkillBreakdown["x"])
	}

	if gw.CallCount() != 1 {
		t.Fatalf("gateway calls = %d, want 1", gw.CallCount())
	}
	req := gw.Calls[0]
	if req.AssessmentID != "test-assessment" {
		t.Errorf("assessment id = %q", req.AssessmentID)
	}
	if req.AttemptID == "" {
		t.Error("expected attempt id on the wire")
	}
	if len(req.Answers) != 2 || req.Answers["q1"] != 1 || req.Answers["q2"] != 0 {
		t.Errorf("answers = %v", req.Answers)
	}
}

// Scenario B: a 3-tick assessment with no answers auto-submits exactly
// once with an empty answer set.
func TestSubmit_ForcedOnExpiry(t *testing.T) {
	gw := scoring.NewMockGateway(scoring.MockResponse{Report: &scoring.ScoreReport{
		Score: 0, CorrectAnswers: 0, TotalQuestions: 1,
		SkillBreakdown: map[string]float64{"x": 0},
	}})
	c := NewController(gw, testPaths(), WithTickInterval(5*time.Millisecond))
	defer c.Reset()

	def := testDefinition()
	def.DurationSecs = 3
	if err := c.Start(def); err != nil {
		t.Fatalf("start: %v", err)
	}

	waitStatus(t, c, StatusCompleted)

	if gw.CallCount() != 1 {
		t.Fatalf("gateway calls = %d, want exactly 1 forced submission", gw.CallCount())
	}
	if len(gw.Calls[0].Answers) != 0 {
		t.Errorf("forced submission answers = %v, want empty", gw.Calls[0].Answers)
	}
	if c.TimeRemaining() != 0 {
		t.Errorf("remaining = %d, want 0", c.TimeRemaining())
	}
}

// Scenario C: gateway fails, answers survive, retry succeeds.
func TestSubmit_FailThenRetry(t *testing.T) {
	gw := scoring.NewMockGateway(
		scoring.MockResponse{Err: &scoring.NetworkError{Err: errors.New("dial tcp: refused")}},
		scoring.MockResponse{Report: perfectReport()},
	)
	c := NewController(gw, testPaths())
	defer c.Reset()

	if err := c.Start(testDefinition()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := c.Answer("q1", 1); err != nil {
		t.Fatalf("answer: %v", err)
	}

	err := c.Submit(context.Background())
	var netErr *scoring.NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("submit err = %v, want NetworkError", err)
	}
	if c.Status() != StatusFailed {
		t.Fatalf("status = %v, want Failed", c.Status())
	}
	if v, ok := c.SelectedOption("q1"); !ok || v != 1 {
		t.Errorf("answer lost on failure: %d,%v", v, ok)
	}
	if c.Err() == nil {
		t.Error("expected surfaced gateway error")
	}

	if err := c.RetrySubmit(context.Background()); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if c.Status() != StatusCompleted {
		t.Fatalf("status = %v, want Completed after retry", c.Status())
	}

	// The retry reuses the exact snapshot and attempt id.
	if gw.CallCount() != 2 {
		t.Fatalf("gateway calls = %d, want 2", gw.CallCount())
	}
	first, second := gw.Calls[0], gw.Calls[1]
	if first.AttemptID != second.AttemptID {
		t.Errorf("attempt ids differ across retry: %q vs %q", first.AttemptID, second.AttemptID)
	}
	if len(first.Answers) != len(second.Answers) {
		t.Fatalf("snapshot sizes differ: %d vs %d", len(first.Answers), len(second.Answers))
	}
	for k, v := range first.Answers {
		if second.Answers[k] != v {
			t.Errorf("snapshot drifted on retry: %s = %d vs %d", k, v, second.Answers[k])
		}
	}
}

// Scenario D: mutations during an in-flight submission are rejected.
func TestMutationsRejectedWhileSubmitting(t *testing.T) {
	gw := scoring.NewMockGateway(scoring.MockResponse{Report: perfectReport()})
	gw.Gate = make(chan struct{})
	c := NewController(gw, testPaths())
	defer c.Reset()

	if err := c.Start(testDefinition()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := c.Answer("q1", 1); err != nil {
		t.Fatalf("answer: %v", err)
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = c.Submit(context.Background())
	}()
	waitStatus(t, c, StatusSubmitting)

	if err := c.Answer("q1", 0); !errors.Is(err, ErrSessionBusy) {
		t.Errorf("answer while submitting err = %v, want ErrSessionBusy", err)
	}
	if err := c.Next(); !errors.Is(err, ErrSessionBusy) {
		t.Errorf("next while submitting err = %v, want ErrSessionBusy", err)
	}
	if v, _ := c.SelectedOption("q1"); v != 1 {
		t.Errorf("answer mutated during submission: %d", v)
	}

	close(gw.Gate)
	wg.Wait()
	waitStatus(t, c, StatusCompleted)
}

func TestSubmit_DuplicateRejected(t *testing.T) {
	gw := scoring.NewMockGateway(scoring.MockResponse{Report: perfectReport()})
	gw.Gate = make(chan struct{})
	c := NewController(gw, testPaths())
	defer c.Reset()

	if err := c.Start(testDefinition()); err != nil {
		t.Fatalf("start: %v", err)
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = c.Submit(context.Background())
	}()
	waitStatus(t, c, StatusSubmitting)

	if err := c.Submit(context.Background()); !errors.Is(err, ErrSubmissionInProgress) {
		t.Errorf("duplicate submit err = %v, want ErrSubmissionInProgress", err)
	}

	close(gw.Gate)
	wg.Wait()

	if gw.CallCount() != 1 {
		t.Errorf("gateway calls = %d, want exactly 1", gw.CallCount())
	}
}

func TestReset_DiscardsLateResponse(t *testing.T) {
	gw := scoring.NewMockGateway(scoring.MockResponse{Report: perfectReport()})
	gw.Gate = make(chan struct{})
	c := NewController(gw, testPaths())

	if err := c.Start(testDefinition()); err != nil {
		t.Fatalf("start: %v", err)
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = c.Submit(context.Background())
	}()
	waitStatus(t, c, StatusSubmitting)

	c.Reset()
	if c.Status() != StatusNotStarted {
		t.Fatalf("status after reset = %v, want NotStarted", c.Status())
	}

	// Release the in-flight submission; its response must be dropped.
	close(gw.Gate)
	wg.Wait()

	if c.Result() != nil {
		t.Error("late gateway response attached to a reset session")
	}
	if c.Status() != StatusNotStarted {
		t.Errorf("status = %v, want NotStarted after late response", c.Status())
	}
}

func TestRetrySubmit_RequiresFailedState(t *testing.T) {
	c := NewController(scoring.NewMockGateway(), testPaths())
	defer c.Reset()

	if err := c.RetrySubmit(context.Background()); !errors.Is(err, ErrNotFailed) {
		t.Errorf("retry without failure err = %v, want ErrNotFailed", err)
	}

	if err := c.Start(testDefinition()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := c.RetrySubmit(context.Background()); !errors.Is(err, ErrNotFailed) {
		t.Errorf("retry while in progress err = %v, want ErrNotFailed", err)
	}
}

func TestStart_AllowedAfterTerminalState(t *testing.T) {
	gw := scoring.NewMockGateway(
		scoring.MockResponse{Report: perfectReport()},
		scoring.MockResponse{Report: perfectReport()},
	)
	c := NewController(gw, testPaths())
	defer c.Reset()

	if err := c.Start(testDefinition()); err != nil {
		t.Fatalf("start: %v", err)
	}
	firstAttempt := c.AttemptID()
	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if err := c.Start(testDefinition()); err != nil {
		t.Fatalf("restart after completion: %v", err)
	}
	if c.Status() != StatusInProgress {
		t.Errorf("status = %v, want InProgress", c.Status())
	}
	if c.AttemptID() == firstAttempt {
		t.Error("restart reused the previous attempt id")
	}
	if c.Result() != nil {
		t.Error("restart kept the previous result")
	}
}

func TestObserver_ReceivesLifecycleEvents(t *testing.T) {
	gw := scoring.NewMockGateway(scoring.MockResponse{Report: perfectReport()})

	var mu sync.Mutex
	var events []Event
	c := NewController(gw, testPaths(),
		WithTickInterval(5*time.Millisecond),
		WithObserver(func(e Event) {
			mu.Lock()
			events = append(events, e)
			mu.Unlock()
		}),
	)
	defer c.Reset()

	def := testDefinition()
	def.DurationSecs = 2
	if err := c.Start(def); err != nil {
		t.Fatalf("start: %v", err)
	}
	waitStatus(t, c, StatusCompleted)

	mu.Lock()
	defer mu.Unlock()

	var ticks, expired, completed int
	for _, e := range events {
		switch e.(type) {
		case TickEvent:
			ticks++
		case ExpiredEvent:
			expired++
		case CompletedEvent:
			completed++
		}
	}
	if ticks == 0 {
		t.Error("expected tick events")
	}
	if expired != 1 {
		t.Errorf("expired events = %d, want 1", expired)
	}
	if completed != 1 {
		t.Errorf("completed events = %d, want 1", completed)
	}
}
