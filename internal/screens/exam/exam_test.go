package exam

import (
	"context"
	"sync"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/upskill-labs/upskill/internal/assessment"
	"github.com/upskill-labs/upskill/internal/scoring"
	"github.com/upskill-labs/upskill/internal/session"
	"github.com/upskill-labs/upskill/internal/store"
)

// memAttempts records appended events in memory.
type memAttempts struct {
	mu     sync.Mutex
	events []store.AttemptEventData
}

func (m *memAttempts) Append(_ context.Context, data store.AttemptEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, data)
	return nil
}

func (m *memAttempts) ByAttempt(context.Context, string) ([]store.AttemptEvent, error) {
	return nil, nil
}

func (m *memAttempts) Recent(context.Context, int) ([]store.AttemptEvent, error) {
	return nil, nil
}

type memResults struct {
	mu    sync.Mutex
	saved []store.ResultData
}

func (m *memResults) Save(_ context.Context, data store.ResultData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = append(m.saved, data)
	return nil
}

func (m *memResults) ByAttempt(context.Context, string) (*store.Result, error) { return nil, nil }
func (m *memResults) Recent(context.Context, int) ([]store.Result, error)      { return nil, nil }
func (m *memResults) BestScore(context.Context, string) (int, error)           { return -1, nil }

func testDefinition() *assessment.Definition {
	return &assessment.Definition{
		ID:           "go-basics",
		Title:        "Go Basics",
		DurationSecs: 300,
		Questions: []assessment.Question{
			{ID: "q1", Skill: "slices", Prompt: "First?", Options: []string{"a", "b", "c"}},
			{ID: "q2", Skill: "maps", Prompt: "Second?", Options: []string{"x", "y"}},
		},
	}
}

func newTestExam() (*ExamScreen, *memAttempts, *memResults) {
	attempts := &memAttempts{}
	results := &memResults{}
	s := New(scoring.NewMockGateway(), nil, testDefinition(), attempts, results)
	return s, attempts, results
}

func TestExamScreen_Title(t *testing.T) {
	s, _, _ := newTestExam()
	if s.Title() != "Go Basics" {
		t.Errorf("Title = %q, want assessment title", s.Title())
	}
}

func TestExamScreen_QuitConfirmFlow(t *testing.T) {
	s, _, _ := newTestExam()

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if !s.quitConfirm {
		t.Fatal("expected quit confirmation after Esc")
	}

	s.Update(tea.KeyPressMsg{Code: 'n', Text: "n"})
	if s.quitConfirm {
		t.Error("expected N to dismiss the confirmation")
	}
}

func TestExamScreen_AbandonRecordsEventAndPops(t *testing.T) {
	s, attempts, _ := newTestExam()
	if err := s.ctrl.Start(testDefinition()); err != nil {
		t.Fatalf("start: %v", err)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'y', Text: "y"})
	if cmd == nil {
		t.Fatal("expected a command on abandon")
	}
	cmd() // runs Reset + append + pop

	if s.ctrl.Status() != session.StatusNotStarted {
		t.Errorf("status after abandon = %v, want NotStarted", s.ctrl.Status())
	}

	attempts.mu.Lock()
	defer attempts.mu.Unlock()
	if len(attempts.events) != 1 || attempts.events[0].Action != store.ActionAbandon {
		t.Errorf("events = %+v, want one abandon event", attempts.events)
	}
}

func TestExamScreen_TickEventUpdatesClock(t *testing.T) {
	s, _, _ := newTestExam()

	s.Update(sessionEventMsg{Event: session.TickEvent{Remaining: 42}})
	if s.remaining != 42 {
		t.Errorf("remaining = %d, want 42", s.remaining)
	}
}

func TestExamScreen_FailedEventEnablesRetry(t *testing.T) {
	s, _, _ := newTestExam()

	err := &scoring.NetworkError{Err: context.DeadlineExceeded}
	s.Update(sessionEventMsg{Event: session.FailedEvent{Err: err}})

	if !s.failed {
		t.Fatal("expected failed state after FailedEvent")
	}
	hints := s.KeyHints()
	if len(hints) == 0 || hints[0].Key != "R" {
		t.Errorf("expected retry hint first, got %+v", hints)
	}
}

func TestExamScreen_CompletedEventSavesResult(t *testing.T) {
	s, _, results := newTestExam()
	if err := s.ctrl.Start(testDefinition()); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer s.ctrl.Reset()

	result := &scoring.Result{Score: 90, CorrectAnswers: 2, TotalQuestions: 2}
	_, cmd := s.Update(sessionEventMsg{Event: session.CompletedEvent{Result: result}})
	if cmd == nil {
		t.Fatal("expected a command on completion")
	}
	cmd()

	results.mu.Lock()
	defer results.mu.Unlock()
	if len(results.saved) != 1 {
		t.Fatalf("saved results = %d, want 1", len(results.saved))
	}
	if results.saved[0].Score != 90 || results.saved[0].AssessmentID != "go-basics" {
		t.Errorf("saved result = %+v", results.saved[0])
	}
}

func TestExamScreen_NumberKeyAnswers(t *testing.T) {
	s, _, _ := newTestExam()
	if err := s.ctrl.Start(testDefinition()); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer s.ctrl.Reset()
	s.loadQuestion()

	s.Update(tea.KeyPressMsg{Code: '2', Text: "2"})

	if idx, ok := s.ctrl.SelectedOption("q1"); !ok || idx != 1 {
		t.Errorf("selected option = %d (%v), want 1", idx, ok)
	}
}
