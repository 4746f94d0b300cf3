// Package exam is the live assessment screen: it drives the session
// controller from key input and renders questions, the countdown, and
// submission progress.
package exam

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/upskill-labs/upskill/internal/assessment"
	"github.com/upskill-labs/upskill/internal/router"
	"github.com/upskill-labs/upskill/internal/scoring"
	"github.com/upskill-labs/upskill/internal/screen"
	"github.com/upskill-labs/upskill/internal/screens/results"
	"github.com/upskill-labs/upskill/internal/session"
	"github.com/upskill-labs/upskill/internal/store"
	"github.com/upskill-labs/upskill/internal/ui/components"
	"github.com/upskill-labs/upskill/internal/ui/layout"
)

// eventBuffer sizes the controller-to-UI event channel. Large enough
// that ticks never block the clock goroutine while the UI is drawing.
const eventBuffer = 64

// ExamScreen implements screen.Screen for an active assessment attempt.
type ExamScreen struct {
	ctrl     *session.Controller
	def      *assessment.Definition
	attempts store.AttemptRepo
	results  store.ResultRepo
	events   chan session.Event

	options     components.OptionList
	remaining   int
	submitting  bool
	forced      bool
	failed      bool
	failMsg     string
	quitConfirm bool
	errMsg      string
}

var _ screen.Screen = (*ExamScreen)(nil)
var _ screen.KeyHintProvider = (*ExamScreen)(nil)

// New creates an ExamScreen and the controller that backs it.
func New(gateway scoring.Gateway, pathsBySkill map[string][]string, def *assessment.Definition, attempts store.AttemptRepo, resultRepo store.ResultRepo) *ExamScreen {
	s := &ExamScreen{
		def:       def,
		attempts:  attempts,
		results:   resultRepo,
		events:    make(chan session.Event, eventBuffer),
		remaining: def.DurationSecs,
	}
	s.ctrl = session.NewController(gateway, pathsBySkill,
		session.WithObserver(func(e session.Event) {
			s.events <- e
		}),
	)
	return s
}

func (s *ExamScreen) Init() tea.Cmd {
	return tea.Batch(s.startExam(), s.waitForEvent())
}

func (s *ExamScreen) Title() string {
	return s.def.Title
}

func (s *ExamScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.quitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon attempt"},
			{Key: "N", Description: "Keep going"},
		}
	case s.failed:
		return []layout.KeyHint{
			{Key: "R", Description: "Retry submission"},
			{Key: "Esc", Description: "Abandon"},
		}
	case s.submitting:
		return []layout.KeyHint{
			{Key: "", Description: "Submitting..."},
		}
	default:
		return []layout.KeyHint{
			{Key: "←/→", Description: "Question"},
			{Key: "1-9/Enter", Description: "Answer"},
			{Key: "S", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (s *ExamScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case examStartedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.loadQuestion()
		return s, nil

	case sessionEventMsg:
		return s.handleEvent(msg.Event)

	case submitDoneMsg:
		// Completed/Failed outcomes arrive as controller events. A
		// rejection here means the submit never started.
		if msg.Err != nil && (errors.Is(msg.Err, session.ErrSubmissionInProgress) || errors.Is(msg.Err, session.ErrNotActive) || errors.Is(msg.Err, session.ErrNotFailed)) {
			s.submitting = s.ctrl.Status() == session.StatusSubmitting
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

// handleEvent applies one controller event to the screen.
func (s *ExamScreen) handleEvent(e session.Event) (screen.Screen, tea.Cmd) {
	switch e := e.(type) {
	case session.TickEvent:
		s.remaining = e.Remaining
		return s, s.waitForEvent()

	case session.ExpiredEvent:
		s.remaining = 0
		s.submitting = true
		s.forced = true
		s.quitConfirm = false
		return s, tea.Batch(s.recordEvent(store.ActionSubmit, true, ""), s.waitForEvent())

	case session.CompletedEvent:
		s.submitting = false
		return s, s.finishAttempt(e.Result)

	case session.FailedEvent:
		s.submitting = false
		s.failed = true
		s.failMsg = e.Err.Error()
		return s, tea.Batch(s.recordEvent(store.ActionSubmit, s.forced, e.Err.Error()), s.waitForEvent())
	}

	return s, s.waitForEvent()
}

func (s *ExamScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			return s, s.abandon()
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	if s.failed {
		switch key {
		case "r", "R":
			s.failed = false
			s.submitting = true
			return s, tea.Batch(s.recordEvent(store.ActionRetry, false, ""), s.retrySubmit())
		case "esc":
			s.quitConfirm = true
		}
		return s, nil
	}

	if s.submitting {
		// Answers and navigation are locked while a submission is
		// pending; the controller would reject them anyway.
		return s, nil
	}

	switch key {
	case "esc":
		s.quitConfirm = true
		return s, nil
	case "left", "h":
		_ = s.ctrl.Previous()
		s.loadQuestion()
		return s, nil
	case "right", "l", "tab":
		_ = s.ctrl.Next()
		s.loadQuestion()
		return s, nil
	case "s", "S":
		s.submitting = true
		return s, tea.Batch(s.recordEvent(store.ActionSubmit, false, ""), s.submit())
	}

	// Everything else goes to the option list.
	before := s.options.Chosen
	var cmd tea.Cmd
	s.options, cmd = s.options.Update(msg)
	if s.options.Chosen != before && s.options.Chosen >= 0 {
		if q := s.ctrl.CurrentQuestion(); q != nil {
			if err := s.ctrl.Answer(q.ID, s.options.Chosen); err != nil {
				s.options.Chosen = before
			}
		}
	}
	return s, cmd
}

// loadQuestion rebuilds the option list for the question under the cursor.
func (s *ExamScreen) loadQuestion() {
	q := s.ctrl.CurrentQuestion()
	if q == nil {
		return
	}
	chosen := -1
	if idx, ok := s.ctrl.SelectedOption(q.ID); ok {
		chosen = idx
	}
	s.options = components.NewOptionList(q.Options, chosen)
}

// startExam starts the controller and records the start event.
func (s *ExamScreen) startExam() tea.Cmd {
	return func() tea.Msg {
		if err := s.ctrl.Start(s.def); err != nil {
			return examStartedMsg{Err: err}
		}
		_ = s.attempts.Append(context.Background(), store.AttemptEventData{
			AttemptID:     s.ctrl.AttemptID(),
			AssessmentID:  s.def.ID,
			Action:        store.ActionStart,
			RemainingSecs: s.def.DurationSecs,
		})
		return examStartedMsg{}
	}
}

// waitForEvent blocks on the controller event channel.
func (s *ExamScreen) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		return sessionEventMsg{Event: <-s.events}
	}
}

func (s *ExamScreen) submit() tea.Cmd {
	return func() tea.Msg {
		return submitDoneMsg{Err: s.ctrl.Submit(context.Background())}
	}
}

func (s *ExamScreen) retrySubmit() tea.Cmd {
	return func() tea.Msg {
		return submitDoneMsg{Err: s.ctrl.RetrySubmit(context.Background())}
	}
}

// recordEvent appends an attempt event in the background. Persistence
// failures never interrupt the exam.
func (s *ExamScreen) recordEvent(action string, forced bool, errMsg string) tea.Cmd {
	data := store.AttemptEventData{
		AttemptID:     s.ctrl.AttemptID(),
		AssessmentID:  s.def.ID,
		Action:        action,
		AnsweredCount: s.ctrl.AnsweredCount(),
		RemainingSecs: s.ctrl.TimeRemaining(),
		Forced:        forced,
		ErrorMessage:  errMsg,
	}
	return func() tea.Msg {
		_ = s.attempts.Append(context.Background(), data)
		return nil
	}
}

// finishAttempt persists the result and swaps in the results screen.
func (s *ExamScreen) finishAttempt(result *scoring.Result) tea.Cmd {
	attemptID := s.ctrl.AttemptID()
	return func() tea.Msg {
		_ = s.results.Save(context.Background(), store.ResultData{
			AttemptID:        attemptID,
			AssessmentID:     s.def.ID,
			AssessmentTitle:  s.def.Title,
			Score:            result.Score,
			CorrectAnswers:   result.CorrectAnswers,
			TotalQuestions:   result.TotalQuestions,
			SkillBreakdown:   result.SkillBreakdown,
			RecommendedPaths: result.RecommendedPaths,
		})
		return router.ReplaceScreenMsg{
			Screen: results.New(s.def.Title, result),
		}
	}
}

// abandon records the abandon event, clears the session, and returns to
// the previous screen.
func (s *ExamScreen) abandon() tea.Cmd {
	data := store.AttemptEventData{
		AttemptID:     s.ctrl.AttemptID(),
		AssessmentID:  s.def.ID,
		Action:        store.ActionAbandon,
		AnsweredCount: s.ctrl.AnsweredCount(),
		RemainingSecs: s.ctrl.TimeRemaining(),
	}
	return func() tea.Msg {
		s.ctrl.Reset()
		_ = s.attempts.Append(context.Background(), data)
		return router.PopScreenMsg{}
	}
}
