// Package history displays past assessment results and the attempt
// events behind them.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/upskill-labs/upskill/internal/router"
	"github.com/upskill-labs/upskill/internal/screen"
	"github.com/upskill-labs/upskill/internal/store"
	"github.com/upskill-labs/upskill/internal/ui/layout"
	"github.com/upskill-labs/upskill/internal/ui/theme"
)

type historyLoadedMsg struct {
	Results []store.Result
	Events  map[string][]store.AttemptEvent // attemptID → events
	Err     error
}

// HistoryScreen displays past results with expandable attempt details.
type HistoryScreen struct {
	attempts store.AttemptRepo
	results  store.ResultRepo

	items    []store.Result
	events   map[string][]store.AttemptEvent
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(attempts store.AttemptRepo, results store.ResultRepo) *HistoryScreen {
	return &HistoryScreen{
		attempts: attempts,
		results:  results,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		results, err := s.results.Recent(ctx, 50)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		// Load attempt events and group by attempt.
		allEvents, err := s.attempts.Recent(ctx, 0)
		if err != nil {
			return historyLoadedMsg{Results: results, Events: make(map[string][]store.AttemptEvent)}
		}

		byAttempt := make(map[string][]store.AttemptEvent)
		for _, e := range allEvents {
			byAttempt[e.AttemptID] = append(byAttempt[e.AttemptID], e)
		}
		// Recent returns newest first; details read better oldest first.
		for _, events := range byAttempt {
			for i, j := 0, len(events)-1; i < j; i, j = i+1, j-1 {
				events[i], events[j] = events[j], events[i]
			}
		}

		return historyLoadedMsg{Results: results, Events: byAttempt}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.items = msg.Results
			s.events = msg.Events
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.items)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.items) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No completed assessments yet.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, res := range s.items {
		dateStr := res.Timestamp.Format("Jan 02, 2006")

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-24s score %d  %d/%d correct",
			prefix, dateStr, res.AssessmentTitle, res.Score,
			res.CorrectAnswers, res.TotalQuestions)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			s.renderDetails(&b, res, width)
		}
	}

	return b.String()
}

// renderDetails renders the expanded view for one result: recommended
// paths and the attempt event trail.
func (s *HistoryScreen) renderDetails(b *strings.Builder, res store.Result, width int) {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	if len(res.RecommendedPaths) > 0 {
		line := "    paths: " + strings.Join(res.RecommendedPaths, ", ")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Accent).Render(line)))
		b.WriteString("\n")
	}

	events := s.events[res.AttemptID]
	if len(events) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			dim.Italic(true).Render("    No attempt details recorded")))
		b.WriteString("\n")
		return
	}

	for _, e := range events {
		desc := e.Action
		switch e.Action {
		case store.ActionSubmit:
			if e.Forced {
				desc = "submit (time expired)"
			}
			if e.ErrorMessage != "" {
				desc += " failed: " + e.ErrorMessage
			}
		case store.ActionRetry:
			desc = "retry submission"
		}
		line := fmt.Sprintf("    %s  %s  %d answered, %s left",
			e.Timestamp.Format("15:04:05"), desc,
			e.AnsweredCount, layout.FormatClock(e.RemainingSecs))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render(line)))
		b.WriteString("\n")
	}
}
