// Package results displays the outcome of a completed assessment:
// overall score, per-skill breakdown, and recommended learning paths.
package results

import (
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/upskill-labs/upskill/internal/router"
	"github.com/upskill-labs/upskill/internal/scoring"
	"github.com/upskill-labs/upskill/internal/screen"
	"github.com/upskill-labs/upskill/internal/ui/components"
	"github.com/upskill-labs/upskill/internal/ui/layout"
	"github.com/upskill-labs/upskill/internal/ui/theme"
)

// passScore is the overall score at or above which the banner reads as
// a pass.
const passScore = 70

// ResultsScreen displays a projected assessment result.
type ResultsScreen struct {
	title  string
	result *scoring.Result
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen for one completed attempt.
func New(title string, result *scoring.Result) *ResultsScreen {
	return &ResultsScreen{title: title, result: result}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back to catalog"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	r := s.result
	if r == nil {
		return ""
	}

	var b strings.Builder

	banner := "Assessment complete"
	bannerColor := theme.Primary
	if r.Score >= passScore {
		banner = "Assessment passed!"
		bannerColor = theme.Success
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(bannerColor).
		Bold(true).
		Render(banner))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(s.title))
	b.WriteString("\n\n")

	scoreLine := fmt.Sprintf("Score: %d        Correct: %d/%d",
		r.Score, r.CorrectAnswers, r.TotalQuestions)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(scoreLine))
	b.WriteString("\n\n")

	if len(r.SkillBreakdown) > 0 {
		b.WriteString(renderSection(width, "Skills"))

		barWidth := min(width-8, 50)
		for _, skill := range sortedSkills(r.SkillBreakdown) {
			bar := components.NewProgressBar(
				fmt.Sprintf("%-18s", skill),
				r.SkillBreakdown[skill]/100,
				true,
				barWidth,
			)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(r.RecommendedPaths) > 0 {
		b.WriteString(renderSection(width, "Recommended learning paths"))
		for _, p := range r.RecommendedPaths {
			line := lipgloss.NewStyle().
				Foreground(theme.Accent).
				Render("▸ " + p)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press Enter to return to the catalog."))

	return b.String()
}

// renderSection renders a centered section label with a divider.
func renderSection(width int, label string) string {
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)) +
		"\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, divider) +
		"\n\n"
}

// sortedSkills returns skill names ordered weakest first.
func sortedSkills(breakdown map[string]float64) []string {
	skills := make([]string, 0, len(breakdown))
	for s := range breakdown {
		skills = append(skills, s)
	}
	sort.Slice(skills, func(i, j int) bool {
		if breakdown[skills[i]] != breakdown[skills[j]] {
			return breakdown[skills[i]] < breakdown[skills[j]]
		}
		return skills[i] < skills[j]
	})
	return skills
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
