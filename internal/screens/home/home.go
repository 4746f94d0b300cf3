// Package home is the catalog screen: browse, filter, and launch
// assessments.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/upskill-labs/upskill/internal/assessment"
	"github.com/upskill-labs/upskill/internal/router"
	"github.com/upskill-labs/upskill/internal/scoring"
	"github.com/upskill-labs/upskill/internal/screen"
	"github.com/upskill-labs/upskill/internal/screens/exam"
	"github.com/upskill-labs/upskill/internal/screens/history"
	"github.com/upskill-labs/upskill/internal/store"
	"github.com/upskill-labs/upskill/internal/ui/components"
	"github.com/upskill-labs/upskill/internal/ui/layout"
	"github.com/upskill-labs/upskill/internal/ui/theme"
)

// bestScoresMsg delivers the per-assessment best scores from the store.
type bestScoresMsg struct {
	Scores map[string]int
	Err    error
}

// HomeScreen is the catalog browser and entry point of the application.
type HomeScreen struct {
	catalog  *assessment.Catalog
	gateway  scoring.Gateway
	attempts store.AttemptRepo
	results  store.ResultRepo

	defs       []*assessment.Definition
	selected   int
	bestScores map[string]int

	filtering bool
	filter    components.TextInput
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen over the given catalog.
func New(catalog *assessment.Catalog, gateway scoring.Gateway, attempts store.AttemptRepo, results store.ResultRepo) *HomeScreen {
	return &HomeScreen{
		catalog:    catalog,
		gateway:    gateway,
		attempts:   attempts,
		results:    results,
		defs:       catalog.All(),
		bestScores: make(map[string]int),
		filter:     components.NewTextInput("Filter assessments...", 40),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadBestScores()
}

func (h *HomeScreen) Title() string {
	return "Catalog"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.filtering {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Clear filter"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start"},
		{Key: "/", Description: "Filter"},
		{Key: "H", Description: "History"},
		{Key: "Q", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case bestScoresMsg:
		if msg.Err == nil {
			h.bestScores = msg.Scores
		}
		return h, nil

	case tea.KeyMsg:
		return h.handleKey(msg)
	}
	return h, nil
}

func (h *HomeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if h.filtering {
		switch msg.String() {
		case "enter":
			h.filtering = false
			return h, nil
		case "esc":
			h.filtering = false
			h.filter = components.NewTextInput("Filter assessments...", 40)
			h.applyFilter()
			return h, nil
		}
		var cmd tea.Cmd
		h.filter, cmd = h.filter.Update(msg)
		h.applyFilter()
		return h, cmd
	}

	switch msg.String() {
	case "up", "k":
		if h.selected > 0 {
			h.selected--
		}
	case "down", "j":
		if h.selected < len(h.defs)-1 {
			h.selected++
		}
	case "enter":
		if h.selected >= 0 && h.selected < len(h.defs) {
			def := h.defs[h.selected]
			return h, func() tea.Msg {
				return router.PushScreenMsg{
					Screen: exam.New(h.gateway, h.catalog.PathMap(), def, h.attempts, h.results),
				}
			}
		}
	case "/":
		h.filtering = true
		return h, h.filter.Init()
	case "h", "H":
		return h, func() tea.Msg {
			return router.PushScreenMsg{Screen: history.New(h.attempts, h.results)}
		}
	case "q", "Q":
		return h, tea.Quit
	}
	return h, nil
}

// applyFilter narrows the visible definitions to those matching the
// filter text against title, category, or skill tags.
func (h *HomeScreen) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(h.filter.Value()))
	if query == "" {
		h.defs = h.catalog.All()
	} else {
		var defs []*assessment.Definition
		for _, def := range h.catalog.All() {
			if matches(def, query) {
				defs = append(defs, def)
			}
		}
		h.defs = defs
	}
	if h.selected >= len(h.defs) {
		h.selected = len(h.defs) - 1
	}
	if h.selected < 0 {
		h.selected = 0
	}
}

func matches(def *assessment.Definition, query string) bool {
	if strings.Contains(strings.ToLower(def.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(def.Category), query) {
		return true
	}
	for _, skill := range def.Skills() {
		if strings.Contains(strings.ToLower(skill), query) {
			return true
		}
	}
	return false
}

// loadBestScores queries the best recorded score per assessment.
func (h *HomeScreen) loadBestScores() tea.Cmd {
	defs := h.catalog.All()
	return func() tea.Msg {
		ctx := context.Background()
		scores := make(map[string]int, len(defs))
		for _, def := range defs {
			best, err := h.results.BestScore(ctx, def.ID)
			if err != nil {
				return bestScoresMsg{Err: err}
			}
			if best >= 0 {
				scores[def.ID] = best
			}
		}
		return bestScoresMsg{Scores: scores}
	}
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Skill Assessments"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Prove your skills, find your next learning path"))
	b.WriteString("\n\n")

	if h.filtering || h.filter.Value() != "" {
		filterLine := "Filter: " + h.filter.View()
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, filterLine))
		b.WriteString("\n\n")
	}

	if len(h.defs) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render("No assessments match your filter."))
		return b.String()
	}

	for i, def := range h.defs {
		prefix := "  "
		if i == h.selected {
			prefix = "▸ "
		}

		mins := def.DurationSecs / 60
		meta := fmt.Sprintf("%s · %d questions · %d min", def.Category, len(def.Questions), mins)
		if best, ok := h.bestScores[def.ID]; ok {
			meta += fmt.Sprintf(" · best %d", best)
		}

		line := fmt.Sprintf("%s%-24s %s", prefix, def.Title,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(meta))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == h.selected {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
