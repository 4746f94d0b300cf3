// Package app wires the screens, router, and frame chrome into the
// root Bubble Tea model.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/upskill-labs/upskill/internal/assessment"
	"github.com/upskill-labs/upskill/internal/router"
	"github.com/upskill-labs/upskill/internal/scoring"
	"github.com/upskill-labs/upskill/internal/screen"
	"github.com/upskill-labs/upskill/internal/screens/exam"
	"github.com/upskill-labs/upskill/internal/screens/home"
	"github.com/upskill-labs/upskill/internal/store"
	"github.com/upskill-labs/upskill/internal/ui/layout"
	"github.com/upskill-labs/upskill/internal/ui/theme"
)

// Options carries the dependencies the screens need.
type Options struct {
	Catalog  *assessment.Catalog
	Gateway  scoring.Gateway
	Attempts store.AttemptRepo
	Results  store.ResultRepo

	// StartDef, when set, skips the catalog and opens that exam directly.
	StartDef *assessment.Definition

	// Offline marks the header when scoring happens locally.
	Offline bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	startCmd tea.Cmd
	offline  bool
	width    int
	height   int
}

// newAppModel creates a new AppModel with the catalog screen on the stack.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Catalog, opts.Gateway, opts.Attempts, opts.Results)
	m := AppModel{
		router:  router.New(homeScreen),
		offline: opts.Offline,
	}
	if opts.StartDef != nil {
		examScreen := exam.New(opts.Gateway, opts.Catalog.PathMap(), opts.StartDef, opts.Attempts, opts.Results)
		m.startCmd = func() tea.Msg {
			return router.PushScreenMsg{Screen: examScreen}
		}
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return tea.Batch(active.Init(), m.startCmd)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Esc is left to the screens: the exam screen turns it into a
		// confirmation dialog rather than an immediate pop.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	status := ""
	if m.offline {
		status = lipgloss.NewStyle().
			Foreground(theme.Warning).
			Render("offline")
	}
	header := layout.RenderHeader(title, status, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(provider.KeyHints(), footerHints...)
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
