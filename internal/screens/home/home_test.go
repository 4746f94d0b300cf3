package home

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/upskill-labs/upskill/internal/assessment"
	"github.com/upskill-labs/upskill/internal/router"
	"github.com/upskill-labs/upskill/internal/scoring"
	"github.com/upskill-labs/upskill/internal/store"
)

// fakeAttempts and fakeResults satisfy the repo interfaces without a
// database.
type fakeAttempts struct{}

func (fakeAttempts) Append(context.Context, store.AttemptEventData) error { return nil }
func (fakeAttempts) ByAttempt(context.Context, string) ([]store.AttemptEvent, error) {
	return nil, nil
}
func (fakeAttempts) Recent(context.Context, int) ([]store.AttemptEvent, error) { return nil, nil }

type fakeResults struct {
	best map[string]int
}

func (fakeResults) Save(context.Context, store.ResultData) error { return nil }
func (fakeResults) ByAttempt(context.Context, string) (*store.Result, error) {
	return nil, nil
}
func (fakeResults) Recent(context.Context, int) ([]store.Result, error) { return nil, nil }
func (f fakeResults) BestScore(_ context.Context, id string) (int, error) {
	if best, ok := f.best[id]; ok {
		return best, nil
	}
	return -1, nil
}

func newTestHome(t *testing.T) *HomeScreen {
	t.Helper()
	catalog, err := assessment.LoadCatalog()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return New(catalog, scoring.NewMockGateway(), fakeAttempts{}, fakeResults{})
}

func TestHomeScreen_ListsCatalog(t *testing.T) {
	h := newTestHome(t)
	if len(h.defs) == 0 {
		t.Fatal("expected catalog definitions on the home screen")
	}
	if h.View(80, 24) == "" {
		t.Error("expected non-empty view")
	}
}

func TestHomeScreen_Navigation(t *testing.T) {
	h := newTestHome(t)
	if h.selected != 0 {
		t.Fatalf("initial selection = %d, want 0", h.selected)
	}

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if h.selected != 1 {
		t.Errorf("selection after down = %d, want 1", h.selected)
	}

	h.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	h.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if h.selected != 0 {
		t.Errorf("selection clamped = %d, want 0", h.selected)
	}
}

func TestHomeScreen_EnterStartsExam(t *testing.T) {
	h := newTestHome(t)
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	msg := cmd()
	if _, ok := msg.(router.PushScreenMsg); !ok {
		t.Errorf("expected PushScreenMsg, got %T", msg)
	}
}

func TestHomeScreen_FilterNarrowsList(t *testing.T) {
	h := newTestHome(t)
	total := len(h.defs)

	h.Update(tea.KeyPressMsg{Code: '/', Text: "/"})
	if !h.filtering {
		t.Fatal("expected filter mode after /")
	}

	for _, r := range "sql" {
		h.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	if len(h.defs) == 0 || len(h.defs) >= total {
		t.Errorf("filtered list = %d of %d, want a proper subset", len(h.defs), total)
	}
	for _, def := range h.defs {
		if !matches(def, "sql") {
			t.Errorf("definition %q does not match filter", def.ID)
		}
	}

	// Esc clears the filter.
	h.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if len(h.defs) != total {
		t.Errorf("after clearing filter len = %d, want %d", len(h.defs), total)
	}
}

func TestMatches(t *testing.T) {
	def := &assessment.Definition{
		ID:       "go-fundamentals",
		Title:    "Go Fundamentals",
		Category: "programming",
		Questions: []assessment.Question{
			{ID: "q1", Skill: "goroutines", Options: []string{"a", "b"}},
		},
	}

	tests := []struct {
		query string
		want  bool
	}{
		{"go", true},
		{"fundamentals", true},
		{"programming", true},
		{"goroutines", true},
		{"sql", false},
	}
	for _, tt := range tests {
		if got := matches(def, tt.query); got != tt.want {
			t.Errorf("matches(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestHomeScreen_BestScores(t *testing.T) {
	catalog, err := assessment.LoadCatalog()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	h := New(catalog, scoring.NewMockGateway(), fakeAttempts{}, fakeResults{
		best: map[string]int{"go-fundamentals": 85},
	})

	msg := h.loadBestScores()()
	loaded, ok := msg.(bestScoresMsg)
	if !ok {
		t.Fatalf("expected bestScoresMsg, got %T", msg)
	}
	if loaded.Scores["go-fundamentals"] != 85 {
		t.Errorf("best score = %d, want 85", loaded.Scores["go-fundamentals"])
	}
	if _, ok := loaded.Scores["sql-essentials"]; ok {
		t.Error("expected no entry for an assessment never taken")
	}
}
