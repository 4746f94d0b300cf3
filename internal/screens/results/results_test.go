package results

import (
	"reflect"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/upskill-labs/upskill/internal/scoring"
)

func testResult() *scoring.Result {
	return &scoring.Result{
		Score:          78,
		CorrectAnswers: 11,
		TotalQuestions: 14,
		SkillBreakdown: map[string]float64{
			"goroutines": 50,
			"slices":     100,
			"interfaces": 66.7,
		},
		RecommendedPaths: []string{"concurrency-deep-dive"},
	}
}

func TestResultsScreen_Title(t *testing.T) {
	s := New("Go Fundamentals", testResult())
	if s.Title() != "Results" {
		t.Errorf("Title = %q, want %q", s.Title(), "Results")
	}
}

func TestResultsScreen_Display(t *testing.T) {
	s := New("Go Fundamentals", testResult())
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty results view")
	}
}

func TestResultsScreen_Navigation_Enter(t *testing.T) {
	s := New("Go Fundamentals", testResult())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestResultsScreen_Navigation_Esc(t *testing.T) {
	s := New("Go Fundamentals", testResult())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSortedSkills_WeakestFirst(t *testing.T) {
	got := sortedSkills(map[string]float64{
		"goroutines": 50,
		"slices":     100,
		"interfaces": 66.7,
	})
	want := []string{"goroutines", "interfaces", "slices"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sortedSkills = %v, want %v", got, want)
	}
}

func TestSortedSkills_TiesByName(t *testing.T) {
	got := sortedSkills(map[string]float64{
		"b-skill": 50,
		"a-skill": 50,
	})
	want := []string{"a-skill", "b-skill"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sortedSkills = %v, want %v", got, want)
	}
}
