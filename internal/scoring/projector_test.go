package scoring

import "testing"

func TestProject_NormalizesAndClamps(t *testing.T) {
	report := &ScoreReport{
		Score:          112,
		CorrectAnswers: 9,
		TotalQuestions: 10,
		SkillBreakdown: map[string]float64{
			"  Unit Testing ": 40,
			"HTTP":            90,
		},
	}

	result, err := Project(report, map[string][]string{
		"unit-testing": {"testing-path"},
	})
	if err != nil {
		t.Fatalf("project: %v", err)
	}

	if result.Score != 100 {
		t.Errorf("score = %d, want 100 (clamped)", result.Score)
	}
	if _, ok := result.SkillBreakdown["unit-testing"]; !ok {
		t.Errorf("breakdown keys = %v, want normalized unit-testing", result.SkillBreakdown)
	}
	if len(result.RecommendedPaths) != 1 || result.RecommendedPaths[0] != "testing-path" {
		t.Errorf("paths = %v, want [testing-path]", result.RecommendedPaths)
	}
}

func TestProject_NegativeScoreClampsToZero(t *testing.T) {
	result, err := Project(&ScoreReport{Score: -5, SkillBreakdown: map[string]float64{}}, nil)
	if err != nil {
		t.Fatalf("project: %v", err)
	}
	if result.Score != 0 {
		t.Errorf("score = %d, want 0", result.Score)
	}
}

func TestProject_NilReport(t *testing.T) {
	if _, err := Project(nil, nil); err == nil {
		t.Error("expected error for nil report")
	}
}

func TestProject_NegativeCounts(t *testing.T) {
	if _, err := Project(&ScoreReport{CorrectAnswers: -1}, nil); err == nil {
		t.Error("expected error for negative counts")
	}
}

func TestRecommendPaths_WeakestFirstDeduped(t *testing.T) {
	breakdown := map[string]float64{
		"a": 10, // weakest
		"b": 30,
		"c": 95, // strong, contributes nothing
	}
	paths := map[string][]string{
		"a": {"p1", "shared"},
		"b": {"shared", "p2", "p3"},
		"c": {"never"},
	}

	result, err := Project(&ScoreReport{SkillBreakdown: breakdown}, paths)
	if err != nil {
		t.Fatalf("project: %v", err)
	}

	want := []string{"p1", "shared", "p2"}
	if len(result.RecommendedPaths) != len(want) {
		t.Fatalf("paths = %v, want %v", result.RecommendedPaths, want)
	}
	for i, p := range want {
		if result.RecommendedPaths[i] != p {
			t.Errorf("paths[%d] = %q, want %q", i, result.RecommendedPaths[i], p)
		}
	}
}

func TestRecommendPaths_NoWeakSkills(t *testing.T) {
	result, err := Project(&ScoreReport{
		SkillBreakdown: map[string]float64{"a": 80, "b": 100},
	}, map[string][]string{"a": {"p1"}})
	if err != nil {
		t.Fatalf("project: %v", err)
	}
	if len(result.RecommendedPaths) != 0 {
		t.Errorf("paths = %v, want none for strong skills", result.RecommendedPaths)
	}
}

func TestNormalizeSkill(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"HTTP", "http"},
		{"  Unit  Testing ", "unit-testing"},
		{"already-normal", "already-normal"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeSkill(tt.in); got != tt.want {
			t.Errorf("NormalizeSkill(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
