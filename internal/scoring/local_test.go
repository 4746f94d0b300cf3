package scoring

import (
	"context"
	"errors"
	"testing"

	"github.com/upskill-labs/upskill/internal/assessment"
)

func localTestCatalog(t *testing.T) *assessment.Catalog {
	t.Helper()
	c, err := assessment.LoadCatalog()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return c
}

func TestLocalScorer_GradesAnswers(t *testing.T) {
	catalog := localTestCatalog(t)
	def := catalog.Get("sql-essentials")
	if def == nil {
		t.Fatal("expected sql-essentials definition")
	}

	scorer := NewLocalScorer(catalog)

	// Two correct, one wrong, one unanswered.
	report, err := scorer.Submit(context.Background(), SubmissionRequest{
		AssessmentID: "sql-essentials",
		AttemptID:    "a1",
		Answers: map[string]int{
			"sql-q1": 1, // correct
			"sql-q2": 1, // correct
			"sql-q3": 0, // wrong
		},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if report.CorrectAnswers != 2 {
		t.Errorf("correct = %d, want 2", report.CorrectAnswers)
	}
	if report.TotalQuestions != 4 {
		t.Errorf("total = %d, want 4", report.TotalQuestions)
	}
	if report.Score != 50 {
		t.Errorf("score = %d, want 50", report.Score)
	}
	if report.SkillBreakdown["joins"] != 100 {
		t.Errorf("joins = %v, want 100", report.SkillBreakdown["joins"])
	}
	if report.SkillBreakdown["indexing"] != 0 {
		t.Errorf("indexing = %v, want 0", report.SkillBreakdown["indexing"])
	}
	// queries: q1 correct, q4 unanswered -> 50%.
	if report.SkillBreakdown["queries"] != 50 {
		t.Errorf("queries = %v, want 50", report.SkillBreakdown["queries"])
	}
}

func TestLocalScorer_EmptySubmission(t *testing.T) {
	scorer := NewLocalScorer(localTestCatalog(t))

	report, err := scorer.Submit(context.Background(), SubmissionRequest{
		AssessmentID: "web-apis",
		AttemptID:    "a2",
		Answers:      map[string]int{},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if report.Score != 0 || report.CorrectAnswers != 0 {
		t.Errorf("score = %d correct = %d, want zeros", report.Score, report.CorrectAnswers)
	}
}

func TestLocalScorer_UnknownAssessment(t *testing.T) {
	scorer := NewLocalScorer(localTestCatalog(t))

	_, err := scorer.Submit(context.Background(), SubmissionRequest{
		AssessmentID: "missing",
		AttemptID:    "a3",
	})
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestLocalScorer_UnknownQuestion(t *testing.T) {
	scorer := NewLocalScorer(localTestCatalog(t))

	_, err := scorer.Submit(context.Background(), SubmissionRequest{
		AssessmentID: "web-apis",
		AttemptID:    "a4",
		Answers:      map[string]int{"ghost-question": 0},
	})
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}
