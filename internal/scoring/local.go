package scoring

import (
	"context"
	"fmt"
	"math"

	"github.com/upskill-labs/upskill/internal/assessment"
)

// LocalScorer is a Gateway that grades against the catalog's bundled
// answer keys. It lets the client run without a scoring backend, the way
// the rest of the app degrades when a collaborator is unconfigured.
type LocalScorer struct {
	catalog *assessment.Catalog
}

var _ Gateway = (*LocalScorer)(nil)

// NewLocalScorer creates a scorer over the given catalog.
func NewLocalScorer(catalog *assessment.Catalog) *LocalScorer {
	return &LocalScorer{catalog: catalog}
}

// Submit grades the answers locally. Unanswered questions count as
// incorrect; unknown assessment or question ids are validation failures.
func (s *LocalScorer) Submit(_ context.Context, req SubmissionRequest) (*ScoreReport, error) {
	def := s.catalog.Get(req.AssessmentID)
	if def == nil {
		return nil, &ValidationError{Err: fmt.Errorf("unknown assessment %q", req.AssessmentID)}
	}

	type tally struct{ correct, total int }
	bySkill := make(map[string]*tally)
	correct := 0

	for i := range def.Questions {
		q := &def.Questions[i]
		t := bySkill[q.Skill]
		if t == nil {
			t = &tally{}
			bySkill[q.Skill] = t
		}
		t.total++

		idx, answered := req.Answers[q.ID]
		if !answered {
			continue
		}
		if idx < 0 || idx >= len(q.Options) {
			return nil, &ValidationError{Err: fmt.Errorf("question %q: option %d out of range", q.ID, idx)}
		}
		if idx == q.AnswerIndex {
			correct++
			t.correct++
		}
	}

	for id := range req.Answers {
		if def.QuestionByID(id) == nil {
			return nil, &ValidationError{Err: fmt.Errorf("question %q not in assessment %q", id, req.AssessmentID)}
		}
	}

	total := len(def.Questions)
	breakdown := make(map[string]float64, len(bySkill))
	for skill, t := range bySkill {
		breakdown[skill] = pct(t.correct, t.total)
	}

	return &ScoreReport{
		Score:          int(math.Round(pct(correct, total))),
		CorrectAnswers: correct,
		TotalQuestions: total,
		SkillBreakdown: breakdown,
	}, nil
}

func pct(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(correct) / float64(total)
}
