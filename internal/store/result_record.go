package store

import (
	"context"
	"fmt"

	"github.com/upskill-labs/upskill/ent"
	"github.com/upskill-labs/upskill/ent/resultrecord"
)

// resultRepo implements ResultRepo using the ent client.
type resultRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *resultRepo) Save(ctx context.Context, data ResultData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.ResultRecord.Create().
		SetSequence(seqNum).
		SetAttemptID(data.AttemptID).
		SetAssessmentID(data.AssessmentID).
		SetAssessmentTitle(data.AssessmentTitle).
		SetScore(data.Score).
		SetCorrectAnswers(data.CorrectAnswers).
		SetTotalQuestions(data.TotalQuestions)

	if len(data.SkillBreakdown) > 0 {
		builder = builder.SetSkillBreakdown(data.SkillBreakdown)
	}
	if len(data.RecommendedPaths) > 0 {
		builder = builder.SetRecommendedPaths(data.RecommendedPaths)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	return nil
}

func (r *resultRepo) ByAttempt(ctx context.Context, attemptID string) (*Result, error) {
	row, err := r.client.ResultRecord.Query().
		Where(resultrecord.AttemptID(attemptID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query result: %w", err)
	}
	res := entResult(row)
	return &res, nil
}

func (r *resultRepo) Recent(ctx context.Context, limit int) ([]Result, error) {
	q := r.client.ResultRecord.Query().
		Order(ent.Desc(resultrecord.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent results: %w", err)
	}
	out := make([]Result, 0, len(rows))
	for _, row := range rows {
		out = append(out, entResult(row))
	}
	return out, nil
}

func (r *resultRepo) BestScore(ctx context.Context, assessmentID string) (int, error) {
	rows, err := r.client.ResultRecord.Query().
		Where(resultrecord.AssessmentID(assessmentID)).
		Order(ent.Desc(resultrecord.FieldScore)).
		Limit(1).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query best score: %w", err)
	}
	if len(rows) == 0 {
		return -1, nil
	}
	return rows[0].Score, nil
}

func entResult(row *ent.ResultRecord) Result {
	return Result{
		Sequence:  row.Sequence,
		Timestamp: row.Timestamp,
		ResultData: ResultData{
			AttemptID:        row.AttemptID,
			AssessmentID:     row.AssessmentID,
			AssessmentTitle:  row.AssessmentTitle,
			Score:            row.Score,
			CorrectAnswers:   row.CorrectAnswers,
			TotalQuestions:   row.TotalQuestions,
			SkillBreakdown:   row.SkillBreakdown,
			RecommendedPaths: row.RecommendedPaths,
		},
	}
}
