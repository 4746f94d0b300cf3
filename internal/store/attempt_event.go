package store

import (
	"context"
	"fmt"

	"github.com/upskill-labs/upskill/ent"
	"github.com/upskill-labs/upskill/ent/attemptevent"
)

// attemptRepo implements AttemptRepo using the ent client.
type attemptRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *attemptRepo) Append(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(data.AttemptID).
		SetAssessmentID(data.AssessmentID).
		SetAction(data.Action).
		SetAnsweredCount(data.AnsweredCount).
		SetRemainingSecs(data.RemainingSecs).
		SetForced(data.Forced)

	if data.ErrorMessage != "" {
		builder = builder.SetErrorMessage(data.ErrorMessage)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *attemptRepo) ByAttempt(ctx context.Context, attemptID string) ([]AttemptEvent, error) {
	rows, err := r.client.AttemptEvent.Query().
		Where(attemptevent.AttemptID(attemptID)).
		Order(ent.Asc(attemptevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempt events: %w", err)
	}
	return entAttemptEvents(rows), nil
}

func (r *attemptRepo) Recent(ctx context.Context, limit int) ([]AttemptEvent, error) {
	q := r.client.AttemptEvent.Query().
		Order(ent.Desc(attemptevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent attempt events: %w", err)
	}
	return entAttemptEvents(rows), nil
}

func entAttemptEvents(rows []*ent.AttemptEvent) []AttemptEvent {
	out := make([]AttemptEvent, 0, len(rows))
	for _, e := range rows {
		out = append(out, AttemptEvent{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			AttemptEventData: AttemptEventData{
				AttemptID:     e.AttemptID,
				AssessmentID:  e.AssessmentID,
				Action:        e.Action,
				AnsweredCount: e.AnsweredCount,
				RemainingSecs: e.RemainingSecs,
				Forced:        e.Forced,
				ErrorMessage:  e.ErrorMessage,
			},
		})
	}
	return out
}
