package store

import (
	"context"
	"time"
)

// Attempt actions recorded in the event log.
const (
	ActionStart   = "start"
	ActionSubmit  = "submit"
	ActionRetry   = "retry"
	ActionAbandon = "abandon"
)

// AttemptEventData captures one attempt lifecycle event.
type AttemptEventData struct {
	AttemptID     string
	AssessmentID  string
	Action        string
	AnsweredCount int
	RemainingSecs int
	Forced        bool
	ErrorMessage  string
}

// AttemptEvent is a stored attempt lifecycle event.
type AttemptEvent struct {
	Sequence  int64
	Timestamp time.Time
	AttemptEventData
}

// AttemptRepo provides append and query access to the attempt event log.
type AttemptRepo interface {
	// Append records an attempt lifecycle event.
	Append(ctx context.Context, data AttemptEventData) error

	// ByAttempt returns all events for one attempt, oldest first.
	ByAttempt(ctx context.Context, attemptID string) ([]AttemptEvent, error)

	// Recent returns the newest events across all attempts, newest
	// first, capped at limit (0 = unlimited).
	Recent(ctx context.Context, limit int) ([]AttemptEvent, error)
}

// ResultData captures a completed assessment result.
type ResultData struct {
	AttemptID        string
	AssessmentID     string
	AssessmentTitle  string
	Score            int
	CorrectAnswers   int
	TotalQuestions   int
	SkillBreakdown   map[string]float64
	RecommendedPaths []string
}

// Result is a stored assessment result.
type Result struct {
	Sequence  int64
	Timestamp time.Time
	ResultData
}

// ResultRepo manages the local result history.
type ResultRepo interface {
	// Save stores a result. Saving the same attempt twice is an error.
	Save(ctx context.Context, data ResultData) error

	// ByAttempt returns the result for one attempt, or nil if none.
	ByAttempt(ctx context.Context, attemptID string) (*Result, error)

	// Recent returns the newest results, newest first, capped at
	// limit (0 = unlimited).
	Recent(ctx context.Context, limit int) ([]Result, error)

	// BestScore returns the highest score recorded for an assessment,
	// or -1 if it has never been completed.
	BestScore(ctx context.Context, assessmentID string) (int, error)
}
