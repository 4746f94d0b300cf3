// Package scoring defines the contract with the platform's scoring
// service: the submission gateway, its typed failures, and the pure
// projection from raw score payloads to display-ready results.
package scoring

import "context"

// SubmissionRequest is the payload handed to the scoring service: one
// attempt's answers, keyed by question id with 0-based option indices.
// AttemptID is generated once per session and reused on retries so the
// server can deduplicate.
type SubmissionRequest struct {
	AssessmentID string         `json:"assessmentId"`
	AttemptID    string         `json:"attemptId"`
	Answers      map[string]int `json:"answers"`
}

// ScoreReport is the raw scoring-service response.
type ScoreReport struct {
	Score          int                `json:"score"`
	CorrectAnswers int                `json:"correctAnswers"`
	TotalQuestions int                `json:"totalQuestions"`
	SkillBreakdown map[string]float64 `json:"skillBreakdown"`
}

// Gateway submits a finished answer set for scoring. Implementations must
// never retry internally; a retried submission is always a deliberate
// caller action carrying the same attempt id.
type Gateway interface {
	Submit(ctx context.Context, req SubmissionRequest) (*ScoreReport, error)
}
