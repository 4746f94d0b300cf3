package session

import "errors"

// Precondition errors returned by controller operations. They are recovered
// locally by the caller and never move the session to StatusFailed; only
// gateway errors do that.
var (
	// ErrAlreadyActive is returned by Start while a session is running.
	ErrAlreadyActive = errors.New("session already active")

	// ErrNotActive is returned by operations that require an in-progress
	// session when none is running.
	ErrNotActive = errors.New("no active session")

	// ErrInvalidOption is returned by Answer for an option index outside
	// the question's options range.
	ErrInvalidOption = errors.New("option index out of range")

	// ErrUnknownQuestion is returned by Answer for a question id not in
	// the assessment definition.
	ErrUnknownQuestion = errors.New("unknown question id")

	// ErrSessionBusy is returned for mutations attempted while a
	// submission is in flight.
	ErrSessionBusy = errors.New("session busy: submission in flight")

	// ErrSubmissionInProgress is returned by a Submit that loses the race
	// to an already-pending submission.
	ErrSubmissionInProgress = errors.New("submission already in progress")

	// ErrNotFailed is returned by RetrySubmit when there is no failed
	// submission to retry.
	ErrNotFailed = errors.New("no failed submission to retry")

	// ErrClockRunning is returned by Clock.Start on a clock that is
	// already ticking.
	ErrClockRunning = errors.New("clock already running")
)
