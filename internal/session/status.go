package session

// Status is the lifecycle state of a session.
type Status int

const (
	StatusNotStarted Status = iota // No session active
	StatusInProgress               // Timer running, answers accepted
	StatusSubmitting               // Submission in flight, session read-only
	StatusCompleted                // Gateway accepted the submission
	StatusFailed                   // Gateway rejected or errored; retry allowed
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not-started"
	case StatusInProgress:
		return "in-progress"
	case StatusSubmitting:
		return "submitting"
	case StatusCompleted:
		return "completed"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the session has reached a final state.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}
