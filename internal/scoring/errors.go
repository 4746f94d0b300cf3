package scoring

import (
	"encoding/json"
	"fmt"
)

// NetworkError indicates the scoring service was unreachable or the
// transport failed before a response arrived.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("scoring service unreachable: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError indicates the scoring service answered with a 5xx status.
type ServerError struct {
	StatusCode int
	Body       string
}

func (e *ServerError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("scoring service error (status %d): %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("scoring service error (status %d)", e.StatusCode)
}

// ValidationError indicates the submission was rejected (4xx) or the
// service returned a payload that does not conform to the score schema.
type ValidationError struct {
	Content json.RawMessage
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid scoring exchange: %v", e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }
