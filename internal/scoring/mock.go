package scoring

import (
	"context"
	"errors"
	"sync"
)

// MockResponse is a canned response for the MockGateway.
type MockResponse struct {
	Report *ScoreReport
	Err    error
}

// MockGateway is a deterministic Gateway for testing. It serves canned
// responses in FIFO order and records every request it receives.
type MockGateway struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []SubmissionRequest

	// Gate, when non-nil, blocks Submit until the channel is closed.
	// Tests use it to hold a submission in flight.
	Gate chan struct{}
}

var _ Gateway = (*MockGateway)(nil)

// NewMockGateway creates a MockGateway with the given canned responses.
func NewMockGateway(responses ...MockResponse) *MockGateway {
	return &MockGateway{responses: responses}
}

// Submit records the request and returns the next canned response, or a
// NetworkError when the queue is empty.
func (m *MockGateway) Submit(ctx context.Context, req SubmissionRequest) (*ScoreReport, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, req)
	gate := m.Gate

	var resp MockResponse
	hasResp := len(m.responses) > 0
	if hasResp {
		resp = m.responses[0]
		m.responses = m.responses[1:]
	}
	m.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, &NetworkError{Err: ctx.Err()}
		}
	}

	if !hasResp {
		return nil, &NetworkError{Err: errors.New("mock gateway: no canned response")}
	}
	if resp.Err != nil {
		return nil, resp.Err
	}
	return resp.Report, nil
}

// AddResponse appends a canned response to the queue.
func (m *MockGateway) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Submit calls received.
func (m *MockGateway) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
