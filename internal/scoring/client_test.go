package scoring

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, url string) *Client {
	t.Helper()
	c, err := NewClient(ClientConfig{BaseURL: url, Token: "test-token"})
	require.NoError(t, err)
	return c
}

func testRequest() SubmissionRequest {
	return SubmissionRequest{
		AssessmentID: "go-fundamentals",
		AttemptID:    "attempt-123",
		Answers:      map[string]int{"go-q1": 0, "go-q2": 1},
	}
}

func TestClientSubmit_Success(t *testing.T) {
	var gotPath, gotKey, gotAuth string
	var gotBody SubmissionRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("Idempotency-Key")
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"score":          83,
			"correctAnswers": 5,
			"totalQuestions": 6,
			"skillBreakdown": map[string]float64{"syntax": 100, "concurrency": 50},
		})
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	report, err := client.Submit(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, "/v1/assessments/go-fundamentals/submissions", gotPath)
	assert.Equal(t, "attempt-123", gotKey)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "attempt-123", gotBody.AttemptID)
	assert.Equal(t, map[string]int{"go-q1": 0, "go-q2": 1}, gotBody.Answers)

	assert.Equal(t, 83, report.Score)
	assert.Equal(t, 5, report.CorrectAnswers)
	assert.Equal(t, 6, report.TotalQuestions)
	assert.InDelta(t, 50.0, report.SkillBreakdown["concurrency"], 0.001)
}

func TestClientSubmit_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "scoring backend down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.Submit(context.Background(), testRequest())

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusServiceUnavailable, serverErr.StatusCode)
}

func TestClientSubmit_RejectedSubmission(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"unknown assessment"}`, http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.Submit(context.Background(), testRequest())

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.NotEmpty(t, valErr.Content)
}

func TestClientSubmit_MalformedPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `scored!`},
		{"missing fields", `{"score": 90}`},
		{"wrong types", `{"score":"high","correctAnswers":1,"totalQuestions":2,"skillBreakdown":{}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := newTestClient(t, srv.URL)
			_, err := client.Submit(context.Background(), testRequest())

			var valErr *ValidationError
			require.ErrorAs(t, err, &valErr)
		})
	}
}

func TestClientSubmit_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // immediately, so the dial fails

	client := newTestClient(t, srv.URL)
	_, err := client.Submit(context.Background(), testRequest())

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
}

func TestClientSubmit_NoAutomaticRetry(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "flaky", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.Submit(context.Background(), testRequest())
	require.Error(t, err)
	assert.Equal(t, 1, calls, "client must never retry on its own")
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(ClientConfig{})
	require.Error(t, err)
}
