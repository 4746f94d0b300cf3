package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// scoreReportSchema guards against malformed scoring-service payloads
// reaching the projector.
var scoreReportSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"score":          map[string]any{"type": "integer"},
		"correctAnswers": map[string]any{"type": "integer", "minimum": 0},
		"totalQuestions": map[string]any{"type": "integer", "minimum": 0},
		"skillBreakdown": map[string]any{
			"type":                 "object",
			"additionalProperties": map[string]any{"type": "number"},
		},
	},
	"required":             []any{"score", "correctAnswers", "totalQuestions", "skillBreakdown"},
	"additionalProperties": true,
}

// ClientConfig configures the HTTP gateway client.
type ClientConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Client is the HTTP Gateway adapter for the remote scoring service.
// Submissions are sent exactly once per call; retries stay the caller's
// decision so an attempt id is never issued twice by this layer.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
	schema  *jsonschema.Schema
}

var _ Gateway = (*Client)(nil)

// NewClient creates a Client. The score report schema is compiled up
// front so a misconfigured schema fails at startup, not mid-session.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("scoring client: base URL required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	schema, err := compileScoreSchema()
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		httpc:   &http.Client{Timeout: timeout},
		schema:  schema,
	}, nil
}

// Submit POSTs the answer set to the scoring service. The attempt id is
// also sent as an Idempotency-Key header so the server can deduplicate
// identical (assessment, answers, attempt) tuples.
func (c *Client) Submit(ctx context.Context, req SubmissionRequest) (*ScoreReport, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal submission: %w", err)
	}

	url := fmt.Sprintf("%s/v1/assessments/%s/submissions", c.baseURL, req.AssessmentID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Idempotency-Key", req.AttemptID)
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	switch {
	case resp.StatusCode >= 500:
		return nil, &ServerError{StatusCode: resp.StatusCode, Body: truncate(string(raw), 200)}
	case resp.StatusCode >= 400:
		return nil, &ValidationError{
			Content: raw,
			Err:     fmt.Errorf("submission rejected (status %d)", resp.StatusCode),
		}
	}

	return c.decodeReport(raw)
}

func (c *Client) decodeReport(raw []byte) (*ScoreReport, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ValidationError{Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if err := c.schema.Validate(parsed); err != nil {
		return nil, &ValidationError{Content: raw, Err: fmt.Errorf("score schema: %w", err)}
	}

	var report ScoreReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, &ValidationError{Content: raw, Err: fmt.Errorf("decode report: %w", err)}
	}
	return &report, nil
}

func compileScoreSchema() (*jsonschema.Schema, error) {
	b, err := json.Marshal(scoreReportSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal score schema: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(b, &parsed); err != nil {
		return nil, fmt.Errorf("parse score schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	const url = "schema://score-report.json"
	if err := compiler.AddResource(url, parsed); err != nil {
		return nil, fmt.Errorf("add score schema: %w", err)
	}
	compiled, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile score schema: %w", err)
	}
	return compiled, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
