// Package remote is the HTTP client for the progress API. Attempts are
// committed with a bearer token; the server answers with the user's
// refreshed aggregate stats.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/avikram/pathwise/internal/bank"
	"github.com/avikram/pathwise/internal/plan"
	"github.com/avikram/pathwise/internal/report"
	"github.com/avikram/pathwise/internal/scoring"
)

const (
	saveAttemptPath = "/api/progress/save-attempt"
	defaultTimeout  = 10 * time.Second
	maxErrorBody    = 4 * 1024
)

// Client talks to one progress API with one identity.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a client for the API at baseURL. An empty baseURL
// or token yields an unconfigured client; callers check Configured
// before use.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// SetHTTPClient swaps the underlying HTTP client, mainly for tests.
func (c *Client) SetHTTPClient(h *http.Client) {
	c.http = h
}

// Configured reports whether the client has an endpoint and a token.
func (c *Client) Configured() bool {
	return c != nil && c.baseURL != "" && c.token != ""
}

// AttemptPayload mirrors the save-attempt request body.
type AttemptPayload struct {
	Type         bank.InterviewType        `json:"type"`
	Mode         bank.Mode                 `json:"mode"`
	ScorePercent *int                      `json:"scorePercent"`
	Answers      map[string]scoring.Answer `json:"answers"`
	Report       report.Report             `json:"report"`
	Plan         plan.PracticePlan         `json:"plan"`
}

// UserStats is the refreshed profile the server returns after a save.
type UserStats struct {
	Name                string  `json:"name"`
	Email               string  `json:"email"`
	InterviewsCompleted int     `json:"interviewsCompleted"`
	AverageScore        float64 `json:"averageScore"`
}

type saveResponse struct {
	Message   string     `json:"message"`
	AttemptID string     `json:"attemptId"`
	User      *UserStats `json:"user"`
}

// SaveAttempt commits one attempt. The returned stats may be nil when
// the server omits them.
func (c *Client) SaveAttempt(ctx context.Context, payload AttemptPayload) (*UserStats, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("remote client not configured")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode attempt: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+saveAttemptPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("save attempt: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("save attempt: status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out saveResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return out.User, nil
}
