package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avikram/pathwise/internal/bank"
	"github.com/avikram/pathwise/internal/scoring"
)

func TestSaveAttempt(t *testing.T) {
	score := 80
	var gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/progress/save-attempt", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"message":   "Attempt saved",
			"attemptId": "abc123",
			"user": map[string]any{
				"name":                "Asha",
				"interviewsCompleted": 4,
				"averageScore":        72.5,
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok-123")
	stats, err := c.SaveAttempt(context.Background(), AttemptPayload{
		Type:         bank.TypeTechnical,
		Mode:         bank.ModeMCQ,
		ScorePercent: &score,
		Answers: map[string]scoring.Answer{
			"t-m-1": scoring.ChoiceAnswer(1),
			"t-q-1": scoring.TextAnswer("free text"),
		},
	})
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 4, stats.InterviewsCompleted)
	assert.InDelta(t, 72.5, stats.AverageScore, 0.001)

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "technical", gotBody["type"])
	assert.Equal(t, "mcq", gotBody["mode"])
	assert.EqualValues(t, 80, gotBody["scorePercent"])
	answers, ok := gotBody["answers"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 1, answers["t-m-1"], "choice answers travel as numbers")
	assert.Equal(t, "free text", answers["t-q-1"], "text answers travel as strings")
}

func TestSaveAttemptServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	_, err := c.SaveAttempt(context.Background(), AttemptPayload{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestSaveAttemptUnreachable(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", "tok")
	_, err := c.SaveAttempt(context.Background(), AttemptPayload{})
	assert.Error(t, err)
}

func TestConfigured(t *testing.T) {
	assert.False(t, NewClient("", "tok").Configured())
	assert.False(t, NewClient("http://x", "").Configured())
	assert.True(t, NewClient("http://x", "tok").Configured())

	var nilClient *Client
	assert.False(t, nilClient.Configured())

	_, err := NewClient("", "").SaveAttempt(context.Background(), AttemptPayload{})
	assert.Error(t, err)
}
