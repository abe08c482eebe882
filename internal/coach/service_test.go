package coach

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func validReviewJSON() json.RawMessage {
	return json.RawMessage(`{
		"summary": "Your system design answers named the right components but skipped requirements gathering, and the behavioral answer lacked a concrete outcome.",
		"tips": [
			"Open design answers by stating functional and scale requirements",
			"Close behavioral stories with a measurable result"
		]
	}`)
}

func sampleInput() ReviewInput {
	score := 50
	return ReviewInput{
		InterviewType: "System Design",
		Mode:          "Coding Challenge",
		ScorePercent:  &score,
		Weaknesses:    []string{"Clarity", "Structure"},
		Exchanges: []Exchange{
			{
				Prompt:    "Design a URL shortener.",
				Answer:    "I would use a hash function and a key-value store.",
				Clarity:   40,
				Structure: 60,
			},
		},
	}
}

func waitForReview(t *testing.T, svc *Service) (*Review, bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if review, ok := svc.ConsumeReview(); ok {
			return review, true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return nil, false
}

func TestService_GeneratesReview(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: validReviewJSON()})
	svc := NewService(mock, DefaultReviewConfig())

	svc.RequestReview(t.Context(), sampleInput())

	review, ok := waitForReview(t, svc)
	if !ok || review == nil {
		t.Fatal("expected review to be generated")
	}

	if review.Summary == "" {
		t.Error("expected non-empty summary")
	}
	if len(review.Tips) != 2 {
		t.Errorf("expected 2 tips, got %d", len(review.Tips))
	}
	if review.GeneratedAt.IsZero() {
		t.Error("expected GeneratedAt to be set")
	}
}

func TestService_RequestCarriesContext(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: validReviewJSON()})
	svc := NewService(mock, DefaultReviewConfig())

	svc.RequestReview(t.Context(), sampleInput())

	if _, ok := waitForReview(t, svc); !ok {
		t.Fatal("expected review to be generated")
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.System != reviewSystemPrompt {
		t.Error("expected system prompt to be set")
	}
	if req.Schema != ReviewSchema {
		t.Error("expected review schema to be requested")
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != RoleUser {
		t.Fatalf("expected a single user message, got %+v", req.Messages)
	}
	msg := req.Messages[0].Content
	for _, want := range []string{"System Design", "URL shortener", "Clarity"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected user message to mention %q", want)
		}
	}
}

func TestService_ConsumeClearsReview(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: validReviewJSON()})
	svc := NewService(mock, DefaultReviewConfig())

	svc.RequestReview(t.Context(), sampleInput())

	if _, ok := waitForReview(t, svc); !ok {
		t.Fatal("expected review to be generated")
	}

	// Second consume should return false.
	if _, ok := svc.ConsumeReview(); ok {
		t.Error("expected second ConsumeReview to return false")
	}
}

func TestService_ProviderError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{}})
	svc := NewService(mock, DefaultReviewConfig())

	svc.RequestReview(t.Context(), sampleInput())

	// Wait for the async attempt to settle.
	time.Sleep(100 * time.Millisecond)

	if review, ok := svc.ConsumeReview(); ok || review != nil {
		t.Error("expected no review on provider error")
	}
}

func TestService_MalformedReviewJSON(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`not json`)})
	svc := NewService(mock, DefaultReviewConfig())

	svc.RequestReview(t.Context(), sampleInput())

	time.Sleep(100 * time.Millisecond)

	if review, ok := svc.ConsumeReview(); ok || review != nil {
		t.Error("expected no review for malformed output")
	}
}
