package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// Service generates coaching reviews asynchronously.
type Service struct {
	provider Provider
	cfg      ReviewConfig

	mu      sync.Mutex
	pending *Review
	err     error
	ready   bool
}

// NewService creates a review generation service.
func NewService(provider Provider, cfg ReviewConfig) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// RequestReview starts async review generation. Only one review is
// in-flight at a time, new requests replace pending ones.
func (s *Service) RequestReview(ctx context.Context, input ReviewInput) {
	go func() {
		review, err := s.generate(ctx, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = review
		s.err = err
		s.ready = true
	}()
}

// ConsumeReview returns the pending review if one is ready. Returns
// (nil, false) if no review is ready yet. After consumption, the
// pending slot is cleared.
func (s *Service) ConsumeReview() (*Review, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	review := s.pending
	s.pending = nil
	s.ready = false
	s.err = nil
	return review, review != nil
}

type reviewOutput struct {
	Summary string   `json:"summary"`
	Tips    []string `json:"tips"`
}

func (s *Service) generate(ctx context.Context, input ReviewInput) (*Review, error) {
	ctx = WithPurpose(ctx, "review")

	userMsg := buildReviewUserMessage(input)

	req := Request{
		System: reviewSystemPrompt,
		Messages: []Message{
			{Role: RoleUser, Content: userMsg},
		},
		Schema:      ReviewSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("review generation: %w", err)
	}

	var out reviewOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse review response: %w", err)
	}

	return &Review{
		Summary:     out.Summary,
		Tips:        out.Tips,
		GeneratedAt: time.Now(),
	}, nil
}
