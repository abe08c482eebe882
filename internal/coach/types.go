package coach

import "time"

// Review is qualitative feedback on a finished interview. It is
// advisory: scores, reports and plans are computed locally and never
// change based on a review.
type Review struct {
	Summary     string
	Tips        []string
	GeneratedAt time.Time
}

// ReviewInput holds everything the coach sees about a finished
// interview.
type ReviewInput struct {
	InterviewType string
	Mode          string
	ScorePercent  *int
	Weaknesses    []string
	Exchanges     []Exchange
}

// Exchange is one freeform question and the candidate's answer, with
// the locally computed dimension scores.
type Exchange struct {
	Prompt    string
	Answer    string
	Clarity   int
	Structure int
}

// ReviewConfig holds review generation settings.
type ReviewConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultReviewConfig returns sensible defaults for review generation.
func DefaultReviewConfig() ReviewConfig {
	return ReviewConfig{
		MaxTokens:   512,
		Temperature: 0.5,
	}
}
