// Package bank holds the built-in interview question catalog and the
// helpers that turn a seed set into a full session: padding to a fixed
// length and per-session option shuffling.
package bank

// InterviewType identifies a question track.
type InterviewType string

const (
	TypeTechnical    InterviewType = "technical"
	TypeBehavioral   InterviewType = "behavioral"
	TypeSystemDesign InterviewType = "system-design"
)

// Types lists all interview types in display order.
var Types = []InterviewType{TypeTechnical, TypeBehavioral, TypeSystemDesign}

// Mode identifies how a session is answered.
type Mode string

const (
	ModeMCQ    Mode = "mcq"
	ModeCoding Mode = "coding"
	ModeQuiz   Mode = "quiz"
)

// Modes lists all session modes in display order.
var Modes = []Mode{ModeMCQ, ModeCoding, ModeQuiz}

// Kind selects which Template payload fields are meaningful.
type Kind string

const (
	// KindChoice is a multiple-choice question with one correct option.
	KindChoice Kind = "choice"
	// KindCode is a freeform question answered with code.
	KindCode Kind = "code"
	// KindText is a freeform question answered in prose.
	KindText Kind = "text"
)

// Kind returns the question kind a mode produces.
func (m Mode) Kind() Kind {
	switch m {
	case ModeCoding:
		return KindCode
	case ModeQuiz:
		return KindText
	default:
		return KindChoice
	}
}

// Label returns a human-readable mode name.
func (m Mode) Label() string {
	switch m {
	case ModeMCQ:
		return "MCQ Based"
	case ModeCoding:
		return "Coding Based"
	case ModeQuiz:
		return "Quiz Based"
	}
	return string(m)
}

// Label returns a human-readable type name.
func (t InterviewType) Label() string {
	switch t {
	case TypeTechnical:
		return "Technical"
	case TypeBehavioral:
		return "Behavioral"
	case TypeSystemDesign:
		return "System Design"
	}
	return string(t)
}

// Template is a single bank question. Kind decides which payload fields
// are set; consumers switch on it rather than probing fields.
type Template struct {
	ID     string
	Kind   Kind
	Prompt string

	// KindChoice payload. Answer indexes Options in canonical order;
	// display order comes from a per-session Permutation.
	Options     []string
	Answer      int
	Explanation string

	// KindCode payload.
	Starter string
	Rubric  []string

	// KindText payload.
	Placeholder string
	Checklist   []string
}

// Keywords returns the grading keyword phrases for freeform kinds,
// nil for choice questions.
func (t Template) Keywords() []string {
	switch t.Kind {
	case KindCode:
		return t.Rubric
	case KindText:
		return t.Checklist
	}
	return nil
}

// Questions returns the seed set for a type and mode. An unknown type
// falls back to the technical track; an unknown mode yields nil.
func Questions(t InterviewType, m Mode) []Template {
	track, ok := catalog[t]
	if !ok {
		track = catalog[TypeTechnical]
	}
	seeds := track[m]
	out := make([]Template, len(seeds))
	copy(out, seeds)
	return out
}
