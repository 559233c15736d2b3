package question

import "strings"

// Kind distinguishes the two question formats in the bank.
type Kind string

const (
	KindMultipleChoice Kind = "mcq"
	KindFreeResponse   Kind = "free-response"
)

// Question is the canonical, immutable form every raw record normalizes
// into. Within a topic, ID is the key for answer and review-flag maps;
// navigation addresses questions by position, not ID.
type Question struct {
	ID             int
	Text           string
	Kind           Kind
	Options        []string
	Answer         string
	Explanation    string
	TopicID        string
	ReferenceImage string
}

// OptionLabel returns the letter label for an option index (0 → "A").
func OptionLabel(i int) string {
	return string(rune('A' + i))
}

// CheckAnswer compares a submitted answer against the question's key.
// Comparison is case-insensitive and ignores surrounding whitespace.
func (q *Question) CheckAnswer(submitted string) bool {
	return strings.EqualFold(
		strings.TrimSpace(submitted),
		strings.TrimSpace(q.Answer),
	)
}

// ValidateAnswer reports whether a submitted answer is well-formed for
// this question's kind: a letter within the option range for multiple
// choice, any non-empty string for free response. The session controller
// stores whatever it is given; this check belongs to the view layer.
func (q *Question) ValidateAnswer(submitted string) bool {
	s := strings.TrimSpace(submitted)
	if s == "" {
		return false
	}
	if q.Kind != KindMultipleChoice {
		return true
	}
	if len(s) != 1 {
		return false
	}
	idx := int(strings.ToUpper(s)[0]) - 'A'
	return idx >= 0 && idx < len(q.Options)
}
