package question

import "testing"

func TestCheckAnswer(t *testing.T) {
	q := &Question{Answer: "B", Kind: KindMultipleChoice}

	tests := []struct {
		submitted string
		want      bool
	}{
		{"B", true},
		{"b", true},
		{"  b  ", true},
		{"A", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := q.CheckAnswer(tt.submitted); got != tt.want {
			t.Errorf("CheckAnswer(%q) = %v, want %v", tt.submitted, got, tt.want)
		}
	}
}

func TestCheckAnswer_FreeResponse(t *testing.T) {
	q := &Question{Answer: "3/4", Kind: KindFreeResponse}
	if !q.CheckAnswer(" 3/4 ") {
		t.Error("expected trimmed free-response answer to match")
	}
	if q.CheckAnswer("0.75") {
		t.Error("comparison is textual, 0.75 should not match 3/4")
	}
}

func TestValidateAnswer_MCQLetterRange(t *testing.T) {
	q := &Question{
		Kind:    KindMultipleChoice,
		Options: []string{"one", "two", "three"},
	}

	for _, ok := range []string{"A", "b", "C"} {
		if !q.ValidateAnswer(ok) {
			t.Errorf("ValidateAnswer(%q) = false, want true", ok)
		}
	}
	for _, bad := range []string{"D", "E", "1", "", "AB"} {
		if q.ValidateAnswer(bad) {
			t.Errorf("ValidateAnswer(%q) = true, want false", bad)
		}
	}
}

func TestValidateAnswer_FreeResponse(t *testing.T) {
	q := &Question{Kind: KindFreeResponse}
	if !q.ValidateAnswer("anything at all") {
		t.Error("free-response accepts any non-empty string")
	}
	if q.ValidateAnswer("   ") {
		t.Error("blank submission is not a valid answer")
	}
}

func TestOptionLabel(t *testing.T) {
	labels := []string{"A", "B", "C", "D"}
	for i, want := range labels {
		if got := OptionLabel(i); got != want {
			t.Errorf("OptionLabel(%d) = %q, want %q", i, got, want)
		}
	}
}
