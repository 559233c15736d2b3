// Package timer implements the per-question stopwatch. It is a pure
// counter: the owning screen drives it with one tick per second and
// feeds it the identity of the question currently displayed. Elapsed
// time is ephemeral and never persisted.
package timer

import "fmt"

// Threshold boundaries for the timer's display states, in seconds.
const (
	WarningThreshold = 120
	DangerThreshold  = 180
)

// Stopwatch counts seconds spent on the current question.
type Stopwatch struct {
	seconds    int
	running    bool
	questionID int
	observed   bool
}

// New returns a running stopwatch at zero.
func New() *Stopwatch {
	return &Stopwatch{running: true}
}

// Observe tells the stopwatch which question is currently displayed.
// Any identity change zeroes the counter and resumes running.
func (s *Stopwatch) Observe(questionID int) {
	if s.observed && s.questionID == questionID {
		return
	}
	s.questionID = questionID
	s.observed = true
	s.seconds = 0
	s.running = true
}

// Tick advances the counter by one second while running.
func (s *Stopwatch) Tick() {
	if s.running {
		s.seconds++
	}
}

// Pause stops the counter without resetting it.
func (s *Stopwatch) Pause() {
	s.running = false
}

// Resume restarts a paused counter, keeping the accumulated value.
func (s *Stopwatch) Resume() {
	s.running = true
}

// Reset zeroes the counter without pausing.
func (s *Stopwatch) Reset() {
	s.seconds = 0
}

// Elapsed returns the accumulated seconds on the current question.
func (s *Stopwatch) Elapsed() int {
	return s.seconds
}

// Running reports whether the counter is advancing.
func (s *Stopwatch) Running() bool {
	return s.running
}

// IsWarning reports elapsed time in [120, 180) seconds.
func (s *Stopwatch) IsWarning() bool {
	return s.seconds >= WarningThreshold && s.seconds < DangerThreshold
}

// IsDanger reports elapsed time of 180 seconds or more.
func (s *Stopwatch) IsDanger() bool {
	return s.seconds >= DangerThreshold
}

// Format renders the elapsed time as MM:SS. Minutes keep growing past
// 59; there is no hour component.
func (s *Stopwatch) Format() string {
	return FormatSeconds(s.seconds)
}

// FormatSeconds renders a second count as zero-padded MM:SS.
func FormatSeconds(total int) string {
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
