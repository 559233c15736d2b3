// Package session owns the in-memory state of one practice session: the
// ordered question sequence for a topic, the current position, submitted
// answers, and review flags. The controller is the single source of
// truth every view queries and mutates; it loads through the question
// provider and persists through the progress store.
package session

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/google/uuid"

	"github.com/abhisek/prepdeck/internal/progress"
	"github.com/abhisek/prepdeck/internal/provider"
	"github.com/abhisek/prepdeck/internal/question"
)

// Phase is the controller's lifecycle state. Ready is re-entered on
// every navigation; there is no terminal phase, the controller is
// discarded wholesale when the user leaves the topic.
type Phase int

const (
	PhaseUnloaded Phase = iota
	PhaseLoading
	PhaseReady
)

// Controller is the session state machine for one topic.
type Controller struct {
	provider provider.Provider
	store    progress.Store

	// sessionID correlates log lines from one controller instance.
	sessionID string

	topicID      string
	phase        Phase
	questions    []question.Question
	currentIndex int
	answers      map[int]string
	marked       map[int]bool
}

// New creates an unloaded controller. Both collaborators are required;
// the store is the only component that touches durable state.
func New(p provider.Provider, s progress.Store) *Controller {
	return &Controller{
		provider:  p,
		store:     s,
		sessionID: uuid.New().String(),
		phase:     PhaseUnloaded,
		answers:   make(map[int]string),
		marked:    make(map[int]bool),
	}
}

// Load fetches and normalizes the topic's questions, then merges any
// saved progress. Provider failure is not fatal: the controller comes up
// Ready with an empty sequence and the caller shows a "no questions"
// state. Saved currentIndex is clamped into the valid range.
func (c *Controller) Load(ctx context.Context, topicID string) {
	c.phase = PhaseLoading
	c.topicID = topicID
	c.currentIndex = 0
	c.answers = make(map[int]string)
	c.marked = make(map[int]bool)

	records, err := c.provider.Questions(ctx, topicID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: session %s: load topic %s: %v\n", c.sessionID, topicID, err)
		c.questions = nil
		c.phase = PhaseReady
		return
	}
	c.questions = question.Normalize(records, topicID)

	if rec, ok := c.store.Load(ctx, topicID); ok {
		c.currentIndex = clamp(rec.CurrentIndex, len(c.questions))
		for id, ans := range rec.Answers {
			c.answers[id] = ans
		}
		for _, id := range rec.MarkedForReview {
			c.marked[id] = true
		}
	}

	c.phase = PhaseReady
}

// Phase returns the controller's lifecycle state.
func (c *Controller) Phase() Phase {
	return c.phase
}

// TopicID returns the loaded topic, or "" before Load.
func (c *Controller) TopicID() string {
	return c.topicID
}

// Questions returns the full question sequence in navigation order.
func (c *Controller) Questions() []question.Question {
	return c.questions
}

// Len returns the number of questions in the sequence.
func (c *Controller) Len() int {
	return len(c.questions)
}

// Index returns the current 0-based position.
func (c *Controller) Index() int {
	return c.currentIndex
}

// Current returns the question at the current position, or nil when the
// sequence is empty.
func (c *Controller) Current() *question.Question {
	if len(c.questions) == 0 {
		return nil
	}
	return &c.questions[c.currentIndex]
}

// GoToNext advances one position. No-op at the last question.
func (c *Controller) GoToNext() {
	if c.currentIndex < len(c.questions)-1 {
		c.currentIndex++
		c.persist()
	}
}

// GoToPrevious retreats one position. No-op at the first question.
func (c *Controller) GoToPrevious() {
	if c.currentIndex > 0 {
		c.currentIndex--
		c.persist()
	}
}

// GoToQuestion jumps to an exact position. Out-of-range targets are a
// no-op, not an error.
func (c *Controller) GoToQuestion(index int) {
	if index >= 0 && index < len(c.questions) {
		c.currentIndex = index
		c.persist()
	}
}

// SetAnswer upserts the submitted answer for a question id,
// unconditionally overwriting any prior value. The controller does not
// validate the answer against the question's kind; that is a view
// concern (question.ValidateAnswer).
func (c *Controller) SetAnswer(questionID int, value string) {
	c.answers[questionID] = value
	c.persist()
}

// Answer returns the submitted answer for a question id. Absence means
// unanswered.
func (c *Controller) Answer(questionID int) (string, bool) {
	v, ok := c.answers[questionID]
	return v, ok
}

// AnsweredCount returns how many questions have a submitted answer.
func (c *Controller) AnsweredCount() int {
	return len(c.answers)
}

// ToggleMarkForReview flips the review flag for a question id. Toggling
// twice restores the prior state.
func (c *Controller) ToggleMarkForReview(questionID int) {
	if c.marked[questionID] {
		delete(c.marked, questionID)
	} else {
		c.marked[questionID] = true
	}
	c.persist()
}

// IsMarked reports whether a question id carries the review flag.
func (c *Controller) IsMarked(questionID int) bool {
	return c.marked[questionID]
}

// MarkedCount returns the number of flagged questions.
func (c *Controller) MarkedCount() int {
	return len(c.marked)
}

// ResetProgress clears the in-memory session back to defaults and
// deletes the topic's persisted record entirely. Callers must confirm
// with the user before invoking this.
func (c *Controller) ResetProgress() {
	c.currentIndex = 0
	c.answers = make(map[int]string)
	c.marked = make(map[int]bool)

	if err := c.store.Delete(context.Background(), c.topicID); err != nil {
		fmt.Fprintf(os.Stderr, "warning: session %s: delete progress for %s: %v\n", c.sessionID, c.topicID, err)
	}
}

// persist writes the full current state through the store. Failures are
// logged and never surfaced; the in-memory mutation has already taken
// effect and stays authoritative. Nothing is saved before a topic's
// questions are loaded.
func (c *Controller) persist() {
	if c.topicID == "" || len(c.questions) == 0 {
		return
	}

	rec := progress.Record{
		TopicID:         c.topicID,
		CurrentIndex:    c.currentIndex,
		Answers:         make(map[int]string, len(c.answers)),
		MarkedForReview: make([]int, 0, len(c.marked)),
		TimeSpent:       map[int]int{},
	}
	for id, ans := range c.answers {
		rec.Answers[id] = ans
	}
	for id := range c.marked {
		rec.MarkedForReview = append(rec.MarkedForReview, id)
	}
	sort.Ints(rec.MarkedForReview)

	if err := c.store.Save(context.Background(), c.topicID, rec); err != nil {
		fmt.Fprintf(os.Stderr, "warning: session %s: save progress for %s: %v\n", c.sessionID, c.topicID, err)
	}
}

func clamp(index, length int) int {
	if length == 0 {
		return 0
	}
	if index < 0 {
		return 0
	}
	if index >= length {
		return length - 1
	}
	return index
}
