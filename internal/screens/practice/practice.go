// Package practice implements the Bluebook-style practice screen: one
// question at a time with answer capture, review flags, an explanation
// drawer, a question navigator overlay, and the per-question stopwatch
// shown in the header.
package practice

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/progress"
	"github.com/abhisek/prepdeck/internal/provider"
	"github.com/abhisek/prepdeck/internal/question"
	"github.com/abhisek/prepdeck/internal/router"
	"github.com/abhisek/prepdeck/internal/screen"
	"github.com/abhisek/prepdeck/internal/session"
	"github.com/abhisek/prepdeck/internal/timer"
	"github.com/abhisek/prepdeck/internal/topic"
	"github.com/abhisek/prepdeck/internal/ui/components"
	"github.com/abhisek/prepdeck/internal/ui/layout"
	"github.com/abhisek/prepdeck/internal/ui/theme"
)

// tickSeq hands out a unique id per screen instance so stale tick
// chains from a replaced screen are dropped instead of double-counting.
var tickSeq atomic.Int64

// PracticeScreen drives one practice session for a single topic.
type PracticeScreen struct {
	ctrl   *session.Controller
	top    topic.Topic
	watch  *timer.Stopwatch
	tickID int

	input   components.AnswerInput
	options components.OptionList

	loading         bool
	showExplanation bool
	showNavigator   bool
	confirmReset    bool
	navCursor       int
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)
var _ screen.HeaderExtraProvider = (*PracticeScreen)(nil)

// New creates a practice screen for the given topic. Questions are
// loaded asynchronously from Init.
func New(prov provider.Provider, store progress.Store, t topic.Topic) *PracticeScreen {
	return &PracticeScreen{
		ctrl:    session.New(prov, store),
		top:     t,
		watch:   timer.New(),
		tickID:  int(tickSeq.Add(1)),
		input:   components.NewAnswerInput("type your answer", 24),
		loading: true,
	}
}

func (s *PracticeScreen) Init() tea.Cmd {
	return func() tea.Msg {
		s.ctrl.Load(context.Background(), s.top.ID)
		return questionsLoadedMsg{}
	}
}

func (s *PracticeScreen) Title() string {
	return s.top.Name
}

// HeaderExtra renders the stopwatch for the header's right slot, styled
// by threshold and annotated when paused.
func (s *PracticeScreen) HeaderExtra() string {
	if s.loading || s.ctrl.Len() == 0 {
		return ""
	}

	style := lipgloss.NewStyle().Foreground(theme.TextDim)
	switch {
	case s.watch.IsDanger():
		style = lipgloss.NewStyle().Foreground(theme.TimerDanger).Bold(true)
	case s.watch.IsWarning():
		style = lipgloss.NewStyle().Foreground(theme.TimerWarn).Bold(true)
	}

	label := s.watch.Format()
	if !s.watch.Running() {
		label += " ⏸"
	}
	return style.Render(label)
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.loading:
		return nil
	case s.confirmReset:
		return []layout.KeyHint{
			{Key: "y", Description: "reset"},
			{Key: "n", Description: "cancel"},
		}
	case s.showNavigator:
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "move"},
			{Key: "enter", Description: "jump"},
			{Key: "esc", Description: "close"},
		}
	case s.ctrl.Len() == 0:
		return []layout.KeyHint{{Key: "esc", Description: "back"}}
	}

	q := s.ctrl.Current()
	if q != nil && q.Kind == question.KindFreeResponse {
		return []layout.KeyHint{
			{Key: "←/→", Description: "navigate"},
			{Key: "enter", Description: "submit"},
			{Key: "^e", Description: "explanation"},
			{Key: "^l", Description: "navigator"},
			{Key: "^f", Description: "flag"},
			{Key: "^r", Description: "reset"},
			{Key: "esc", Description: "back"},
		}
	}
	return []layout.KeyHint{
		{Key: "←/→", Description: "navigate"},
		{Key: "a-d", Description: "answer"},
		{Key: "e", Description: "explanation"},
		{Key: "l", Description: "navigator"},
		{Key: "m", Description: "flag"},
		{Key: "r", Description: "reset"},
		{Key: "space", Description: "pause"},
		{Key: "esc", Description: "back"},
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsLoadedMsg:
		s.loading = false
		s.syncQuestion()
		return s, tickCmd(s.tickID)

	case tickMsg:
		if msg.id != s.tickID {
			return s, nil
		}
		s.watch.Tick()
		return s, tickCmd(s.tickID)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func tickCmd(id int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{id: id}
	})
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.loading {
		return s, nil
	}

	key := msg.String()

	if s.confirmReset {
		switch key {
		case "y":
			s.confirmReset = false
			s.ctrl.ResetProgress()
			s.syncQuestion()
		case "n", "esc":
			s.confirmReset = false
		}
		return s, nil
	}

	if s.showNavigator {
		return s.handleNavigatorKey(key)
	}

	if s.ctrl.Len() == 0 {
		if key == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	q := s.ctrl.Current()

	switch key {
	case "esc":
		if s.showExplanation {
			s.showExplanation = false
			return s, nil
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case "left":
		s.ctrl.GoToPrevious()
		s.syncQuestion()
		return s, nil

	case "right":
		s.ctrl.GoToNext()
		s.syncQuestion()
		return s, nil
	}

	if q.Kind == question.KindFreeResponse {
		return s.handleFreeResponseKey(key, msg, q)
	}
	return s.handleChoiceKey(key, msg, q)
}

// handleFreeResponseKey routes keys while the answer input has focus.
// Plain letters belong to the input, so session commands move to
// ctrl-modified bindings.
func (s *PracticeScreen) handleFreeResponseKey(key string, msg tea.KeyMsg, q *question.Question) (screen.Screen, tea.Cmd) {
	switch key {
	case "enter":
		value := strings.TrimSpace(s.input.Value())
		if q.ValidateAnswer(value) {
			s.ctrl.SetAnswer(q.ID, value)
			s.input.Submit(q.CheckAnswer(value))
		}
		return s, nil
	case "ctrl+e":
		s.showExplanation = !s.showExplanation
		return s, nil
	case "ctrl+l":
		s.openNavigator()
		return s, nil
	case "ctrl+f":
		s.ctrl.ToggleMarkForReview(q.ID)
		return s, nil
	case "ctrl+r":
		s.confirmReset = true
		return s, nil
	case "ctrl+p":
		s.togglePause()
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *PracticeScreen) handleChoiceKey(key string, msg tea.KeyMsg, q *question.Question) (screen.Screen, tea.Cmd) {
	switch key {
	case "p":
		s.ctrl.GoToPrevious()
		s.syncQuestion()
	case "n":
		s.ctrl.GoToNext()
		s.syncQuestion()
	case "a", "b", "c", "d":
		idx := int(key[0] - 'a')
		if idx < len(q.Options) {
			s.options.Cursor = idx
			s.options.Chosen = idx
			s.ctrl.SetAnswer(q.ID, question.OptionLabel(idx))
		}
	case "e":
		s.showExplanation = !s.showExplanation
	case "l":
		s.openNavigator()
	case "m":
		s.ctrl.ToggleMarkForReview(q.ID)
	case "r":
		s.confirmReset = true
	case " ", "space":
		s.togglePause()
	default:
		before := s.options.Chosen
		s.options, _ = s.options.Update(msg)
		if s.options.Chosen != before && s.options.Chosen >= 0 {
			s.ctrl.SetAnswer(q.ID, question.OptionLabel(s.options.Chosen))
		}
	}
	return s, nil
}

func (s *PracticeScreen) togglePause() {
	if s.watch.Running() {
		s.watch.Pause()
	} else {
		s.watch.Resume()
	}
}

func (s *PracticeScreen) openNavigator() {
	s.navCursor = s.ctrl.Index()
	s.showNavigator = true
}

// syncQuestion rebuilds the answer widgets for the question now in
// view and tells the stopwatch which question it is timing.
func (s *PracticeScreen) syncQuestion() {
	q := s.ctrl.Current()
	if q == nil {
		return
	}

	s.watch.Observe(q.ID)

	saved, answered := s.ctrl.Answer(q.ID)

	if q.Kind == question.KindMultipleChoice {
		s.options = components.NewOptionList(q.Options)
		if answered {
			if idx := letterIndex(saved); idx >= 0 && idx < len(q.Options) {
				s.options.Chosen = idx
				s.options.Cursor = idx
			}
		}
		return
	}

	s.input.ClearResult()
	if answered {
		s.input.SetValue(saved)
		s.input.Submit(q.CheckAnswer(saved))
	} else {
		s.input.SetValue("")
	}
}

// letterIndex maps a stored choice letter back to its option index, or
// -1 when the stored answer is not a single letter.
func letterIndex(answer string) int {
	if len(answer) != 1 {
		return -1
	}
	c := answer[0]
	switch {
	case c >= 'A' && c <= 'Z':
		return int(c - 'A')
	case c >= 'a' && c <= 'z':
		return int(c - 'a')
	}
	return -1
}
