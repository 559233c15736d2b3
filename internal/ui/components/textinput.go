package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/ui/theme"
)

// AnswerInput wraps bubbles/textinput for free-response answer entry.
type AnswerInput struct {
	Model     textinput.Model
	submitted bool
	correct   bool
}

// NewAnswerInput creates a styled answer input.
func NewAnswerInput(placeholder string, maxWidth int) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return AnswerInput{Model: ti}
}

// Init returns the initial command.
func (a AnswerInput) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update handles messages.
func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

// View renders the input with a check/cross once submitted.
func (a AnswerInput) View() string {
	view := a.Model.View()
	if a.submitted {
		if a.correct {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (a AnswerInput) Value() string {
	return a.Model.Value()
}

// SetValue replaces the input's content (used when restoring a saved
// answer on navigation).
func (a *AnswerInput) SetValue(v string) {
	a.Model.SetValue(v)
}

// Submit marks the input as submitted with a correctness result.
func (a *AnswerInput) Submit(correct bool) {
	a.submitted = true
	a.correct = correct
}

// ClearResult removes the submitted check/cross marker.
func (a *AnswerInput) ClearResult() {
	a.submitted = false
}
