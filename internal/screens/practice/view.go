package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/mathtext"
	"github.com/abhisek/prepdeck/internal/question"
	"github.com/abhisek/prepdeck/internal/ui/theme"
)

const cardWidth = 72

func (s *PracticeScreen) View(width, height int) string {
	var content string

	switch {
	case s.loading:
		content = theme.Subtitle.Render("Loading questions…")
	case s.confirmReset:
		content = s.viewResetConfirm()
	case s.showNavigator:
		content = s.viewNavigator()
	case s.ctrl.Len() == 0:
		content = s.viewEmpty()
	default:
		content = s.viewQuestion()
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (s *PracticeScreen) viewEmpty() string {
	return strings.Join([]string{
		theme.Title.Render("No questions available"),
		"",
		theme.Subtitle.Render(fmt.Sprintf("The %s bank could not be loaded.", s.top.Name)),
		theme.Hint.Render("Press esc to go back."),
	}, "\n")
}

func (s *PracticeScreen) viewResetConfirm() string {
	body := strings.Join([]string{
		theme.Title.Render("Reset progress?"),
		"",
		theme.Body.Render(fmt.Sprintf("All saved answers and review flags for %s", s.top.Name)),
		theme.Body.Render("will be deleted. This cannot be undone."),
		"",
		theme.Hint.Render("y to reset, n to cancel"),
	}, "\n")

	return theme.Card.Width(cardWidth).Render(body)
}

func (s *PracticeScreen) viewQuestion() string {
	q := s.ctrl.Current()

	var lines []string
	lines = append(lines, s.statusLine(q))
	lines = append(lines, "")
	lines = append(lines, wrap(mathtext.Render(q.Text), cardWidth-4))

	if q.ReferenceImage != "" {
		lines = append(lines, "")
		lines = append(lines, theme.Hint.Render("figure: "+q.ReferenceImage))
	}

	lines = append(lines, "")
	if q.Kind == question.KindMultipleChoice {
		lines = append(lines, s.viewOptions())
	} else {
		lines = append(lines, theme.Body.Render("Your answer:"))
		lines = append(lines, s.input.View())
	}

	if s.showExplanation {
		lines = append(lines, "")
		lines = append(lines, s.viewExplanation(q))
	}

	return theme.Card.Width(cardWidth).Render(strings.Join(lines, "\n"))
}

func (s *PracticeScreen) statusLine(q *question.Question) string {
	pos := theme.Body.Bold(true).Render(
		fmt.Sprintf("Question %d of %d", s.ctrl.Index()+1, s.ctrl.Len()))

	parts := []string{pos}
	if s.ctrl.IsMarked(q.ID) {
		parts = append(parts, theme.Marked.Render("⚑ marked for review"))
	}
	if n := s.ctrl.AnsweredCount(); n > 0 {
		parts = append(parts, theme.Hint.Render(fmt.Sprintf("%d answered", n)))
	}

	return strings.Join(parts, "   ")
}

func (s *PracticeScreen) viewOptions() string {
	options := make([]string, len(s.options.Options))
	for i, opt := range s.options.Options {
		options[i] = mathtext.Render(opt)
	}

	rendered := s.options
	rendered.Options = options
	return rendered.View()
}

func (s *PracticeScreen) viewExplanation(q *question.Question) string {
	divider := lipgloss.NewStyle().
		Foreground(theme.Border).
		Render(strings.Repeat("─", cardWidth-4))

	lines := []string{
		divider,
		theme.Correct.Render("Answer: " + mathtext.Render(q.Answer)),
		"",
		wrap(mathtext.Render(q.Explanation), cardWidth-4),
	}
	return strings.Join(lines, "\n")
}

// wrap word-wraps plain text to the given width.
func wrap(text string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(text)
}
