package practice

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/prepdeck/internal/mathtext"
	"github.com/abhisek/prepdeck/internal/screen"
	"github.com/abhisek/prepdeck/internal/ui/theme"
)

// navigatorPreviewLen bounds the question snippet shown per row.
const navigatorPreviewLen = 44

func (s *PracticeScreen) handleNavigatorKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "up", "k":
		if s.navCursor > 0 {
			s.navCursor--
		}
	case "down", "j":
		if s.navCursor < s.ctrl.Len()-1 {
			s.navCursor++
		}
	case "enter":
		s.showNavigator = false
		s.ctrl.GoToQuestion(s.navCursor)
		s.syncQuestion()
	case "esc", "l", "ctrl+l":
		s.showNavigator = false
	}
	return s, nil
}

func (s *PracticeScreen) viewNavigator() string {
	lines := []string{
		theme.Title.Render("Questions"),
		theme.Subtitle.Render(fmt.Sprintf("%d answered · %d flagged",
			s.ctrl.AnsweredCount(), s.ctrl.MarkedCount())),
		"",
	}

	for i, q := range s.ctrl.Questions() {
		cursor := "  "
		if i == s.navCursor {
			cursor = "▸ "
		}

		status := theme.Hint.Render("○")
		if _, ok := s.ctrl.Answer(q.ID); ok {
			status = theme.Correct.Render("●")
		}

		flag := " "
		if s.ctrl.IsMarked(q.ID) {
			flag = theme.Marked.Render("⚑")
		}

		line := fmt.Sprintf("%s%s %s %2d. %s",
			cursor, status, flag, i+1, preview(q.Text))

		if i == s.navCursor {
			line = theme.Selected.Render(line)
		}
		lines = append(lines, line)
	}

	return theme.Card.Width(cardWidth).Render(strings.Join(lines, "\n"))
}

func preview(text string) string {
	t := mathtext.Render(text)
	runes := []rune(t)
	if len(runes) <= navigatorPreviewLen {
		return t
	}
	return strings.TrimRight(string(runes[:navigatorPreviewLen]), " ") + "…"
}
