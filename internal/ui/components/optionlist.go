package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/prepdeck/internal/ui/theme"
)

// OptionList renders a multiple-choice answer sheet. Chosen is the
// letter index of the recorded answer (-1 when unanswered); Cursor is
// the keyboard highlight. The list never reveals the correct answer —
// that belongs to the explanation drawer.
type OptionList struct {
	Options []string
	Cursor  int
	Chosen  int
}

// NewOptionList creates an option list with no recorded answer.
func NewOptionList(options []string) OptionList {
	return OptionList{Options: options, Chosen: -1}
}

// Init returns nil.
func (o OptionList) Init() tea.Cmd {
	return nil
}

// Update moves the cursor and records a choice on enter. Letter-key
// selection is handled by the owning screen.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	case "enter":
		o.Chosen = o.Cursor
	}

	return o, nil
}

// View renders the lettered options.
func (o OptionList) View() string {
	var s string
	for i, opt := range o.Options {
		label := string(rune('A' + i))
		prefix := "  "
		if i == o.Cursor {
			prefix = "▸ "
		}

		marker := " "
		if i == o.Chosen {
			marker = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, label, opt)

		switch {
		case i == o.Chosen:
			s += theme.Selected.Render(line) + "\n"
		case i == o.Cursor:
			s += theme.Body.Bold(true).Render(line) + "\n"
		default:
			s += theme.Body.Render(line) + "\n"
		}
	}
	return s
}
