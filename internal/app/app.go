package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/progress"
	"github.com/abhisek/prepdeck/internal/provider"
	"github.com/abhisek/prepdeck/internal/router"
	"github.com/abhisek/prepdeck/internal/screen"
	"github.com/abhisek/prepdeck/internal/screens/topics"
	"github.com/abhisek/prepdeck/internal/ui/layout"
)

// Options carries the dependencies the TUI needs.
type Options struct {
	Provider provider.Provider
	Store    progress.Store

	// InitialScreen overrides the topic selector as the first screen.
	// Used by `prepdeck practice <topic>` to jump straight in.
	InitialScreen screen.Screen
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the topic selector, or the
// caller-provided initial screen.
func newAppModel(opts Options) AppModel {
	initial := opts.InitialScreen
	if initial == nil {
		initial = topics.New(opts.Provider, opts.Store)
	}
	return AppModel{
		router: router.New(initial),
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case router.PopScreenMsg:
		// A pop from the only screen on the stack ends the program.
		// Happens when `prepdeck practice <topic>` boots straight into
		// a session and the user backs out of it.
		if m.router.Depth() == 1 {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()

	title := ""
	if active != nil {
		title = active.Title()
	}

	extra := ""
	if p, ok := active.(screen.HeaderExtraProvider); ok {
		extra = p.HeaderExtra()
	}

	header := layout.RenderHeader(title, extra, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "navigate"},
		{Key: "enter", Description: "select"},
		{Key: "ctrl+c", Description: "quit"},
	}
	if p, ok := active.(screen.KeyHintProvider); ok {
		if hints := p.KeyHints(); len(hints) > 0 {
			footerHints = append(hints, layout.KeyHint{Key: "ctrl+c", Description: "quit"})
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
