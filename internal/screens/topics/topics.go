package topics

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/progress"
	"github.com/abhisek/prepdeck/internal/provider"
	"github.com/abhisek/prepdeck/internal/question"
	"github.com/abhisek/prepdeck/internal/router"
	"github.com/abhisek/prepdeck/internal/screen"
	"github.com/abhisek/prepdeck/internal/screens/practice"
	"github.com/abhisek/prepdeck/internal/topic"
	"github.com/abhisek/prepdeck/internal/ui/components"
	"github.com/abhisek/prepdeck/internal/ui/theme"
)

// TopicsScreen is the start screen: the four topics with bank size and
// saved progress, plus exit.
type TopicsScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*TopicsScreen)(nil)

// New creates the topic selector. Bank sizes and progress summaries are
// computed up front; a topic whose bank fails to load still appears,
// with the failure noted in its detail line.
func New(prov provider.Provider, store progress.Store) *TopicsScreen {
	ctx := context.Background()

	items := make([]components.MenuItem, 0, len(topic.All())+1)
	for _, t := range topic.All() {
		t := t
		items = append(items, components.MenuItem{
			Label:  t.Name,
			Detail: topicDetail(ctx, prov, store, t),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: practice.New(prov, store, t),
					}
				}
			},
		})
	}

	items = append(items, components.MenuItem{
		Label: "Exit",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	return &TopicsScreen{menu: components.NewMenu(items)}
}

func topicDetail(ctx context.Context, prov provider.Provider, store progress.Store, t topic.Topic) string {
	records, err := prov.Questions(ctx, t.ID)
	if err != nil {
		return "no questions available"
	}
	total := len(question.Normalize(records, t.ID))

	answered := 0
	if rec, ok := store.Load(ctx, t.ID); ok {
		answered = len(rec.Answers)
	}

	if answered == 0 {
		return fmt.Sprintf("%d questions", total)
	}
	return fmt.Sprintf("%d questions · %d answered", total, answered)
}

func (s *TopicsScreen) Init() tea.Cmd {
	return nil
}

func (s *TopicsScreen) Title() string {
	return "Topics"
}

func (s *TopicsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *TopicsScreen) View(width, height int) string {
	title := theme.Title.Render("Digital SAT Math Practice")
	subtitle := theme.Subtitle.Render("Pick a topic to continue where you left off")

	content := strings.Join([]string{title, subtitle, "", s.menu.View()}, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
