package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/prepdeck/internal/screen"
)

// fakeScreen is a minimal screen for testing.
type fakeScreen struct {
	title   string
	initRan bool
}

func (s *fakeScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *fakeScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *fakeScreen) View(int, int) string                    { return s.title }
func (s *fakeScreen) Title() string                           { return s.title }

func TestPushAndPop(t *testing.T) {
	root := &fakeScreen{title: "topics"}
	r := New(root)

	prac := &fakeScreen{title: "practice"}
	r.Update(PushScreenMsg{Screen: prac})

	if r.Depth() != 2 {
		t.Fatalf("expected depth 2 after push, got %d", r.Depth())
	}
	if !prac.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
	if r.Active().Title() != "practice" {
		t.Errorf("expected active 'practice', got %q", r.Active().Title())
	}

	r.Update(PopScreenMsg{})
	if r.Depth() != 1 {
		t.Fatalf("expected depth 1 after pop, got %d", r.Depth())
	}
	if r.Active().Title() != "topics" {
		t.Errorf("expected active 'topics', got %q", r.Active().Title())
	}
}

func TestPopKeepsRootScreen(t *testing.T) {
	r := New(&fakeScreen{title: "topics"})

	r.Update(PopScreenMsg{})

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplaceDiscardsTopScreen(t *testing.T) {
	root := &fakeScreen{title: "topics"}
	r := New(root)
	r.Push(&fakeScreen{title: "algebra"})

	geometry := &fakeScreen{title: "geometry"}
	r.Update(ReplaceScreenMsg{Screen: geometry})

	if r.Depth() != 2 {
		t.Fatalf("expected depth 2 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "geometry" {
		t.Errorf("expected active 'geometry', got %q", r.Active().Title())
	}
	if !geometry.initRan {
		t.Error("expected Init() to run on replacement screen")
	}
}

func TestUpdateForwardsToActiveScreen(t *testing.T) {
	root := &fakeScreen{title: "topics"}
	r := New(root)

	// An unknown message goes to the active screen rather than the router.
	r.Update(tea.KeyPressMsg{Code: 'x'})

	if r.Active() != screen.Screen(root) {
		t.Error("active screen changed on a plain message")
	}
}
