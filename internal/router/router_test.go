package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizgen/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPushPop(t *testing.T) {
	r := New(&stubScreen{title: "setup"})

	quiz := &stubScreen{title: "quiz"}
	r.Push(quiz)

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
	if r.Active().Title() != "quiz" {
		t.Errorf("active = %q, want quiz", r.Active().Title())
	}
	if !quiz.initRan {
		t.Error("Init() must run on the pushed screen")
	}

	r.Pop()
	if r.Active().Title() != "setup" {
		t.Errorf("active after pop = %q, want setup", r.Active().Title())
	}

	// The base screen never pops off.
	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("depth after pop at bottom = %d, want 1", r.Depth())
	}
}

func TestReplaceKeepsDepth(t *testing.T) {
	r := New(&stubScreen{title: "setup"})

	quiz := &stubScreen{title: "quiz"}
	r.Replace(quiz)

	if r.Depth() != 1 {
		t.Errorf("depth after replace = %d, want 1", r.Depth())
	}
	if r.Active().Title() != "quiz" {
		t.Errorf("active = %q, want quiz", r.Active().Title())
	}
	if !quiz.initRan {
		t.Error("Init() must run on the replacement screen")
	}
}

func TestNavigationMessages(t *testing.T) {
	r := New(&stubScreen{title: "setup"})

	r.Update(PushScreenMsg{Screen: &stubScreen{title: "quiz"}})
	if r.Depth() != 2 {
		t.Fatalf("depth after push msg = %d, want 2", r.Depth())
	}

	results := &stubScreen{title: "results"}
	r.Update(ReplaceScreenMsg{Screen: results})
	if r.Depth() != 2 || r.Active().Title() != "results" {
		t.Errorf("after replace msg: depth=%d active=%q", r.Depth(), r.Active().Title())
	}
	if !results.initRan {
		t.Error("Init() must run via ReplaceScreenMsg")
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "setup" {
		t.Errorf("active after pop msg = %q, want setup", r.Active().Title())
	}
}
