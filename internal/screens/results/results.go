package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/quizgen/internal/quiz"
	"github.com/abhisek/quizgen/internal/router"
	"github.com/abhisek/quizgen/internal/screen"
	sess "github.com/abhisek/quizgen/internal/session"
	"github.com/abhisek/quizgen/internal/ui/components"
	"github.com/abhisek/quizgen/internal/ui/layout"
	"github.com/abhisek/quizgen/internal/ui/theme"
)

// ResultsScreen shows the aggregate score and the per-question verdicts.
type ResultsScreen struct {
	session sess.Session
	restart func() screen.Screen

	score  int
	band   qz.ScoreBand
	cursor int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the results screen for a graded session.
func New(s sess.Session, restart func() screen.Screen) *ResultsScreen {
	score, err := qz.AggregateScore(s.Results())
	if err != nil {
		score = 0
	}
	return &ResultsScreen{
		session: s,
		restart: restart,
		score:   score,
		band:    qz.Band(score),
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Browse"},
		{Key: "N", Description: "New quiz"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.session.Results())-1 {
			s.cursor++
		}
	case "n", "N", "enter":
		if s.restart != nil {
			next := s.restart()
			return s, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: next}
			}
		}
	}

	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(s.renderSummary(width))
	b.WriteString("\n\n")
	b.WriteString(s.renderDetail(width))

	content := lipgloss.NewStyle().Padding(1, 4).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *ResultsScreen) renderSummary(width int) string {
	scoreStyle := theme.Good
	switch s.band {
	case qz.BandMedium:
		scoreStyle = lipgloss.NewStyle().Foreground(theme.Warning).Bold(true)
	case qz.BandLow:
		scoreStyle = theme.Bad
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Quiz Complete"))
	b.WriteString("\n\n")
	b.WriteString(scoreStyle.Render(fmt.Sprintf("Overall Score: %d / 100", s.score)))
	b.WriteString("\n")

	bar := components.NewProgressBar("", float64(s.score)/100, false, min(width-16, 40))
	b.WriteString(bar.View())
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(qz.BandMessage(s.band)))

	return b.String()
}

// renderDetail shows the verdict for the result under the cursor. One at
// a time keeps long feedback readable in a small terminal.
func (s *ResultsScreen) renderDetail(width int) string {
	results := s.session.Results()
	if len(results) == 0 {
		return ""
	}
	if s.cursor >= len(results) {
		s.cursor = len(results) - 1
	}
	r := results[s.cursor]

	question := "(question missing)"
	answer := "(no answer)"
	for _, q := range s.session.Questions() {
		if q.ID == r.QuestionID {
			question = q.Text
			break
		}
	}
	if a, ok := s.session.AnswerFor(r.QuestionID); ok && strings.TrimSpace(a) != "" {
		answer = a
	}

	scoreStyle := theme.Good
	switch qz.Band(r.Score) {
	case qz.BandMedium:
		scoreStyle = lipgloss.NewStyle().Foreground(theme.Warning).Bold(true)
	case qz.BandLow:
		scoreStyle = theme.Bad
	}

	wrap := lipgloss.NewStyle().Width(min(width-16, 72))

	var b strings.Builder
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Question %d of %d", s.cursor+1, len(results))))
	b.WriteString("\n\n")
	b.WriteString(wrap.Foreground(theme.Text).Bold(true).Render(question))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Your answer: ") + theme.Body.Render(answer))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("Correct answer: ") + theme.Body.Render(r.CorrectAnswer))
	b.WriteString("\n\n")
	b.WriteString(scoreStyle.Render(fmt.Sprintf("Score: %d", r.Score)))
	if r.Clamped {
		b.WriteString(theme.Hint.Render("  (adjusted into the 0-100 range)"))
	}
	b.WriteString("\n")
	b.WriteString(wrap.Foreground(theme.TextDim).Render(r.Feedback))

	return theme.Card.Render(b.String())
}
