package quiz

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizgen/internal/grader"
	"github.com/abhisek/quizgen/internal/llm"
	qz "github.com/abhisek/quizgen/internal/quiz"
	"github.com/abhisek/quizgen/internal/router"
	"github.com/abhisek/quizgen/internal/screen"
	"github.com/abhisek/quizgen/internal/screens/results"
	sess "github.com/abhisek/quizgen/internal/session"
	"github.com/abhisek/quizgen/internal/ui/components"
	"github.com/abhisek/quizgen/internal/ui/layout"
	"github.com/abhisek/quizgen/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// QuizScreen walks the user through the generated questions and submits
// the answers for grading.
type QuizScreen struct {
	session  sess.Session
	provider llm.Provider
	runID    string
	restart  func() screen.Screen

	input  components.TextInput
	optsel components.OptionSelect

	errMsg       string
	spinnerFrame int
	confirming   bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.TagProvider = (*QuizScreen)(nil)

// New creates the quiz screen for a session that has just entered the
// answering phase. The provider and run id are reused for grading so the
// event log correlates both calls of one quiz.
func New(s sess.Session, provider llm.Provider, runID string, restart func() screen.Screen) *QuizScreen {
	scr := &QuizScreen{
		session:  s,
		provider: provider,
		runID:    runID,
		restart:  restart,
	}
	scr.syncComponents()
	return scr
}

func (s *QuizScreen) Init() tea.Cmd {
	if q, ok := s.session.Current(); ok && q.Type == qz.QuestionOpenEnded {
		return s.input.Focus()
	}
	return nil
}

func (s *QuizScreen) Title() string {
	if s.session.IsGrading() {
		return "Grading"
	}
	return fmt.Sprintf("Question %d of %d", s.session.Index()+1, len(s.session.Questions()))
}

func (s *QuizScreen) Tag() string {
	cfg := s.session.Config()
	if cfg.Mode == qz.ModeContext {
		return "Context Mode"
	}
	return cfg.Input
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.session.IsGrading() {
		return []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	if s.confirming {
		return []layout.KeyHint{
			{Key: "Y", Description: "Submit"},
			{Key: "N", Description: "Keep answering"},
		}
	}
	hints := []layout.KeyHint{}
	if !s.session.IsFirst() {
		hints = append(hints, layout.KeyHint{Key: "◂", Description: "Previous"})
	}
	if s.session.IsLast() {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Submit quiz"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Next"})
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	return hints
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resultsReadyMsg:
		return s.handleResultsReady(msg)

	case spinnerTickMsg:
		if !s.session.IsGrading() {
			return s, nil
		}
		s.spinnerFrame = (s.spinnerFrame + 1) % len(spinnerFrames)
		return s, spinnerTick()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.session.IsGrading() {
		return s, nil
	}

	if s.confirming {
		switch msg.String() {
		case "y", "Y", "enter":
			s.confirming = false
			return s.submit()
		case "n", "N", "esc":
			s.confirming = false
			return s, nil
		}
		return s, nil
	}

	q, ok := s.session.Current()
	if !ok {
		return s, nil
	}

	switch msg.String() {
	case "enter":
		s.recordCurrent(q)
		if s.session.IsLast() {
			s.confirming = true
			return s, nil
		}
		return s.advance()
	case "left":
		if q.Type == qz.QuestionOpenEnded {
			break
		}
		return s.retreat(q)
	case "shift+tab":
		return s.retreat(q)
	}

	var cmd tea.Cmd
	switch q.Type {
	case qz.QuestionMultipleChoice:
		s.optsel, cmd = s.optsel.Update(msg)
		if chosen, ok := s.optsel.ChosenOption(); ok {
			next, err := s.session.RecordAnswer(q.ID, chosen)
			if err == nil {
				s.session = next
			}
		}
	case qz.QuestionOpenEnded:
		s.input, cmd = s.input.Update(msg)
	}

	return s, cmd
}

// recordCurrent captures whatever the active component holds, including
// the empty string. An unanswered question stays unanswered.
func (s *QuizScreen) recordCurrent(q qz.Question) {
	var text string
	var have bool
	switch q.Type {
	case qz.QuestionMultipleChoice:
		text, have = s.optsel.ChosenOption()
	case qz.QuestionOpenEnded:
		text = strings.TrimSpace(s.input.Value())
		have = text != ""
	}
	if _, recorded := s.session.AnswerFor(q.ID); !have && !recorded {
		return
	}
	next, err := s.session.RecordAnswer(q.ID, text)
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	s.session = next
	s.errMsg = ""
}

func (s *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	next, err := s.session.Advance()
	if err != nil {
		return s, nil
	}
	s.session = next
	s.syncComponents()
	return s, s.Init()
}

func (s *QuizScreen) retreat(q qz.Question) (screen.Screen, tea.Cmd) {
	if s.session.IsFirst() {
		return s, nil
	}
	s.recordCurrent(q)
	next, err := s.session.Retreat()
	if err != nil {
		return s, nil
	}
	s.session = next
	s.syncComponents()
	return s, s.Init()
}

// syncComponents rebuilds the answer widgets for the question under the
// cursor, preselecting any previously recorded answer.
func (s *QuizScreen) syncComponents() {
	q, ok := s.session.Current()
	if !ok {
		return
	}

	recorded, _ := s.session.AnswerFor(q.ID)

	switch q.Type {
	case qz.QuestionMultipleChoice:
		chosen := -1
		for i, opt := range q.Options {
			if opt == recorded {
				chosen = i
				break
			}
		}
		s.optsel = components.NewOptionSelect(q.Text, q.Options, chosen)
	case qz.QuestionOpenEnded:
		s.input = components.NewTextInput("Type your answer...", 2000)
		s.input.Model.SetValue(recorded)
	}
}

func (s *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	next, err := s.session.Submit()
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.session = next
	s.errMsg = ""
	return s, tea.Batch(s.grade(), spinnerTick())
}

func (s *QuizScreen) grade() tea.Cmd {
	provider := s.provider
	runID := s.runID
	questions := s.session.Questions()
	answers := s.session.Answers()
	cfg := s.session.Config()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		ctx = llm.WithSessionID(ctx, runID)

		// The input anchors grading in both modes: the pasted passage in
		// context mode, the subject otherwise.
		g := grader.New(provider, grader.DefaultConfig())
		results, err := g.Grade(ctx, questions, answers, cfg.Input)
		if err != nil {
			return resultsReadyMsg{Err: err}
		}
		return resultsReadyMsg{Results: results}
	}
}

func (s *QuizScreen) handleResultsReady(msg resultsReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		next, terr := s.session.GradingFailed(msg.Err)
		if terr != nil {
			return s, nil
		}
		s.session = next
		s.errMsg = msg.Err.Error()
		s.syncComponents()
		return s, s.Init()
	}

	next, err := s.session.ResultsReady(msg.Results)
	if err != nil {
		return s, nil
	}
	s.session = next

	resultsScr := results.New(next, s.restart)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: resultsScr}
	}
}

func (s *QuizScreen) View(width, height int) string {
	if s.session.IsGrading() {
		return s.renderGrading(width, height)
	}
	if s.confirming {
		return s.renderConfirm(width, height)
	}
	return s.renderQuestion(width, height)
}

func (s *QuizScreen) renderGrading(width, height int) string {
	frame := spinnerFrames[s.spinnerFrame]
	text := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render(frame+" Grading your answers...") + "\n\n" +
		theme.Hint.Render("Every question is scored, answered or not.")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, text)
}

func (s *QuizScreen) renderConfirm(width, height int) string {
	answered := 0
	for _, q := range s.session.Questions() {
		if a, ok := s.session.AnswerFor(q.ID); ok && strings.TrimSpace(a) != "" {
			answered++
		}
	}
	total := len(s.session.Questions())

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Submit quiz for grading?"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("%d of %d questions answered.", answered, total)))
	if answered < total {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Unanswered questions are graded as blank."))
	}
	b.WriteString("\n\n")
	b.WriteString(theme.Good.Render("[Y] Submit") + "   " + theme.Bad.Render("[N] Keep answering"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Card.Render(b.String()))
}

func (s *QuizScreen) renderQuestion(width, height int) string {
	q, ok := s.session.Current()
	if !ok {
		return ""
	}

	var b strings.Builder

	progress := components.NewProgressBar("", s.session.Progress(), false, min(width-8, 48))
	b.WriteString(progress.View())
	b.WriteString("\n\n")

	switch q.Type {
	case qz.QuestionMultipleChoice:
		b.WriteString(s.optsel.View())
	case qz.QuestionOpenEnded:
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(q.Text))
		b.WriteString("\n\n")
		b.WriteString(s.input.View())
	}

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Bad.Render("✗ " + s.errMsg))
	}

	content := lipgloss.NewStyle().Padding(1, 4).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func spinnerTick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
