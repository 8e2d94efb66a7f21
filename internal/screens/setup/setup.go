package setup

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizgen/internal/llm"
	"github.com/abhisek/quizgen/internal/quiz"
	"github.com/abhisek/quizgen/internal/quizgen"
	"github.com/abhisek/quizgen/internal/router"
	"github.com/abhisek/quizgen/internal/screen"
	quizscreen "github.com/abhisek/quizgen/internal/screens/quiz"
	sess "github.com/abhisek/quizgen/internal/session"
	"github.com/abhisek/quizgen/internal/store"
	"github.com/abhisek/quizgen/internal/ui/components"
	"github.com/abhisek/quizgen/internal/ui/layout"
	"github.com/abhisek/quizgen/internal/ui/theme"

	"github.com/google/uuid"
)

// Form field order.
const (
	fieldMode = iota
	fieldInput
	fieldQuestions
	fieldDifficulty
	fieldType
	fieldAPIKey
	fieldStart
	fieldMax
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// SetupScreen collects the quiz configuration and kicks off generation.
type SetupScreen struct {
	credRepo  store.CredentialRepo
	eventRepo store.EventRepo
	llmCfg    llm.Config

	session sess.Session

	mode       components.Cycler
	input      components.TextInput
	count      components.Cycler
	difficulty components.Cycler
	quizType   components.Cycler
	apiKey     components.TextInput

	focus        int
	errMsg       string
	spinnerFrame int
	runID        string

	hasStoredKey bool
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates the setup screen with injected dependencies.
func New(credRepo store.CredentialRepo, eventRepo store.EventRepo, llmCfg llm.Config) *SetupScreen {
	counts := make([]string, 0, quiz.MaxQuestions)
	for i := quiz.MinQuestions; i <= quiz.MaxQuestions; i++ {
		counts = append(counts, fmt.Sprintf("%d", i))
	}

	stored := ""
	if credRepo != nil {
		stored, _ = credRepo.Load(context.Background())
	}

	keyPlaceholder := "Paste your API key..."
	if stored != "" {
		keyPlaceholder = "(using stored key)"
	}

	s := &SetupScreen{
		credRepo:  credRepo,
		eventRepo: eventRepo,
		llmCfg:    llmCfg,
		session:   sess.New(sess.PolicyPermissive),
		mode: components.NewCycler("Source", []string{
			string(quiz.ModeSubject), string(quiz.ModeContext),
		}, string(quiz.ModeSubject)),
		input: components.NewTextInput("Topic, e.g. Photosynthesis...", 4000),
		count: components.NewCycler("Questions", counts, "5"),
		difficulty: components.NewCycler("Difficulty", []string{
			string(quiz.DifficultyEasy), string(quiz.DifficultyMedium), string(quiz.DifficultyHard),
		}, string(quiz.DifficultyMedium)),
		quizType: components.NewCycler("Type", []string{
			string(quiz.TypeMultipleChoice), string(quiz.TypeOpenEnded), string(quiz.TypeMixed),
		}, string(quiz.TypeMultipleChoice)),
		apiKey:       components.NewPasswordInput(keyPlaceholder),
		focus:        fieldMode,
		hasStoredKey: stored != "",
	}

	return s
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	if s.session.IsGenerating() {
		return "Generating"
	}
	return "New Quiz"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	if s.session.IsGenerating() {
		return []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "◂ ▸", Description: "Change value"},
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsReadyMsg:
		return s.handleQuestionsReady(msg)

	case spinnerTickMsg:
		if !s.session.IsGenerating() {
			return s, nil
		}
		s.spinnerFrame = (s.spinnerFrame + 1) % len(spinnerFrames)
		return s, spinnerTick()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *SetupScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.session.IsGenerating() {
		return s, nil
	}

	switch msg.String() {
	case "tab", "down":
		if s.textFieldFocused() && msg.String() == "down" {
			break
		}
		s.setFocus((s.focus + 1) % fieldMax)
		return s, nil
	case "shift+tab", "up":
		if s.textFieldFocused() && msg.String() == "up" {
			break
		}
		s.setFocus((s.focus + fieldMax - 1) % fieldMax)
		return s, nil
	case "enter":
		if s.focus == fieldStart {
			return s.startGeneration()
		}
		s.setFocus((s.focus + 1) % fieldMax)
		return s, nil
	}

	var cmd tea.Cmd
	switch s.focus {
	case fieldMode:
		before := s.mode.Value()
		s.mode, cmd = s.mode.Update(msg)
		if s.mode.Value() != before {
			s.syncInputPlaceholder()
		}
	case fieldInput:
		s.input, cmd = s.input.Update(msg)
	case fieldQuestions:
		s.count, cmd = s.count.Update(msg)
	case fieldDifficulty:
		s.difficulty, cmd = s.difficulty.Update(msg)
	case fieldType:
		s.quizType, cmd = s.quizType.Update(msg)
	case fieldAPIKey:
		s.apiKey, cmd = s.apiKey.Update(msg)
	}

	return s, cmd
}

func (s *SetupScreen) textFieldFocused() bool {
	return s.focus == fieldInput || s.focus == fieldAPIKey
}

func (s *SetupScreen) setFocus(f int) {
	s.input.Blur()
	s.apiKey.Blur()
	s.focus = f
	switch f {
	case fieldInput:
		s.input.Focus()
	case fieldAPIKey:
		s.apiKey.Focus()
	}
}

func (s *SetupScreen) syncInputPlaceholder() {
	if s.mode.Value() == string(quiz.ModeContext) {
		s.input.Model.Placeholder = "Paste the source text..."
	} else {
		s.input.Model.Placeholder = "Topic, e.g. Photosynthesis..."
	}
}

// startGeneration validates the form, resolves the credential, builds the
// provider and fires the async generation command.
func (s *SetupScreen) startGeneration() (screen.Screen, tea.Cmd) {
	count, err := strconv.Atoi(s.count.Value())
	if err != nil {
		s.errMsg = "invalid question count"
		return s, nil
	}

	cfg := quiz.Config{
		Mode:          quiz.SourceMode(s.mode.Value()),
		Input:         strings.TrimSpace(s.input.Value()),
		QuestionCount: count,
		Difficulty:    quiz.Difficulty(s.difficulty.Value()),
		Type:          quiz.QuizType(s.quizType.Value()),
		APIKey:        strings.TrimSpace(s.apiKey.Value()),
	}

	next, err := s.session.Start(cfg)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.session = next
	s.errMsg = ""
	s.runID = uuid.New().String()

	return s, tea.Batch(s.generate(cfg, s.runID), spinnerTick())
}

func (s *SetupScreen) generate(cfg quiz.Config, runID string) tea.Cmd {
	credRepo := s.credRepo
	eventRepo := s.eventRepo
	llmCfg := s.llmCfg
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), llmCfg.Timeout)
		defer cancel()
		ctx = llm.WithSessionID(ctx, runID)

		stored := ""
		if credRepo != nil {
			stored, _ = credRepo.Load(ctx)
		}
		if err := llmCfg.ResolveCredential(cfg.APIKey, stored); err != nil {
			return questionsReadyMsg{Err: err}
		}

		provider, err := llm.NewProvider(ctx, llmCfg, eventRepo)
		if err != nil {
			return questionsReadyMsg{Err: err}
		}

		gen := quizgen.New(provider, quizgen.DefaultConfig())
		questions, err := gen.Generate(ctx, cfg)
		if err != nil {
			return questionsReadyMsg{Err: err}
		}
		return questionsReadyMsg{Questions: questions, Provider: provider}
	}
}

func (s *SetupScreen) handleQuestionsReady(msg questionsReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		next, terr := s.session.GenerationFailed(msg.Err)
		if terr != nil {
			return s, nil
		}
		s.session = next
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	next, err := s.session.QuestionsReady(msg.Questions)
	if err != nil {
		return s, nil
	}
	s.session = next

	credRepo := s.credRepo
	eventRepo := s.eventRepo
	llmCfg := s.llmCfg
	restart := func() screen.Screen {
		return New(credRepo, eventRepo, llmCfg)
	}

	quizScr := quizscreen.New(next, msg.Provider, s.runID, restart)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: quizScr}
	}
}

func (s *SetupScreen) View(width, height int) string {
	if s.session.IsGenerating() {
		return s.renderGenerating(width, height)
	}
	return s.renderForm(width, height)
}

func (s *SetupScreen) renderGenerating(width, height int) string {
	frame := spinnerFrames[s.spinnerFrame]
	text := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render(frame+" Generating your quiz...") + "\n\n" +
		theme.Hint.Render("This usually takes a few seconds.")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, text)
}

func (s *SetupScreen) renderForm(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Create a Quiz"))
	b.WriteString("\n\n")

	label := func(i int, text string) string {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if i == s.focus {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		return style.Render(fmt.Sprintf("%-12s", text))
	}

	inputLabel := "Subject"
	if s.mode.Value() == string(quiz.ModeContext) {
		inputLabel = "Context"
	}

	b.WriteString(label(fieldMode, "Source") + s.mode.View(s.focus == fieldMode) + "\n\n")
	b.WriteString(label(fieldInput, inputLabel) + s.input.View() + "\n\n")
	b.WriteString(label(fieldQuestions, "Questions") + s.count.View(s.focus == fieldQuestions) + "\n\n")
	b.WriteString(label(fieldDifficulty, "Difficulty") + s.difficulty.View(s.focus == fieldDifficulty) + "\n\n")
	b.WriteString(label(fieldType, "Type") + s.quizType.View(s.focus == fieldType) + "\n\n")

	keyLabel := "API Key"
	if s.hasStoredKey {
		keyLabel = "API Key *"
	}
	b.WriteString(label(fieldAPIKey, keyLabel) + s.apiKey.View() + "\n")
	if s.hasStoredKey {
		b.WriteString(theme.Hint.Render("            * a stored key will be used when left empty") + "\n")
	}
	b.WriteString("\n")

	start := components.NewButton("Start Quiz", s.focus == fieldStart, nil)
	b.WriteString(start.View())

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
