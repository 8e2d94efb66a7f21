package grader

import (
	"context"
	"fmt"

	"github.com/abhisek/quizgen/internal/llm"
	"github.com/abhisek/quizgen/internal/quiz"
)

// Grader scores recorded answers against the quiz's questions.
type Grader interface {
	Grade(ctx context.Context, questions []quiz.Question, answers map[int]string, quizContext string) ([]quiz.GradingResult, error)
}

// Config controls the behavior of the LLMGrader.
type Config struct {
	// MaxTokens is the token budget for the grading response.
	MaxTokens int

	// Temperature controls LLM output randomness. Grading wants to be as
	// repeatable as the model allows, so the default is 0.
	Temperature float64
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens: 4096,
	}
}

// LLMGrader implements Grader using the LLM provider.
type LLMGrader struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGrader with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGrader {
	return &LLMGrader{provider: provider, config: cfg}
}

// Grade submits every question with its recorded answer (or the no-answer
// sentinel) and returns one validated result per question.
func (g *LLMGrader) Grade(ctx context.Context, questions []quiz.Question, answers map[int]string, quizContext string) ([]quiz.GradingResult, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("grading: no questions to grade")
	}

	ctx = llm.WithPurpose(ctx, "grading")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(questions, answers, quizContext)},
		},
		Schema:      GradingSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("grading failed: %w", err)
	}

	expectedIDs := make([]int, len(questions))
	for i, q := range questions {
		expectedIDs[i] = q.ID
	}

	// Clamped results keep their flag set; the results screen tells the
	// user the score was normalized.
	return ParseResults(resp.Content, expectedIDs)
}
