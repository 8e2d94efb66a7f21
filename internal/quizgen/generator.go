package quizgen

import (
	"context"
	"fmt"

	"github.com/abhisek/quizgen/internal/llm"
	"github.com/abhisek/quizgen/internal/quiz"
)

// Generator produces a quiz from a validated config.
type Generator interface {
	Generate(ctx context.Context, cfg quiz.Config) ([]quiz.Question, error)
}

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// MaxTokens is the token budget for the LLM response. Sized for the
	// 20-question maximum.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// Generate produces the quiz's questions for the given config. The parsed
// batch must contain exactly cfg.QuestionCount questions, each with a
// unique id; anything else is rejected as a whole.
func (g *LLMGenerator) Generate(ctx context.Context, cfg quiz.Config) ([]quiz.Question, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, "quiz-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(cfg)},
		},
		Schema:      QuestionListSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("quiz generation failed: %w", err)
	}

	questions, err := ParseQuestions(resp.Content)
	if err != nil {
		return nil, err
	}

	if len(questions) != cfg.QuestionCount {
		return nil, &quiz.MalformedResponseError{
			Reason:  fmt.Sprintf("expected %d questions, got %d", cfg.QuestionCount, len(questions)),
			Element: -1,
		}
	}

	return questions, nil
}
