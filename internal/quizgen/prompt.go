package quizgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizgen/internal/quiz"
)

const systemPrompt = `You are a helpful teacher generating a quiz. Ensure questions are accurate to the provided context or subject.`

// typeDirective is the fixed mapping from the requested quiz type to the
// instruction embedded in the prompt.
func typeDirective(t quiz.QuizType) string {
	switch t {
	case quiz.TypeMultipleChoice:
		return "All questions must be multiple choice with 4 options."
	case quiz.TypeOpenEnded:
		return "All questions must be open-ended textual questions."
	default:
		return "Mix multiple choice and open-ended questions evenly."
	}
}

// buildUserMessage constructs the generation prompt from the config.
// Deterministic: the same config always yields the same prompt, so prompts
// are testable as goldens.
func buildUserMessage(cfg quiz.Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate a quiz based on the following %s:\n", cfg.Mode)
	fmt.Fprintf(&b, "%q\n\n", cfg.Input)
	b.WriteString("Configuration:\n")
	fmt.Fprintf(&b, "- Number of questions: %d\n", cfg.QuestionCount)
	fmt.Fprintf(&b, "- Difficulty: %s\n", cfg.Difficulty)
	fmt.Fprintf(&b, "- Type: %s\n", typeDirective(cfg.Type))
	b.WriteString("\nReturn a JSON array of questions.")

	return b.String()
}
