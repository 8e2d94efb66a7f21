package grader

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/quizgen/internal/quiz"
)

const systemPrompt = `You are a strict but fair grader. Provide constructive feedback.`

// NoAnswerSentinel is submitted in place of an absent answer. Unanswered
// questions are still graded, never skipped; the model awards the score.
const NoAnswerSentinel = "(No Answer Provided)"

// gradingItem is the per-question payload embedded in the grading prompt.
type gradingItem struct {
	QuestionID   int               `json:"questionId"`
	QuestionText string            `json:"questionText"`
	UserAnswer   string            `json:"userAnswer"`
	Type         quiz.QuestionType `json:"type"`
}

// buildUserMessage constructs the grading prompt. Every question appears
// exactly once, paired with the recorded answer or NoAnswerSentinel.
// Deterministic given its input.
func buildUserMessage(questions []quiz.Question, answers map[int]string, context string) string {
	payload := make([]gradingItem, len(questions))
	for i, q := range questions {
		answer, ok := answers[q.ID]
		if !ok || answer == "" {
			answer = NoAnswerSentinel
		}
		payload[i] = gradingItem{
			QuestionID:   q.ID,
			QuestionText: q.Text,
			UserAnswer:   answer,
			Type:         q.Type,
		}
	}

	// Indented so prompt logs stay readable. The payload always marshals:
	// it is built from plain structs.
	data, _ := json.MarshalIndent(payload, "", "  ")

	var b strings.Builder
	fmt.Fprintf(&b, "Grade the following quiz answers based on this context/subject: %q.\n\n", context)
	b.WriteString("Quiz Data:\n")
	b.Write(data)
	b.WriteString("\n\nFor each question, provide:\n")
	b.WriteString("- score (0-100 integer)\n")
	b.WriteString("- feedback (explain why it is right or wrong, keep it concise)\n")
	b.WriteString("- correctAnswer (the ideal answer or the correct option)")

	return b.String()
}
