package grader

import "github.com/abhisek/quizgen/internal/llm"

// GradingSchema defines the JSON schema for grading responses. The field
// name correctAnswer is the one canonical spelling, matching the prompt.
var GradingSchema = &llm.Schema{
	Name:        "grading-results",
	Description: "Per-question scores and feedback for a graded quiz",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"questionId": map[string]any{
					"type":        "integer",
					"description": "The id of the question this result grades",
				},
				"score": map[string]any{
					"type":        "integer",
					"description": "Score from 0 to 100",
				},
				"feedback": map[string]any{
					"type":        "string",
					"description": "Concise explanation of why the answer is right or wrong",
				},
				"correctAnswer": map[string]any{
					"type":        "string",
					"description": "The ideal answer or the correct option text",
				},
			},
			"required": []any{"questionId", "score", "feedback", "correctAnswer"},
		},
	},
}
