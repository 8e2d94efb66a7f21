package quizgen

import "github.com/abhisek/quizgen/internal/llm"

// QuestionListSchema defines the JSON schema for quiz generation responses.
var QuestionListSchema = &llm.Schema{
	Name:        "quiz-questions",
	Description: "An array of quiz questions",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id": map[string]any{
					"type":        "integer",
					"description": "Unique identifier for the question within this quiz",
				},
				"text": map[string]any{
					"type":        "string",
					"description": "The question text",
				},
				"type": map[string]any{
					"type": "string",
					"enum": []any{"multiple_choice", "open_ended"},
				},
				"options": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "string",
					},
					"description": "List of options if multiple_choice, empty array if open_ended",
				},
			},
			"required": []any{"id", "text", "type"},
		},
	},
}
