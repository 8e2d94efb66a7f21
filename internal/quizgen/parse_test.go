package quizgen

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/quizgen/internal/quiz"
)

func TestParseQuestions_Valid(t *testing.T) {
	raw := json.RawMessage(`[
		{"id": 1, "text": "What gas do plants release?", "type": "multiple_choice",
		 "options": ["Oxygen", "Carbon Dioxide", "Nitrogen", "Helium"]},
		{"id": 2, "text": "Explain the role of chlorophyll.", "type": "open_ended"}
	]`)

	questions, err := ParseQuestions(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(questions))
	}
	if questions[0].Type != quiz.QuestionMultipleChoice {
		t.Errorf("question 0 type = %q", questions[0].Type)
	}
	if len(questions[0].Options) != 4 {
		t.Errorf("question 0 has %d options, want 4", len(questions[0].Options))
	}
	if questions[1].Options != nil {
		t.Error("open-ended question should carry no options")
	}
}

func TestParseQuestions_OpenEndedOptionsDropped(t *testing.T) {
	raw := json.RawMessage(`[
		{"id": 1, "text": "Why?", "type": "open_ended", "options": ["stray", "noise"]}
	]`)
	questions, err := ParseQuestions(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if questions[0].Options != nil {
		t.Error("options on an open-ended question must be dropped")
	}
}

func TestParseQuestions_NotAnArray(t *testing.T) {
	_, err := ParseQuestions(json.RawMessage(`{"id": 1}`))
	var merr *quiz.MalformedResponseError
	if !errors.As(err, &merr) {
		t.Fatalf("expected *MalformedResponseError, got %v", err)
	}
	if merr.Element != -1 {
		t.Errorf("element = %d, want -1 for whole-payload failure", merr.Element)
	}
}

func TestParseQuestions_EmptyArray(t *testing.T) {
	_, err := ParseQuestions(json.RawMessage(`[]`))
	if err == nil {
		t.Fatal("expected error for empty array")
	}
}

func TestParseQuestions_BadElements(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		reason string
	}{
		{
			"missing id",
			`[{"text": "Q?", "type": "open_ended"}]`,
			`missing "id"`,
		},
		{
			"missing text",
			`[{"id": 1, "type": "open_ended"}]`,
			`missing or empty "text"`,
		},
		{
			"empty text",
			`[{"id": 1, "text": "", "type": "open_ended"}]`,
			`missing or empty "text"`,
		},
		{
			"missing type",
			`[{"id": 1, "text": "Q?"}]`,
			`missing "type"`,
		},
		{
			"unknown type",
			`[{"id": 1, "text": "Q?", "type": "true_false"}]`,
			"unknown question type",
		},
		{
			"too few options",
			`[{"id": 1, "text": "Q?", "type": "multiple_choice", "options": ["only one"]}]`,
			"at least 2 options",
		},
		{
			"duplicate id",
			`[{"id": 1, "text": "A?", "type": "open_ended"},
			  {"id": 1, "text": "B?", "type": "open_ended"}]`,
			"duplicate question id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseQuestions(json.RawMessage(tt.raw))
			var merr *quiz.MalformedResponseError
			if !errors.As(err, &merr) {
				t.Fatalf("expected *MalformedResponseError, got %v", err)
			}
			if !strings.Contains(merr.Reason, tt.reason) {
				t.Errorf("reason = %q, want substring %q", merr.Reason, tt.reason)
			}
		})
	}
}

func TestParseQuestions_SecondElementIndexReported(t *testing.T) {
	raw := json.RawMessage(`[
		{"id": 1, "text": "fine", "type": "open_ended"},
		{"id": 2, "type": "open_ended"}
	]`)
	_, err := ParseQuestions(raw)
	var merr *quiz.MalformedResponseError
	if !errors.As(err, &merr) {
		t.Fatalf("expected *MalformedResponseError, got %v", err)
	}
	if merr.Element != 1 {
		t.Errorf("element = %d, want 1", merr.Element)
	}
}
