package grader

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/quizgen/internal/quiz"
)

func TestParseResults_Valid(t *testing.T) {
	raw := json.RawMessage(`[
		{"questionId": 1, "score": 100, "feedback": "Correct.", "correctAnswer": "Oxygen"},
		{"questionId": 2, "score": 40, "feedback": "Partially right.", "correctAnswer": "Chlorophyll absorbs light."}
	]`)

	results, err := ParseResults(raw, []int{1, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Score != 100 || results[0].Clamped {
		t.Errorf("result 0 = %+v", results[0])
	}
}

func TestParseResults_ClampsOutOfRange(t *testing.T) {
	raw := json.RawMessage(`[
		{"questionId": 1, "score": 120, "feedback": "f", "correctAnswer": "a"},
		{"questionId": 2, "score": -5, "feedback": "f", "correctAnswer": "a"},
		{"questionId": 3, "score": 50, "feedback": "f", "correctAnswer": "a"}
	]`)

	results, err := ParseResults(raw, []int{1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []struct {
		score   int
		clamped bool
	}{
		{100, true},
		{0, true},
		{50, false},
	}
	for i, w := range want {
		if results[i].Score != w.score || results[i].Clamped != w.clamped {
			t.Errorf("result %d: score=%d clamped=%v, want score=%d clamped=%v",
				i, results[i].Score, results[i].Clamped, w.score, w.clamped)
		}
	}
}

func TestParseResults_MissingAndUnknownIDs(t *testing.T) {
	raw := json.RawMessage(`[
		{"questionId": 1, "score": 90, "feedback": "f", "correctAnswer": "a"},
		{"questionId": 7, "score": 10, "feedback": "f", "correctAnswer": "a"}
	]`)

	_, err := ParseResults(raw, []int{1, 2})
	var ierr *quiz.IncompleteGradingError
	if !errors.As(err, &ierr) {
		t.Fatalf("expected *IncompleteGradingError, got %v", err)
	}
	if len(ierr.Missing) != 1 || ierr.Missing[0] != 2 {
		t.Errorf("missing = %v, want [2]", ierr.Missing)
	}
	if len(ierr.Unknown) != 1 || ierr.Unknown[0] != 7 {
		t.Errorf("unknown = %v, want [7]", ierr.Unknown)
	}
}

func TestParseResults_DuplicateID(t *testing.T) {
	raw := json.RawMessage(`[
		{"questionId": 1, "score": 90, "feedback": "f", "correctAnswer": "a"},
		{"questionId": 1, "score": 10, "feedback": "f", "correctAnswer": "a"}
	]`)

	_, err := ParseResults(raw, []int{1})
	var merr *quiz.MalformedResponseError
	if !errors.As(err, &merr) {
		t.Fatalf("expected *MalformedResponseError, got %v", err)
	}
	if !strings.Contains(merr.Reason, "duplicate") {
		t.Errorf("reason = %q", merr.Reason)
	}
}

func TestParseResults_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		reason string
	}{
		{"no questionId", `[{"score": 50, "feedback": "f", "correctAnswer": "a"}]`, `missing "questionId"`},
		{"no score", `[{"questionId": 1, "feedback": "f", "correctAnswer": "a"}]`, `missing "score"`},
		{"no feedback", `[{"questionId": 1, "score": 50, "correctAnswer": "a"}]`, `missing or empty "feedback"`},
		{"empty feedback", `[{"questionId": 1, "score": 50, "feedback": "", "correctAnswer": "a"}]`, `missing or empty "feedback"`},
		{"no correctAnswer", `[{"questionId": 1, "score": 50, "feedback": "f"}]`, `missing or empty "correctAnswer"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseResults(json.RawMessage(tt.raw), []int{1})
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

func TestParseResults_NotAnArray(t *testing.T) {
	_, err := ParseResults(json.RawMessage(`{"oops": true}`), []int{1})
	var merr *quiz.MalformedResponseError
	if !errors.As(err, &merr) {
		t.Fatalf("expected *MalformedResponseError, got %v", err)
	}
	if merr.Element != -1 {
		t.Errorf("element = %d, want -1", merr.Element)
	}
}
