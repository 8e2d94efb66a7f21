package grader

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/quizgen/internal/llm"
	"github.com/abhisek/quizgen/internal/quiz"
)

func TestGrade_Success(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`[
			{"questionId": 1, "score": 100, "feedback": "Correct.", "correctAnswer": "Oxygen"},
			{"questionId": 2, "score": 70, "feedback": "Close.", "correctAnswer": "It absorbs light for the light reactions."},
			{"questionId": 3, "score": 0, "feedback": "No answer was given.", "correctAnswer": "Photosynthesis"}
		]`),
	})

	g := New(mock, DefaultConfig())
	answers := map[int]string{1: "Oxygen", 2: "It catches sun"}
	results, err := g.Grade(context.Background(), sampleQuestions(), answers, "Photosynthesis")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected exactly 1 LLM call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil {
		t.Error("request carried no schema")
	}
	// The unanswered question must reach the model as the sentinel.
	if !strings.Contains(req.Messages[0].Content, NoAnswerSentinel) {
		t.Error("prompt missing the no-answer sentinel")
	}
}

func TestGrade_NoQuestions(t *testing.T) {
	g := New(llm.NewMockProvider(), DefaultConfig())
	_, err := g.Grade(context.Background(), nil, nil, "")
	if err == nil {
		t.Fatal("expected error for empty question list")
	}
}

func TestGrade_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrAuth{}})
	g := New(mock, DefaultConfig())
	_, err := g.Grade(context.Background(), sampleQuestions(), nil, "x")
	var aerr *llm.ErrAuth
	if !errors.As(err, &aerr) {
		t.Fatalf("provider error not preserved: %v", err)
	}
}

func TestGrade_IncompleteGrading(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`[
			{"questionId": 1, "score": 100, "feedback": "f", "correctAnswer": "a"}
		]`),
	})

	g := New(mock, DefaultConfig())
	_, err := g.Grade(context.Background(), sampleQuestions(), nil, "x")
	var ierr *quiz.IncompleteGradingError
	if !errors.As(err, &ierr) {
		t.Fatalf("expected *IncompleteGradingError, got %v", err)
	}
}
