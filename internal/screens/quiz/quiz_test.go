package quiz

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/quizgen/internal/llm"
	qz "github.com/abhisek/quizgen/internal/quiz"
	sess "github.com/abhisek/quizgen/internal/session"
)

// gradingSession builds a session ready for the grading call.
func gradingSession(t *testing.T, cfg qz.Config) sess.Session {
	t.Helper()

	s := sess.New(sess.PolicyPermissive)
	s, err := s.Start(cfg)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	s, err = s.QuestionsReady([]qz.Question{
		{ID: 1, Text: "What pigment drives photosynthesis?", Type: qz.QuestionOpenEnded},
		{ID: 2, Text: "Where do the light reactions run?", Type: qz.QuestionOpenEnded},
	})
	if err != nil {
		t.Fatalf("questions ready: %v", err)
	}
	s, err = s.RecordAnswer(1, "Chlorophyll")
	if err != nil {
		t.Fatalf("record answer: %v", err)
	}
	s, err = s.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	return s
}

// The grading prompt is anchored on the quiz input in both modes: the
// subject gives the grader its topic, the pasted passage its source text.
func TestGradeAnchorsPromptOnInput(t *testing.T) {
	graded := json.RawMessage(`[
		{"questionId": 1, "score": 95, "feedback": "Right.", "correctAnswer": "Chlorophyll"},
		{"questionId": 2, "score": 0, "feedback": "Left blank.", "correctAnswer": "Thylakoid membranes"}
	]`)

	cases := []struct {
		name string
		cfg  qz.Config
	}{
		{
			name: "subject mode",
			cfg: qz.Config{
				Mode: qz.ModeSubject, Input: "Photosynthesis",
				QuestionCount: 2, Difficulty: qz.DifficultyMedium, Type: qz.TypeOpenEnded,
			},
		},
		{
			name: "context mode",
			cfg: qz.Config{
				Mode: qz.ModeContext, Input: "Plants capture light with chlorophyll in their thylakoid membranes.",
				QuestionCount: 2, Difficulty: qz.DifficultyMedium, Type: qz.TypeOpenEnded,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: graded})
			scr := New(gradingSession(t, tc.cfg), mock, "run-1", nil)

			msg := scr.grade()()

			rmsg, ok := msg.(resultsReadyMsg)
			if !ok {
				t.Fatalf("grade returned %T", msg)
			}
			if rmsg.Err != nil {
				t.Fatalf("unexpected error: %v", rmsg.Err)
			}
			if len(rmsg.Results) != 2 {
				t.Fatalf("got %d results, want 2", len(rmsg.Results))
			}

			if mock.CallCount() != 1 {
				t.Fatalf("made %d LLM calls, want 1", mock.CallCount())
			}
			prompt := mock.Calls[0].Messages[0].Content
			if !strings.Contains(prompt, tc.cfg.Input) {
				t.Errorf("grading prompt does not carry the quiz input %q", tc.cfg.Input)
			}
		})
	}
}

func TestGradeSurfacesProviderError(t *testing.T) {
	cfg := qz.Config{
		Mode: qz.ModeSubject, Input: "Photosynthesis",
		QuestionCount: 2, Difficulty: qz.DifficultyMedium, Type: qz.TypeOpenEnded,
	}
	mock := llm.NewMockProvider() // empty queue fails
	scr := New(gradingSession(t, cfg), mock, "run-1", nil)

	msg := scr.grade()()

	rmsg, ok := msg.(resultsReadyMsg)
	if !ok {
		t.Fatalf("grade returned %T", msg)
	}
	if rmsg.Err == nil {
		t.Fatal("expected error from failed provider")
	}
}
