package session

import (
	"errors"
	"fmt"
	"testing"

	"github.com/abhisek/quizgen/internal/quiz"
)

func testConfig() quiz.Config {
	return quiz.Config{
		Mode:          quiz.ModeSubject,
		Input:         "Photosynthesis",
		QuestionCount: 3,
		Difficulty:    quiz.DifficultyMedium,
		Type:          quiz.TypeMixed,
	}
}

func testQuestions() []quiz.Question {
	return []quiz.Question{
		{ID: 1, Text: "What gas do plants release?", Type: quiz.QuestionMultipleChoice,
			Options: []string{"A) Nitrogen", "B) Oxygen", "C) Helium", "D) Methane"}},
		{ID: 2, Text: "Explain the role of chlorophyll.", Type: quiz.QuestionOpenEnded},
		{ID: 3, Text: "Name the energy molecule produced.", Type: quiz.QuestionOpenEnded},
	}
}

// startedSession returns a session in the answering phase.
func startedSession(t *testing.T, policy AnswerPolicy) Session {
	t.Helper()
	s := New(policy)
	s, err := s.Start(testConfig())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	s, err = s.QuestionsReady(testQuestions())
	if err != nil {
		t.Fatalf("questions ready: %v", err)
	}
	return s
}

func TestFullLifecycle(t *testing.T) {
	s := New(PolicyPermissive)
	if s.Phase() != PhaseSetup {
		t.Fatalf("initial phase = %v", s.Phase())
	}

	s, err := s.Start(testConfig())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if s.Phase() != PhaseGenerating {
		t.Fatalf("phase after start = %v", s.Phase())
	}

	s, err = s.QuestionsReady(testQuestions())
	if err != nil {
		t.Fatalf("questions ready: %v", err)
	}
	if s.Phase() != PhaseAnswering || s.Index() != 0 {
		t.Fatalf("phase=%v index=%d after questions ready", s.Phase(), s.Index())
	}

	// Answer 1 and 2, leave 3 blank.
	s, err = s.RecordAnswer(1, "B) Oxygen")
	if err != nil {
		t.Fatalf("record 1: %v", err)
	}
	s, _ = s.Advance()
	s, err = s.RecordAnswer(2, "It absorbs light energy.")
	if err != nil {
		t.Fatalf("record 2: %v", err)
	}
	s, _ = s.Advance()

	s, err = s.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if s.Phase() != PhaseGrading {
		t.Fatalf("phase after submit = %v", s.Phase())
	}

	results := []quiz.GradingResult{
		{QuestionID: 1, Score: 100, Feedback: "Correct.", CorrectAnswer: "B) Oxygen"},
		{QuestionID: 2, Score: 80, Feedback: "Good.", CorrectAnswer: "Chlorophyll absorbs light."},
		{QuestionID: 3, Score: 0, Feedback: "No answer.", CorrectAnswer: "ATP"},
	}
	s, err = s.ResultsReady(results)
	if err != nil {
		t.Fatalf("results ready: %v", err)
	}
	if s.Phase() != PhaseResults {
		t.Fatalf("phase after results = %v", s.Phase())
	}
	if len(s.Results()) != 3 {
		t.Fatalf("results count = %d", len(s.Results()))
	}
}

func TestStart_InvalidConfig(t *testing.T) {
	s := New(PolicyPermissive)
	cfg := testConfig()
	cfg.Input = ""
	_, err := s.Start(cfg)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if s.Phase() != PhaseSetup {
		t.Error("failed start must not change phase")
	}
}

func TestTransitions_WrongPhase(t *testing.T) {
	s := New(PolicyPermissive)

	if _, err := s.Submit(); err == nil {
		t.Error("submit from setup must fail")
	}
	if _, err := s.QuestionsReady(testQuestions()); err == nil {
		t.Error("questions ready from setup must fail")
	}
	if _, err := s.RecordAnswer(1, "x"); err == nil {
		t.Error("record answer from setup must fail")
	}
	if _, err := s.ResultsReady(nil); err == nil {
		t.Error("results ready from setup must fail")
	}
}

func TestGenerationFailed_ReturnsToSetup(t *testing.T) {
	s := New(PolicyPermissive)
	s, _ = s.Start(testConfig())

	cause := fmt.Errorf("model unavailable")
	s, err := s.GenerationFailed(cause)
	if err != nil {
		t.Fatalf("generation failed transition: %v", err)
	}
	if s.Phase() != PhaseSetup {
		t.Errorf("phase = %v, want setup", s.Phase())
	}
	if !errors.Is(s.Err(), cause) {
		t.Error("failure cause not retained")
	}

	// A fresh start clears the failure.
	s, _ = s.Start(testConfig())
	if s.Err() != nil {
		t.Error("error must clear on a new attempt")
	}
}

func TestRecordAnswer_OverwriteAndOutOfOrder(t *testing.T) {
	s := startedSession(t, PolicyPermissive)

	// Record for a question the cursor is not on.
	s, err := s.RecordAnswer(3, "ATP")
	if err != nil {
		t.Fatalf("out-of-order record: %v", err)
	}

	s, _ = s.RecordAnswer(1, "A) Nitrogen")
	s, _ = s.RecordAnswer(1, "B) Oxygen") // overwrite

	if got, _ := s.AnswerFor(1); got != "B) Oxygen" {
		t.Errorf("answer 1 = %q, want overwrite to win", got)
	}
	if got, _ := s.AnswerFor(3); got != "ATP" {
		t.Errorf("answer 3 = %q", got)
	}
	if len(s.Answers()) != 2 {
		t.Errorf("answer count = %d, want 2", len(s.Answers()))
	}
}

func TestRecordAnswer_UnknownQuestion(t *testing.T) {
	s := startedSession(t, PolicyPermissive)
	if _, err := s.RecordAnswer(99, "x"); err == nil {
		t.Fatal("expected error for unknown question id")
	}
}

func TestRecordAnswer_StrictPolicy(t *testing.T) {
	s := startedSession(t, PolicyStrictOptions)

	if _, err := s.RecordAnswer(1, "E) Plutonium"); !errors.Is(err, ErrNotAnOption) {
		t.Errorf("expected ErrNotAnOption, got %v", err)
	}
	if _, err := s.RecordAnswer(1, "B) Oxygen"); err != nil {
		t.Errorf("valid option rejected: %v", err)
	}
	// Open-ended answers are never checked against options.
	if _, err := s.RecordAnswer(2, "free text"); err != nil {
		t.Errorf("open-ended answer rejected: %v", err)
	}
}

func TestAdvanceRetreat_Boundaries(t *testing.T) {
	s := startedSession(t, PolicyPermissive)

	if !s.IsFirst() {
		t.Fatal("cursor must start at the first question")
	}
	if _, err := s.Retreat(); err == nil {
		t.Error("retreat at the first question must fail")
	}

	s, _ = s.Advance()
	s, _ = s.Advance()
	if !s.IsLast() {
		t.Fatal("expected cursor on the last question")
	}
	if _, err := s.Advance(); err == nil {
		t.Error("advance at the last question must fail")
	}

	s, err := s.Retreat()
	if err != nil {
		t.Fatalf("retreat: %v", err)
	}
	if s.Index() != 1 {
		t.Errorf("index = %d, want 1", s.Index())
	}
}

func TestGradingFailed_PreservesAnswers(t *testing.T) {
	s := startedSession(t, PolicyPermissive)
	s, _ = s.RecordAnswer(1, "B) Oxygen")
	s, _ = s.RecordAnswer(2, "light capture")
	s, _ = s.Submit()

	s, err := s.GradingFailed(fmt.Errorf("rate limited"))
	if err != nil {
		t.Fatalf("grading failed transition: %v", err)
	}
	if s.Phase() != PhaseAnswering {
		t.Errorf("phase = %v, want answering", s.Phase())
	}
	if len(s.Answers()) != 2 {
		t.Error("answers lost across grading failure")
	}
	if s.Err() == nil {
		t.Error("failure cause not retained")
	}

	// Grading is retryable without re-answering.
	s, err = s.Submit()
	if err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if s.Err() != nil {
		t.Error("error must clear on resubmit")
	}
}

func TestReset_FromAnyPhase(t *testing.T) {
	s := startedSession(t, PolicyStrictOptions)
	s, _ = s.RecordAnswer(1, "B) Oxygen")

	fresh := s.Reset()
	if fresh.Phase() != PhaseSetup {
		t.Errorf("phase after reset = %v", fresh.Phase())
	}
	if len(fresh.Questions()) != 0 || len(fresh.Answers()) != 0 {
		t.Error("reset must discard quiz data")
	}
	// Policy survives the reset.
	fresh, _ = fresh.Start(testConfig())
	fresh, _ = fresh.QuestionsReady(testQuestions())
	if _, err := fresh.RecordAnswer(1, "bogus"); !errors.Is(err, ErrNotAnOption) {
		t.Error("policy lost across reset")
	}
}

func TestImmutability(t *testing.T) {
	s := startedSession(t, PolicyPermissive)
	s2, _ := s.RecordAnswer(1, "B) Oxygen")

	if len(s.Answers()) != 0 {
		t.Error("transition mutated the original session value")
	}
	if len(s2.Answers()) != 1 {
		t.Error("transition result missing the recorded answer")
	}
}

func TestProjections(t *testing.T) {
	s := startedSession(t, PolicyPermissive)

	q, ok := s.Current()
	if !ok || q.ID != 1 {
		t.Fatalf("current = %+v ok=%v", q, ok)
	}
	if p := s.Progress(); p <= 0.33 || p > 0.34 {
		t.Errorf("progress = %f, want 1/3", p)
	}
	s, _ = s.Advance()
	s, _ = s.Advance()
	if p := s.Progress(); p != 1.0 {
		t.Errorf("progress on last question = %f, want 1", p)
	}
}
