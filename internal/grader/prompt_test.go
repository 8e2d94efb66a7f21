package grader

import (
	"strings"
	"testing"

	"github.com/abhisek/quizgen/internal/quiz"
)

func sampleQuestions() []quiz.Question {
	return []quiz.Question{
		{ID: 1, Text: "What gas do plants release?", Type: quiz.QuestionMultipleChoice,
			Options: []string{"Oxygen", "Carbon Dioxide"}},
		{ID: 2, Text: "Explain chlorophyll.", Type: quiz.QuestionOpenEnded},
		{ID: 3, Text: "Name the process.", Type: quiz.QuestionOpenEnded},
	}
}

func TestBuildUserMessage_AllQuestionsPresent(t *testing.T) {
	answers := map[int]string{
		1: "Oxygen",
		2: "It absorbs light.",
	}
	msg := buildUserMessage(sampleQuestions(), answers, "Photosynthesis")

	for _, want := range []string{
		"What gas do plants release?",
		"Explain chlorophyll.",
		"Name the process.",
		`"Photosynthesis"`,
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildUserMessage_NoAnswerSentinel(t *testing.T) {
	// Question 2 has an empty answer, question 3 none at all. Both are
	// graded as "no answer".
	answers := map[int]string{
		1: "Oxygen",
		2: "",
	}
	msg := buildUserMessage(sampleQuestions(), answers, "Photosynthesis")

	if got := strings.Count(msg, NoAnswerSentinel); got != 2 {
		t.Errorf("sentinel appears %d times, want 2", got)
	}
	if !strings.Contains(msg, `"Oxygen"`) {
		t.Error("recorded answer missing from prompt")
	}
}

func TestBuildUserMessage_AsksForCanonicalFields(t *testing.T) {
	msg := buildUserMessage(sampleQuestions(), nil, "x")
	for _, want := range []string{"score", "feedback", "correctAnswer"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing field instruction %q", want)
		}
	}
}

func TestBuildUserMessage_Deterministic(t *testing.T) {
	answers := map[int]string{1: "a", 2: "b", 3: "c"}
	a := buildUserMessage(sampleQuestions(), answers, "ctx")
	b := buildUserMessage(sampleQuestions(), answers, "ctx")
	if a != b {
		t.Error("same input produced different prompts")
	}
}
