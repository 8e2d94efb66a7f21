package setup

import (
	"time"

	"github.com/abhisek/quizgen/internal/llm"
	"github.com/abhisek/quizgen/internal/quiz"
)

// questionsReadyMsg is sent when quiz generation finishes. Provider is
// the gateway the quiz was generated with; grading reuses it so the
// credential is resolved exactly once.
type questionsReadyMsg struct {
	Questions []quiz.Question
	Provider  llm.Provider
	Err       error
}

// spinnerTickMsg animates the generating spinner.
type spinnerTickMsg time.Time
