package quiz

import (
	"time"

	qz "github.com/abhisek/quizgen/internal/quiz"
)

// resultsReadyMsg is sent when grading finishes.
type resultsReadyMsg struct {
	Results []qz.GradingResult
	Err     error
}

// spinnerTickMsg animates the grading spinner.
type spinnerTickMsg time.Time
