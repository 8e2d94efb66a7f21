package session

import "github.com/abhisek/quizgen/internal/quiz"

// Read-only projections. This is the whole surface the presentational
// layer needs besides the transitions.

// Phase returns the current lifecycle phase.
func (s Session) Phase() Phase { return s.phase }

// Config returns the config the quiz was started with.
func (s Session) Config() quiz.Config { return s.config }

// Questions returns the generated questions in order.
func (s Session) Questions() []quiz.Question { return s.questions }

// Results returns the grading results, or nil before grading completes.
func (s Session) Results() []quiz.GradingResult { return s.results }

// Index returns the cursor position while answering.
func (s Session) Index() int { return s.index }

// Current returns the question under the cursor. ok is false outside the
// answering/grading phases or when no quiz exists.
func (s Session) Current() (quiz.Question, bool) {
	if s.index < 0 || s.index >= len(s.questions) {
		return quiz.Question{}, false
	}
	return s.questions[s.index], true
}

// AnswerFor returns the recorded answer for a question id. ok is false
// when the question is unanswered.
func (s Session) AnswerFor(id int) (string, bool) {
	text, ok := s.answers[id]
	return text, ok
}

// Answers returns a copy of the recorded answer map.
func (s Session) Answers() map[int]string {
	out := make(map[int]string, len(s.answers))
	for k, v := range s.answers {
		out[k] = v
	}
	return out
}

// IsFirst reports whether the cursor is on the first question.
func (s Session) IsFirst() bool { return s.index == 0 }

// IsLast reports whether the cursor is on the last question.
func (s Session) IsLast() bool {
	return len(s.questions) > 0 && s.index == len(s.questions)-1
}

// Progress returns the answering progress as a fraction 0..1: the cursor
// position over the question count.
func (s Session) Progress() float64 {
	if len(s.questions) == 0 {
		return 0
	}
	return float64(s.index+1) / float64(len(s.questions))
}

// IsGenerating reports whether a generation request is in flight.
func (s Session) IsGenerating() bool { return s.phase == PhaseGenerating }

// IsGrading reports whether a grading request is in flight.
func (s Session) IsGrading() bool { return s.phase == PhaseGrading }

// Err returns the most recent failure, or nil.
func (s Session) Err() error { return s.err }
