// Package session implements the quiz lifecycle state machine.
//
// A Session is an immutable value: every transition returns a new Session
// and never mutates the receiver. The orchestrating layer (the TUI) holds
// the single mutable reference and replaces it on each transition, so
// there are no partial-update hazards even under re-entrancy. The phase
// itself is the mutual-exclusion mechanism: Submit cannot be called while
// already grading because the transition's precondition fails.
package session

import (
	"errors"
	"fmt"

	"github.com/abhisek/quizgen/internal/quiz"
)

// Phase is the lifecycle state of a quiz session.
type Phase int

const (
	PhaseSetup      Phase = iota // collecting config; no quiz exists
	PhaseGenerating              // generation request in flight
	PhaseAnswering               // user is answering questions
	PhaseGrading                 // grading request in flight
	PhaseResults                 // graded; terminal except for Reset
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseGenerating:
		return "generating"
	case PhaseAnswering:
		return "answering"
	case PhaseGrading:
		return "grading"
	case PhaseResults:
		return "results"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// AnswerPolicy decides whether RecordAnswer enforces that multiple-choice
// answers match one of the question's options.
type AnswerPolicy int

const (
	// PolicyPermissive accepts any string; the grading model judges it.
	PolicyPermissive AnswerPolicy = iota

	// PolicyStrictOptions rejects answers to multiple-choice questions
	// that are not drawn from the question's options.
	PolicyStrictOptions
)

// ErrNotAnOption is returned by RecordAnswer under PolicyStrictOptions
// when the answer is not one of the question's options.
var ErrNotAnOption = errors.New("answer is not one of the question's options")

// Session is the complete state of one quiz run. The zero value is not
// useful; start from New.
type Session struct {
	phase  Phase
	policy AnswerPolicy

	config quiz.Config

	// questions is fixed once generation succeeds.
	questions []quiz.Question

	// answers maps question id to the recorded answer text. Absence of a
	// key means unanswered, which is not an error.
	answers map[int]string

	// results is set exactly once, on the Grading -> Results transition.
	results []quiz.GradingResult

	// index is the cursor into questions while answering.
	index int

	// err is the most recent failure, cleared when a new attempt starts.
	err error
}

// New returns a fresh session in the setup phase with the given answer
// policy.
func New(policy AnswerPolicy) Session {
	return Session{phase: PhaseSetup, policy: policy}
}

// transitionError reports a transition attempted from the wrong phase —
// a contract violation by the caller, not a user-recoverable condition.
func (s Session) transitionError(op string) error {
	return fmt.Errorf("%s: invalid in phase %s", op, s.phase)
}

// Start begins generation for the given config.
// Setup -> Generating. Requires a valid config.
func (s Session) Start(cfg quiz.Config) (Session, error) {
	if s.phase != PhaseSetup {
		return s, s.transitionError("start")
	}
	if err := cfg.Validate(); err != nil {
		return s, err
	}
	s.phase = PhaseGenerating
	s.config = cfg
	s.err = nil
	return s, nil
}

// QuestionsReady installs the generated questions.
// Generating -> Answering. Cursor resets to 0, answers start empty.
func (s Session) QuestionsReady(questions []quiz.Question) (Session, error) {
	if s.phase != PhaseGenerating {
		return s, s.transitionError("questions ready")
	}
	s.phase = PhaseAnswering
	s.questions = questions
	s.answers = make(map[int]string)
	s.results = nil
	s.index = 0
	s.err = nil
	return s, nil
}

// GenerationFailed records the failure and returns to setup. No quiz is
// created; questions and answers are untouched.
func (s Session) GenerationFailed(err error) (Session, error) {
	if s.phase != PhaseGenerating {
		return s, s.transitionError("generation failed")
	}
	s.phase = PhaseSetup
	s.err = err
	return s, nil
}

// RecordAnswer upserts the answer for the given question id. The cursor
// need not reference that question: out-of-order updates are permitted.
// Answering -> Answering.
func (s Session) RecordAnswer(id int, text string) (Session, error) {
	if s.phase != PhaseAnswering {
		return s, s.transitionError("record answer")
	}
	q, ok := s.questionByID(id)
	if !ok {
		return s, fmt.Errorf("record answer: no question with id %d", id)
	}
	if s.policy == PolicyStrictOptions && q.Type == quiz.QuestionMultipleChoice && text != "" && !q.HasOption(text) {
		return s, ErrNotAnOption
	}

	// Copy-on-write keeps prior Session values stable.
	answers := make(map[int]string, len(s.answers)+1)
	for k, v := range s.answers {
		answers[k] = v
	}
	answers[id] = text
	s.answers = answers
	return s, nil
}

// Advance moves the cursor to the next question. Calling it on the last
// question is a contract violation: the caller must check IsLast first.
func (s Session) Advance() (Session, error) {
	if s.phase != PhaseAnswering {
		return s, s.transitionError("advance")
	}
	if s.index >= len(s.questions)-1 {
		return s, fmt.Errorf("advance: already at the last question")
	}
	s.index++
	return s, nil
}

// Retreat moves the cursor to the previous question. Requires the cursor
// not to be on the first question.
func (s Session) Retreat() (Session, error) {
	if s.phase != PhaseAnswering {
		return s, s.transitionError("retreat")
	}
	if s.index <= 0 {
		return s, fmt.Errorf("retreat: already at the first question")
	}
	s.index--
	return s, nil
}

// Submit begins grading with all currently recorded answers. Unanswered
// questions are graded as "no answer", never skipped.
// Answering -> Grading.
func (s Session) Submit() (Session, error) {
	if s.phase != PhaseAnswering {
		return s, s.transitionError("submit")
	}
	s.phase = PhaseGrading
	s.err = nil
	return s, nil
}

// ResultsReady installs the grading results. Grading -> Results.
func (s Session) ResultsReady(results []quiz.GradingResult) (Session, error) {
	if s.phase != PhaseGrading {
		return s, s.transitionError("results ready")
	}
	s.phase = PhaseResults
	s.results = results
	return s, nil
}

// GradingFailed records the failure and returns to answering. The cursor
// and every recorded answer are preserved, so grading is retryable
// without answer loss.
func (s Session) GradingFailed(err error) (Session, error) {
	if s.phase != PhaseGrading {
		return s, s.transitionError("grading failed")
	}
	s.phase = PhaseAnswering
	s.err = err
	return s, nil
}

// Reset discards the entire session — questions, answers, results, config
// and error — and returns to setup. Valid from any phase.
func (s Session) Reset() Session {
	return New(s.policy)
}

func (s Session) questionByID(id int) (quiz.Question, bool) {
	for _, q := range s.questions {
		if q.ID == id {
			return q, true
		}
	}
	return quiz.Question{}, false
}
