package quiz

// SourceMode determines how Config.Input is interpreted.
type SourceMode string

const (
	// ModeSubject treats the input as a topic name (e.g. "Photosynthesis").
	ModeSubject SourceMode = "subject"

	// ModeContext treats the input as a pasted passage to quiz against.
	ModeContext SourceMode = "context"
)

// Difficulty is the requested quiz difficulty.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// QuizType is the requested question type mix.
type QuizType string

const (
	TypeMultipleChoice QuizType = "multiple_choice"
	TypeOpenEnded      QuizType = "open_ended"
	TypeMixed          QuizType = "mixed"
)

// QuestionType is the type of a single generated question.
// Unlike QuizType it has no "mixed" value: a mixed quiz is a sequence of
// questions that are each one of these two kinds.
type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionOpenEnded      QuestionType = "open_ended"
)

// MinQuestions and MaxQuestions bound Config.QuestionCount.
const (
	MinQuestions = 1
	MaxQuestions = 20
)

// Config holds the user-declared generation parameters for one quiz.
type Config struct {
	// Mode selects how Input is interpreted.
	Mode SourceMode

	// Input is the topic name (ModeSubject) or pasted passage (ModeContext).
	// Must be non-empty when a generation request is issued.
	Input string

	// QuestionCount is the number of questions to generate (1..20).
	QuestionCount int

	Difficulty Difficulty
	Type       QuizType

	// APIKey is an optional explicit credential. When empty, the gateway
	// falls back to the stored credential and then the environment.
	APIKey string
}

// Validate checks the config before a generation request is issued.
func (c Config) Validate() error {
	if c.Input == "" {
		return &ValidationError{Field: "input", Message: "subject or context text is required"}
	}
	if c.QuestionCount < MinQuestions || c.QuestionCount > MaxQuestions {
		return &ValidationError{Field: "questionCount", Message: "question count must be between 1 and 20"}
	}
	switch c.Mode {
	case ModeSubject, ModeContext:
	default:
		return &ValidationError{Field: "mode", Message: `mode must be "subject" or "context"`}
	}
	switch c.Difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		return &ValidationError{Field: "difficulty", Message: `difficulty must be "easy", "medium" or "hard"`}
	}
	switch c.Type {
	case TypeMultipleChoice, TypeOpenEnded, TypeMixed:
	default:
		return &ValidationError{Field: "type", Message: `type must be "multiple_choice", "open_ended" or "mixed"`}
	}
	return nil
}

// Question is one quiz item as produced by the generator.
type Question struct {
	// ID is unique within a quiz but otherwise opaque: the generator does
	// not guarantee contiguous or ordered ids.
	ID int

	// Text is the question prompt shown to the user.
	Text string

	Type QuestionType

	// Options holds the answer choices for multiple_choice questions
	// (at least 2 after validation). Empty for open_ended questions.
	Options []string
}

// HasOption reports whether answer matches one of the question's options.
func (q Question) HasOption(answer string) bool {
	for _, opt := range q.Options {
		if opt == answer {
			return true
		}
	}
	return false
}

// GradingResult is the model's verdict for a single question, correlated
// by QuestionID.
type GradingResult struct {
	QuestionID int

	// Score is 0..100 after normalization.
	Score int

	// Feedback explains why the answer was right or wrong.
	Feedback string

	// CorrectAnswer is the reference answer or correct option text.
	CorrectAnswer string

	// Clamped is set when the model returned an out-of-range score that
	// was normalized into [0,100]. Not part of the wire contract.
	Clamped bool
}
