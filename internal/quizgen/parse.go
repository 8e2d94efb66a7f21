package quizgen

import (
	"encoding/json"
	"fmt"

	"github.com/abhisek/quizgen/internal/quiz"
)

// questionOutput is one raw array element before validation. Pointer
// fields distinguish absent from zero-valued.
type questionOutput struct {
	ID      *int     `json:"id"`
	Text    *string  `json:"text"`
	Type    *string  `json:"type"`
	Options []string `json:"options"`
}

// ParseQuestions parses and validates a generation response. The batch is
// all-or-nothing: one bad element rejects the whole response, since there
// is no way to request a single replacement question.
func ParseQuestions(raw json.RawMessage) ([]quiz.Question, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return nil, &quiz.MalformedResponseError{
			Reason:  "not a JSON array",
			Element: -1,
			Err:     err,
		}
	}
	if len(elements) == 0 {
		return nil, &quiz.MalformedResponseError{
			Reason:  "empty question array",
			Element: -1,
		}
	}

	questions := make([]quiz.Question, 0, len(elements))
	seen := make(map[int]bool, len(elements))

	for i, el := range elements {
		var out questionOutput
		if err := json.Unmarshal(el, &out); err != nil {
			return nil, &quiz.MalformedResponseError{
				Reason:  "not a question object",
				Element: i,
				Err:     err,
			}
		}

		q, err := validateQuestion(out, i, seen)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}

	return questions, nil
}

func validateQuestion(out questionOutput, i int, seen map[int]bool) (quiz.Question, error) {
	fail := func(reason string) (quiz.Question, error) {
		return quiz.Question{}, &quiz.MalformedResponseError{Reason: reason, Element: i}
	}

	if out.ID == nil {
		return fail(`missing "id"`)
	}
	if seen[*out.ID] {
		return fail(fmt.Sprintf("duplicate question id %d", *out.ID))
	}
	if out.Text == nil || *out.Text == "" {
		return fail(`missing or empty "text"`)
	}
	if out.Type == nil {
		return fail(`missing "type"`)
	}

	qt := quiz.QuestionType(*out.Type)
	switch qt {
	case quiz.QuestionMultipleChoice:
		if len(out.Options) < 2 {
			return fail("multiple_choice question needs at least 2 options")
		}
	case quiz.QuestionOpenEnded:
		// Options are ignored for open-ended questions.
		out.Options = nil
	default:
		return fail(fmt.Sprintf("unknown question type %q", *out.Type))
	}

	seen[*out.ID] = true
	return quiz.Question{
		ID:      *out.ID,
		Text:    *out.Text,
		Type:    qt,
		Options: out.Options,
	}, nil
}
