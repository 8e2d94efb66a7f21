package grader

import (
	"encoding/json"

	"github.com/abhisek/quizgen/internal/quiz"
)

// resultOutput is one raw array element before validation.
type resultOutput struct {
	QuestionID    *int    `json:"questionId"`
	Score         *int    `json:"score"`
	Feedback      *string `json:"feedback"`
	CorrectAnswer *string `json:"correctAnswer"`
}

// ParseResults parses and validates a grading response. The questionId set
// of the parsed array must equal expectedIDs exactly: a missing result is
// incomplete grading, an extra one references a question that does not
// exist. Out-of-range scores are clamped into [0,100] and flagged rather
// than rejected — the model is not a trusted input source, and losing a
// whole grading run over a score of 101 helps nobody. Clamped results
// carry Clamped=true so callers can report the normalization.
func ParseResults(raw json.RawMessage, expectedIDs []int) ([]quiz.GradingResult, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return nil, &quiz.MalformedResponseError{
			Reason:  "not a JSON array",
			Element: -1,
			Err:     err,
		}
	}

	expected := make(map[int]bool, len(expectedIDs))
	for _, id := range expectedIDs {
		expected[id] = true
	}

	results := make([]quiz.GradingResult, 0, len(elements))
	got := make(map[int]bool, len(elements))
	var unknown []int

	for i, el := range elements {
		var out resultOutput
		if err := json.Unmarshal(el, &out); err != nil {
			return nil, &quiz.MalformedResponseError{
				Reason:  "not a grading result object",
				Element: i,
				Err:     err,
			}
		}

		r, err := validateResult(out, i)
		if err != nil {
			return nil, err
		}

		if got[r.QuestionID] {
			return nil, &quiz.MalformedResponseError{
				Reason:  "duplicate result for one question",
				Element: i,
			}
		}
		got[r.QuestionID] = true
		if !expected[r.QuestionID] {
			unknown = append(unknown, r.QuestionID)
		}
		results = append(results, r)
	}

	var missing []int
	for _, id := range expectedIDs {
		if !got[id] {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 || len(unknown) > 0 {
		return nil, &quiz.IncompleteGradingError{Missing: missing, Unknown: unknown}
	}

	return results, nil
}

func validateResult(out resultOutput, i int) (quiz.GradingResult, error) {
	fail := func(reason string) (quiz.GradingResult, error) {
		return quiz.GradingResult{}, &quiz.MalformedResponseError{Reason: reason, Element: i}
	}

	if out.QuestionID == nil {
		return fail(`missing "questionId"`)
	}
	if out.Score == nil {
		return fail(`missing "score"`)
	}
	if out.Feedback == nil || *out.Feedback == "" {
		return fail(`missing or empty "feedback"`)
	}
	if out.CorrectAnswer == nil || *out.CorrectAnswer == "" {
		return fail(`missing or empty "correctAnswer"`)
	}

	r := quiz.GradingResult{
		QuestionID:    *out.QuestionID,
		Score:         *out.Score,
		Feedback:      *out.Feedback,
		CorrectAnswer: *out.CorrectAnswer,
	}

	if r.Score < 0 {
		r.Score = 0
		r.Clamped = true
	} else if r.Score > 100 {
		r.Score = 100
		r.Clamped = true
	}

	return r, nil
}
