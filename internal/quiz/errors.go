package quiz

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError describes an invalid Config field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// MalformedResponseError indicates the model's payload could not be
// accepted as a whole. Parsing is all-or-nothing: a single bad element
// invalidates the batch, because the caller has no way to request a
// replacement for one item.
type MalformedResponseError struct {
	// Reason describes the first structural problem found.
	Reason string

	// Element is the index of the offending array element, or -1 when the
	// payload as a whole was unusable.
	Element int

	Err error
}

func (e *MalformedResponseError) Error() string {
	if e.Element >= 0 {
		return fmt.Sprintf("malformed model response (element %d): %s", e.Element, e.Reason)
	}
	return fmt.Sprintf("malformed model response: %s", e.Reason)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// IncompleteGradingError indicates the graded questionId set did not
// exactly match the quiz's question ids.
type IncompleteGradingError struct {
	// Missing holds question ids the model failed to grade.
	Missing []int

	// Unknown holds questionIds in the response that reference no question
	// in the quiz.
	Unknown []int
}

func (e *IncompleteGradingError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing results for questions "+joinIDs(e.Missing))
	}
	if len(e.Unknown) > 0 {
		parts = append(parts, "results for unknown questions "+joinIDs(e.Unknown))
	}
	return "incomplete grading: " + strings.Join(parts, "; ")
}

func joinIDs(ids []int) string {
	sorted := make([]int, len(ids))
	copy(sorted, ids)
	sort.Ints(sorted)
	parts := make([]string, len(sorted))
	for i, id := range sorted {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, ", ")
}
