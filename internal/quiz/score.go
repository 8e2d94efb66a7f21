package quiz

import "fmt"

// ScoreBand is the qualitative tier for an aggregate score. Presentation
// only; the per-question scores are the data contract.
type ScoreBand int

const (
	BandLow    ScoreBand = iota // below 60
	BandMedium                  // 60-79
	BandHigh                    // 80 and up
)

// AggregateScore returns the rounded arithmetic mean of all per-question
// scores. Rounding is half-up to the nearest integer. Errors on an empty
// slice: a quiz always has at least one question.
func AggregateScore(results []GradingResult) (int, error) {
	if len(results) == 0 {
		return 0, fmt.Errorf("aggregate score: no grading results")
	}
	sum := 0
	for _, r := range results {
		sum += r.Score
	}
	// Integer round-half-up of sum/len.
	return (sum*2 + len(results)) / (2 * len(results)), nil
}

// Band maps an aggregate score to its qualitative tier.
func Band(score int) ScoreBand {
	switch {
	case score >= 80:
		return BandHigh
	case score >= 60:
		return BandMedium
	default:
		return BandLow
	}
}

// BandMessage returns the summary line shown with the final score.
func BandMessage(b ScoreBand) string {
	switch b {
	case BandHigh:
		return "Outstanding work! You've mastered this topic."
	case BandMedium:
		return "Good effort. Review the feedback below to improve."
	default:
		return "Keep studying. Use the feedback to guide your learning."
	}
}
