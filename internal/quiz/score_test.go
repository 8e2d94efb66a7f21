package quiz

import "testing"

func resultsWithScores(scores ...int) []GradingResult {
	out := make([]GradingResult, len(scores))
	for i, s := range scores {
		out[i] = GradingResult{QuestionID: i + 1, Score: s}
	}
	return out
}

func TestAggregateScore_Empty(t *testing.T) {
	if _, err := AggregateScore(nil); err == nil {
		t.Fatal("expected error for empty results")
	}
}

func TestAggregateScore_Mean(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
		want   int
	}{
		{"single", []int{73}, 73},
		{"exact mean", []int{80, 60, 100}, 80},
		{"round half up", []int{50, 51}, 51},   // 50.5 -> 51
		{"round down", []int{50, 50, 51}, 50},  // 50.33 -> 50
		{"round up", []int{66, 67, 67}, 67},    // 66.67 -> 67
		{"all zero", []int{0, 0, 0}, 0},
		{"all max", []int{100, 100}, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AggregateScore(resultsWithScores(tt.scores...))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("AggregateScore(%v) = %d, want %d", tt.scores, got, tt.want)
			}
		})
	}
}

func TestAggregateScore_OrderIndependent(t *testing.T) {
	a, _ := AggregateScore(resultsWithScores(10, 95, 47))
	b, _ := AggregateScore(resultsWithScores(47, 10, 95))
	if a != b {
		t.Errorf("order changed the aggregate: %d vs %d", a, b)
	}
}

func TestBand(t *testing.T) {
	tests := []struct {
		score int
		want  ScoreBand
	}{
		{100, BandHigh},
		{80, BandHigh},
		{79, BandMedium},
		{60, BandMedium},
		{59, BandLow},
		{0, BandLow},
	}
	for _, tt := range tests {
		if got := Band(tt.score); got != tt.want {
			t.Errorf("Band(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestBandMessage_Distinct(t *testing.T) {
	msgs := map[string]bool{
		BandMessage(BandHigh):   true,
		BandMessage(BandMedium): true,
		BandMessage(BandLow):    true,
	}
	if len(msgs) != 3 {
		t.Error("expected three distinct band messages")
	}
}
