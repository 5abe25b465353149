package plan

import "testing"

// TestLevelForScore verifies the classification boundaries, which are
// inclusive on the lower class.
func TestLevelForScore(t *testing.T) {
	tests := []struct {
		score int
		want  Level
	}{
		{0, LevelBeginner},
		{3, LevelBeginner},
		{4, LevelIntermediate},
		{6, LevelIntermediate},
		{7, LevelIntermediate},
		{8, LevelAdvanced},
		{12, LevelAdvanced},
	}

	for _, tt := range tests {
		if got := LevelForScore(tt.score); got != tt.want {
			t.Errorf("LevelForScore(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

// TestBracketForHours verifies bracket boundaries, inclusive on the lower
// bracket. A zero-hour session (unparsed duration) is short.
func TestBracketForHours(t *testing.T) {
	tests := []struct {
		hours float64
		want  DurationBracket
	}{
		{0, BracketShort},
		{2.5, BracketShort},
		{2.51, BracketMedium},
		{3.5, BracketMedium},
		{4, BracketMedium},
		{4.01, BracketLong},
		{10, BracketLong},
	}

	for _, tt := range tests {
		if got := BracketForHours(tt.hours); got != tt.want {
			t.Errorf("BracketForHours(%v) = %v, want %v", tt.hours, got, tt.want)
		}
	}
}

// TestScoreIsOrderIndependent verifies the score is a plain sum: permuting
// the sub-scores across fields cannot change the resulting level.
func TestScoreIsOrderIndependent(t *testing.T) {
	a := Questionnaire{WeeksTraining: 2, SessionsPerWeek: 1, HoursPerWeek: 0, LongSessions: 1, GutTrainingHistory: 2, GISymptomHistory: 0}
	b := Questionnaire{WeeksTraining: 0, SessionsPerWeek: 2, HoursPerWeek: 1, LongSessions: 0, GutTrainingHistory: 2, GISymptomHistory: 1}

	if a.Score() != b.Score() {
		t.Fatalf("scores differ: %d vs %d", a.Score(), b.Score())
	}
	if LevelForScore(a.Score()) != LevelForScore(b.Score()) {
		t.Errorf("levels differ for equal scores")
	}
}
