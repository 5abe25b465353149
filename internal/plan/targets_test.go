package plan

import "testing"

var allLevels = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}
var allBrackets = []DurationBracket{BracketShort, BracketMedium, BracketLong}

// TestRangeTableConsistency verifies every table entry has low ≤ high and a
// midpoint inside the range.
func TestRangeTableConsistency(t *testing.T) {
	for _, level := range allLevels {
		for _, bracket := range allBrackets {
			r := RangeFor(level, bracket)
			if r.Low > r.High {
				t.Errorf("%v/%v: low %v > high %v", level, bracket, r.Low, r.High)
			}
			mid := r.Midpoint()
			if mid < r.Low || mid > r.High {
				t.Errorf("%v/%v: midpoint %v outside [%v, %v]", level, bracket, mid, r.Low, r.High)
			}
			if r.Label == "" {
				t.Errorf("%v/%v: empty label", level, bracket)
			}
		}
	}
}

// TestRangeForKnownEntries spot-checks the table corners.
func TestRangeForKnownEntries(t *testing.T) {
	tests := []struct {
		level     Level
		bracket   DurationBracket
		low, high float64
	}{
		{LevelBeginner, BracketShort, 30, 45},
		{LevelIntermediate, BracketMedium, 60, 75},
		{LevelAdvanced, BracketShort, 60, 60},
		{LevelAdvanced, BracketLong, 90, 110},
		{LevelBeginner, BracketLong, 50, 70},
	}

	for _, tt := range tests {
		r := RangeFor(tt.level, tt.bracket)
		if r.Low != tt.low || r.High != tt.high {
			t.Errorf("RangeFor(%v, %v) = %v–%v, want %v–%v",
				tt.level, tt.bracket, r.Low, r.High, tt.low, tt.high)
		}
	}
}

// TestCapTarget verifies the gut-training cap policy: no cap when trained
// or on short sessions, experience-dependent ceiling otherwise.
func TestCapTarget(t *testing.T) {
	tests := []struct {
		name       string
		target     float64
		bracket    DurationBracket
		level      Level
		gutTrained bool
		want       float64
	}{
		{"short bracket never capped", 100, BracketShort, LevelBeginner, false, 100},
		{"gut trained never capped", 100, BracketLong, LevelBeginner, true, 100},
		{"beginner capped at 55", 67.5, BracketMedium, LevelBeginner, false, 55},
		{"intermediate capped at 60", 67.5, BracketMedium, LevelIntermediate, false, 60},
		{"advanced capped at 70", 100, BracketLong, LevelAdvanced, false, 70},
		{"below ceiling unchanged", 50, BracketMedium, LevelIntermediate, false, 50},
		{"at ceiling unchanged", 60, BracketMedium, LevelIntermediate, false, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CapTarget(tt.target, tt.bracket, tt.level, tt.gutTrained)
			if got != tt.want {
				t.Errorf("CapTarget(%v, %v, %v, %v) = %v, want %v",
					tt.target, tt.bracket, tt.level, tt.gutTrained, got, tt.want)
			}
		})
	}
}

// TestResolveTargets runs the classifier-to-target chain for a 3.5 h
// intermediate athlete without gut training: range 60–75, midpoint 67.5,
// capped to 60 g/h.
func TestResolveTargets(t *testing.T) {
	q := Questionnaire{WeeksTraining: 1, SessionsPerWeek: 1, HoursPerWeek: 1, LongSessions: 1, GutTrainingHistory: 0, GISymptomHistory: 2}
	got := ResolveTargets(q, 210, false)

	if got.Score != 6 {
		t.Errorf("score = %d, want 6", got.Score)
	}
	if got.Level != LevelIntermediate {
		t.Errorf("level = %v, want intermediate", got.Level)
	}
	if got.Bracket != BracketMedium {
		t.Errorf("bracket = %v, want medium", got.Bracket)
	}
	if got.Range.Low != 60 || got.Range.High != 75 {
		t.Errorf("range = %v–%v, want 60–75", got.Range.Low, got.Range.High)
	}
	if got.CHOTargetGPerH != 60 {
		t.Errorf("cho target = %v, want 60", got.CHOTargetGPerH)
	}
}
