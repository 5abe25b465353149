package plan

import "fmt"

// Level is the athlete's experience classification derived from the
// questionnaire score.
type Level int

const (
	LevelBeginner Level = iota
	LevelIntermediate
	LevelAdvanced
)

func (l Level) String() string {
	switch l {
	case LevelBeginner:
		return "beginner"
	case LevelIntermediate:
		return "intermediate"
	case LevelAdvanced:
		return "advanced"
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler so levels serialize as
// their names in JSON responses.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	switch string(text) {
	case "beginner":
		*l = LevelBeginner
	case "intermediate":
		*l = LevelIntermediate
	case "advanced":
		*l = LevelAdvanced
	default:
		return fmt.Errorf("unknown level %q", text)
	}
	return nil
}

// DurationBracket is the coarse session-length classifier used to select a
// carbohydrate range.
type DurationBracket int

const (
	BracketShort  DurationBracket = iota // ≤ 2.5 h
	BracketMedium                        // 2.5–4 h
	BracketLong                          // > 4 h
)

func (b DurationBracket) String() string {
	switch b {
	case BracketShort:
		return "≤2.5h"
	case BracketMedium:
		return "2.5–4h"
	case BracketLong:
		return ">4h"
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (b DurationBracket) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *DurationBracket) UnmarshalText(text []byte) error {
	switch string(text) {
	case "≤2.5h":
		*b = BracketShort
	case "2.5–4h":
		*b = BracketMedium
	case ">4h":
		*b = BracketLong
	default:
		return fmt.Errorf("unknown duration bracket %q", text)
	}
	return nil
}

// Questionnaire holds the six experience sub-scores. Each field is on a
// 0/1/2 scale except GutTrainingHistory, which the questionnaire weights
// as 0 or 2.
type Questionnaire struct {
	WeeksTraining      int `json:"weeks_training"`
	SessionsPerWeek    int `json:"sessions_per_week"`
	HoursPerWeek       int `json:"hours_per_week"`
	LongSessions       int `json:"long_sessions"`
	GutTrainingHistory int `json:"gut_training_history"`
	GISymptomHistory   int `json:"gi_symptom_history"`
}

// Score is the plain sum of the sub-scores (0–12). No weighting.
func (q Questionnaire) Score() int {
	return q.WeeksTraining + q.SessionsPerWeek + q.HoursPerWeek +
		q.LongSessions + q.GutTrainingHistory + q.GISymptomHistory
}

// LevelForScore classifies a questionnaire score. Boundaries are inclusive
// on the lower class: 3 is still beginner, 7 is still intermediate.
func LevelForScore(score int) Level {
	switch {
	case score <= 3:
		return LevelBeginner
	case score <= 7:
		return LevelIntermediate
	default:
		return LevelAdvanced
	}
}

// BracketForHours classifies a session duration in hours. Boundaries are
// inclusive on the lower bracket, so a zero-duration (unparsed) session
// lands in the short bracket.
func BracketForHours(hours float64) DurationBracket {
	switch {
	case hours <= 2.5:
		return BracketShort
	case hours <= 4:
		return BracketMedium
	default:
		return BracketLong
	}
}
