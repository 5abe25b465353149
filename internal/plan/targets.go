package plan

import "fmt"

// CHORange is a suggested hourly carbohydrate intake range in g/h.
type CHORange struct {
	Low   float64 `json:"low_g_per_h"`
	High  float64 `json:"high_g_per_h"`
	Label string  `json:"label"`
}

// Midpoint returns the center of the range, the value the cap policy is
// applied to.
func (r CHORange) Midpoint() float64 {
	return (r.Low + r.High) / 2
}

// choRangeTable maps level × bracket to the suggested g/h range. Values
// follow the consensus endurance-fueling guidance the questionnaire was
// built around.
var choRangeTable = map[Level]map[DurationBracket]CHORange{
	LevelBeginner: {
		BracketShort:  {Low: 30, High: 45, Label: "30–45"},
		BracketMedium: {Low: 45, High: 60, Label: "45–60"},
		BracketLong:   {Low: 50, High: 70, Label: "50–70"},
	},
	LevelIntermediate: {
		BracketShort:  {Low: 45, High: 60, Label: "45–60"},
		BracketMedium: {Low: 60, High: 75, Label: "60–75"},
		BracketLong:   {Low: 70, High: 90, Label: "70–90"},
	},
	LevelAdvanced: {
		BracketShort:  {Low: 60, High: 60, Label: "60"},
		BracketMedium: {Low: 75, High: 90, Label: "75–90"},
		BracketLong:   {Low: 90, High: 110, Label: "90–110"},
	},
}

// RangeFor returns the suggested carbohydrate range for a level and
// duration bracket. Unknown values fall back to the most conservative
// entry rather than failing.
func RangeFor(level Level, bracket DurationBracket) CHORange {
	if byBracket, ok := choRangeTable[level]; ok {
		if r, ok := byBracket[bracket]; ok {
			return r
		}
	}
	return choRangeTable[LevelBeginner][BracketShort]
}

// Gut-tolerance ceilings in g/h for athletes without gut training. The
// values are the planning tool's fixed policy constants.
const (
	gutCapBeginner     = 55
	gutCapIntermediate = 60
	gutCapAdvanced     = 70
)

// CapTarget applies the gut-training cap policy to a target intake. Gut
// training removes the cap entirely, and short sessions never need one; for
// everything else the target is clamped to an experience-dependent ceiling.
func CapTarget(target float64, bracket DurationBracket, level Level, gutTrained bool) float64 {
	if gutTrained || bracket == BracketShort {
		return target
	}
	ceiling := float64(gutCapAdvanced)
	switch level {
	case LevelBeginner:
		ceiling = gutCapBeginner
	case LevelIntermediate:
		ceiling = gutCapIntermediate
	}
	if target > ceiling {
		return ceiling
	}
	return target
}

// Targets bundles the carbohydrate-target stage of the pipeline.
type Targets struct {
	Score          int             `json:"score"`
	Level          Level           `json:"level"`
	Bracket        DurationBracket `json:"duration_bracket"`
	Range          CHORange        `json:"suggested_range"`
	CHOTargetGPerH float64         `json:"cho_target_g_per_h"`
}

// ResolveTargets runs classifier and target resolver for a questionnaire
// and session duration.
func ResolveTargets(q Questionnaire, durationMin int, gutTrained bool) Targets {
	hours := float64(durationMin) / 60
	score := q.Score()
	level := LevelForScore(score)
	bracket := BracketForHours(hours)
	r := RangeFor(level, bracket)
	return Targets{
		Score:          score,
		Level:          level,
		Bracket:        bracket,
		Range:          r,
		CHOTargetGPerH: CapTarget(r.Midpoint(), bracket, level, gutTrained),
	}
}

func (t Targets) String() string {
	return fmt.Sprintf("%s/%s: %s g/h, target %.0f g/h", t.Level, t.Bracket, t.Range.Label, t.CHOTargetGPerH)
}
