package plan

import "github.com/claude/fuelplan/internal/catalog"

// Symptoms are the ten 0–3 self-reported scores from the tolerance
// questionnaire.
type Symptoms struct {
	Nausea       int `json:"nausea"`
	Fullness     int `json:"fullness"`
	Reflux       int `json:"reflux"`
	Bloating     int `json:"bloating"`
	Gas          int `json:"gas"`
	Cramping     int `json:"cramping"`
	Urgency      int `json:"urgency"`
	Diarrhea     int `json:"diarrhea"`
	Palpitations int `json:"palpitations"`
	Anxiety      int `json:"anxiety"`
}

// UpperGI is the upper-gastrointestinal cluster score.
func (s Symptoms) UpperGI() int { return s.Nausea + s.Fullness + s.Reflux }

// LowerGI is the lower-gastrointestinal cluster score.
func (s Symptoms) LowerGI() int {
	return s.Bloating + s.Gas + s.Cramping + s.Urgency + s.Diarrhea
}

// Neuro is the neurological cluster score.
func (s Symptoms) Neuro() int { return s.Palpitations + s.Anxiety }

// ToleranceFlag is one raised suspicion with a practical suggestion. This
// is a screening heuristic with fixed thresholds, not a diagnosis.
type ToleranceFlag struct {
	Name       string `json:"name"`
	Suggestion string `json:"suggestion"`
}

// Screening thresholds. Fixed policy constants of the screening heuristic.
const (
	lowerGIThreshold      = 3
	upperGIThreshold      = 3
	neuroThreshold        = 2
	fructoseFracThreshold = 0.3
	caffeineMgThreshold   = 100
)

// ScreenTolerance aggregates the symptom clusters and raises independent
// flags against the selected product's composition. All three flags may
// fire at once; none firing returns an empty slice.
func ScreenTolerance(s Symptoms, product catalog.CHOProduct) []ToleranceFlag {
	var flags []ToleranceFlag

	if s.LowerGI() >= lowerGIThreshold && product.FructoseFraction() >= fructoseFracThreshold {
		flags = append(flags, ToleranceFlag{
			Name:       "possible fructose malabsorption",
			Suggestion: "choose a gel or drink without fructose, or with a lower fructose share",
		})
	}
	if s.UpperGI() >= upperGIThreshold && product.MaltodextrinG > 0 {
		flags = append(flags, ToleranceFlag{
			Name:       "high osmolarity / maltodextrin sensitivity",
			Suggestion: "lower the drink concentration (6–8%) or prefer gels without maltodextrin",
		})
	}
	if s.Neuro() >= neuroThreshold && product.CaffeineMg >= caffeineMgThreshold {
		flags = append(flags, ToleranceFlag{
			Name:       "caffeine sensitivity",
			Suggestion: "use a caffeine-free version or reduce the dose",
		})
	}
	return flags
}

// ToleranceReport is the screener output surfaced to callers.
type ToleranceReport struct {
	UpperGI          int             `json:"upper_gi"`
	LowerGI          int             `json:"lower_gi"`
	Neuro            int             `json:"neuro"`
	FructoseFraction float64         `json:"fructose_fraction"`
	Flags            []ToleranceFlag `json:"flags"`
}

// BuildToleranceReport runs the screener and returns the cluster scores
// alongside the raised flags.
func BuildToleranceReport(s Symptoms, product catalog.CHOProduct) ToleranceReport {
	return ToleranceReport{
		UpperGI:          s.UpperGI(),
		LowerGI:          s.LowerGI(),
		Neuro:            s.Neuro(),
		FructoseFraction: product.FructoseFraction(),
		Flags:            ScreenTolerance(s, product),
	}
}
