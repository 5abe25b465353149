package plan

import "github.com/claude/fuelplan/internal/catalog"

// Input is the complete raw-input aggregate for one plan computation:
// profile, questionnaire and sweat profile. Products arrive already
// resolved from the catalog so that Compute stays a pure function.
type Input struct {
	Profile       Profile        `json:"profile"`
	Questionnaire Questionnaire  `json:"questionnaire"`
	Hydration     HydrationInput `json:"hydration"`
}

// Plan is the full derived output: targets, hydration, fueling, the intake
// schedule and the whole-session summary.
type Plan struct {
	DurationMin int             `json:"duration_min"`
	Targets     Targets         `json:"targets"`
	Hydration   HydrationPlan   `json:"hydration"`
	Fueling     FuelingPlan     `json:"fueling"`
	Schedule    []ScheduleEntry `json:"schedule"`
	Summary     SessionSummary  `json:"summary"`

	CHOProduct  string `json:"cho_product"`
	Drink       string `json:"drink"`
	Electrolyte string `json:"electrolyte"`
}

// Compute runs the whole pipeline for one input set and the three selected
// products. It is deterministic and cannot fail: every stage degrades to an
// explicit fallback on bad input, so the caller always gets a plan back.
func Compute(in Input, product catalog.CHOProduct, drink catalog.Drink, elec catalog.Electrolyte) Plan {
	durationMin := in.Profile.DurationMinutes()

	targets := ResolveTargets(in.Questionnaire, durationMin, in.Profile.GutTrained)
	hyd := ResolveHydration(in.Hydration, drink, elec)
	fueling := ResolveFueling(in.Profile, targets.CHOTargetGPerH, hyd, product)
	schedule := BuildSchedule(in.Profile, fueling.IntervalMin, product)
	summary := SummarizeSession(in.Hydration, hyd, elec, durationMin, in.Profile.BodyMassKg)

	return Plan{
		DurationMin: durationMin,
		Targets:     targets,
		Hydration:   hyd,
		Fueling:     fueling,
		Schedule:    schedule,
		Summary:     summary,
		CHOProduct:  product.Name,
		Drink:       drink.Name,
		Electrolyte: elec.Name,
	}
}
