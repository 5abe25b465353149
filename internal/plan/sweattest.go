package plan

import "math"

// SweatTest holds the measurements from the weigh-in/weigh-out self-test:
// body mass before and after, bottle mass before and after drinking, and an
// optional urine jar weighed empty and full.
type SweatTest struct {
	Duration      string  `json:"duration"` // "HH:MM"
	PreMassKg     float64 `json:"pre_mass_kg"`
	PostMassKg    float64 `json:"post_mass_kg"`
	BottleBeforeG float64 `json:"bottle_before_g"`
	BottleAfterG  float64 `json:"bottle_after_g"`
	UrineEmptyG   float64 `json:"urine_empty_g,omitempty"`
	UrineFullG    float64 `json:"urine_full_g,omitempty"`
}

// SweatTestResult is the mass-balance outcome of a self-test.
type SweatTestResult struct {
	DurationMin    int     `json:"duration_min"`
	BodyMassLossKg float64 `json:"body_mass_loss_kg"`
	FluidIntakeL   float64 `json:"fluid_intake_l"`
	UrineVolumeL   float64 `json:"urine_volume_l"`
	SweatLossL     float64 `json:"sweat_loss_l"`
	SweatRateLPerH float64 `json:"sweat_rate_l_per_h"`
}

// Evaluate converts the raw measurements into an hourly sweat rate via mass
// balance: sweat lost = body mass lost + fluid drunk − urine excreted. Every
// intermediate volume is floored at zero so that spillage, inconsistent
// weighing or a skipped urine measurement can never report negative sweat
// loss. A zero test duration yields a zero rate.
func (t SweatTest) Evaluate() SweatTestResult {
	r := SweatTestResult{
		DurationMin:    ParseClock(t.Duration),
		BodyMassLossKg: math.Max(0, t.PreMassKg-t.PostMassKg),
		FluidIntakeL:   math.Max(0, (t.BottleBeforeG-t.BottleAfterG)/1000),
	}

	// The urine jar is optional; both weighings must be present for the
	// correction to apply, otherwise an unmeasured loss would be subtracted.
	if t.UrineFullG > 0 && t.UrineEmptyG > 0 {
		r.UrineVolumeL = math.Max(0, (t.UrineFullG-t.UrineEmptyG)/1000)
	}

	r.SweatLossL = math.Max(0, r.BodyMassLossKg+r.FluidIntakeL-r.UrineVolumeL)

	if hours := float64(r.DurationMin) / 60; hours > 0 {
		r.SweatRateLPerH = r.SweatLossL / hours
	}
	return r
}
