package plan

import (
	"math"

	"github.com/claude/fuelplan/internal/catalog"
)

// sipIntervalMin is the fixed drinking cadence used for sip guidance.
const sipIntervalMin = 15

// SessionSummary scales the hourly prescription to the whole session and
// adds the operational guidance (sip size, capsule cadence).
type SessionSummary struct {
	TotalFluidLossL      float64 `json:"total_fluid_loss_l"`
	TotalFluidIntakeL    float64 `json:"total_fluid_intake_l"`
	FluidDeficitL        float64 `json:"fluid_deficit_l"`
	BodyMassLossPct      float64 `json:"body_mass_loss_pct"`
	TotalSodiumLossMg    float64 `json:"total_sodium_loss_mg"`
	SodiumFromDrinkMg    float64 `json:"sodium_from_drink_mg"`
	SodiumFromCapsulesMg float64 `json:"sodium_from_capsules_mg"`
	TotalSodiumIntakeMg  float64 `json:"total_sodium_intake_mg"`
	TotalSodiumGapMg     float64 `json:"total_sodium_gap_mg"`
	DrinkServingsTotal   float64 `json:"drink_servings_total"`
	CapsulesTotal        float64 `json:"capsules_total"`
	SipIntervalMin       int     `json:"sip_interval_min"`
	SipMl                float64 `json:"sip_ml"`
	CapsuleIntervalMin   int     `json:"capsule_interval_min"`
}

// SummarizeSession projects an hourly hydration plan over the session
// duration. BodyMassKg is optional; when unknown the body-mass-loss
// percentage stays 0.
func SummarizeSession(in HydrationInput, hyd HydrationPlan, elec catalog.Electrolyte, durationMin int, bodyMassKg float64) SessionSummary {
	hours := float64(durationMin) / 60

	s := SessionSummary{
		TotalFluidLossL:      in.SweatRateLPerH * hours,
		TotalFluidIntakeL:    hyd.FluidGoalMlPerH / 1000 * hours,
		TotalSodiumLossMg:    in.SweatRateLPerH * in.SweatSodiumMgL * hours,
		SodiumFromDrinkMg:    hyd.DrinkSodiumMgPerH * hours,
		SodiumFromCapsulesMg: hyd.CapsulesPerH * elec.SodiumPerUnit * hours,
		DrinkServingsTotal:   hyd.DrinkServingsPerH * hours,
		CapsulesTotal:        hyd.CapsulesPerH * hours,
		SipIntervalMin:       sipIntervalMin,
		SipMl:                hyd.FluidGoalMlPerH * sipIntervalMin / 60,
	}
	s.FluidDeficitL = math.Max(0, s.TotalFluidLossL-s.TotalFluidIntakeL)
	if bodyMassKg > 0 {
		s.BodyMassLossPct = s.FluidDeficitL / bodyMassKg * 100
	}
	s.TotalSodiumIntakeMg = s.SodiumFromDrinkMg + s.SodiumFromCapsulesMg
	s.TotalSodiumGapMg = math.Max(0, s.TotalSodiumLossMg-s.TotalSodiumIntakeMg)

	if hyd.CapsulesPerH > 0 {
		s.CapsuleIntervalMin = roundToFiveMin(60 / hyd.CapsulesPerH)
	}
	return s
}
