package plan

import (
	"math"

	"github.com/claude/fuelplan/internal/catalog"
)

// HydrationInput is the sweat profile driving the hydration stage. The
// sweat rate may come from the athlete's own numbers or from a sweat-rate
// self-test result.
type HydrationInput struct {
	SweatRateLPerH float64 `json:"sweat_rate_l_per_h"`
	SweatSodiumMgL float64 `json:"sweat_sodium_mg_per_l"`
	ReplacePercent float64 `json:"replace_percent"`
}

// HydrationPlan is the hourly hydration prescription: fluid and sodium
// goals, how much the selected drink contributes, and how many electrolyte
// capsules cover the remaining sodium.
type HydrationPlan struct {
	FluidGoalMlPerH       float64 `json:"fluid_goal_ml_per_h"`
	SodiumGoalMgPerH      float64 `json:"sodium_goal_mg_per_h"`
	DrinkServingsPerH     float64 `json:"drink_servings_per_h"`
	DrinkCHOGPerH         float64 `json:"drink_cho_g_per_h"`
	DrinkSodiumMgPerH     float64 `json:"drink_sodium_mg_per_h"`
	SodiumShortfallMgPerH float64 `json:"sodium_shortfall_mg_per_h"`
	CapsulesPerH          float64 `json:"capsules_per_h"`
}

// ResolveHydration computes the hourly hydration plan. Every division is
// guarded: a drink with no serving size or a capsule with no sodium simply
// contributes nothing.
func ResolveHydration(in HydrationInput, drink catalog.Drink, elec catalog.Electrolyte) HydrationPlan {
	frac := in.ReplacePercent / 100

	p := HydrationPlan{
		FluidGoalMlPerH:  math.Round(in.SweatRateLPerH * 1000 * frac),
		SodiumGoalMgPerH: math.Round(in.SweatRateLPerH * in.SweatSodiumMgL * frac),
	}

	if drink.MlPerServing > 0 {
		p.DrinkServingsPerH = p.FluidGoalMlPerH / drink.MlPerServing
	}
	p.DrinkCHOGPerH = drink.CHOPerServing * p.DrinkServingsPerH
	p.DrinkSodiumMgPerH = drink.SodiumPerServing * p.DrinkServingsPerH

	p.SodiumShortfallMgPerH = math.Max(0, p.SodiumGoalMgPerH-p.DrinkSodiumMgPerH)
	if elec.SodiumPerUnit > 0 {
		p.CapsulesPerH = p.SodiumShortfallMgPerH / elec.SodiumPerUnit
	}
	return p
}
