package plan

import (
	"math"

	"github.com/claude/fuelplan/internal/catalog"
)

// Modality is the exercise mode. It decides whether pace (min/km) or speed
// (km/h) converts intervals into distance.
type Modality string

const (
	ModalityRunning Modality = "running"
	ModalityCycling Modality = "cycling"
)

// Profile is the athlete and session description for one plan.
type Profile struct {
	Modality     Modality `json:"modality"`
	Duration     string   `json:"duration"` // "HH:MM"
	PaceMinPerKm float64  `json:"pace_min_per_km"`
	SpeedKmh     float64  `json:"speed_kmh"`
	TemperatureC float64  `json:"temperature_c"` // informational only
	BodyMassKg   float64  `json:"body_mass_kg,omitempty"`
	GutTrained   bool     `json:"gut_trained"`
}

// DurationMinutes parses the profile's duration string.
func (p Profile) DurationMinutes() int {
	return ParseClock(p.Duration)
}

// distanceAt converts a minute offset into km for the profile's modality.
// A zero pace or speed yields 0 km rather than a division blowup.
func (p Profile) distanceAt(minutes float64) float64 {
	switch p.Modality {
	case ModalityCycling:
		return round2(p.SpeedKmh / 60 * minutes)
	default:
		if p.PaceMinPerKm <= 0 {
			return 0
		}
		return round2(minutes / p.PaceMinPerKm)
	}
}

// FuelingPlan is the solid-carbohydrate prescription: how much must come
// from gels/bars once the drink's contribution is subtracted, and how often
// one unit of the selected product should be taken.
type FuelingPlan struct {
	NetCHOGPerH        float64 `json:"net_cho_g_per_h"`
	IntervalMin        int     `json:"interval_min"`
	IntervalKm         float64 `json:"interval_km"`
	UnitsPerH          float64 `json:"units_per_h"`
	UnitsTotal         int     `json:"units_total"`
	TotalCHOTargetG    float64 `json:"total_cho_target_g"`
	TotalCHOFromDrinkG float64 `json:"total_cho_from_drink_g"`
	TotalNetCHOG       float64 `json:"total_net_cho_g"`
}

// NetCHOTarget subtracts the drink's carbohydrate contribution from the
// overall hourly target, floored at zero.
func NetCHOTarget(choTargetGPerH, drinkCHOGPerH float64) float64 {
	return math.Max(0, choTargetGPerH-drinkCHOGPerH)
}

// IntervalFor converts a net hourly target and a product's grams per unit
// into a per-unit consumption interval in minutes, rounded to the nearest
// five with a five-minute floor. A zero net target or zero-carbohydrate
// product means no solid fueling is needed: interval 0.
func IntervalFor(netCHOGPerH, choPerUnit float64) int {
	if netCHOGPerH <= 0 || choPerUnit <= 0 {
		return 0
	}
	return roundToFiveMin(60 * choPerUnit / netCHOGPerH)
}

// ResolveFueling runs the net-carbohydrate stage for a profile, hourly
// target, hydration plan and selected product.
func ResolveFueling(p Profile, choTargetGPerH float64, hyd HydrationPlan, product catalog.CHOProduct) FuelingPlan {
	hours := float64(p.DurationMinutes()) / 60
	net := NetCHOTarget(choTargetGPerH, hyd.DrinkCHOGPerH)
	interval := IntervalFor(net, product.CHOGrams)

	f := FuelingPlan{
		NetCHOGPerH:        net,
		IntervalMin:        interval,
		TotalCHOTargetG:    choTargetGPerH * hours,
		TotalCHOFromDrinkG: hyd.DrinkCHOGPerH * hours,
		TotalNetCHOG:       net * hours,
	}
	if interval > 0 {
		f.IntervalKm = p.distanceAt(float64(interval))
	}
	if product.CHOGrams > 0 {
		f.UnitsPerH = net / product.CHOGrams
		f.UnitsTotal = int(math.Ceil(hours * net / product.CHOGrams))
	}
	return f
}
