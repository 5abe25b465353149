package plan

import "github.com/claude/fuelplan/internal/catalog"

// maxScheduleEntries bounds the schedule regardless of session length, so a
// pathologically small interval can never produce a runaway table.
const maxScheduleEntries = 60

// ScheduleEntry is one planned intake: take one unit of the product at the
// given minute offset.
type ScheduleEntry struct {
	Index         int     `json:"index"`
	MinuteOffset  int     `json:"minute_offset"`
	DistanceKm    float64 `json:"distance_km"`
	CumulativeCHO float64 `json:"cumulative_cho_g"`
}

// BuildSchedule generates the ordered intake sequence: one entry per
// interval, stopping at the session's total duration and never exceeding
// maxScheduleEntries. A zero interval or zero duration yields an empty
// schedule: the drink alone covers the target, or there is no session.
// The schedule is always rebuilt from scratch; entries are never patched
// incrementally.
func BuildSchedule(p Profile, intervalMin int, product catalog.CHOProduct) []ScheduleEntry {
	totalMin := p.DurationMinutes()
	if intervalMin <= 0 || totalMin <= 0 {
		return nil
	}

	var out []ScheduleEntry
	for i := 1; i <= maxScheduleEntries; i++ {
		t := i * intervalMin
		if t > totalMin {
			break
		}
		out = append(out, ScheduleEntry{
			Index:         i,
			MinuteOffset:  t,
			DistanceKm:    p.distanceAt(float64(t)),
			CumulativeCHO: product.CHOGrams * float64(i),
		})
	}
	return out
}
