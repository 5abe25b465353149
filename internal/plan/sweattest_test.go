package plan

import "testing"

// TestSweatTestEvaluate verifies the reference self-test: 0.5 kg lost,
// 400 g drunk, no urine data, one hour → 0.9 L/h.
func TestSweatTestEvaluate(t *testing.T) {
	st := SweatTest{
		Duration:      "01:00",
		PreMassKg:     70,
		PostMassKg:    69.5,
		BottleBeforeG: 700,
		BottleAfterG:  300,
	}

	r := st.Evaluate()

	if !approx(r.BodyMassLossKg, 0.5) {
		t.Errorf("body mass loss = %v, want 0.5", r.BodyMassLossKg)
	}
	if !approx(r.FluidIntakeL, 0.4) {
		t.Errorf("fluid intake = %v, want 0.4", r.FluidIntakeL)
	}
	if r.UrineVolumeL != 0 {
		t.Errorf("urine volume = %v, want 0 (not measured)", r.UrineVolumeL)
	}
	if !approx(r.SweatLossL, 0.9) {
		t.Errorf("sweat loss = %v, want 0.9", r.SweatLossL)
	}
	if !approx(r.SweatRateLPerH, 0.9) {
		t.Errorf("sweat rate = %v, want 0.9", r.SweatRateLPerH)
	}
}

// TestSweatTestUrineCorrection verifies the optional urine jar subtracts
// from sweat loss only when both weighings are present.
func TestSweatTestUrineCorrection(t *testing.T) {
	base := SweatTest{
		Duration:      "01:00",
		PreMassKg:     70,
		PostMassKg:    69.5,
		BottleBeforeG: 700,
		BottleAfterG:  300,
	}

	withUrine := base
	withUrine.UrineEmptyG = 100
	withUrine.UrineFullG = 400
	if r := withUrine.Evaluate(); !approx(r.SweatLossL, 0.6) {
		t.Errorf("sweat loss with urine = %v, want 0.6", r.SweatLossL)
	}

	// A full-jar weight without an empty-jar weight must not count.
	halfMeasured := base
	halfMeasured.UrineFullG = 400
	if r := halfMeasured.Evaluate(); r.UrineVolumeL != 0 {
		t.Errorf("urine volume = %v, want 0 when jar tare is missing", r.UrineVolumeL)
	}
}

// TestSweatTestClamps verifies that implausible measurements (weight gain,
// refilled bottle, mislabeled jars) clamp to zero instead of going negative.
func TestSweatTestClamps(t *testing.T) {
	st := SweatTest{
		Duration:      "01:00",
		PreMassKg:     69.5,
		PostMassKg:    70, // gained weight
		BottleBeforeG: 300,
		BottleAfterG:  700, // bottle heavier afterwards
		UrineEmptyG:   400,
		UrineFullG:    100, // jars swapped
	}

	r := st.Evaluate()

	if r.BodyMassLossKg != 0 {
		t.Errorf("body mass loss = %v, want 0", r.BodyMassLossKg)
	}
	if r.FluidIntakeL != 0 {
		t.Errorf("fluid intake = %v, want 0", r.FluidIntakeL)
	}
	if r.UrineVolumeL != 0 {
		t.Errorf("urine volume = %v, want 0", r.UrineVolumeL)
	}
	if r.SweatLossL != 0 || r.SweatRateLPerH != 0 {
		t.Errorf("sweat loss/rate = %v/%v, want 0/0", r.SweatLossL, r.SweatRateLPerH)
	}
}

// TestSweatTestZeroDuration verifies a zero or malformed test duration
// yields a zero rate rather than a division error.
func TestSweatTestZeroDuration(t *testing.T) {
	for _, dur := range []string{"00:00", "", "garbage"} {
		st := SweatTest{Duration: dur, PreMassKg: 70, PostMassKg: 69}
		if r := st.Evaluate(); r.SweatRateLPerH != 0 {
			t.Errorf("duration %q: rate = %v, want 0", dur, r.SweatRateLPerH)
		}
	}
}
