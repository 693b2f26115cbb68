package schedule

import (
	"math"
	"strings"
	"testing"
)

func TestDefault_StandardRamp(t *testing.T) {
	sched := Default(100000)

	want := map[int]float64{2025: 60000, 2026: 70000, 2027: 80000, 2028: 90000, 2029: 100000, 2030: 100000, 2035: 100000}
	for year, exp := range want {
		if sched[year] != exp {
			t.Errorf("year %d: got %v, want %v", year, sched[year], exp)
		}
	}
	if len(sched) != 11 {
		t.Errorf("expected 11 years, got %d", len(sched))
	}
}

func TestDefault_ClampedToGrant(t *testing.T) {
	sched := Default(75000)
	if sched[2025] != 60000 {
		t.Errorf("2025 should keep the ramp value, got %v", sched[2025])
	}
	if sched[2029] != 75000 {
		t.Errorf("2029 should clamp to the grant, got %v", sched[2029])
	}
}

func TestNormalize_CarryForward(t *testing.T) {
	input := map[int]float64{2025: 50000, 2026: 65000}
	out, warnings, err := Normalize(input, 100000)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	for year := 2027; year <= 2035; year++ {
		if out[year] != 65000 {
			t.Errorf("year %d: got %v, want carried-forward 65000", year, out[year])
		}
	}
	if len(warnings) != 9 {
		t.Errorf("expected one warning per substituted year, got %d: %v", len(warnings), warnings)
	}
}

func TestNormalize_MissingFirstYearUsesRamp(t *testing.T) {
	out, warnings, err := Normalize(nil, 100000)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if out[2025] != 60000 {
		t.Errorf("2025: got %v, want ramp default 60000", out[2025])
	}
	if len(warnings) == 0 {
		t.Error("expected warnings for a fully defaulted schedule")
	}
}

func TestNormalize_Clamping(t *testing.T) {
	input := map[int]float64{}
	for year := 2025; year <= 2035; year++ {
		input[year] = 60000
	}
	input[2027] = -100
	input[2030] = 250000

	out, warnings, err := Normalize(input, 100000)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if out[2027] != 0 {
		t.Errorf("2027: got %v, want 0", out[2027])
	}
	if out[2030] != 100000 {
		t.Errorf("2030: got %v, want 100000", out[2030])
	}
	if len(warnings) != 2 {
		t.Errorf("expected 2 warnings, got %d: %v", len(warnings), warnings)
	}
}

func TestNormalize_NonFiniteIsError(t *testing.T) {
	input := map[int]float64{2025: math.NaN()}
	if _, _, err := Normalize(input, 100000); err == nil {
		t.Fatal("expected error for NaN vested count")
	}
}

func TestCheckMonotonic(t *testing.T) {
	flat := map[int]float64{2025: 100, 2026: 100, 2027: 150}
	if w := CheckMonotonic(flat); len(w) != 0 {
		t.Errorf("non-decreasing schedule warned: %v", w)
	}

	dip := map[int]float64{2025: 100, 2026: 80, 2027: 150, 2028: 140}
	w := CheckMonotonic(dip)
	if len(w) != 2 {
		t.Fatalf("expected 2 warnings, got %d: %v", len(w), w)
	}
	if !strings.Contains(w[0], "2026") {
		t.Errorf("first warning should name 2026: %s", w[0])
	}
}
