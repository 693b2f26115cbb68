// Package schedule handles the year -> vested-shares input: default
// schedules, the documented defaulting policy for incomplete or
// out-of-range input, and the advisory monotonicity check.
//
// All substitution happens here, with a warning per corrected value, so
// the projection engine can reject malformed input outright instead of
// silently patching it.
package schedule

import (
	"fmt"
	"math"
	"sort"

	"grant_valuation/pkg/core/grant"
)

// defaultVested is the standard vesting ramp; years past the ramp vest the
// full standard grant.
var defaultVested = map[int]float64{
	2025: 60000,
	2026: 70000,
	2027: 80000,
	2028: 90000,
	2029: 100000,
}

const fullVestDefault = 100000

// Default returns the standard schedule for every projection year, each
// value clamped to the grant size.
func Default(totalGrant float64) map[int]float64 {
	out := make(map[int]float64, grant.FinalYear-grant.GraceYear+1)
	for year := grant.GraceYear; year <= grant.FinalYear; year++ {
		out[year] = math.Min(defaultValue(year), totalGrant)
	}
	return out
}

func defaultValue(year int) float64 {
	if v, ok := defaultVested[year]; ok {
		return v
	}
	return fullVestDefault
}

// Normalize produces a complete, in-range schedule from best-effort input.
// Policy, in order:
//   - a non-finite value is an error (never substituted)
//   - a missing year carries forward the prior year's vested count; a
//     missing first year falls back to the default ramp
//   - values outside [0, totalGrant] are clamped into range
//
// Every substitution or clamp is reported as a warning so corrected input
// never goes unnoticed.
func Normalize(input map[int]float64, totalGrant float64) (map[int]float64, []string, error) {
	out := make(map[int]float64, grant.FinalYear-grant.GraceYear+1)
	var warnings []string

	prev := math.Min(defaultValue(grant.GraceYear), totalGrant)
	for year := grant.GraceYear; year <= grant.FinalYear; year++ {
		v, ok := input[year]
		switch {
		case !ok:
			warnings = append(warnings,
				fmt.Sprintf("vested shares missing for %d; carrying forward %v", year, prev))
			v = prev
		case math.IsNaN(v) || math.IsInf(v, 0):
			return nil, warnings, fmt.Errorf("vested shares for %d must be finite, got %v", year, v)
		case v < 0:
			warnings = append(warnings,
				fmt.Sprintf("vested shares for %d negative (%v); clamped to 0", year, v))
			v = 0
		case v > totalGrant:
			warnings = append(warnings,
				fmt.Sprintf("vested shares for %d exceed total grant shares (%v > %v); clamped", year, v, totalGrant))
			v = totalGrant
		}
		out[year] = v
		prev = v
	}

	return out, warnings, nil
}

// CheckMonotonic warns on every year whose vested count drops below the
// prior year's. Vesting typically increases or stays flat; a decrease is
// advisory only, never an error.
func CheckMonotonic(sched map[int]float64) []string {
	years := make([]int, 0, len(sched))
	for year := range sched {
		years = append(years, year)
	}
	sort.Ints(years)

	var warnings []string
	for i := 1; i < len(years); i++ {
		cur, prevYear := years[i], years[i-1]
		if sched[cur] < sched[prevYear] {
			warnings = append(warnings, fmt.Sprintf(
				"vested shares for %d (%v) are less than %d (%v); vesting typically increases or stays the same",
				cur, sched[cur], prevYear, sched[prevYear]))
		}
	}
	return warnings
}
