// Package validate provides reusable input checks and derived growth
// metrics. These functions are called from the config layer, the report
// builder, and tests.
package validate

import (
	"fmt"
	"math"
)

// =============================================================================
// PARAMETER CHECKS
// =============================================================================

// Finite rejects NaN and infinities before they can propagate through the
// recurrence.
func Finite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s must be finite, got %v", name, v)
	}
	return nil
}

// Rate checks a fractional rate against an inclusive range.
func Rate(name string, v, min, max float64) error {
	if err := Finite(name, v); err != nil {
		return err
	}
	if v < min || v > max {
		return fmt.Errorf("%s must be in [%v, %v], got %v", name, min, max, v)
	}
	return nil
}

// Positive checks a monetary amount or share count that must exceed zero.
func Positive(name string, v float64) error {
	if err := Finite(name, v); err != nil {
		return err
	}
	if v <= 0 {
		return fmt.Errorf("%s must be > 0, got %v", name, v)
	}
	return nil
}

// NonNegative checks a count that may legitimately be zero.
func NonNegative(name string, v float64) error {
	if err := Finite(name, v); err != nil {
		return err
	}
	if v < 0 {
		return fmt.Errorf("%s must be >= 0, got %v", name, v)
	}
	return nil
}

// =============================================================================
// YEAR-OVER-YEAR (YoY) CALCULATIONS
// =============================================================================

// YoYResult holds the result of a YoY calculation on a value series.
type YoYResult struct {
	CurrentYear  int
	PriorYear    int
	CurrentValue float64
	PriorValue   float64
	ChangeAbs    float64
	ChangePct    float64 // percentage change
	Label        string  // e.g. "Combined Total Value"
}

// CalculateYoY returns percentage change: (current - prior) / prior * 100.
func CalculateYoY(current, prior float64) float64 {
	if prior == 0 {
		if current == 0 {
			return 0
		}
		return math.Inf(1) // infinite growth from zero
	}
	return (current - prior) / prior * 100
}

// YoYFromSeries calculates YoY change from a year -> value map.
func YoYFromSeries(series map[int]float64, currentYear, priorYear int, label string) (*YoYResult, error) {
	current, okCur := series[currentYear]
	prior, okPri := series[priorYear]

	if !okCur {
		return nil, fmt.Errorf("missing data for year %d", currentYear)
	}
	if !okPri {
		return nil, fmt.Errorf("missing data for year %d", priorYear)
	}

	return &YoYResult{
		CurrentYear:  currentYear,
		PriorYear:    priorYear,
		CurrentValue: current,
		PriorValue:   prior,
		ChangeAbs:    current - prior,
		ChangePct:    CalculateYoY(current, prior),
		Label:        label,
	}, nil
}

// =============================================================================
// CAGR (Compound Annual Growth Rate)
// =============================================================================

// CAGRResult holds the result of a CAGR calculation.
type CAGRResult struct {
	StartYear  int
	EndYear    int
	StartValue float64
	EndValue   float64
	Years      int
	CAGR       float64 // as percentage
}

// CalculateCAGR = ((EndValue / StartValue) ^ (1/years)) - 1, as percentage.
func CalculateCAGR(startValue, endValue float64, years int) float64 {
	if startValue <= 0 || years <= 0 {
		return 0
	}
	return (math.Pow(endValue/startValue, 1.0/float64(years)) - 1) * 100
}

// CAGRFromSeries calculates CAGR between two years of a value series.
func CAGRFromSeries(series map[int]float64, startYear, endYear int) (*CAGRResult, error) {
	start, okStart := series[startYear]
	end, okEnd := series[endYear]

	if !okStart {
		return nil, fmt.Errorf("missing data for year %d", startYear)
	}
	if !okEnd {
		return nil, fmt.Errorf("missing data for year %d", endYear)
	}
	if endYear <= startYear {
		return nil, fmt.Errorf("end year %d must follow start year %d", endYear, startYear)
	}

	years := endYear - startYear
	return &CAGRResult{
		StartYear:  startYear,
		EndYear:    endYear,
		StartValue: start,
		EndValue:   end,
		Years:      years,
		CAGR:       CalculateCAGR(start, end, years),
	}, nil
}
