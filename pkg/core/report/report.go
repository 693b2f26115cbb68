// Package report renders a projection run as tables: the three worksheet
// views (common shares, options, combined), the vesting schedule, and the
// sensitivity pivots that replace the sheet's grouped bar charts.
package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"grant_valuation/pkg/core/grant"
	"grant_valuation/pkg/core/validate"
)

// Table is a rendered view: a title, a header row, and year rows.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// Pivot is a sensitivity comparison in wide format: one row per rate, one
// column per sample year, values in £ thousands.
type Pivot struct {
	Title     string
	RateLabel string // e.g. "Redemption Rate", "Growth Rate"
	Years     []int
	Rows      []PivotRow
}

// PivotRow is one rate's sampled values, aligned with Pivot.Years.
type PivotRow struct {
	Rate   string
	Values []string
}

// Report is the full rendered output of one projection run.
type Report struct {
	RunID       string
	GeneratedAt time.Time

	Params   grant.Parameters
	Warnings []string

	// HasCommon gates the common-share and combined views; both are
	// suppressed entirely when no common shares are held.
	HasCommon bool

	Common   *Table // nil when HasCommon is false
	Vesting  Table
	Options  Table
	Combined *Table // nil when HasCommon is false

	CommonSensitivity   *Pivot // nil when HasCommon is false
	OptionSensitivity   Pivot
	CombinedSensitivity *Pivot // nil when HasCommon is false

	// CombinedCAGR summarizes growth of the combined value across the
	// displayed horizon. nil when the grace-year value is zero.
	CombinedCAGR *validate.CAGRResult

	// CombinedYoY is the final projected year's change over the year
	// before it.
	CombinedYoY *validate.YoYResult
}

// SweepSettings overrides the default sensitivity grids. Nil slices use
// the engine defaults.
type SweepSettings struct {
	RedemptionRates []float64
	GrowthRates     []float64
	SampleYears     []int
}

// Build assembles the report for an already-computed projection. The
// sensitivity views re-invoke the engine per rate scenario.
func Build(proj *grant.Projection, p grant.Parameters, warnings []string, sweeps SweepSettings) (*Report, error) {
	r := &Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now(),
		Params:      p,
		Warnings:    warnings,
		HasCommon:   p.TotalCommonShares > 0,
	}

	r.Vesting = vestingTable(p)
	r.Options = optionsTable(proj)

	optSens, err := grant.OptionRedemptionSweep(p, sweeps.RedemptionRates, sweeps.SampleYears)
	if err != nil {
		return nil, fmt.Errorf("option sensitivity: %w", err)
	}
	r.OptionSensitivity = pivot(
		"Option Value Sensitivity to Redemption Rate (£ thousands)",
		"Redemption Rate", optSens)

	if r.HasCommon {
		common := commonTable(proj)
		r.Common = &common

		combined := combinedTable(proj)
		r.Combined = &combined

		commonSens, err := grant.CommonRedemptionSweep(p, sweeps.RedemptionRates, sweeps.SampleYears)
		if err != nil {
			return nil, fmt.Errorf("common sensitivity: %w", err)
		}
		cp := pivot(
			"Common Share Value Sensitivity to Redemption Rate (£ thousands)",
			"Redemption Rate", commonSens)
		r.CommonSensitivity = &cp

		growthSens, err := grant.CombinedGrowthSweep(p, sweeps.GrowthRates, sweeps.SampleYears)
		if err != nil {
			return nil, fmt.Errorf("combined sensitivity: %w", err)
		}
		gp := pivot(
			"Combined Value Sensitivity to Growth Rate (£ thousands)",
			"Growth Rate", growthSens)
		r.CombinedSensitivity = &gp
	}

	if proj.Combined[grant.GraceYear] > 0 {
		cagr, err := validate.CAGRFromSeries(proj.Combined, grant.GraceYear, grant.FinalYear)
		if err != nil {
			return nil, fmt.Errorf("combined CAGR: %w", err)
		}
		r.CombinedCAGR = cagr
	}

	yoy, err := validate.YoYFromSeries(proj.Combined, grant.FinalYear, grant.FinalYear-1, "Combined Total Value")
	if err != nil {
		return nil, fmt.Errorf("combined YoY: %w", err)
	}
	r.CombinedYoY = yoy

	return r, nil
}

func commonTable(proj *grant.Projection) Table {
	t := Table{
		Title: "Common Share Grant Value",
		Headers: []string{
			"Year", "Share Price (£)", "Proceeds from Redemption (£)",
			"Value of Unsold Shares (£)", "Total Common Share Value (£)",
		},
	}
	for _, year := range grant.ReportYears() {
		hy := proj.Common[year]
		t.Rows = append(t.Rows, []string{
			fmt.Sprintf("%d", year),
			Price(proj.SharePrice[year]),
			Pounds(hy.CumRedemptionValue),
			Pounds(hy.UnsoldValue),
			Pounds(hy.TotalValue),
		})
	}
	return t
}

func optionsTable(proj *grant.Projection) Table {
	t := Table{
		Title: "A-Share/Options Grant Value",
		Headers: []string{
			"Year", "Share Price (£)", "Proceeds from Redemption (£)",
			"Value of Unsold Shares (£)", "Total Grant Value (£)",
		},
	}
	for _, year := range grant.ReportYears() {
		hy := proj.Options[year]
		t.Rows = append(t.Rows, []string{
			fmt.Sprintf("%d", year),
			Price(proj.SharePrice[year]),
			Pounds(hy.CumRedemptionValue),
			Pounds(hy.UnsoldValue),
			Pounds(hy.TotalValue),
		})
	}
	return t
}

func combinedTable(proj *grant.Projection) Table {
	t := Table{
		Title: "Combined Analysis",
		Headers: []string{
			"Year", "Share Price (£)", "Common Share Value (£)",
			"A-Share/Options Value (£)", "Combined Total Value (£)",
		},
	}
	for _, year := range grant.ReportYears() {
		t.Rows = append(t.Rows, []string{
			fmt.Sprintf("%d", year),
			Price(proj.SharePrice[year]),
			Pounds(proj.Common[year].TotalValue),
			Pounds(proj.Options[year].TotalValue),
			Pounds(proj.Combined[year]),
		})
	}
	return t
}

func vestingTable(p grant.Parameters) Table {
	t := Table{
		Title:   "Vesting Schedule Used",
		Headers: []string{"Year", "Vested Shares"},
	}
	for _, year := range grant.ReportYears() {
		t.Rows = append(t.Rows, []string{
			fmt.Sprintf("%d", year),
			Shares(p.VestedByYear[year]),
		})
	}
	return t
}

// pivot converts (rate, year) points into wide format. Points arrive
// rate-major from the sweeps, so years repeat per rate in a fixed order.
func pivot(title, rateLabel string, points []grant.SensitivityPoint) Pivot {
	p := Pivot{Title: title, RateLabel: rateLabel}

	seen := make(map[int]bool)
	rows := make(map[string]*PivotRow)
	var order []string

	for _, pt := range points {
		if !seen[pt.Year] {
			seen[pt.Year] = true
			p.Years = append(p.Years, pt.Year)
		}
		label := Percent(pt.Rate)
		row, ok := rows[label]
		if !ok {
			row = &PivotRow{Rate: label}
			rows[label] = row
			order = append(order, label)
		}
		row.Values = append(row.Values, Thousands(pt.Value))
	}

	for _, label := range order {
		p.Rows = append(p.Rows, *rows[label])
	}
	return p
}
