package grant

import (
	"errors"
	"math"
	"testing"
)

const tol = 1e-6

// flatVested vests the same count every projection year.
func flatVested(v float64) map[int]float64 {
	out := make(map[int]float64)
	for y := GraceYear; y <= FinalYear; y++ {
		out[y] = v
	}
	return out
}

// rampVested is the standard worksheet ramp over a 100000-share grant.
func rampVested() map[int]float64 {
	out := flatVested(100000)
	out[2025] = 60000
	out[2026] = 70000
	out[2027] = 80000
	out[2028] = 90000
	return out
}

func baseParams() Parameters {
	return Parameters{
		GrowthRate:           0.20,
		CommonRedemptionRate: 0.05,
		OptionRedemptionRate: 0.05,
		TotalCommonShares:    30000,
		CommonPurchasePrice:  2.00,
		TotalGrantShares:     100000,
		StrikePrice:          6.00,
		VestedByYear:         rampVested(),
	}
}

func mustProject(t *testing.T, p Parameters) *Projection {
	t.Helper()
	proj, err := Project(p)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	return proj
}

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s: got %v, want %v", name, got, want)
	}
}

func TestProject_PriceSeries(t *testing.T) {
	proj := mustProject(t, baseParams())

	if proj.SharePrice[2024] != BaseSharePrice {
		t.Fatalf("base price: got %v, want %v exactly", proj.SharePrice[2024], BaseSharePrice)
	}
	approx(t, "price 2025", proj.SharePrice[2025], 7.20)
	approx(t, "price 2026", proj.SharePrice[2026], 8.64)

	// price[y] = price[y-1] * 1.2, strictly increasing under positive growth.
	for y := 2025; y <= FinalYear; y++ {
		approx(t, "price recurrence", proj.SharePrice[y], proj.SharePrice[y-1]*1.2)
		if proj.SharePrice[y] <= proj.SharePrice[y-1] {
			t.Errorf("price not strictly increasing at %d: %v <= %v", y, proj.SharePrice[y], proj.SharePrice[y-1])
		}
	}
}

func TestProject_CommonShares(t *testing.T) {
	proj := mustProject(t, baseParams())

	// 2025 grace year: no redemption, full holding carries value.
	// UnsoldValue = (7.20 - 2.00) * 30000 = 156000
	grace := proj.Common[2025]
	approx(t, "2025 redeemed", grace.Redeemed, 0)
	approx(t, "2025 unsold", grace.Unsold, 30000)
	approx(t, "2025 unsold value", grace.UnsoldValue, 156000)
	approx(t, "2025 total", grace.TotalValue, 156000)

	// 2026: redeem 5% of prior unsold = 1500
	// Unsold = 30000 - 1500 = 28500
	// RedemptionValue = (8.64 - 2.00) * 1500 = 9960
	// UnsoldValue = 6.64 * 28500 = 189240
	y26 := proj.Common[2026]
	approx(t, "2026 redeemed", y26.Redeemed, 1500)
	approx(t, "2026 unsold", y26.Unsold, 28500)
	approx(t, "2026 redemption value", y26.RedemptionValue, 9960)
	approx(t, "2026 cum redemption value", y26.CumRedemptionValue, 9960)
	approx(t, "2026 unsold value", y26.UnsoldValue, 189240)
	approx(t, "2026 total", y26.TotalValue, 199200)

	// 2027: redeem 5% of 28500 = 1425
	// RedemptionValue = (10.368 - 2.00) * 1425 = 11924.4
	y27 := proj.Common[2027]
	approx(t, "2027 redeemed", y27.Redeemed, 1425)
	approx(t, "2027 cum redeemed", y27.CumRedeemed, 2925)
	approx(t, "2027 redemption value", y27.RedemptionValue, 11924.4)
	approx(t, "2027 total", y27.TotalValue, 9960+11924.4+27075*8.368)
}

func TestProject_Options(t *testing.T) {
	proj := mustProject(t, baseParams())

	// 2025 grace year: 60000 vested, no redemption.
	// UnsoldValue = (7.20 - 6.00) * 60000 = 72000
	grace := proj.Options[2025]
	approx(t, "2025 vested", grace.Vested, 60000)
	approx(t, "2025 vested unsold", grace.VestedUnsold, 60000)
	approx(t, "2025 unsold", grace.Unsold, 100000)
	approx(t, "2025 unsold value", grace.UnsoldValue, 72000)
	approx(t, "2025 total", grace.TotalValue, 72000)

	// 2026: redeem 5% of 60000 vested-unsold = 3000
	// VestedUnsold = 70000 - 3000 = 67000; Unsold = 97000
	// RedemptionValue = (8.64 - 6.00) * 3000 = 7920
	// UnsoldValue = 2.64 * 67000 = 176880
	y26 := proj.Options[2026]
	approx(t, "2026 redeemed", y26.Redeemed, 3000)
	approx(t, "2026 vested unsold", y26.VestedUnsold, 67000)
	approx(t, "2026 unsold", y26.Unsold, 97000)
	approx(t, "2026 redemption value", y26.RedemptionValue, 7920)
	approx(t, "2026 unsold value", y26.UnsoldValue, 176880)
	approx(t, "2026 total", y26.TotalValue, 184800)
}

func TestProject_Conservation(t *testing.T) {
	proj := mustProject(t, baseParams())

	// CumRedeemed + Unsold must reconstruct the initial balance exactly,
	// every year from the grace year on.
	for y := GraceYear; y <= FinalYear; y++ {
		approx(t, "common conservation", proj.Common[y].CumRedeemed+proj.Common[y].Unsold, 30000)
		approx(t, "option conservation", proj.Options[y].CumRedeemed+proj.Options[y].Unsold, 100000)
	}
}

func TestProject_NonNegativity(t *testing.T) {
	p := baseParams()
	p.CommonRedemptionRate = 0.10
	p.OptionRedemptionRate = 0.10
	proj := mustProject(t, p)

	for y := BaseYear; y <= FinalYear; y++ {
		for name, hy := range map[string]HoldingYear{"common": proj.Common[y], "options": proj.Options[y]} {
			if hy.Redeemed < 0 || hy.VestedUnsold < 0 || hy.RedemptionValue < 0 || hy.UnsoldValue < 0 || hy.TotalValue < 0 {
				t.Errorf("%s %d: negative field in %+v", name, y, hy)
			}
		}
		if proj.Common[y].Unsold > 30000 || proj.Options[y].Unsold > 100000 {
			t.Errorf("year %d: unsold exceeds initial holding", y)
		}
	}
}

func TestProject_ZeroRedemption(t *testing.T) {
	p := baseParams()
	p.CommonRedemptionRate = 0
	proj := mustProject(t, p)

	for y := GraceYear; y <= FinalYear; y++ {
		approx(t, "unsold stays full", proj.Common[y].Unsold, 30000)
		approx(t, "no redemption proceeds", proj.Common[y].CumRedemptionValue, 0)
	}
}

func TestProject_UnderwaterClamp(t *testing.T) {
	p := baseParams()
	p.StrikePrice = 1000 // above the price for the whole horizon

	proj := mustProject(t, p)
	for y := GraceYear; y <= FinalYear; y++ {
		approx(t, "underwater redemption value", proj.Options[y].RedemptionValue, 0)
		approx(t, "underwater unsold value", proj.Options[y].UnsoldValue, 0)
		approx(t, "underwater total", proj.Options[y].TotalValue, 0)
	}
}

func TestProject_CombinedEqualsSum(t *testing.T) {
	proj := mustProject(t, baseParams())
	for y := GraceYear; y <= FinalYear; y++ {
		approx(t, "combined", proj.Combined[y], proj.Common[y].TotalValue+proj.Options[y].TotalValue)
	}
}

func TestProject_GraceYearNoRedemption(t *testing.T) {
	proj := mustProject(t, baseParams())

	for name, hy := range map[string]HoldingYear{"common": proj.Common[2025], "options": proj.Options[2025]} {
		if hy.Redeemed != 0 || hy.CumRedeemed != 0 || hy.RedemptionValue != 0 || hy.CumRedemptionValue != 0 {
			t.Errorf("%s grace year has redemption activity: %+v", name, hy)
		}
	}
}

func TestProject_RerunIndependence(t *testing.T) {
	p := baseParams()

	first := mustProject(t, p)
	firstTotal := first.Common[2030].TotalValue

	q := p
	q.CommonRedemptionRate = 0.10
	mustProject(t, q)

	// Re-running the original parameters must reproduce the original
	// results; nothing is cached between calls.
	again := mustProject(t, p)
	approx(t, "rerun total", again.Common[2030].TotalValue, firstTotal)

	for y := GraceYear; y <= FinalYear; y++ {
		approx(t, "vesting input untouched", p.VestedByYear[y], rampVested()[y])
	}
}

func TestProject_InvalidInput(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Parameters)
	}{
		{"nan growth", func(p *Parameters) { p.GrowthRate = math.NaN() }},
		{"inf price", func(p *Parameters) { p.CommonPurchasePrice = math.Inf(1) }},
		{"growth at -1", func(p *Parameters) { p.GrowthRate = -1 }},
		{"redemption above 1", func(p *Parameters) { p.OptionRedemptionRate = 1.5 }},
		{"negative common shares", func(p *Parameters) { p.TotalCommonShares = -1 }},
		{"zero grant shares", func(p *Parameters) { p.TotalGrantShares = 0 }},
		{"vested above grant", func(p *Parameters) { p.VestedByYear[2030] = 200000 }},
		{"negative vested", func(p *Parameters) { p.VestedByYear[2027] = -5 }},
		{"missing vested year", func(p *Parameters) { delete(p.VestedByYear, 2031) }},
		{"nan vested", func(p *Parameters) { p.VestedByYear[2026] = math.NaN() }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := baseParams()
			tc.mutate(&p)
			_, err := Project(p)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var invalid *InvalidInputError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidInputError, got %T: %v", err, err)
			}
		})
	}
}

func TestProject_WideDomain(t *testing.T) {
	// The engine accepts the mathematical domain, wider than the
	// worksheet sliders: shrinking prices and full redemption.
	p := baseParams()
	p.GrowthRate = -0.5
	p.CommonRedemptionRate = 1
	p.OptionRedemptionRate = 1

	proj := mustProject(t, p)
	approx(t, "price 2025", proj.SharePrice[2025], 3.0)
	// Full redemption empties the vested-unsold balance after one step.
	approx(t, "2026 redeemed", proj.Common[2026].Redeemed, 30000)
	approx(t, "2026 unsold", proj.Common[2026].Unsold, 0)
	approx(t, "2027 redeemed", proj.Common[2027].Redeemed, 0)
}
