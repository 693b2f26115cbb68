package grant

import "math"

// Project computes the full 2024-2035 projection table for one parameter
// set. It is a pure function: no I/O, no shared state, and the inputs are
// never mutated, so repeated calls with varied parameters (sensitivity
// sweeps) are fully independent.
func Project(p Parameters) (*Projection, error) {
	if err := checkParameters(p); err != nil {
		return nil, err
	}

	prices := projectPrices(p.GrowthRate)

	common := projectHolding(holdingInput{
		Initial:        p.TotalCommonShares,
		ReferencePrice: p.CommonPurchasePrice,
		RedemptionRate: p.CommonRedemptionRate,
	}, prices)

	options := projectHolding(holdingInput{
		Initial:        p.TotalGrantShares,
		ReferencePrice: p.StrikePrice,
		RedemptionRate: p.OptionRedemptionRate,
		VestedByYear:   p.VestedByYear,
	}, prices)

	combined := make(map[int]float64, FinalYear-GraceYear+1)
	for year := GraceYear; year <= FinalYear; year++ {
		combined[year] = common[year].TotalValue + options[year].TotalValue
	}

	return &Projection{
		SharePrice: prices,
		Common:     common,
		Options:    options,
		Combined:   combined,
	}, nil
}

// projectPrices compounds the base price across the horizon.
// price[2024] = 6.00; price[y] = price[y-1] * (1 + growth).
func projectPrices(growth float64) map[int]float64 {
	prices := make(map[int]float64, FinalYear-BaseYear+1)
	prices[BaseYear] = BaseSharePrice
	for year := BaseYear + 1; year <= FinalYear; year++ {
		prices[year] = prices[year-1] * (1 + growth)
	}
	return prices
}

// checkParameters enforces mathematical validity. UI-level ranges (growth
// 10-25%, redemption 0-10%, grant cap) belong to the config layer; the
// engine only refuses inputs the recurrence cannot meaningfully compute
// with, including non-finite values that would otherwise propagate NaN
// through every downstream field.
func checkParameters(p Parameters) error {
	finite := []struct {
		name  string
		value float64
	}{
		{"growth_rate", p.GrowthRate},
		{"common_redemption_rate", p.CommonRedemptionRate},
		{"option_redemption_rate", p.OptionRedemptionRate},
		{"total_common_shares", p.TotalCommonShares},
		{"common_purchase_price", p.CommonPurchasePrice},
		{"total_grant_shares", p.TotalGrantShares},
		{"strike_price", p.StrikePrice},
	}
	for _, f := range finite {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return invalidf(f.name, "must be finite, got %v", f.value)
		}
	}

	if p.GrowthRate <= -1 {
		return invalidf("growth_rate", "must be > -1, got %v", p.GrowthRate)
	}
	if p.CommonRedemptionRate < 0 || p.CommonRedemptionRate > 1 {
		return invalidf("common_redemption_rate", "must be in [0, 1], got %v", p.CommonRedemptionRate)
	}
	if p.OptionRedemptionRate < 0 || p.OptionRedemptionRate > 1 {
		return invalidf("option_redemption_rate", "must be in [0, 1], got %v", p.OptionRedemptionRate)
	}
	if p.TotalCommonShares < 0 {
		return invalidf("total_common_shares", "must be >= 0, got %v", p.TotalCommonShares)
	}
	if p.CommonPurchasePrice <= 0 {
		return invalidf("common_purchase_price", "must be > 0, got %v", p.CommonPurchasePrice)
	}
	if p.TotalGrantShares <= 0 {
		return invalidf("total_grant_shares", "must be > 0, got %v", p.TotalGrantShares)
	}
	if p.StrikePrice <= 0 {
		return invalidf("strike_price", "must be > 0, got %v", p.StrikePrice)
	}

	for year := GraceYear; year <= FinalYear; year++ {
		vested, ok := p.VestedByYear[year]
		if !ok {
			return invalidf("vested_shares_by_year", "missing year %d", year)
		}
		if math.IsNaN(vested) || math.IsInf(vested, 0) {
			return invalidf("vested_shares_by_year", "year %d must be finite, got %v", year, vested)
		}
		if vested < 0 || vested > p.TotalGrantShares {
			return invalidf("vested_shares_by_year",
				"year %d must be in [0, %v], got %v", year, p.TotalGrantShares, vested)
		}
	}

	return nil
}
