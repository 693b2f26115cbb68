package grant

import "math"

// holdingInput parameterizes the generic redeemable-holding recurrence.
// Options are the general case (vesting ceiling supplied per year); common
// shares are the specialization with ceiling = Initial for every year.
type holdingInput struct {
	Initial        float64 // share count held at the anchor year
	ReferencePrice float64 // cost basis: purchase price or strike price
	RedemptionRate float64 // fraction of prior-year vested-unsold redeemed

	// VestedByYear is the vesting ceiling per year. nil means fully
	// vested from the grace year onward.
	VestedByYear map[int]float64
}

func (in holdingInput) vested(year int) float64 {
	if in.VestedByYear == nil {
		return in.Initial
	}
	return in.VestedByYear[year]
}

// projectHolding folds the redemption recurrence over the horizon.
//
// Each year redeems RedemptionRate of the *prior* year's vested-unsold
// balance, so cumulative redemption decays geometrically toward (but never
// reaches) the ceiling. Intrinsic value is floored at zero: an underwater
// holding is worth nothing, never a liability.
func projectHolding(in holdingInput, prices map[int]float64) map[int]HoldingYear {
	out := make(map[int]HoldingYear, FinalYear-BaseYear+1)

	// Anchor year: full balance, nothing vested, nothing redeemed.
	out[BaseYear] = HoldingYear{Unsold: in.Initial}

	// Grace year: vesting starts, redemption does not.
	graceVested := in.vested(GraceYear)
	gracePriceDiff := math.Max(0, prices[GraceYear]-in.ReferencePrice)
	graceUnsoldValue := gracePriceDiff * graceVested
	out[GraceYear] = HoldingYear{
		Vested:       graceVested,
		VestedUnsold: graceVested,
		Unsold:       in.Initial,
		UnsoldValue:  graceUnsoldValue,
		TotalValue:   graceUnsoldValue,
	}

	for year := FirstRedemptionYear; year <= FinalYear; year++ {
		prev := out[year-1]
		cur := HoldingYear{Vested: in.vested(year)}

		cur.Redeemed = prev.VestedUnsold * in.RedemptionRate
		cur.CumRedeemed = prev.CumRedeemed + cur.Redeemed

		// Floored so a decreasing vesting schedule cannot produce a
		// negative vested-unsold balance.
		cur.VestedUnsold = math.Max(0, cur.Vested-cur.CumRedeemed)
		cur.Unsold = in.Initial - cur.CumRedeemed

		priceDiff := math.Max(0, prices[year]-in.ReferencePrice)
		cur.RedemptionValue = priceDiff * cur.Redeemed
		cur.CumRedemptionValue = prev.CumRedemptionValue + cur.RedemptionValue
		cur.UnsoldValue = priceDiff * cur.VestedUnsold
		cur.TotalValue = cur.CumRedemptionValue + cur.UnsoldValue

		out[year] = cur
	}

	return out
}
