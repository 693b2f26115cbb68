package grant

// Projection horizon. 2024 anchors the price series; 2025 is the grace year
// with no redemption; redemption runs 2026-2035.
const (
	BaseYear            = 2024
	GraceYear           = 2025
	FirstRedemptionYear = 2026
	FinalYear           = 2035

	// BaseSharePrice is the fixed 2024 share price the growth series compounds from.
	BaseSharePrice = 6.00
)

// Conservative parameters used by the orchestration layer when a configured
// run fails and a degraded re-run is attempted.
const (
	ConservativeGrowthRate     = 0.10
	ConservativeRedemptionRate = 0.05
)

// Parameters are the immutable inputs to a single projection run.
// Counts are carried as float64 because redemption produces fractional
// share balances from year one (5% of 30000 prior-year unsold, etc).
type Parameters struct {
	GrowthRate           float64 // fractional annual share price growth, > -1
	CommonRedemptionRate float64 // [0, 1]
	OptionRedemptionRate float64 // [0, 1]

	TotalCommonShares   float64
	CommonPurchasePrice float64

	TotalGrantShares float64
	StrikePrice      float64

	// VestedByYear maps each year in [GraceYear, FinalYear] to the vested
	// option/A-share count. Must be complete and each value within
	// [0, TotalGrantShares]; schedule.Normalize produces a map that
	// satisfies both.
	VestedByYear map[int]float64
}

// HoldingYear is one year's state for a single redeemable holding
// (common shares or options). Derived strictly from the prior year's
// state plus constant parameters, never revisited once computed.
type HoldingYear struct {
	Vested             float64 // vesting ceiling in effect this year
	VestedUnsold       float64 // vested shares not yet redeemed, floored at 0
	Redeemed           float64 // shares redeemed this year
	CumRedeemed        float64
	Unsold             float64 // Initial - CumRedeemed, vested or not
	RedemptionValue    float64 // intrinsic value realized this year
	CumRedemptionValue float64
	UnsoldValue        float64 // intrinsic value of vested-unsold shares
	TotalValue         float64 // CumRedemptionValue + UnsoldValue
}

// Projection is the full year-indexed result table for one run.
type Projection struct {
	SharePrice map[int]float64
	Common     map[int]HoldingYear
	Options    map[int]HoldingYear

	// Combined is CommonTotalValue + OptionTotalValue, populated for
	// GraceYear..FinalYear.
	Combined map[int]float64
}

// Years returns the full projection horizon in ascending order.
func Years() []int {
	years := make([]int, 0, FinalYear-BaseYear+1)
	for y := BaseYear; y <= FinalYear; y++ {
		years = append(years, y)
	}
	return years
}

// ReportYears returns the displayed horizon (the anchor year is internal).
func ReportYears() []int {
	years := make([]int, 0, FinalYear-GraceYear+1)
	for y := GraceYear; y <= FinalYear; y++ {
		years = append(years, y)
	}
	return years
}
