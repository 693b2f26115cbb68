package grant

// Sensitivity sweeps re-run the projection with one rate overridden per
// scenario, holding everything else fixed. Values are sampled raw; the
// renderer handles thousands rounding.

// Defaults matching the working-sheet comparison views.
var (
	DefaultRedemptionRates = []float64{0.00, 0.05, 0.10}
	DefaultGrowthRates     = []float64{0.15, 0.20}
	DefaultSampleYears     = []int{2025, 2030, 2035}
)

// SweepGrowthRate is the growth assumption fixed during redemption sweeps,
// so the comparison isolates the redemption effect.
const SweepGrowthRate = 0.20

// SensitivityPoint is one sampled cell, keyed by (rate, year).
type SensitivityPoint struct {
	Rate  float64
	Year  int
	Value float64
}

// CommonRedemptionSweep compares total common-share value across redemption
// rates at fixed growth. Rates and years default when nil.
func CommonRedemptionSweep(p Parameters, rates []float64, years []int) ([]SensitivityPoint, error) {
	return sweep(p, rates, years, func(p *Parameters, rate float64) {
		p.GrowthRate = SweepGrowthRate
		p.CommonRedemptionRate = rate
	}, func(proj *Projection, year int) float64 {
		return proj.Common[year].TotalValue
	})
}

// OptionRedemptionSweep compares total option/A-share value across
// redemption rates at fixed growth.
func OptionRedemptionSweep(p Parameters, rates []float64, years []int) ([]SensitivityPoint, error) {
	return sweep(p, rates, years, func(p *Parameters, rate float64) {
		p.GrowthRate = SweepGrowthRate
		p.OptionRedemptionRate = rate
	}, func(proj *Projection, year int) float64 {
		return proj.Options[year].TotalValue
	})
}

// CombinedGrowthSweep compares the combined value across growth rates with
// redemption switched off, so the comparison isolates the growth effect.
func CombinedGrowthSweep(p Parameters, rates []float64, years []int) ([]SensitivityPoint, error) {
	if len(rates) == 0 {
		rates = DefaultGrowthRates
	}
	return sweep(p, rates, years, func(p *Parameters, rate float64) {
		p.GrowthRate = rate
		p.CommonRedemptionRate = 0
		p.OptionRedemptionRate = 0
	}, func(proj *Projection, year int) float64 {
		return proj.Combined[year]
	})
}

func sweep(
	base Parameters,
	rates []float64,
	years []int,
	apply func(*Parameters, float64),
	sample func(*Projection, int) float64,
) ([]SensitivityPoint, error) {
	// Empty and nil both mean "use the defaults", so an empty list in a
	// config file cannot produce an empty comparison.
	if len(rates) == 0 {
		rates = DefaultRedemptionRates
	}
	if len(years) == 0 {
		years = DefaultSampleYears
	}

	points := make([]SensitivityPoint, 0, len(rates)*len(years))
	for _, rate := range rates {
		// Parameters is copied by value; VestedByYear is shared but
		// Project never writes through it.
		scenario := base
		apply(&scenario, rate)

		proj, err := Project(scenario)
		if err != nil {
			return nil, err
		}
		for _, year := range years {
			points = append(points, SensitivityPoint{
				Rate:  rate,
				Year:  year,
				Value: sample(proj, year),
			})
		}
	}
	return points, nil
}
