// Package config is the input supplier: it gathers projection parameters
// from YAML config files, scenario overrides, and defaults, enforces the
// worksheet-level ranges, and hands a validated Parameters value to the
// engine.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"grant_valuation/pkg/core/grant"
	"grant_valuation/pkg/core/schedule"
	"grant_valuation/pkg/core/validate"
)

// Worksheet-level input ranges. The engine itself accepts the wider
// mathematical domain; these bounds mirror the sliders and caps of the
// interactive sheet.
const (
	MinGrowthRate     = 0.10
	MaxGrowthRate     = 0.25
	MaxRedemptionRate = 0.10
	MaxGrantShares    = 500000
)

// Config mirrors the worksheet inputs one-for-one.
type Config struct {
	GrowthRate           float64 `yaml:"growth_rate"`
	CommonRedemptionRate float64 `yaml:"common_redemption_rate"`
	OptionRedemptionRate float64 `yaml:"option_redemption_rate"`

	TotalCommonShares   float64 `yaml:"total_common_shares"`
	CommonPurchasePrice float64 `yaml:"common_purchase_price"`

	TotalGrantShares float64 `yaml:"total_grant_shares"`
	StrikePrice      float64 `yaml:"strike_price"`

	VestedByYear map[int]float64 `yaml:"vested_shares_by_year"`

	Sensitivity SensitivityConfig `yaml:"sensitivity"`
}

// SensitivityConfig overrides the default comparison grids. Empty slices
// fall back to the engine defaults.
type SensitivityConfig struct {
	RedemptionRates []float64 `yaml:"redemption_rates"`
	GrowthRates     []float64 `yaml:"growth_rates"`
	SampleYears     []int     `yaml:"sample_years"`
}

// Default returns the worksheet's standard inputs: 20% growth, 5%
// redemption on both classes, 30000 common shares at £2.00, a 100000-share
// grant struck at £6.00, and the standard vesting ramp.
func Default() Config {
	return Config{
		GrowthRate:           0.20,
		CommonRedemptionRate: 0.05,
		OptionRedemptionRate: 0.05,
		TotalCommonShares:    30000,
		CommonPurchasePrice:  2.00,
		TotalGrantShares:     100000,
		StrikePrice:          6.00,
		VestedByYear:         schedule.Default(100000),
	}
}

// Load reads a YAML config file. Fields left out of the file keep their
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate enforces the worksheet input ranges.
func (c Config) Validate() error {
	if err := validate.Rate("growth_rate", c.GrowthRate, MinGrowthRate, MaxGrowthRate); err != nil {
		return err
	}
	if err := validate.Rate("common_redemption_rate", c.CommonRedemptionRate, 0, MaxRedemptionRate); err != nil {
		return err
	}
	if err := validate.Rate("option_redemption_rate", c.OptionRedemptionRate, 0, MaxRedemptionRate); err != nil {
		return err
	}
	if err := validate.NonNegative("total_common_shares", c.TotalCommonShares); err != nil {
		return err
	}
	if err := validate.Positive("common_purchase_price", c.CommonPurchasePrice); err != nil {
		return err
	}
	if err := validate.Positive("strike_price", c.StrikePrice); err != nil {
		return err
	}
	if err := validate.Positive("total_grant_shares", c.TotalGrantShares); err != nil {
		return err
	}
	if c.TotalGrantShares > MaxGrantShares {
		return fmt.Errorf("total_grant_shares must be <= %d, got %v", MaxGrantShares, c.TotalGrantShares)
	}
	return nil
}

// Parameters validates the config, normalizes the vesting schedule, and
// returns engine-ready parameters plus any advisory warnings (carried
// forward years, clamped values, non-monotonic vesting).
func (c Config) Parameters() (grant.Parameters, []string, error) {
	if err := c.Validate(); err != nil {
		return grant.Parameters{}, nil, err
	}

	vested, warnings, err := schedule.Normalize(c.VestedByYear, c.TotalGrantShares)
	if err != nil {
		return grant.Parameters{}, warnings, err
	}
	warnings = append(warnings, schedule.CheckMonotonic(vested)...)

	return grant.Parameters{
		GrowthRate:           c.GrowthRate,
		CommonRedemptionRate: c.CommonRedemptionRate,
		OptionRedemptionRate: c.OptionRedemptionRate,
		TotalCommonShares:    c.TotalCommonShares,
		CommonPurchasePrice:  c.CommonPurchasePrice,
		TotalGrantShares:     c.TotalGrantShares,
		StrikePrice:          c.StrikePrice,
		VestedByYear:         vested,
	}, warnings, nil
}
