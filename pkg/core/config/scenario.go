package config

import (
	"encoding/json"
	"fmt"
	"os"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// Scenario is a partial override of the worksheet inputs, loaded from a
// hand-edited file. Pointer fields distinguish "absent" from "zero" so a
// scenario only overrides what it names.
type Scenario struct {
	GrowthRate           *float64 `json:"growth_rate,omitempty"`
	CommonRedemptionRate *float64 `json:"common_redemption_rate,omitempty"`
	OptionRedemptionRate *float64 `json:"option_redemption_rate,omitempty"`

	TotalCommonShares   *float64 `json:"total_common_shares,omitempty"`
	CommonPurchasePrice *float64 `json:"common_purchase_price,omitempty"`

	TotalGrantShares *float64 `json:"total_grant_shares,omitempty"`
	StrikePrice      *float64 `json:"strike_price,omitempty"`

	VestedByYear map[int]float64 `json:"vested_shares_by_year,omitempty"`
}

// LoadScenario reads a scenario file. Scenario files are hand-edited, so
// parsing is deliberately lenient: strict JSON first, then HJSON (comments,
// unquoted keys), then automatic repair (unbalanced braces, stray text) as
// the last resort.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}
	return ParseScenario(string(data))
}

// ParseScenario applies the leniency ladder to raw scenario text.
//
// HJSON runs before repair: it accepts every well-formed JSON document plus
// the usual hand-edit slack, and it preserves numbers as float64 exactly.
// Repair re-derives numbers through float32 and must never touch input a
// stricter rung can parse, or rates get silently perturbed.
func ParseScenario(text string) (*Scenario, error) {
	var s Scenario

	// 1. Strict JSON.
	if err := json.Unmarshal([]byte(text), &s); err == nil {
		return &s, nil
	}

	// 2. HJSON: parse to a generic map, round-trip through JSON into the
	// typed struct.
	var generic map[string]interface{}
	if err := hjson.Unmarshal([]byte(text), &generic); err == nil {
		normalized, err := json.Marshal(generic)
		if err != nil {
			return nil, fmt.Errorf("normalizing scenario: %w", err)
		}
		if err := json.Unmarshal(normalized, &s); err != nil {
			return nil, fmt.Errorf("scenario fields malformed: %w", err)
		}
		return &s, nil
	}

	// 3. Repaired JSON.
	if repaired, err := jsonrepair.RepairJSON(text); err == nil {
		if err := json.Unmarshal([]byte(repaired), &s); err == nil {
			return &s, nil
		}
	}

	return nil, fmt.Errorf("scenario is not valid JSON or HJSON: %q", firstLine(text))
}

func firstLine(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return s[:i]
		}
	}
	return s
}

// Apply overlays the scenario's set fields onto a config.
func (s *Scenario) Apply(cfg *Config) {
	if s == nil {
		return
	}
	if s.GrowthRate != nil {
		cfg.GrowthRate = *s.GrowthRate
	}
	if s.CommonRedemptionRate != nil {
		cfg.CommonRedemptionRate = *s.CommonRedemptionRate
	}
	if s.OptionRedemptionRate != nil {
		cfg.OptionRedemptionRate = *s.OptionRedemptionRate
	}
	if s.TotalCommonShares != nil {
		cfg.TotalCommonShares = *s.TotalCommonShares
	}
	if s.CommonPurchasePrice != nil {
		cfg.CommonPurchasePrice = *s.CommonPurchasePrice
	}
	if s.TotalGrantShares != nil {
		cfg.TotalGrantShares = *s.TotalGrantShares
	}
	if s.StrikePrice != nil {
		cfg.StrikePrice = *s.StrikePrice
	}
	if s.VestedByYear != nil {
		cfg.VestedByYear = s.VestedByYear
	}
}
